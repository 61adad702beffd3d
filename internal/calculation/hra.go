package calculation

import (
	"github.com/rgehrsitz/fincalc/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	metroFactor    = decimal.NewFromFloat(0.50)
	nonMetroFactor = decimal.NewFromFloat(0.40)
	rentThreshold  = decimal.NewFromFloat(0.10)
)

// CalculateHRA applies the least-of-three rule to the HRA received:
//
//	exempt = min(hra, 50%|40% of salary, rent - 10% of salary)
//
// where salary is basic plus dearness allowance. When rent is below 10% of
// salary the third term is negative and so is the exemption; use ClampHRA to
// floor it at zero.
func CalculateHRA(in domain.HRAInput) (domain.HRAResult, error) {
	salary := in.BasicSalary.Add(in.DearnessAllowance)

	factor := nonMetroFactor
	if in.IsMetro {
		factor = metroFactor
	}

	rentExcess := in.RentPaid.Sub(rentThreshold.Mul(salary))
	exempt := decimal.Min(in.HRAReceived, factor.Mul(salary), rentExcess)

	return domain.HRAResult{
		ExemptHRA:  exempt,
		TaxableHRA: in.HRAReceived.Sub(exempt),
	}, nil
}

// ClampHRA floors a negative exemption at zero, making the full HRA taxable
func ClampHRA(in domain.HRAInput, res domain.HRAResult) domain.HRAResult {
	if res.ExemptHRA.IsNegative() {
		return domain.HRAResult{ExemptHRA: decimal.Zero, TaxableHRA: in.HRAReceived}
	}
	return res
}
