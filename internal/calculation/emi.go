package calculation

import (
	"github.com/rgehrsitz/fincalc/internal/domain"
	"github.com/shopspring/decimal"
)

// CalculateEMI computes the equated monthly installment of a loan:
//
//	emi = P * r * (1+r)^n / ((1+r)^n - 1)
//
// with r the monthly rate and n the tenure in months. A zero rate is
// special-cased to straight-line repayment (P / n), matching how the NPS
// calculator treats a zero return.
func CalculateEMI(in domain.EMIInput) (domain.EMIResult, error) {
	n := in.TenureYears * monthsPerYear
	if n <= 0 {
		return domain.EMIResult{}, singular(domain.KindEMI, "tenure_years")
	}

	months := decimal.NewFromInt(int64(n))
	r := percentToMonthlyRate(in.AnnualRatePct)

	var emi decimal.Decimal
	if r.IsZero() {
		emi = in.Principal.DivRound(months, workingPrecision)
	} else {
		growth, err := powInt(domain.KindEMI, one.Add(r), n, "annual_rate_pct")
		if err != nil {
			return domain.EMIResult{}, err
		}
		emi, err = div(domain.KindEMI, in.Principal.Mul(r).Mul(growth), growth.Sub(one), "annual_rate_pct")
		if err != nil {
			return domain.EMIResult{}, err
		}
	}

	total := emi.Mul(months)
	return domain.EMIResult{
		EMI:           emi,
		TotalPayment:  total,
		TotalInterest: total.Sub(in.Principal),
	}, nil
}
