package calculation

import (
	"github.com/rgehrsitz/fincalc/internal/domain"
)

// CalculateFD computes a fixed deposit maturity with quarterly compounding:
// P * (1 + rate/4)^(4*years)
func CalculateFD(in domain.FDInput) (domain.FDResult, error) {
	quarterlyRate := percentToRate(in.AnnualRatePct).DivRound(quarters, workingPrecision)

	growth, err := powInt(domain.KindFD, one.Add(quarterlyRate), 4*in.TenureYears, "annual_rate_pct", "tenure_years")
	if err != nil {
		return domain.FDResult{}, err
	}

	maturity := in.Principal.Mul(growth)
	return domain.FDResult{
		Maturity: maturity,
		Invested: in.Principal,
		Interest: maturity.Sub(in.Principal),
	}, nil
}
