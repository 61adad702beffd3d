package calculation

import (
	"github.com/rgehrsitz/fincalc/internal/domain"
	"github.com/shopspring/decimal"
)

// CalculateInterest computes simple interest (P + P*rate*years) or annually
// compounded interest (P * (1+rate)^years)
func CalculateInterest(in domain.InterestInput) (domain.InterestResult, error) {
	rate := percentToRate(in.AnnualRatePct)

	var maturity decimal.Decimal
	switch in.Mode {
	case domain.InterestSimple:
		maturity = in.Principal.Add(in.Principal.Mul(rate).Mul(decimal.NewFromInt(int64(in.TenureYears))))
	case domain.InterestCompound:
		growth, err := powInt(domain.KindInterest, one.Add(rate), in.TenureYears, "annual_rate_pct", "tenure_years")
		if err != nil {
			return domain.InterestResult{}, err
		}
		maturity = in.Principal.Mul(growth)
	default:
		return domain.InterestResult{}, domain.NewValidationError(domain.KindInterest, domain.ErrInvalidInput, "mode")
	}

	return domain.InterestResult{
		Maturity: maturity,
		Invested: in.Principal,
		Interest: maturity.Sub(in.Principal),
	}, nil
}
