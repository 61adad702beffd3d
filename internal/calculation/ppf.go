package calculation

import (
	"github.com/rgehrsitz/fincalc/internal/domain"
	"github.com/shopspring/decimal"
)

// PPF account rules
const (
	PPFMinTenureYears = 15
)

// DefaultPPFRatePct is the fixed annual PPF rate
var DefaultPPFRatePct = decimal.NewFromFloat(7.1)

// CalculatePPF computes PPF maturity at the default rate
func CalculatePPF(in domain.PPFInput) (domain.PPFResult, error) {
	return CalculatePPFAtRate(in, DefaultPPFRatePct)
}

// CalculatePPFAtRate accumulates a PPF account year by year. Each year the
// contribution is deposited first and interest is then credited on the
// whole balance, so this is not the same as compounding a single deposit.
// The balance is rounded to workingPrecision after every credit.
func CalculatePPFAtRate(in domain.PPFInput, ratePct decimal.Decimal) (domain.PPFResult, error) {
	if in.TenureYears < PPFMinTenureYears {
		return domain.PPFResult{}, domain.NewValidationError(domain.KindPPF, domain.ErrPPFTenure, "tenure_years")
	}

	rate := percentToRate(ratePct)
	amount := decimal.Zero
	for year := 1; year <= in.TenureYears; year++ {
		amount = amount.Add(in.YearlyInvestment)
		amount = amount.Add(amount.Mul(rate)).Round(workingPrecision)
	}

	invested := in.YearlyInvestment.Mul(decimal.NewFromInt(int64(in.TenureYears)))
	return domain.PPFResult{
		Maturity: amount,
		Invested: invested,
		Interest: amount.Sub(invested),
	}, nil
}
