package calculation

import (
	"github.com/rgehrsitz/fincalc/internal/domain"
	"github.com/shopspring/decimal"
)

// NPS entry age limits
const (
	NPSMinAge = 18
	NPSMaxAge = 70
)

// CalculateNPS projects the NPS corpus at retirement from monthly
// contributions and splits it into the annuity purchase and the lumpsum
// withdrawal. The monthly pension is the annuity corpus earning the annuity
// rate for one month.
func CalculateNPS(in domain.NPSInput) (domain.NPSResult, error) {
	if in.CurrentAge < NPSMinAge || in.CurrentAge > NPSMaxAge {
		return domain.NPSResult{}, domain.NewValidationError(domain.KindNPS, domain.ErrNPSAge, "current_age")
	}

	months := in.RetirementAge - in.CurrentAge
	if months < 0 {
		months = 0
	}
	months *= monthsPerYear

	monthlyRate := percentToMonthlyRate(in.ExpectedReturnPct)
	wealth, err := annuityDue(domain.KindNPS, in.MonthlyInvestment, monthlyRate, months, "expected_return_pct")
	if err != nil {
		return domain.NPSResult{}, err
	}

	invested := in.MonthlyInvestment.Mul(decimal.NewFromInt(int64(months)))
	annuityCorpus := percentToRate(in.AnnuityPct).Mul(wealth)

	return domain.NPSResult{
		Invested:       invested,
		PensionWealth:  wealth,
		InterestEarned: wealth.Sub(invested),
		AnnuityAmount:  annuityCorpus,
		Lumpsum:        wealth.Sub(annuityCorpus),
		MonthlyPension: annuityCorpus.Mul(percentToMonthlyRate(in.AnnuityRatePct)),
	}, nil
}
