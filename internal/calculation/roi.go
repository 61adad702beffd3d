package calculation

import (
	"math"

	"github.com/rgehrsitz/fincalc/internal/domain"
	"github.com/shopspring/decimal"
)

// CalculateROI computes absolute returns, ROI, simple annual ROI and CAGR.
// All three inputs must be positive; otherwise no result is produced.
func CalculateROI(in domain.ROIInput) (domain.ROIResult, error) {
	var bad []string
	if !in.Initial.IsPositive() {
		bad = append(bad, "initial")
	}
	if !in.Final.IsPositive() {
		bad = append(bad, "final")
	}
	if in.TenureYears <= 0 {
		bad = append(bad, "tenure_years")
	}
	if len(bad) > 0 {
		return domain.ROIResult{}, domain.NewValidationError(domain.KindROI, domain.ErrROINonPositive, bad...)
	}

	years := decimal.NewFromInt(int64(in.TenureYears))
	returns := in.Final.Sub(in.Initial)
	roi := returns.Mul(hundred).DivRound(in.Initial, workingPrecision)

	// The exponent 1/years is fractional, which decimal cannot raise to.
	ratio := in.Final.DivRound(in.Initial, workingPrecision).InexactFloat64()
	cagr := decimal.NewFromFloat(math.Pow(ratio, 1/float64(in.TenureYears)) - 1).Mul(hundred)

	return domain.ROIResult{
		Returns:            returns,
		ROIPct:             roi,
		SimpleAnnualROIPct: roi.DivRound(years, workingPrecision),
		CAGRPct:            cagr,
	}, nil
}
