package calculation

import (
	"github.com/rgehrsitz/fincalc/internal/domain"
	"github.com/rgehrsitz/fincalc/internal/format"
	"github.com/shopspring/decimal"
)

func newBreakdown(title, firstLabel string, first decimal.Decimal, secondLabel string, second decimal.Decimal) *domain.Breakdown {
	return &domain.Breakdown{
		Title: title,
		Slices: [2]domain.Slice{
			{Label: firstLabel, Value: format.RoundHalfUp(first), Color: domain.PrimarySliceColor},
			{Label: secondLabel, Value: format.RoundHalfUp(second), Color: domain.SecondarySliceColor},
		},
	}
}

// BreakdownFor builds the proportion chart data for a result. The second
// argument is the calculator input, needed where a slice shows an input
// figure (the loan amount or the GST base amount).
func BreakdownFor(input any, result domain.Result) *domain.Breakdown {
	switch r := result.(type) {
	case domain.EMIResult:
		in, _ := input.(domain.EMIInput)
		return newBreakdown("Loan Breakdown", "Total Loan Amount", in.Principal, "Total Interest", r.TotalInterest)
	case domain.GSTResult:
		in, _ := input.(domain.GSTInput)
		return newBreakdown("GST Breakdown", "Base Amount", in.Amount, "GST Amount", r.GSTAmount)
	case domain.HRAResult:
		return newBreakdown("HRA Breakdown", "Exempt HRA", r.ExemptHRA, "Taxable HRA", r.TaxableHRA)
	case domain.ROIResult:
		in, _ := input.(domain.ROIInput)
		return newBreakdown("Investment Breakdown", "Total Investment", in.Initial, "Total Returns", r.Returns)
	case domain.NPSResult:
		return newBreakdown("Pension Breakdown", "Lumpsum Amount", r.Lumpsum, "Pension Wealth", r.PensionWealth)
	case domain.GrowthResult:
		return newBreakdown("Investment Breakdown", "Total Investment", r.Invested, "Total Interest", r.Interest)
	}
	return nil
}
