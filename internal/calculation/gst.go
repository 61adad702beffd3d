package calculation

import (
	"github.com/rgehrsitz/fincalc/internal/domain"
	"github.com/shopspring/decimal"
)

// CalculateGST applies the GST rate to an amount.
//
// Exclusive: the amount is the taxable value and GST is added on top.
// Inclusive: the amount already contains GST, which is extracted from it.
func CalculateGST(in domain.GSTInput) (domain.GSTResult, error) {
	rate := percentToRate(in.RatePct)

	var gst, total decimal.Decimal
	switch in.Mode {
	case domain.GSTExclusive:
		gst = in.Amount.Mul(rate)
		total = in.Amount.Add(gst)
	case domain.GSTInclusive:
		base, err := div(domain.KindGST, in.Amount, one.Add(rate), "rate_pct")
		if err != nil {
			return domain.GSTResult{}, err
		}
		gst = in.Amount.Sub(base)
		total = in.Amount.Sub(gst)
	default:
		return domain.GSTResult{}, domain.NewValidationError(domain.KindGST, domain.ErrInvalidInput, "mode")
	}

	return domain.GSTResult{GSTAmount: gst, TotalAmount: total}, nil
}
