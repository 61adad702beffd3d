package calculation

import (
	"github.com/rgehrsitz/fincalc/internal/domain"
	"github.com/shopspring/decimal"
)

// workingPrecision is the number of fractional digits kept for divisions and
// intermediate powers. Results are displayed as whole rupees, so this leaves
// ample headroom.
const workingPrecision = 24

const monthsPerYear = 12

var (
	one           = decimal.NewFromInt(1)
	hundred       = decimal.NewFromInt(100)
	twelveHundred = decimal.NewFromInt(1200)
	quarters      = decimal.NewFromInt(4)
)

// percentToRate converts a percentage such as 7.1 to 0.071
func percentToRate(pct decimal.Decimal) decimal.Decimal {
	return pct.DivRound(hundred, workingPrecision)
}

// percentToMonthlyRate converts an annual percentage to a monthly rate
func percentToMonthlyRate(pct decimal.Decimal) decimal.Decimal {
	return pct.DivRound(twelveHundred, workingPrecision)
}

// div divides a by b, reporting a singularity instead of panicking on zero
func div(kind domain.Kind, a, b decimal.Decimal, fields ...string) (decimal.Decimal, error) {
	if b.IsZero() {
		return decimal.Zero, singular(kind, fields...)
	}
	return a.DivRound(b, workingPrecision), nil
}

// powInt raises base to an integer exponent by repeated squaring, rounding
// every intermediate product to workingPrecision.
func powInt(kind domain.Kind, base decimal.Decimal, n int, fields ...string) (decimal.Decimal, error) {
	if n < 0 {
		p, err := powInt(kind, base, -n, fields...)
		if err != nil {
			return decimal.Zero, err
		}
		return div(kind, one, p, fields...)
	}

	result := one
	for n > 0 {
		if n&1 == 1 {
			result = result.Mul(base).Round(workingPrecision)
		}
		base = base.Mul(base).Round(workingPrecision)
		n >>= 1
	}
	return result, nil
}

// annuityDue is the future value of n payments made at the start of each
// period: payment * ((1+i)^n - 1) / i * (1+i). A zero rate degenerates to
// payment * n.
func annuityDue(kind domain.Kind, payment, i decimal.Decimal, n int, fields ...string) (decimal.Decimal, error) {
	periods := decimal.NewFromInt(int64(n))
	if i.IsZero() {
		return payment.Mul(periods), nil
	}
	growth, err := powInt(kind, one.Add(i), n, fields...)
	if err != nil {
		return decimal.Zero, err
	}
	factor, err := div(kind, growth.Sub(one), i, fields...)
	if err != nil {
		return decimal.Zero, err
	}
	return payment.Mul(factor).Mul(one.Add(i)), nil
}

// singular reports an arithmetic singularity (division by zero) as an
// unavailable result for the named fields
func singular(kind domain.Kind, fields ...string) error {
	return domain.NewValidationError(kind, domain.ErrInvalidInput, fields...)
}
