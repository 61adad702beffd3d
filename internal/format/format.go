// Package format renders calculation figures for display.
//
// Every money figure goes through Amount, which rounds half up to a whole
// rupee and applies Indian digit grouping (12,34,567). No other rounding path
// should be used by front ends.
package format

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// RupeeSymbol is prefixed by Rupees
const RupeeSymbol = "₹"

var half = decimal.NewFromFloat(0.5)

// RoundHalfUp rounds to a whole number: ceil when the fractional part is at
// least one half, floor otherwise. The fractional part keeps the sign of x,
// so negative values always floor.
func RoundHalfUp(x decimal.Decimal) int64 {
	frac := x.Sub(x.Truncate(0))
	if frac.GreaterThanOrEqual(half) {
		return x.Ceil().IntPart()
	}
	return x.Floor().IntPart()
}

// Grouped renders n with Indian digit grouping: the last three digits, then
// groups of two. No decimals and no currency symbol.
func Grouped(n int64) string {
	digits := strconv.FormatInt(n, 10)
	sign := ""
	if strings.HasPrefix(digits, "-") {
		sign, digits = "-", digits[1:]
	}
	if len(digits) <= 3 {
		return sign + digits
	}

	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	return sign + strings.Join(groups, ",") + "," + tail
}

// Amount is the canonical display form of a money figure
func Amount(x decimal.Decimal) string {
	return Grouped(RoundHalfUp(x))
}

// Rupees is Amount with the rupee symbol
func Rupees(x decimal.Decimal) string {
	return RupeeSymbol + Amount(x)
}

// Percent renders a percentage with a fixed number of decimal places
func Percent(x decimal.Decimal, places int32) string {
	return x.StringFixed(places) + "%"
}
