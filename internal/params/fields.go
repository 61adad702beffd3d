package params

import (
	"strings"

	"github.com/rgehrsitz/fincalc/internal/format"
	"github.com/shopspring/decimal"
)

// Fields reads typed values out of raw parameter text and remembers every
// key it could not read
type Fields struct {
	raw     map[string]string
	invalid []string
}

// NewFields wraps an already merged parameter map
func NewFields(raw map[string]string) *Fields {
	return &Fields{raw: raw}
}

// Invalid returns the keys whose values could not be read, in read order
func (f *Fields) Invalid() []string {
	if len(f.invalid) == 0 {
		return nil
	}
	out := make([]string, len(f.invalid))
	copy(out, f.invalid)
	return out
}

func (f *Fields) markInvalid(key string) {
	for _, k := range f.invalid {
		if k == key {
			return
		}
	}
	f.invalid = append(f.invalid, key)
}

// Decimal reads a number. Digit grouping commas, spaces, a rupee symbol and
// a trailing percent sign are ignored.
func (f *Fields) Decimal(key string) decimal.Decimal {
	v, ok := ParseNumber(f.raw[key])
	if !ok {
		f.markInvalid(key)
		return decimal.Zero
	}
	return v
}

// MaxWholeNumber bounds the magnitude of whole-number fields (tenures and
// ages). Larger values are reported invalid rather than wrapped, and keep
// period counts such as years*12 well inside int.
const MaxWholeNumber = 100000

var maxWhole = decimal.NewFromInt(MaxWholeNumber)

// Int reads a whole number no larger in magnitude than MaxWholeNumber
func (f *Fields) Int(key string) int {
	v, ok := ParseNumber(f.raw[key])
	if !ok || !v.IsInteger() || v.Abs().GreaterThan(maxWhole) {
		f.markInvalid(key)
		return 0
	}
	return int(v.IntPart())
}

// Bool reads a yes/no flag
func (f *Fields) Bool(key string) bool {
	switch strings.ToLower(strings.TrimSpace(f.raw[key])) {
	case "true", "yes", "1", "on", "metro":
		return true
	case "false", "no", "0", "off", "non-metro", "":
		return false
	}
	f.markInvalid(key)
	return false
}

// Choice reads one of a fixed set of options, case-insensitively
func (f *Fields) Choice(key string, options ...string) string {
	v := strings.ToLower(strings.TrimSpace(f.raw[key]))
	for _, o := range options {
		if v == o {
			return o
		}
	}
	f.markInvalid(key)
	return v
}

// ParseNumber is the single numeric parse path for user text
func ParseNumber(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, format.RupeeSymbol)
	s = strings.TrimSuffix(s, "%")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return decimal.Zero, false
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return v, true
}
