package params

import (
	"testing"

	"github.com/rgehrsitz/fincalc/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_List(t *testing.T) {
	kinds := NewRegistry().List()
	assert.Len(t, kinds, len(domain.AllKinds))
	assert.Equal(t, domain.KindEMI, kinds[0])
}

func TestRegistry_BuildDefaults(t *testing.T) {
	registry := NewRegistry()

	for _, kind := range domain.AllKinds {
		t.Run(string(kind), func(t *testing.T) {
			req, err := registry.Build("", kind, nil)
			require.NoError(t, err)
			assert.Empty(t, req.Invalid, "catalog defaults must parse")
			assert.Equal(t, kind, req.Kind)
			assert.NotEmpty(t, req.Name)
			assert.NotNil(t, req.Input)
		})
	}
}

func TestRegistry_BuildEMI(t *testing.T) {
	req, err := NewRegistry().Build("home loan", domain.KindEMI, map[string]string{
		"principal":       "1,00,000",
		"annual_rate_pct": "10%",
		"tenure-years":    "5",
	})
	require.NoError(t, err)

	assert.Equal(t, "home loan", req.Name)
	in, ok := req.Input.(domain.EMIInput)
	require.True(t, ok)
	assert.True(t, in.Principal.Equal(decimal.NewFromInt(100000)))
	assert.True(t, in.AnnualRatePct.Equal(decimal.NewFromInt(10)))
	assert.Equal(t, 5, in.TenureYears)
	assert.Empty(t, req.Invalid)
}

func TestRegistry_BuildInvalidValues(t *testing.T) {
	req, err := NewRegistry().Build("", domain.KindFD, map[string]string{
		"principal":    "ten thousand",
		"tenure_years": "2.5",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"principal", "tenure_years"}, req.Invalid)

	req, err = NewRegistry().Build("", domain.KindGST, map[string]string{"mode": "both"})
	require.NoError(t, err)
	assert.Equal(t, []string{"mode"}, req.Invalid)

	req, err = NewRegistry().Build("", domain.KindHRA, map[string]string{"is_metro": "maybe"})
	require.NoError(t, err)
	assert.Equal(t, []string{"is_metro"}, req.Invalid)
}

func TestRegistry_BuildOversizedWholeNumbers(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"beyond uint64", "18446744073709551617"},
		{"beyond int64", "9223372036854775808"},
		{"large negative", "-9223372036854775809"},
		{"just over the bound", "100001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := NewRegistry().Build("", domain.KindEMI, map[string]string{"tenure_years": tt.value})
			require.NoError(t, err)
			assert.Equal(t, []string{"tenure_years"}, req.Invalid)
			assert.Zero(t, req.Input.(domain.EMIInput).TenureYears)
		})
	}

	req, err := NewRegistry().Build("", domain.KindEMI, map[string]string{"tenure_years": "100000"})
	require.NoError(t, err)
	assert.Empty(t, req.Invalid)
	assert.Equal(t, MaxWholeNumber, req.Input.(domain.EMIInput).TenureYears)
}

func TestRegistry_BuildErrors(t *testing.T) {
	registry := NewRegistry()

	_, err := registry.Build("", "tax", nil)
	assert.ErrorContains(t, err, "unknown calculator")

	_, err = registry.Build("", domain.KindPPF, map[string]string{"annual_rate_pct": "8"})
	assert.ErrorContains(t, err, "does not take parameter")
}

func TestRegistry_BuildSIPModes(t *testing.T) {
	req, err := NewRegistry().Build("", domain.KindSIP, map[string]string{
		"mode":               "lumpsum",
		"monthly_investment": "abc",
		"principal":          "25000",
	})
	require.NoError(t, err)
	assert.Empty(t, req.Invalid, "monthly amount is ignored for a lumpsum")

	in := req.Input.(domain.SIPInput)
	assert.Equal(t, domain.InvestmentLumpsum, in.Mode)
	assert.True(t, in.Principal.Equal(decimal.NewFromInt(25000)))
	assert.True(t, in.MonthlyInvestment.IsZero())
}

func TestRegistry_ParseSpec(t *testing.T) {
	req, err := NewRegistry().ParseSpec("nps-calculator", []string{"current_age=45", "retirement_age=60"})
	require.NoError(t, err)

	in := req.Input.(domain.NPSInput)
	assert.Equal(t, 45, in.CurrentAge)
	assert.Equal(t, 60, in.RetirementAge)
	assert.True(t, in.MonthlyInvestment.Equal(decimal.NewFromInt(5000)), "unset keys take defaults")
	assert.Equal(t, "NPS Calculator", req.Name)

	_, err = NewRegistry().ParseSpec("emi", []string{"principal"})
	assert.ErrorContains(t, err, "expected 'key=value'")

	_, err = NewRegistry().ParseSpec("mortgage", nil)
	assert.Error(t, err)
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		ok       bool
	}{
		{"100000", "100000", true},
		{" 12,34,567 ", "1234567", true},
		{"₹5,000", "5000", true},
		{"7.1%", "7.1", true},
		{"-3", "-3", true},
		{"", "0", false},
		{"abc", "0", false},
		{"1e3", "1000", true},
	}

	for _, tt := range tests {
		v, ok := ParseNumber(tt.input)
		assert.Equal(t, tt.ok, ok, "ParseNumber(%q)", tt.input)
		assert.True(t, v.Equal(decimal.RequireFromString(tt.expected)), "ParseNumber(%q) = %s", tt.input, v)
	}
}

func TestFields_Bool(t *testing.T) {
	f := NewFields(map[string]string{"a": "Yes", "b": "metro", "c": "0", "d": "?"})
	assert.True(t, f.Bool("a"))
	assert.True(t, f.Bool("b"))
	assert.False(t, f.Bool("c"))
	assert.False(t, f.Bool("d"))
	assert.Equal(t, []string{"d"}, f.Invalid())
}
