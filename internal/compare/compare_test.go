package compare

import (
	"context"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/fincalc/internal/calculation"
	"github.com/rgehrsitz/fincalc/internal/domain"
	"github.com/rgehrsitz/fincalc/internal/params"
)

func newTestEngine() *CompareEngine {
	return NewCompareEngine(calculation.NewEngine(), params.NewRegistry())
}

func interestComparison(t *testing.T) *ComparisonSet {
	t.Helper()
	v, err := ParseVariation("annual_rate_pct=8,abc")
	require.NoError(t, err)

	set, err := newTestEngine().Compare(context.Background(), "interest", []string{"principal=10000"}, []Variation{v})
	require.NoError(t, err)
	return set
}

func TestParseVariation(t *testing.T) {
	tests := []struct {
		name    string
		spec    string
		want    Variation
		wantErr bool
	}{
		{"single", "annual_rate_pct=8", Variation{Key: "annual_rate_pct", Values: []string{"8"}}, false},
		{"several with spaces", "Tenure-Years= 5, 10 ,15", Variation{Key: "tenure_years", Values: []string{"5", "10", "15"}}, false},
		{"no equals", "annual_rate_pct", Variation{}, true},
		{"no key", "=5", Variation{}, true},
		{"no values", "tenure_years=, ,", Variation{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseVariation(tt.spec)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCompareEngine_Compare(t *testing.T) {
	set := interestComparison(t)

	assert.Equal(t, domain.KindInterest, set.Calculator)
	assert.Equal(t, "Interest Calculator", set.BaseName)
	require.NotNil(t, set.BaseResult)
	require.True(t, set.BaseResult.Available)
	require.Len(t, set.AlternativeResults, 2)

	alt := set.AlternativeResults[0]
	assert.Equal(t, "annual_rate_pct=8", alt.Varied)
	require.True(t, alt.Available)

	maturity, ok := alt.metric("maturity")
	require.True(t, ok)
	assert.True(t, maturity.Value.Equal(decimal.NewFromInt(14000)), maturity.Value.String())
	assert.True(t, maturity.DiffFromBase.Equal(decimal.NewFromInt(1000)), maturity.DiffFromBase.String())
	assert.Equal(t, "7.69", maturity.PctFromBase.StringFixed(2))

	invested, ok := alt.metric("invested")
	require.True(t, ok)
	assert.True(t, invested.DiffFromBase.IsZero())
	assert.True(t, invested.PctFromBase.IsZero())

	bad := set.AlternativeResults[1]
	assert.False(t, bad.Available)
	assert.Equal(t, "Please enter valid numbers.", bad.Message)
}

func TestCompareEngine_Errors(t *testing.T) {
	ce := newTestEngine()
	ctx := context.Background()

	_, err := ce.Compare(ctx, "interest", nil, nil)
	assert.Error(t, err)

	_, err = ce.Compare(ctx, "mortgage", nil, []Variation{{Key: "principal", Values: []string{"1"}}})
	assert.Error(t, err)

	_, err = ce.Compare(ctx, "interest", []string{"principal"}, []Variation{{Key: "principal", Values: []string{"1"}}})
	assert.Error(t, err)

	_, err = ce.Compare(ctx, "interest", nil, []Variation{{Key: "discount", Values: []string{"1"}}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "variation discount=1")
}

func TestCompareEngine_UnavailableBase(t *testing.T) {
	v, err := ParseVariation("tenure_years=15,20")
	require.NoError(t, err)

	set, err := newTestEngine().Compare(context.Background(), "ppf", []string{"tenure_years=10"}, []Variation{v})
	require.NoError(t, err)

	assert.False(t, set.BaseResult.Available)
	require.Len(t, set.AlternativeResults, 2)
	for _, alt := range set.AlternativeResults {
		require.True(t, alt.Available)
		for _, m := range alt.Metrics {
			assert.True(t, m.DiffFromBase.IsZero(), "no base to compare against")
		}
	}
	assert.NotEmpty(t, set.MetricKeys())
}

func TestTableFormatter_Format(t *testing.T) {
	out := (&TableFormatter{}).Format(interestComparison(t))

	assert.Contains(t, out, "CALCULATOR COMPARISON")
	assert.Contains(t, out, "Base: Interest Calculator")
	assert.Contains(t, out, "Maturity Value")
	assert.Contains(t, out, "₹14,000")
	assert.Contains(t, out, "COMPARISON TO BASE")
	assert.Contains(t, out, "+₹1,000 (+7.7%)")
	assert.Contains(t, out, "unavailable: Please enter valid numbers.")
}

func TestCSVFormatter_Format(t *testing.T) {
	out, err := (&CSVFormatter{}).Format(interestComparison(t))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, "Run,Type,Varied,Metric,Value,Diff From Base,Pct From Base,Message", lines[0])
	assert.Contains(t, out, "Interest Calculator,base,,maturity,13000,0,0.00,")
	assert.Contains(t, out, "Interest Calculator (annual_rate_pct=8),alternative,annual_rate_pct=8,maturity,14000,1000,7.69,")
	assert.Contains(t, out, "Interest Calculator (annual_rate_pct=abc),alternative,annual_rate_pct=abc,,,,,Please enter valid numbers.")
}

func TestJSONFormatter_Format(t *testing.T) {
	set := interestComparison(t)

	for _, pretty := range []bool{false, true} {
		out, err := JSONFormatter{Pretty: pretty}.Format(set)
		require.NoError(t, err)

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(out, &decoded))
		assert.Equal(t, "interest", decoded["calculator"])
		assert.Len(t, decoded["alternativeResults"], 2)
	}
	assert.Equal(t, "json", JSONFormatter{}.Name())
}
