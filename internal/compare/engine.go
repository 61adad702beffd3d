package compare

import (
	"context"
	"fmt"
	"strings"

	"github.com/rgehrsitz/fincalc/internal/calculation"
	"github.com/rgehrsitz/fincalc/internal/domain"
	"github.com/rgehrsitz/fincalc/internal/params"
)

// Variation lists alternative values for one parameter
type Variation struct {
	Key    string
	Values []string
}

// ParseVariation reads "key=v1,v2,v3"
func ParseVariation(spec string) (Variation, error) {
	key, values, ok := strings.Cut(spec, "=")
	key = params.NormalizeKey(key)
	if !ok || key == "" {
		return Variation{}, fmt.Errorf("invalid variation format, expected 'key=v1,v2', got: %s", spec)
	}

	v := Variation{Key: key}
	for _, val := range strings.Split(values, ",") {
		if val = strings.TrimSpace(val); val != "" {
			v.Values = append(v.Values, val)
		}
	}
	if len(v.Values) == 0 {
		return Variation{}, fmt.Errorf("variation %s has no values", key)
	}
	return v, nil
}

// CompareEngine orchestrates calculator comparisons
type CompareEngine struct {
	CalcEngine *calculation.Engine
	Registry   *params.Registry
}

// NewCompareEngine creates a new comparison engine
func NewCompareEngine(calcEngine *calculation.Engine, registry *params.Registry) *CompareEngine {
	return &CompareEngine{CalcEngine: calcEngine, Registry: registry}
}

// Compare runs the base parameters, then one run per variation value with
// that single parameter replaced
func (ce *CompareEngine) Compare(ctx context.Context, calculator string, pairs []string, variations []Variation) (*ComparisonSet, error) {
	if len(variations) == 0 {
		return nil, fmt.Errorf("at least one variation is required")
	}

	kind, err := domain.ParseKind(calculator)
	if err != nil {
		return nil, err
	}
	raw, err := params.ParsePairs(pairs)
	if err != nil {
		return nil, err
	}

	base, err := ce.Registry.Build("", kind, raw)
	if err != nil {
		return nil, err
	}

	reqs := []domain.Request{base}
	var labels []string
	for _, v := range variations {
		for _, val := range v.Values {
			alt := make(map[string]string, len(raw)+1)
			for k, x := range raw {
				alt[k] = x
			}
			alt[v.Key] = val
			label := v.Key + "=" + val

			req, err := ce.Registry.Build(base.Name+" ("+label+")", kind, alt)
			if err != nil {
				return nil, fmt.Errorf("variation %s: %w", label, err)
			}
			reqs = append(reqs, req)
			labels = append(labels, label)
		}
	}

	report := ce.CalcEngine.CalculateAll(ctx, reqs)

	baseResult := NewComparisonResult(base.Name, "", report.Outcomes[0], nil)
	compSet := &ComparisonSet{
		Calculator: kind,
		BaseName:   base.Name,
		BaseResult: &baseResult,
	}
	for i, o := range report.Outcomes[1:] {
		compSet.AlternativeResults = append(compSet.AlternativeResults,
			NewComparisonResult(o.Name, labels[i], o, &baseResult))
	}

	return compSet, nil
}
