// Package compare runs one calculator several times, varying a single
// parameter, and reports every metric against the base run.
package compare

import (
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/fincalc/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// MetricDelta is one metric of a run next to its change from the base run
type MetricDelta struct {
	Key          string          `json:"key"`
	Label        string          `json:"label"`
	Unit         domain.Unit     `json:"unit"`
	Value        decimal.Decimal `json:"value"`
	DiffFromBase decimal.Decimal `json:"diffFromBase"`
	// PctFromBase is zero when the base value is zero
	PctFromBase decimal.Decimal `json:"pctFromBase"`
}

// ComparisonResult is one calculator run within a comparison
type ComparisonResult struct {
	Name      string        `json:"name"`
	Varied    string        `json:"varied,omitempty"`
	Available bool          `json:"available"`
	Message   string        `json:"message,omitempty"`
	Metrics   []MetricDelta `json:"metrics,omitempty"`
}

// ComparisonSet is a base run and its alternatives
type ComparisonSet struct {
	Calculator         domain.Kind        `json:"calculator"`
	BaseName           string             `json:"baseName"`
	BaseResult         *ComparisonResult  `json:"baseResult"`
	AlternativeResults []ComparisonResult `json:"alternativeResults"`
}

// NewComparisonResult converts an outcome. When base is non-nil and both
// runs are available, each metric carries its difference from the base.
func NewComparisonResult(name, varied string, o domain.Outcome, base *ComparisonResult) ComparisonResult {
	r := ComparisonResult{
		Name:      name,
		Varied:    varied,
		Available: o.Available(),
		Message:   o.Message(),
	}
	if !o.Available() {
		return r
	}

	for _, m := range o.Result.Metrics() {
		d := MetricDelta{Key: m.Key, Label: m.Label, Unit: m.Unit, Value: m.Value}
		if b, ok := base.metric(m.Key); ok {
			d.DiffFromBase = m.Value.Sub(b.Value)
			if !b.Value.IsZero() {
				d.PctFromBase = d.DiffFromBase.Div(b.Value.Abs()).Mul(hundred)
			}
		}
		r.Metrics = append(r.Metrics, d)
	}
	return r
}

// metric finds a metric by key; a nil or unavailable result has none
func (r *ComparisonResult) metric(key string) (MetricDelta, bool) {
	if r == nil || !r.Available {
		return MetricDelta{}, false
	}
	for _, m := range r.Metrics {
		if m.Key == key {
			return m, true
		}
	}
	return MetricDelta{}, false
}

// MetricKeys returns the metric keys in display order, taken from the first
// available run
func (cs *ComparisonSet) MetricKeys() []MetricDelta {
	runs := append([]ComparisonResult{}, cs.AlternativeResults...)
	if cs.BaseResult != nil {
		runs = append([]ComparisonResult{*cs.BaseResult}, runs...)
	}
	for _, r := range runs {
		if r.Available {
			return r.Metrics
		}
	}
	return nil
}
