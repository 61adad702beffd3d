package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Unit tells front ends how a metric value should be displayed
type Unit string

const (
	UnitMoney   Unit = "money"
	UnitPercent Unit = "percent"
)

// Metric is one labelled figure of a calculation result
type Metric struct {
	Key   string          `json:"key"`
	Label string          `json:"label"`
	Value decimal.Decimal `json:"value"`
	Unit  Unit            `json:"unit"`
}

// Result is implemented by every calculator result record
type Result interface {
	Metrics() []Metric
}

// Chart colors shared by every proportion breakdown
const (
	PrimarySliceColor   = "#19B797"
	SecondarySliceColor = "#0A80A0"
)

// Slice is one labelled, already-rounded segment of a proportion chart
type Slice struct {
	Label string `json:"label"`
	Value int64  `json:"value"`
	Color string `json:"color"`
}

// Breakdown is the two-way split handed to a chart renderer
type Breakdown struct {
	Title  string   `json:"title"`
	Slices [2]Slice `json:"slices"`
}

// Total returns the sum of both slices
func (b Breakdown) Total() int64 {
	return b.Slices[0].Value + b.Slices[1].Value
}

// Share returns the fraction of the total held by slice i, clamped to [0,1].
// Negative slices (possible for a negative HRA exemption) count as zero.
func (b Breakdown) Share(i int) float64 {
	a := b.Slices[i].Value
	o := b.Slices[1-i].Value
	if a < 0 {
		a = 0
	}
	if o < 0 {
		o = 0
	}
	if a+o == 0 {
		return 0
	}
	return float64(a) / float64(a+o)
}

// Request is one immutable snapshot of calculator inputs.
// Input holds the typed record for Kind (for example EMIInput for KindEMI).
// Invalid names every field that could not be parsed at the input boundary.
type Request struct {
	Name    string   `json:"name"`
	Kind    Kind     `json:"calculator"`
	Input   any      `json:"input"`
	Invalid []string `json:"invalid,omitempty"`
}

// Outcome is the engine's answer for one Request.
// A nil Result means the result is unavailable; Err explains why.
type Outcome struct {
	Name      string     `json:"name"`
	Kind      Kind       `json:"calculator"`
	Input     any        `json:"input"`
	Result    Result     `json:"result,omitempty"`
	Breakdown *Breakdown `json:"breakdown,omitempty"`
	Err       error      `json:"-"`
}

// Available reports whether the outcome carries a result
func (o Outcome) Available() bool {
	return o.Result != nil
}

// Message returns the user-facing validation message, if any
func (o Outcome) Message() string {
	return UserMessage(o.Err)
}

// Report groups the outcomes of a batch run
type Report struct {
	Title       string    `json:"title"`
	GeneratedAt time.Time `json:"generated_at"`
	Outcomes    []Outcome `json:"outcomes"`
}

// AvailableCount returns how many outcomes produced a result
func (r *Report) AvailableCount() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Available() {
			n++
		}
	}
	return n
}
