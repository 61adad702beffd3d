package output

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/rgehrsitz/fincalc/internal/domain"
	"github.com/rgehrsitz/fincalc/internal/format"
	"github.com/shopspring/decimal"
)

// Formatter renders a report into bytes
type Formatter interface {
	Name() string
	Format(report *domain.Report) ([]byte, error)
}

// FormatterFunc adapts a plain function to the Formatter interface
type FormatterFunc struct {
	ID string
	F  func(report *domain.Report) ([]byte, error)
}

func (f FormatterFunc) Name() string { return f.ID }

func (f FormatterFunc) Format(report *domain.Report) ([]byte, error) { return f.F(report) }

var formatters = map[string]Formatter{
	"console": ConsoleFormatter{},
	"csv":     CSVFormatter{},
	"json":    JSONFormatter{Pretty: true},
	"html":    HTMLFormatter{},
	"pdf":     PDFFormatter{},
}

// GetFormatterByName returns the formatter registered under name, or nil
func GetFormatterByName(name string) Formatter {
	return formatters[strings.ToLower(strings.TrimSpace(name))]
}

// FormatterNames lists the registered formatter names, sorted
func FormatterNames() []string {
	names := make([]string, 0, len(formatters))
	for name := range formatters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// WriteFormatted renders the report and writes it to a timestamped file in
// the current directory, returning the file name
func WriteFormatted(f Formatter, report *domain.Report, ext string) (string, error) {
	data, err := f.Format(report)
	if err != nil {
		return "", err
	}
	filename := fmt.Sprintf("fincalc_report_%s.%s", time.Now().Format("20060102_150405"), ext)
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return filename, nil
}

// DisplayValue renders a metric the way every front end shows it
func DisplayValue(m domain.Metric) string {
	if m.Unit == domain.UnitPercent {
		return format.Percent(m.Value, 2)
	}
	return format.Rupees(m.Value)
}

type metricView struct {
	Key     string `json:"key"`
	Label   string `json:"label"`
	Value   string `json:"value"`
	Display string `json:"display"`
	Unit    string `json:"unit"`
}

type outcomeView struct {
	Name       string            `json:"name"`
	Calculator string            `json:"calculator"`
	Available  bool              `json:"available"`
	Message    string            `json:"message,omitempty"`
	Invalid    []string          `json:"invalid_fields,omitempty"`
	Input      any               `json:"input"`
	Metrics    []metricView      `json:"metrics,omitempty"`
	Breakdown  *domain.Breakdown `json:"breakdown,omitempty"`
}

type reportView struct {
	Title       string        `json:"title"`
	GeneratedAt time.Time     `json:"generated_at"`
	Available   int           `json:"available"`
	Total       int           `json:"total"`
	Outcomes    []outcomeView `json:"outcomes"`
	Assumptions []string      `json:"assumptions"`
}

func newReportView(report *domain.Report) reportView {
	view := reportView{
		Title:       report.Title,
		GeneratedAt: report.GeneratedAt,
		Available:   report.AvailableCount(),
		Total:       len(report.Outcomes),
		Outcomes:    make([]outcomeView, 0, len(report.Outcomes)),
		Assumptions: AssumptionsFor(report),
	}
	for _, o := range report.Outcomes {
		view.Outcomes = append(view.Outcomes, newOutcomeView(o))
	}
	return view
}

func newOutcomeView(o domain.Outcome) outcomeView {
	v := outcomeView{
		Name:       o.Name,
		Calculator: o.Kind.String(),
		Available:  o.Available(),
		Message:    o.Message(),
		Input:      o.Input,
		Breakdown:  o.Breakdown,
	}
	var verr *domain.ValidationError
	if errors.As(o.Err, &verr) {
		v.Invalid = verr.Fields
	}
	if !o.Available() {
		return v
	}
	for _, m := range o.Result.Metrics() {
		v.Metrics = append(v.Metrics, metricView{
			Key:     m.Key,
			Label:   m.Label,
			Value:   roundedValue(m),
			Display: DisplayValue(m),
			Unit:    string(m.Unit),
		})
	}
	return v
}

// roundedValue is the machine-readable form: whole rupees or two-place
// percentages, the same precision shown to users
func roundedValue(m domain.Metric) string {
	if m.Unit == domain.UnitPercent {
		return m.Value.StringFixed(2)
	}
	return decimal.NewFromInt(format.RoundHalfUp(m.Value)).String()
}
