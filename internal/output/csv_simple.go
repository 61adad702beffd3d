package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rgehrsitz/fincalc/internal/domain"
)

// CSVFormatter writes one row per result figure. Unavailable results get a
// single row carrying the message.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(report *domain.Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Name", "Calculator", "Available", "Metric", "Label", "Value", "Unit", "Message"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	view := newReportView(report)
	for _, o := range view.Outcomes {
		if !o.Available {
			if err := w.Write([]string{o.Name, o.Calculator, "false", "", "", "", "", o.Message}); err != nil {
				return nil, err
			}
			continue
		}
		for _, m := range o.Metrics {
			if err := w.Write([]string{o.Name, o.Calculator, "true", m.Key, m.Label, m.Value, m.Unit, ""}); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
