package output

import (
	"github.com/goccy/go-json"
	"github.com/rgehrsitz/fincalc/internal/domain"
)

// JSONFormatter renders the report as JSON
type JSONFormatter struct {
	Pretty bool
}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(report *domain.Report) ([]byte, error) {
	view := newReportView(report)
	if j.Pretty {
		return json.MarshalIndent(view, "", "  ")
	}
	return json.Marshal(view)
}
