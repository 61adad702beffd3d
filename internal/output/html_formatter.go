package output

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"

	"github.com/rgehrsitz/fincalc/internal/domain"
	"github.com/rgehrsitz/fincalc/internal/format"
)

// HTMLFormatter produces a standalone HTML report with a proportion bar per
// result, drawn in the chart colors
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"share": func(b *domain.Breakdown, i int) template.CSS {
		return template.CSS(fmt.Sprintf("%.1f%%", b.Share(i)*100))
	},
	"sliceColor": func(s domain.Slice) template.CSS {
		return template.CSS(s.Color)
	},
	"amount": format.Grouped,
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(report *domain.Report) ([]byte, error) {
	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, newReportView(report)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
