package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rgehrsitz/fincalc/internal/domain"
)

// ConsoleFormatter renders a plain-text report for the terminal
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *domain.Report) ([]byte, error) {
	var buf bytes.Buffer
	view := newReportView(report)

	title := view.Title
	if title == "" {
		title = "FINANCIAL CALCULATIONS"
	}
	fmt.Fprintln(&buf, strings.Repeat("=", 60))
	fmt.Fprintln(&buf, strings.ToUpper(title))
	fmt.Fprintln(&buf, strings.Repeat("=", 60))
	fmt.Fprintf(&buf, "Results available: %d of %d\n", view.Available, view.Total)
	fmt.Fprintln(&buf)

	for i, o := range view.Outcomes {
		fmt.Fprintf(&buf, "%d. %s (%s)\n", i+1, o.Name, o.Calculator)
		fmt.Fprintln(&buf, strings.Repeat("-", 40))
		if !o.Available {
			fmt.Fprintf(&buf, "  Result unavailable: %s\n", o.Message)
			if len(o.Invalid) > 0 {
				fmt.Fprintf(&buf, "  Check: %s\n", strings.Join(o.Invalid, ", "))
			}
			fmt.Fprintln(&buf)
			continue
		}
		for _, m := range o.Metrics {
			fmt.Fprintf(&buf, "  %-22s %16s\n", m.Label+":", m.Display)
		}
		if o.Breakdown != nil {
			writeBreakdownBar(&buf, *o.Breakdown)
		}
		fmt.Fprintln(&buf)
	}

	if len(view.Assumptions) > 0 {
		fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
		for _, a := range view.Assumptions {
			fmt.Fprintf(&buf, "• %s\n", a)
		}
	}
	return buf.Bytes(), nil
}

const barWidth = 30

func writeBreakdownBar(buf *bytes.Buffer, b domain.Breakdown) {
	first := int(b.Share(0)*barWidth + 0.5)
	fmt.Fprintf(buf, "  [%s%s] %s %.0f%% / %s %.0f%%\n",
		strings.Repeat("█", first), strings.Repeat("░", barWidth-first),
		b.Slices[0].Label, b.Share(0)*100,
		b.Slices[1].Label, b.Share(1)*100)
}
