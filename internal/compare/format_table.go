package compare

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/fincalc/internal/domain"
	"github.com/rgehrsitz/fincalc/internal/format"
)

// TableFormatter formats comparison results as a console table
type TableFormatter struct{}

const (
	nameWidth = 28
	numWidth  = 16
)

// Format generates a table with one column per metric and one row per run,
// followed by the changes from the base run
func (tf *TableFormatter) Format(compSet *ComparisonSet) string {
	var sb strings.Builder

	keys := compSet.MetricKeys()
	width := nameWidth + (numWidth+1)*len(keys)

	sb.WriteString("CALCULATOR COMPARISON\n")
	sb.WriteString(strings.Repeat("=", width) + "\n")
	sb.WriteString(fmt.Sprintf("Base: %s\n\n", compSet.BaseName))

	sb.WriteString(fmt.Sprintf("%-*s", nameWidth, "Run"))
	for _, k := range keys {
		sb.WriteString(fmt.Sprintf(" %*s", numWidth, tf.truncate(k.Label, numWidth)))
	}
	sb.WriteString("\n" + strings.Repeat("-", width) + "\n")

	sb.WriteString(tf.formatRow(compSet.BaseResult, "base", keys))
	for _, alt := range compSet.AlternativeResults {
		sb.WriteString(tf.formatRow(&alt, alt.Varied, keys))
	}
	sb.WriteString(strings.Repeat("=", width) + "\n")

	if len(compSet.AlternativeResults) > 0 && compSet.BaseResult.Available {
		sb.WriteString("\nCOMPARISON TO BASE\n")
		sb.WriteString(strings.Repeat("-", width) + "\n")
		for _, alt := range compSet.AlternativeResults {
			sb.WriteString(fmt.Sprintf("\n%s:\n", alt.Varied))
			if !alt.Available {
				sb.WriteString(fmt.Sprintf("  unavailable: %s\n", alt.Message))
				continue
			}
			for _, m := range alt.Metrics {
				sb.WriteString(fmt.Sprintf("  %-22s %s (%s%%)\n",
					m.Label+":", tf.formatDelta(m.DiffFromBase, m.Unit), tf.signed(m.PctFromBase, 1)))
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func (tf *TableFormatter) formatRow(result *ComparisonResult, name string, keys []MetricDelta) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%-*s", nameWidth, tf.truncate(name, nameWidth)))
	if !result.Available {
		sb.WriteString(" " + result.Message + "\n")
		return sb.String()
	}
	for _, k := range keys {
		m, _ := result.metric(k.Key)
		sb.WriteString(fmt.Sprintf(" %*s", numWidth, tf.formatValue(m.Value, m.Unit)))
	}
	sb.WriteString("\n")
	return sb.String()
}

func (tf *TableFormatter) formatValue(d decimal.Decimal, unit domain.Unit) string {
	if unit == domain.UnitPercent {
		return format.Percent(d, 2)
	}
	return format.Rupees(d)
}

func (tf *TableFormatter) formatDelta(d decimal.Decimal, unit domain.Unit) string {
	if unit == domain.UnitPercent {
		return tf.signed(d, 2) + " pts"
	}
	sign := "+"
	if d.IsNegative() {
		sign = "-"
	}
	return sign + format.Rupees(d.Abs())
}

// signed renders d with an explicit sign
func (tf *TableFormatter) signed(d decimal.Decimal, places int32) string {
	if d.IsNegative() {
		return d.StringFixed(places)
	}
	return "+" + d.StringFixed(places)
}

// truncate truncates a string to maxLen
func (tf *TableFormatter) truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
