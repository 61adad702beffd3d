package compare

import (
	"encoding/csv"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/fincalc/internal/domain"
	"github.com/rgehrsitz/fincalc/internal/format"
)

// CSVFormatter formats comparison results as CSV, one row per run and metric
type CSVFormatter struct{}

// Format generates CSV output for comparison results
func (cf *CSVFormatter) Format(compSet *ComparisonSet) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{"Run", "Type", "Varied", "Metric", "Value", "Diff From Base", "Pct From Base", "Message"}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	for _, row := range cf.formatRows(compSet.BaseResult, "base") {
		if err := writer.Write(row); err != nil {
			return "", err
		}
	}
	for _, alt := range compSet.AlternativeResults {
		for _, row := range cf.formatRows(&alt, "alternative") {
			if err := writer.Write(row); err != nil {
				return "", err
			}
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func (cf *CSVFormatter) formatRows(result *ComparisonResult, runType string) [][]string {
	if !result.Available {
		return [][]string{{result.Name, runType, result.Varied, "", "", "", "", result.Message}}
	}

	rows := make([][]string, 0, len(result.Metrics))
	for _, m := range result.Metrics {
		rows = append(rows, []string{
			result.Name,
			runType,
			result.Varied,
			m.Key,
			cf.formatValue(m.Value, m.Unit),
			cf.formatValue(m.DiffFromBase, m.Unit),
			m.PctFromBase.StringFixed(2),
			"",
		})
	}
	return rows
}

// formatValue uses whole rupees or two-place percentages
func (cf *CSVFormatter) formatValue(d decimal.Decimal, unit domain.Unit) string {
	if unit == domain.UnitPercent {
		return d.StringFixed(2)
	}
	return strconv.FormatInt(format.RoundHalfUp(d), 10)
}
