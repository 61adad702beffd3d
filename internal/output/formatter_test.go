package output

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rgehrsitz/fincalc/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTestReport() *domain.Report {
	emiInput := domain.EMIInput{Principal: decimal.NewFromInt(100000), AnnualRatePct: decimal.NewFromInt(10), TenureYears: 5}
	return &domain.Report{
		Title:       "Test Plan",
		GeneratedAt: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
		Outcomes: []domain.Outcome{
			{
				Name:  "car loan",
				Kind:  domain.KindEMI,
				Input: emiInput,
				Result: domain.EMIResult{
					EMI:           decimal.RequireFromString("2124.7045"),
					TotalPayment:  decimal.RequireFromString("127482.27"),
					TotalInterest: decimal.RequireFromString("27482.27"),
				},
				Breakdown: &domain.Breakdown{
					Title: "Loan Breakdown",
					Slices: [2]domain.Slice{
						{Label: "Total Loan Amount", Value: 100000, Color: domain.PrimarySliceColor},
						{Label: "Total Interest", Value: 27482, Color: domain.SecondarySliceColor},
					},
				},
			},
			{
				Name:  "returns",
				Kind:  domain.KindROI,
				Input: domain.ROIInput{Initial: decimal.NewFromInt(10000), Final: decimal.NewFromInt(15000), TenureYears: 3},
				Result: domain.ROIResult{
					Returns:            decimal.NewFromInt(5000),
					ROIPct:             decimal.NewFromInt(50),
					SimpleAnnualROIPct: decimal.RequireFromString("16.666666"),
					CAGRPct:            decimal.RequireFromString("14.4714"),
				},
			},
			{
				Name:  "short ppf",
				Kind:  domain.KindPPF,
				Input: domain.PPFInput{YearlyInvestment: decimal.NewFromInt(10000), TenureYears: 10},
				Err:   domain.NewValidationError(domain.KindPPF, domain.ErrPPFTenure, "tenure_years"),
			},
		},
	}
}

func TestFormatterFunc(t *testing.T) {
	called := false
	formatter := FormatterFunc{
		ID: "test-formatter",
		F: func(report *domain.Report) ([]byte, error) {
			called = true
			return []byte("test output"), nil
		},
	}

	out, err := formatter.Format(buildTestReport())
	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, "test-formatter", formatter.Name())
	assert.Equal(t, []byte("test output"), out)
}

func TestGetFormatterByName(t *testing.T) {
	for _, name := range []string{"console", "csv", "json", "html", "pdf"} {
		f := GetFormatterByName(name)
		require.NotNil(t, f, name)
		assert.Equal(t, name, f.Name())
	}
	assert.NotNil(t, GetFormatterByName(" JSON "))
	assert.Nil(t, GetFormatterByName("xml"))
	assert.Equal(t, []string{"console", "csv", "html", "json", "pdf"}, FormatterNames())
}

func TestWriteFormatted(t *testing.T) {
	tmpDir := t.TempDir()
	originalDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(tmpDir))
	defer os.Chdir(originalDir)

	formatter := FormatterFunc{
		ID: "test-formatter",
		F: func(report *domain.Report) ([]byte, error) {
			return []byte("test output content"), nil
		},
	}

	filename, err := WriteFormatted(formatter, buildTestReport(), "txt")
	require.NoError(t, err)
	assert.Contains(t, filename, "fincalc_report_")
	assert.Contains(t, filename, ".txt")

	content, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Equal(t, "test output content", string(content))
}

func TestWriteFormatted_FormatterError(t *testing.T) {
	formatter := FormatterFunc{
		ID: "error-formatter",
		F: func(report *domain.Report) ([]byte, error) {
			return nil, fmt.Errorf("formatter error")
		},
	}

	filename, err := WriteFormatted(formatter, buildTestReport(), "txt")
	assert.Error(t, err)
	assert.Empty(t, filename)
	assert.Contains(t, err.Error(), "formatter error")
}

func TestConsoleFormatter(t *testing.T) {
	out, err := ConsoleFormatter{}.Format(buildTestReport())
	require.NoError(t, err)

	content := string(out)
	assert.Contains(t, content, "TEST PLAN")
	assert.Contains(t, content, "Results available: 2 of 3")
	assert.Contains(t, content, "₹2,125")
	assert.Contains(t, content, "₹1,27,482")
	assert.Contains(t, content, "14.47%")
	assert.Contains(t, content, "Result unavailable: Not allowed 15 years below.")
	assert.Contains(t, content, "Check: tenure_years")
	assert.Contains(t, content, "Total Loan Amount 78% / Total Interest 22%")
	assert.Contains(t, content, "KEY ASSUMPTIONS:")
	assert.Contains(t, content, "PPF: 7.1% p.a.")
}

func TestCSVFormatter(t *testing.T) {
	out, err := CSVFormatter{}.Format(buildTestReport())
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)

	// header + 3 EMI metrics + 4 ROI metrics + 1 unavailable row
	require.Len(t, records, 9)
	assert.Equal(t, "Name", records[0][0])
	assert.Equal(t, []string{"car loan", "emi", "true", "emi", "Monthly EMI", "2125", "money", ""}, records[1])
	assert.Equal(t, []string{"returns", "roi", "true", "cagr_pct", "CAGR", "14.47", "percent", ""}, records[7])
	assert.Equal(t, "false", records[8][2])
	assert.Equal(t, "Not allowed 15 years below.", records[8][7])
}

func TestJSONFormatter(t *testing.T) {
	out, err := JSONFormatter{}.Format(buildTestReport())
	require.NoError(t, err)

	var decoded struct {
		Title     string `json:"title"`
		Available int    `json:"available"`
		Outcomes  []struct {
			Name      string   `json:"name"`
			Available bool     `json:"available"`
			Message   string   `json:"message"`
			Invalid   []string `json:"invalid_fields"`
			Metrics   []struct {
				Key   string `json:"key"`
				Value string `json:"value"`
			} `json:"metrics"`
			Breakdown *domain.Breakdown `json:"breakdown"`
		} `json:"outcomes"`
	}
	require.NoError(t, json.Unmarshal(out, &decoded))

	assert.Equal(t, "Test Plan", decoded.Title)
	assert.Equal(t, 2, decoded.Available)
	require.Len(t, decoded.Outcomes, 3)
	assert.Equal(t, "2125", decoded.Outcomes[0].Metrics[0].Value)
	require.NotNil(t, decoded.Outcomes[0].Breakdown)
	assert.Equal(t, "#19B797", decoded.Outcomes[0].Breakdown.Slices[0].Color)
	assert.False(t, decoded.Outcomes[2].Available)
	assert.Equal(t, []string{"tenure_years"}, decoded.Outcomes[2].Invalid)

	pretty, err := JSONFormatter{Pretty: true}.Format(buildTestReport())
	require.NoError(t, err)
	assert.Contains(t, string(pretty), "\n  \"title\": \"Test Plan\"")
}

func TestHTMLFormatter(t *testing.T) {
	out, err := HTMLFormatter{}.Format(buildTestReport())
	require.NoError(t, err)

	content := string(out)
	assert.Contains(t, content, "<title>Test Plan</title>")
	assert.Contains(t, content, "₹2,125")
	assert.Contains(t, content, "background: #19B797")
	assert.Contains(t, content, "width: 78.4%")
	assert.Contains(t, content, "Result unavailable: Not allowed 15 years below.")
	assert.Contains(t, content, "01 Mar 2025 10:00")
}

func TestPDFFormatter(t *testing.T) {
	out, err := PDFFormatter{}.Format(buildTestReport())
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")), "Should produce a PDF document")
	assert.Greater(t, len(out), 500)
}

func TestHexRGB(t *testing.T) {
	r, g, b := hexRGB("#19B797")
	assert.Equal(t, []int{0x19, 0xB7, 0x97}, []int{r, g, b})

	r, g, b = hexRGB("nope")
	assert.Equal(t, []int{0, 0, 0}, []int{r, g, b})
}

func TestAssumptionsFor(t *testing.T) {
	got := AssumptionsFor(buildTestReport())
	require.Len(t, got, 3)
	assert.Contains(t, got[0], "PPF", "catalog order puts PPF first")
	assert.Contains(t, got[1], "EMI")
	assert.Contains(t, got[2], "ROI")
}
