package output

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"github.com/rgehrsitz/fincalc/internal/domain"
	"github.com/rgehrsitz/fincalc/internal/format"
)

// PDFFormatter renders the report as an A4 PDF document. The core PDF fonts
// have no rupee glyph, so amounts are prefixed with "Rs.".
type PDFFormatter struct{}

func (p PDFFormatter) Name() string { return "pdf" }

const (
	pdfLineHeight = 7
	pdfLabelWidth = 90
	pdfValueWidth = 60
	pdfBarWidth   = 150
)

func (p PDFFormatter) Format(report *domain.Report) ([]byte, error) {
	view := newReportView(report)

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	if !report.GeneratedAt.IsZero() {
		pdf.SetCreationDate(report.GeneratedAt)
	}
	pdf.AddPage()

	title := view.Title
	if title == "" {
		title = "Financial Calculations"
	}
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, tr(title), "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, pdfLineHeight, fmt.Sprintf("Results available: %d of %d", view.Available, view.Total), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	for _, o := range view.Outcomes {
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(0, 8, tr(fmt.Sprintf("%s (%s)", o.Name, o.Calculator)), "B", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 10)

		if !o.Available {
			pdf.SetTextColor(180, 77, 18)
			pdf.CellFormat(0, pdfLineHeight, tr("Result unavailable: "+o.Message), "", 1, "L", false, 0, "")
			pdf.SetTextColor(0, 0, 0)
			pdf.Ln(3)
			continue
		}

		for _, m := range o.Metrics {
			pdf.CellFormat(pdfLabelWidth, pdfLineHeight, m.Label, "", 0, "L", false, 0, "")
			pdf.CellFormat(pdfValueWidth, pdfLineHeight, pdfValue(m), "", 1, "R", false, 0, "")
		}
		if o.Breakdown != nil {
			drawBreakdown(pdf, *o.Breakdown)
		}
		pdf.Ln(3)
	}

	if len(view.Assumptions) > 0 {
		pdf.SetFont("Arial", "B", 11)
		pdf.CellFormat(0, 8, "Key assumptions", "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 9)
		for _, a := range view.Assumptions {
			pdf.MultiCell(0, 5, tr("- "+a), "", "L", false)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func pdfValue(m metricView) string {
	if m.Unit == string(domain.UnitPercent) {
		return m.Display
	}
	return "Rs. " + strings.TrimPrefix(m.Display, format.RupeeSymbol)
}

func drawBreakdown(pdf *gofpdf.Fpdf, b domain.Breakdown) {
	x, y := pdf.GetXY()
	y += 2
	offset := 0.0
	for i, s := range b.Slices {
		w := b.Share(i) * pdfBarWidth
		if w <= 0 {
			continue
		}
		r, g, bl := hexRGB(s.Color)
		pdf.SetFillColor(r, g, bl)
		pdf.Rect(x+offset, y, w, 4, "F")
		offset += w
	}
	pdf.SetXY(x, y+5)

	pdf.SetFont("Arial", "", 8)
	legend := fmt.Sprintf("%s Rs. %s  |  %s Rs. %s",
		b.Slices[0].Label, format.Grouped(b.Slices[0].Value),
		b.Slices[1].Label, format.Grouped(b.Slices[1].Value))
	pdf.CellFormat(0, 5, legend, "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
}

// hexRGB parses a "#RRGGBB" color; anything else is black
func hexRGB(hex string) (int, int, int) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return 0, 0, 0
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, 0, 0
	}
	return int((v >> 16) & 0xFF), int((v >> 8) & 0xFF), int(v & 0xFF)
}
