package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/rgehrsitz/fincalc/internal/domain"
	"github.com/rgehrsitz/fincalc/internal/format"
	"github.com/rgehrsitz/fincalc/internal/tui/tuistyles"
)

// ProportionBar draws a two-slice breakdown as a horizontal bar with a legend
type ProportionBar struct {
	Breakdown domain.Breakdown
	Width     int
}

// NewProportionBar creates a bar for a breakdown
func NewProportionBar(b domain.Breakdown) *ProportionBar {
	return &ProportionBar{Breakdown: b, Width: 40}
}

// WithWidth sets the bar width
func (p *ProportionBar) WithWidth(width int) *ProportionBar {
	p.Width = width
	return p
}

// Segments returns how many cells each slice occupies
func (p *ProportionBar) Segments() (int, int) {
	if p.Breakdown.Share(0) == 0 && p.Breakdown.Share(1) == 0 {
		return 0, 0
	}
	first := int(math.Round(float64(p.Width) * p.Breakdown.Share(0)))
	return first, p.Width - first
}

// Render returns the bar followed by one legend line per slice
func (p *ProportionBar) Render() string {
	var content strings.Builder

	content.WriteString(tuistyles.ParameterLabelStyle.Bold(true).Render(p.Breakdown.Title))
	content.WriteString("\n")

	first, second := p.Segments()
	content.WriteString("[")
	if first == 0 && second == 0 {
		content.WriteString(tuistyles.SliderTrackStyle.Render(strings.Repeat("░", p.Width)))
	} else {
		content.WriteString(tuistyles.SliceStyle(p.Breakdown.Slices[0].Color).Render(strings.Repeat("█", first)))
		content.WriteString(tuistyles.SliceStyle(p.Breakdown.Slices[1].Color).Render(strings.Repeat("█", second)))
	}
	content.WriteString("]")

	for i, s := range p.Breakdown.Slices {
		content.WriteString("\n")
		content.WriteString(tuistyles.SliceStyle(s.Color).Render("●"))
		content.WriteString(fmt.Sprintf(" %-20s %14s  %5.1f%%",
			s.Label, format.RupeeSymbol+format.Grouped(s.Value), p.Breakdown.Share(i)*100))
	}

	return content.String()
}
