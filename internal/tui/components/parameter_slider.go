package components

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/fincalc/internal/catalog"
	"github.com/rgehrsitz/fincalc/internal/format"
	"github.com/rgehrsitz/fincalc/internal/params"
	"github.com/rgehrsitz/fincalc/internal/rangesync"
	"github.com/rgehrsitz/fincalc/internal/tui/tuistyles"
)

// ParameterSlider pairs a typed value with a visual slider.
// Raw is the text the user entered; it may lie outside Bounds or fail to
// parse. The slider only clamps its fill, never the value itself.
type ParameterSlider struct {
	Key       string
	Label     string
	Type      catalog.ParamType
	Bounds    rangesync.Bounds
	Raw       string
	Width     int
	IsFocused bool
}

// NewParameterSlider creates a slider for a numeric catalog parameter
func NewParameterSlider(p catalog.Param) *ParameterSlider {
	return &ParameterSlider{
		Key:    p.Key,
		Label:  p.Label,
		Type:   p.Type,
		Bounds: p.Bounds,
		Raw:    p.Default,
		Width:  30,
	}
}

// WithWidth sets the slider width
func (p *ParameterSlider) WithWidth(width int) *ParameterSlider {
	p.Width = width
	return p
}

// SetFocused sets the focus state
func (p *ParameterSlider) SetFocused(focused bool) *ParameterSlider {
	p.IsFocused = focused
	return p
}

// Value parses Raw. The second result is false when the text is unreadable.
func (p *ParameterSlider) Value() (float64, bool) {
	d, ok := params.ParseNumber(p.Raw)
	if !ok {
		return 0, false
	}
	return d.InexactFloat64(), true
}

// SetRaw stores text exactly as typed
func (p *ParameterSlider) SetRaw(raw string) {
	p.Raw = raw
}

// SetValue stores a slider-produced value
func (p *ParameterSlider) SetValue(v float64) {
	p.Raw = p.formatRaw(v)
}

// Increment moves one step up, snapping to the slider grid
func (p *ParameterSlider) Increment() {
	p.move(1)
}

// Decrement moves one step down, snapping to the slider grid
func (p *ParameterSlider) Decrement() {
	p.move(-1)
}

func (p *ParameterSlider) move(dir float64) {
	v, ok := p.Value()
	if !ok {
		v = p.Bounds.Min
	}
	p.SetValue(p.Bounds.Snap(v + dir*p.Bounds.Step))
}

// Percentage returns the fill fraction in [0,1]
func (p *ParameterSlider) Percentage() float64 {
	v, ok := p.Value()
	if !ok {
		return 0
	}
	pos, err := p.Bounds.Position(v)
	if err != nil {
		return 0
	}
	return pos / 100
}

func (p *ParameterSlider) formatRaw(v float64) string {
	switch p.Type {
	case catalog.ParamPercent:
		return strconv.FormatFloat(math.Round(v*10)/10, 'f', -1, 64)
	default:
		return strconv.FormatFloat(math.Round(v), 'f', 0, 64)
	}
}

func (p *ParameterSlider) display(v float64) string {
	switch p.Type {
	case catalog.ParamMoney:
		return format.RupeeSymbol + format.Grouped(int64(math.Round(v)))
	case catalog.ParamPercent:
		return strconv.FormatFloat(v, 'f', -1, 64) + "%"
	case catalog.ParamYears:
		return fmt.Sprintf("%s Yr", strconv.FormatFloat(v, 'f', -1, 64))
	default:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
}

// DisplayValue renders the current value, or the raw text when unreadable
func (p *ParameterSlider) DisplayValue() string {
	v, ok := p.Value()
	if !ok {
		return p.Raw
	}
	return p.display(v)
}

// Render returns the styled parameter slider
func (p *ParameterSlider) Render() string {
	var content strings.Builder

	labelStyle := tuistyles.ParameterLabelStyle
	if p.IsFocused {
		labelStyle = labelStyle.Foreground(tuistyles.ColorPrimary)
	}
	content.WriteString(labelStyle.Render(p.Label))
	content.WriteString("  ")

	valueStyle := tuistyles.ParameterValueStyle
	if p.IsFocused {
		valueStyle = valueStyle.Foreground(tuistyles.ColorAccent)
	}
	content.WriteString(valueStyle.Render(p.DisplayValue()))
	if _, ok := p.Value(); !ok {
		content.WriteString(" ")
		content.WriteString(tuistyles.ErrorStyle.Render("(not a number)"))
	}
	content.WriteString("\n")

	content.WriteString(p.renderSliderBar())

	rangeStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted)
	content.WriteString(" ")
	content.WriteString(rangeStyle.Render(fmt.Sprintf("%s ─ %s", p.display(p.Bounds.Min), p.display(p.Bounds.Max))))

	return content.String()
}

// renderSliderBar creates the visual slider bar
func (p *ParameterSlider) renderSliderBar() string {
	filled := int(math.Round(float64(p.Width) * p.Percentage()))
	if filled < 1 {
		filled = 1
	}
	if filled > p.Width {
		filled = p.Width
	}
	empty := p.Width - filled

	thumbStyle := tuistyles.SliderFillStyle
	if p.IsFocused {
		thumbStyle = tuistyles.SliderThumbStyle
	}

	var bar strings.Builder
	bar.WriteString("[")
	if filled > 1 {
		bar.WriteString(tuistyles.SliderFillStyle.Render(strings.Repeat("━", filled-1)))
	}
	bar.WriteString(thumbStyle.Render("●"))
	if empty > 0 {
		bar.WriteString(tuistyles.SliderTrackStyle.Render(strings.Repeat("─", empty)))
	}
	bar.WriteString("]")

	return bar.String()
}
