// Package tuistyles holds the shared lipgloss palette and styles for the
// terminal front end. It lives apart from package tui so components and
// scenes can use it without an import cycle.
package tuistyles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/fincalc/internal/domain"
	"github.com/rgehrsitz/fincalc/internal/format"
)

// Color palette
var (
	ColorPrimary   = lipgloss.Color(domain.PrimarySliceColor)
	ColorSecondary = lipgloss.Color(domain.SecondarySliceColor)
	ColorAccent    = lipgloss.Color("#F5A524")
	ColorSuccess   = lipgloss.Color("#19B797")
	ColorDanger    = lipgloss.Color("#E5484D")
	ColorInfo      = lipgloss.Color("#3E9BD6")

	ColorBackground = lipgloss.Color("#101418")
	ColorForeground = lipgloss.Color("#E6EDF3")
	ColorMuted      = lipgloss.Color("#7D8590")
	ColorBorder     = lipgloss.Color("#30363D")
)

// Layout
var (
	AppStyle = lipgloss.NewStyle().Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(0, 1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(0, 1)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(ColorForeground).
			Background(ColorBorder).
			Padding(0, 1)

	StatusKeyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Background(ColorBorder)

	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2)

	ActiveBorderStyle = BorderStyle.BorderForeground(ColorPrimary)
)

// Lists
var (
	SelectedItemStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorPrimary)

	UnselectedItemStyle = lipgloss.NewStyle().
				Foreground(ColorForeground)
)

// Metrics
var (
	MetricLabelStyle = lipgloss.NewStyle().
				Foreground(ColorMuted)

	MetricValueStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorForeground)

	MetricNegativeStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorDanger)
)

// Parameters and sliders
var (
	ParameterLabelStyle = lipgloss.NewStyle().
				Foreground(ColorForeground)

	ParameterValueStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorSecondary)

	SliderTrackStyle = lipgloss.NewStyle().Foreground(ColorBorder)
	SliderFillStyle  = lipgloss.NewStyle().Foreground(ColorPrimary)
	SliderThumbStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)
)

// Help and feedback
var (
	HelpKeyStyle  = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
	HelpDescStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	ErrorStyle    = lipgloss.NewStyle().Bold(true).Foreground(ColorDanger)
	InfoStyle     = lipgloss.NewStyle().Foreground(ColorInfo)
)

// MetricStyle picks the value style for a metric: negative values are
// highlighted so an HRA exemption below zero stands out.
func MetricStyle(value decimal.Decimal) lipgloss.Style {
	if value.IsNegative() {
		return MetricNegativeStyle
	}
	return MetricValueStyle
}

// SliceStyle returns the chart style for a breakdown slice color
func SliceStyle(hex string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
}

// FormatCurrency renders a money figure the way every front end does
func FormatCurrency(amount decimal.Decimal) string {
	return format.Rupees(amount)
}
