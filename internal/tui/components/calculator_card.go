package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/fincalc/internal/catalog"
	"github.com/rgehrsitz/fincalc/internal/tui/tuistyles"
)

// CalculatorCard displays one catalog entry
type CalculatorCard struct {
	Entry      catalog.Entry
	IsSelected bool
	Width      int
}

// NewCalculatorCard creates a card for a catalog entry
func NewCalculatorCard(e catalog.Entry) *CalculatorCard {
	return &CalculatorCard{Entry: e, Width: 50}
}

// SetSelected marks the card as selected
func (c *CalculatorCard) SetSelected(selected bool) *CalculatorCard {
	c.IsSelected = selected
	return c
}

// WithWidth sets the card width
func (c *CalculatorCard) WithWidth(width int) *CalculatorCard {
	c.Width = width
	return c
}

// Render returns the bordered card
func (c *CalculatorCard) Render() string {
	var content strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(tuistyles.ColorPrimary)
	content.WriteString(titleStyle.Render(c.Entry.Name))
	content.WriteString("\n")
	content.WriteString(lipgloss.NewStyle().Foreground(tuistyles.ColorForeground).Render(c.Entry.Description))
	content.WriteString("\n")
	content.WriteString(tuistyles.HelpDescStyle.Render(c.Entry.Route))

	border := tuistyles.ColorBorder
	if c.IsSelected {
		border = tuistyles.ColorPrimary
	}
	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 2).
		Width(c.Width)

	return cardStyle.Render(content.String())
}

// RenderCompact returns a single-line version for selection menus
func (c *CalculatorCard) RenderCompact() string {
	prefix := "  "
	style := tuistyles.UnselectedItemStyle
	if c.IsSelected {
		prefix = "▸ "
		style = tuistyles.SelectedItemStyle
	}
	return style.Render(fmt.Sprintf("%s%-22s", prefix, c.Entry.Name)) + " " +
		tuistyles.HelpDescStyle.Render(c.Entry.Description)
}
