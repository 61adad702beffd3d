package scenes

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/fincalc/internal/catalog"
	"github.com/rgehrsitz/fincalc/internal/tui/components"
	"github.com/rgehrsitz/fincalc/internal/tui/tuimsg"
	"github.com/rgehrsitz/fincalc/internal/tui/tuistyles"
)

// HomeModel lists every calculator in the catalog
type HomeModel struct {
	cards         []*components.CalculatorCard
	selectedIndex int
	width         int
	height        int
}

// NewHomeModel creates a new home scene model
func NewHomeModel() *HomeModel {
	m := &HomeModel{}
	for _, e := range catalog.All() {
		m.cards = append(m.cards, components.NewCalculatorCard(e))
	}
	return m
}

// SetSize updates the model dimensions
func (m *HomeModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Selected returns the highlighted catalog entry
func (m *HomeModel) Selected() catalog.Entry {
	return m.cards[m.selectedIndex].Entry
}

// Update handles messages for the home scene
func (m *HomeModel) Update(msg tea.Msg) (*HomeModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("up", "k"))):
		if m.selectedIndex > 0 {
			m.selectedIndex--
		}
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("down", "j"))):
		if m.selectedIndex < len(m.cards)-1 {
			m.selectedIndex++
		}
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("g"))):
		m.selectedIndex = 0
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("G"))):
		m.selectedIndex = len(m.cards) - 1
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("enter"))):
		kind := m.Selected().Kind
		return m, func() tea.Msg {
			return tuimsg.CalculatorSelectedMsg{Kind: kind}
		}
	}

	return m, nil
}

// View renders the calculator list with the selected card beside it
func (m *HomeModel) View() string {
	var list strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(tuistyles.ColorPrimary).
		MarginBottom(1)
	list.WriteString(titleStyle.Render("Calculators"))
	list.WriteString("\n")

	for i, card := range m.cards {
		card.SetSelected(i == m.selectedIndex)
		list.WriteString(card.RenderCompact())
		list.WriteString("\n")
	}

	content := lipgloss.JoinHorizontal(
		lipgloss.Top,
		list.String(),
		"  ",
		m.cards[m.selectedIndex].Render(),
	)

	return content + "\n\n" + renderHomeHelp()
}

func renderHomeHelp() string {
	return tuistyles.HelpDescStyle.Render("↑/k up • ↓/j down • Enter open • g top • G bottom • ? help • q quit")
}
