package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the current state of the application
func (m Model) View() string {
	if m.err != nil {
		return m.renderApp(m.renderError())
	}

	var content string
	switch m.currentScene {
	case SceneHome:
		content = m.homeModel.View()
	case SceneCalculator:
		content = m.calculatorModel.View()
	case SceneHelp:
		content = m.renderHelp()
	default:
		content = "Unknown scene"
	}

	return m.renderApp(content)
}

// renderApp wraps content with title bar, status bar, and main container
func (m Model) renderApp(content string) string {
	contentHeight := max(0, m.height-4)

	contentContainer := lipgloss.NewStyle().
		Height(contentHeight).
		Render(content)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderTitleBar(),
		contentContainer,
		m.renderStatusBar(),
	)
}

// renderTitleBar renders the application title and breadcrumb
func (m Model) renderTitleBar() string {
	crumb := m.currentScene.String()
	if m.currentScene == SceneCalculator {
		crumb = fmt.Sprintf("%s / %s", crumb, m.calculatorModel.Entry().Name)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		TitleStyle.Render("fincalc - Financial Calculators"),
		SubtitleStyle.Render(crumb),
	)
}

// renderStatusBar renders the bottom status bar with keyboard shortcuts
func (m Model) renderStatusBar() string {
	shortcuts := []string{
		formatShortcut("esc", "back"),
		formatShortcut("?", "help"),
		formatShortcut("q", "quit"),
	}
	return StatusBarStyle.Width(m.width).Render(strings.Join(shortcuts, " • "))
}

// formatShortcut formats a keyboard shortcut with key and description
func formatShortcut(key, desc string) string {
	return StatusKeyStyle.Render(key) + " " + desc
}

// renderError renders an error message
func (m Model) renderError() string {
	return ErrorStyle.Render(
		fmt.Sprintf("Error: %s\n\nPress any key to continue...", m.err),
	)
}

// renderHelp renders the help screen
func (m Model) renderHelp() string {
	helpText := `
fincalc - Financial Calculators

CALCULATOR LIST:
  ↑/k ↓/j  Move selection
  Enter    Open calculator

CALCULATOR:
  ↑/↓      Select a parameter
  ←/→      Adjust slider or switch option
  Enter    Type a value (Enter or Esc when done)
  r        Reset to defaults
  1-8      Open a similar calculator

GLOBAL:
  ?        Show this help
  ESC      Go back
  q/Ctrl+C Quit

Results update as you type. Values outside a slider's range are
calculated as entered; the slider only shows the nearest end.
`
	return BorderStyle.Render(helpText)
}
