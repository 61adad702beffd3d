package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/fincalc/internal/catalog"
)

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.homeModel.SetSize(msg.Width, msg.Height)
		m.calculatorModel.SetSize(msg.Width, msg.Height)
		return m, nil

	case NavigateMsg:
		m.previousScene = m.currentScene
		m.currentScene = msg.Scene
		return m, nil

	case QuitMsg:
		return m, tea.Quit

	case ErrorMsg:
		m.err = msg.Err
		return m, nil

	case CalculatorSelectedMsg:
		entry, err := catalog.Lookup(msg.Kind)
		if err != nil {
			m.err = err
			return m, nil
		}
		cmd := m.calculatorModel.SetCalculator(entry)
		if m.currentScene != SceneCalculator {
			m.previousScene = m.currentScene
			m.currentScene = SceneCalculator
		}
		return m, cmd

	case RecalculateMsg:
		return m, calculateCmd(m.engine, msg)

	case ResultMsg:
		if !m.calculatorModel.ApplyResult(msg) {
			m.dropped++
		}
		return m, nil
	}

	return m.updateCurrentScene(msg)
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.err != nil {
		m.err = nil
		return m, nil
	}

	// A focused text input owns every other key
	if m.currentScene == SceneCalculator && m.calculatorModel.Editing() {
		return m.updateCurrentScene(msg)
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "?":
		if m.currentScene != SceneHelp {
			return m, func() tea.Msg {
				return NavigateMsg{Scene: SceneHelp}
			}
		}

	case "esc":
		if m.currentScene != SceneHome {
			return m, func() tea.Msg {
				if m.currentScene == SceneHelp && m.previousScene != SceneHelp {
					return NavigateMsg{Scene: m.previousScene}
				}
				return NavigateMsg{Scene: SceneHome}
			}
		}
	}

	return m.updateCurrentScene(msg)
}

// updateCurrentScene delegates updates to the current scene's model
func (m Model) updateCurrentScene(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.currentScene {
	case SceneHome:
		m.homeModel, cmd = m.homeModel.Update(msg)
	case SceneCalculator:
		m.calculatorModel, cmd = m.calculatorModel.Update(msg)
	}
	return m, cmd
}
