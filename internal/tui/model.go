package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/fincalc/internal/calculation"
	"github.com/rgehrsitz/fincalc/internal/domain"
	"github.com/rgehrsitz/fincalc/internal/params"
	"github.com/rgehrsitz/fincalc/internal/tui/scenes"
)

// Model represents the entire application state
type Model struct {
	// Navigation
	currentScene  Scene
	previousScene Scene

	// Terminal dimensions
	width  int
	height int

	engine  *calculation.Engine
	initial domain.Kind

	homeModel       *scenes.HomeModel
	calculatorModel *scenes.CalculatorModel

	// dropped counts results discarded because a newer edit superseded them
	dropped int

	err error
}

// NewModel creates a new application model around an engine
func NewModel(engine *calculation.Engine) Model {
	return Model{
		currentScene:    SceneHome,
		engine:          engine,
		homeModel:       scenes.NewHomeModel(),
		calculatorModel: scenes.NewCalculatorModel(params.NewRegistry()),
		width:           80,
		height:          24,
	}
}

// WithCalculator opens the given calculator on start instead of the list
func (m Model) WithCalculator(kind domain.Kind) Model {
	m.initial = kind
	return m
}

// Init initializes the model (required by tea.Model interface)
func (m Model) Init() tea.Cmd {
	if m.initial == "" {
		return nil
	}
	kind := m.initial
	return func() tea.Msg {
		return CalculatorSelectedMsg{Kind: kind}
	}
}

// calculateCmd runs one snapshot through the engine off the update loop
func calculateCmd(engine *calculation.Engine, msg RecalculateMsg) tea.Cmd {
	return func() tea.Msg {
		return ResultMsg{
			Revision: msg.Revision,
			Outcome:  engine.Calculate(context.Background(), msg.Request),
		}
	}
}

// String returns a human-readable name for a scene
func (s Scene) String() string {
	switch s {
	case SceneHome:
		return "Home"
	case SceneCalculator:
		return "Calculator"
	case SceneHelp:
		return "Help"
	default:
		return "Unknown"
	}
}

// Dropped returns how many stale results have been discarded
func (m Model) Dropped() int {
	return m.dropped
}
