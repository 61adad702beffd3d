package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/fincalc/internal/calculation"
	"github.com/rgehrsitz/fincalc/internal/domain"
)

func step(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

func TestModel_CalculatorRoundTrip(t *testing.T) {
	m := NewModel(calculation.NewEngine())

	m, cmd := step(t, m, CalculatorSelectedMsg{Kind: domain.KindEMI})
	assert.Equal(t, SceneCalculator, m.currentScene)
	require.NotNil(t, cmd)

	recalc, ok := cmd().(RecalculateMsg)
	require.True(t, ok)

	m, cmd = step(t, m, recalc)
	require.NotNil(t, cmd)
	result, ok := cmd().(ResultMsg)
	require.True(t, ok)
	require.True(t, result.Outcome.Available())

	m, _ = step(t, m, result)
	out := m.calculatorModel.Outcome()
	require.NotNil(t, out)
	assert.Equal(t, domain.KindEMI, out.Kind)
	assert.Contains(t, m.View(), "Monthly EMI")
	assert.Zero(t, m.Dropped())
}

func TestModel_DropsSupersededResult(t *testing.T) {
	m := NewModel(calculation.NewEngine())

	m, cmd := step(t, m, CalculatorSelectedMsg{Kind: domain.KindFD})
	first := cmd().(RecalculateMsg)

	m, cmd = step(t, m, tea.KeyMsg{Type: tea.KeyRight})
	second := cmd().(RecalculateMsg)
	require.Greater(t, second.Revision, first.Revision)

	staleCmd := calculateCmd(m.engine, first)
	freshCmd := calculateCmd(m.engine, second)

	m, _ = step(t, m, freshCmd())
	m, _ = step(t, m, staleCmd())

	assert.Equal(t, 1, m.Dropped())
	assert.Equal(t, second.Revision, m.calculatorModel.Revision())
	require.NotNil(t, m.calculatorModel.Outcome())
}

func TestModel_Navigation(t *testing.T) {
	m := NewModel(calculation.NewEngine())

	m, cmd := step(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	require.NotNil(t, cmd)
	m, _ = step(t, m, cmd())
	assert.Equal(t, SceneHelp, m.currentScene)
	assert.Contains(t, m.View(), "Open a similar calculator")

	m, cmd = step(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	m, _ = step(t, m, cmd())
	assert.Equal(t, SceneHome, m.currentScene)

	_, cmd = step(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_EditingCapturesKeys(t *testing.T) {
	m := NewModel(calculation.NewEngine())
	m, _ = step(t, m, CalculatorSelectedMsg{Kind: domain.KindROI})
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, m.calculatorModel.Editing())

	// q is typed into the field instead of quitting
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	assert.Equal(t, "10000q", m.calculatorModel.Values()["initial"])
}

func TestModel_InitOpensCalculator(t *testing.T) {
	m := NewModel(calculation.NewEngine())
	assert.Nil(t, m.Init())

	m = m.WithCalculator(domain.KindNPS)
	cmd := m.Init()
	require.NotNil(t, cmd)
	assert.Equal(t, CalculatorSelectedMsg{Kind: domain.KindNPS}, cmd())
}
