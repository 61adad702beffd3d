package scenes

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/fincalc/internal/catalog"
	"github.com/rgehrsitz/fincalc/internal/domain"
	"github.com/rgehrsitz/fincalc/internal/params"
	"github.com/rgehrsitz/fincalc/internal/tui/components"
	"github.com/rgehrsitz/fincalc/internal/tui/tuimsg"
	"github.com/rgehrsitz/fincalc/internal/tui/tuistyles"
)

// field is one editable parameter. Numeric parameters carry a slider;
// choice and bool parameters cycle through their options.
type field struct {
	param  catalog.Param
	slider *components.ParameterSlider
	value  string
}

func (f *field) raw() string {
	if f.slider != nil {
		return f.slider.Raw
	}
	return f.value
}

func (f *field) cycle(dir int) {
	opts := f.param.Options
	if len(opts) == 0 {
		return
	}
	idx := 0
	for i, o := range opts {
		if o == f.value {
			idx = i
			break
		}
	}
	idx = (idx + dir + len(opts)) % len(opts)
	f.value = opts[idx]
}

// CalculatorModel is the interactive form for one calculator.
// Every edit bumps revision and emits a RecalculateMsg; results that come
// back tagged with an older revision are dropped.
type CalculatorModel struct {
	entry    catalog.Entry
	registry *params.Registry
	fields   []*field
	focus    int
	editing  bool
	input    textinput.Model
	revision uint64
	outcome  *domain.Outcome
	buildErr error
	similar  []catalog.Entry
	width    int
	height   int
}

// NewCalculatorModel creates an empty calculator scene
func NewCalculatorModel(registry *params.Registry) *CalculatorModel {
	ti := textinput.New()
	ti.Prompt = "› "
	ti.CharLimit = 24
	ti.Width = 20

	return &CalculatorModel{
		registry: registry,
		input:    ti,
	}
}

// SetSize updates the scene dimensions
func (m *CalculatorModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Entry returns the calculator being edited
func (m *CalculatorModel) Entry() catalog.Entry {
	return m.entry
}

// Revision returns the revision of the latest input snapshot
func (m *CalculatorModel) Revision() uint64 {
	return m.revision
}

// Outcome returns the result shown for the current revision, if any
func (m *CalculatorModel) Outcome() *domain.Outcome {
	return m.outcome
}

// Editing reports whether keystrokes are going to the text input
func (m *CalculatorModel) Editing() bool {
	return m.editing
}

// SetCalculator loads an entry with its default inputs and requests the
// first calculation
func (m *CalculatorModel) SetCalculator(entry catalog.Entry) tea.Cmd {
	m.entry = entry
	m.similar = catalog.Similar(entry.Kind)
	m.focus = 0
	m.stopEditing()
	m.reset()
	return m.recalculate()
}

func (m *CalculatorModel) reset() {
	m.fields = m.fields[:0]
	for _, p := range m.entry.Params {
		f := &field{param: p, value: p.Default}
		if p.Numeric() {
			f.slider = components.NewParameterSlider(p)
		}
		m.fields = append(m.fields, f)
	}
}

// mode returns the value of the calculator's mode parameter, if it has one
func (m *CalculatorModel) mode() string {
	for _, f := range m.fields {
		if f.param.Key == "mode" {
			return f.value
		}
	}
	return ""
}

// visible returns the fields that apply under the current mode
func (m *CalculatorModel) visible() []*field {
	mode := m.mode()
	out := make([]*field, 0, len(m.fields))
	for _, f := range m.fields {
		if f.param.Active(mode) {
			out = append(out, f)
		}
	}
	return out
}

func (m *CalculatorModel) focused() *field {
	vis := m.visible()
	if len(vis) == 0 {
		return nil
	}
	if m.focus >= len(vis) {
		m.focus = len(vis) - 1
	}
	return vis[m.focus]
}

// Values returns the raw text of every parameter keyed by name
func (m *CalculatorModel) Values() map[string]string {
	raw := make(map[string]string, len(m.fields))
	for _, f := range m.fields {
		raw[f.param.Key] = f.raw()
	}
	return raw
}

// recalculate snapshots the inputs under a new revision
func (m *CalculatorModel) recalculate() tea.Cmd {
	m.revision++
	req, err := m.registry.Build(m.entry.Name, m.entry.Kind, m.Values())
	if err != nil {
		m.buildErr = err
		m.outcome = nil
		return nil
	}
	m.buildErr = nil

	rev := m.revision
	return func() tea.Msg {
		return tuimsg.RecalculateMsg{Revision: rev, Request: req}
	}
}

// ApplyResult shows an engine answer. It returns false, leaving the view
// unchanged, when the answer belongs to an older input snapshot.
func (m *CalculatorModel) ApplyResult(msg tuimsg.ResultMsg) bool {
	if msg.Revision != m.revision {
		return false
	}
	out := msg.Outcome
	m.outcome = &out
	return true
}

func (m *CalculatorModel) startEditing() tea.Cmd {
	f := m.focused()
	if f == nil || f.slider == nil {
		return nil
	}
	m.editing = true
	m.input.SetValue(f.slider.Raw)
	m.input.CursorEnd()
	return m.input.Focus()
}

func (m *CalculatorModel) stopEditing() {
	m.editing = false
	m.input.Blur()
}

// Update handles messages for the calculator scene
func (m *CalculatorModel) Update(msg tea.Msg) (*CalculatorModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.editing {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if m.editing {
		return m.handleEditKey(keyMsg)
	}
	return m.handleKeyPress(keyMsg)
}

func (m *CalculatorModel) handleEditKey(msg tea.KeyMsg) (*CalculatorModel, tea.Cmd) {
	switch {
	case key.Matches(msg, key.NewBinding(key.WithKeys("enter", "esc", "tab"))):
		m.stopEditing()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	f := m.focused()
	if f == nil || f.slider == nil || f.slider.Raw == m.input.Value() {
		return m, cmd
	}
	f.slider.SetRaw(m.input.Value())
	return m, tea.Batch(cmd, m.recalculate())
}

func (m *CalculatorModel) handleKeyPress(msg tea.KeyMsg) (*CalculatorModel, tea.Cmd) {
	switch {
	case key.Matches(msg, key.NewBinding(key.WithKeys("up", "k", "shift+tab"))):
		if m.focus > 0 {
			m.focus--
		}
		return m, nil

	case key.Matches(msg, key.NewBinding(key.WithKeys("down", "j", "tab"))):
		if m.focus < len(m.visible())-1 {
			m.focus++
		}
		return m, nil

	case key.Matches(msg, key.NewBinding(key.WithKeys("left", "-"))):
		return m, m.adjust(-1)

	case key.Matches(msg, key.NewBinding(key.WithKeys("right", "+", "="))):
		return m, m.adjust(1)

	case key.Matches(msg, key.NewBinding(key.WithKeys("enter", "e"))):
		if f := m.focused(); f != nil && f.slider == nil {
			return m, m.adjust(1)
		}
		return m, m.startEditing()

	case key.Matches(msg, key.NewBinding(key.WithKeys("r"))):
		m.reset()
		m.focus = 0
		return m, m.recalculate()

	case key.Matches(msg, key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8"))):
		idx, _ := strconv.Atoi(msg.String())
		if idx < 1 || idx > len(m.similar) {
			return m, nil
		}
		kind := m.similar[idx-1].Kind
		return m, func() tea.Msg {
			return tuimsg.CalculatorSelectedMsg{Kind: kind}
		}
	}

	return m, nil
}

// adjust moves the focused slider one step or cycles the focused choice
func (m *CalculatorModel) adjust(dir int) tea.Cmd {
	f := m.focused()
	if f == nil {
		return nil
	}
	switch {
	case f.slider != nil && dir > 0:
		f.slider.Increment()
	case f.slider != nil:
		f.slider.Decrement()
	default:
		f.cycle(dir)
	}
	return m.recalculate()
}

// View renders the calculator scene
func (m *CalculatorModel) View() string {
	var header strings.Builder
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(tuistyles.ColorPrimary)
	header.WriteString(titleStyle.Render(m.entry.Name))
	header.WriteString("\n")
	header.WriteString(tuistyles.HelpDescStyle.Render(m.entry.Description))

	form := tuistyles.BorderStyle.Render(m.renderFields())
	results := tuistyles.BorderStyle.Render(m.renderResults())

	body := lipgloss.JoinHorizontal(lipgloss.Top, form, " ", results)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header.String(),
		"",
		body,
		"",
		m.renderSimilar(),
		"",
		m.renderHelp(),
	)
}

func (m *CalculatorModel) renderFields() string {
	var b strings.Builder
	for i, f := range m.visible() {
		if i > 0 {
			b.WriteString("\n\n")
		}
		focused := i == m.focus
		if f.slider != nil {
			f.slider.SetFocused(focused)
			b.WriteString(f.slider.Render())
			if focused && m.editing {
				b.WriteString("\n")
				b.WriteString(m.input.View())
			}
			continue
		}
		b.WriteString(renderChoice(f, focused))
	}
	return b.String()
}

func renderChoice(f *field, focused bool) string {
	labelStyle := tuistyles.ParameterLabelStyle
	if focused {
		labelStyle = labelStyle.Foreground(tuistyles.ColorPrimary)
	}

	opts := make([]string, len(f.param.Options))
	for i, o := range f.param.Options {
		text := optionLabel(f.param, o)
		if o == f.value {
			opts[i] = tuistyles.SelectedItemStyle.Render("[" + text + "]")
		} else {
			opts[i] = tuistyles.HelpDescStyle.Render(" " + text + " ")
		}
	}
	return labelStyle.Render(f.param.Label) + "\n" + strings.Join(opts, " ")
}

func optionLabel(p catalog.Param, option string) string {
	if p.Type == catalog.ParamBool {
		if option == "true" {
			return "Yes"
		}
		return "No"
	}
	return strings.ToUpper(option[:1]) + option[1:]
}

func (m *CalculatorModel) renderResults() string {
	if m.buildErr != nil {
		return tuistyles.ErrorStyle.Render(m.buildErr.Error())
	}
	if m.outcome == nil {
		return tuistyles.InfoStyle.Render("Calculating...")
	}
	if !m.outcome.Available() {
		msg := m.outcome.Message()
		if msg == "" {
			msg = "Result unavailable"
		}
		return tuistyles.ErrorStyle.Render(msg)
	}

	metrics := m.outcome.Result.Metrics()
	cards := make([]*components.MetricCard, len(metrics))
	for i, metric := range metrics {
		cards[i] = components.NewMetricCard(metric).WithWidth(28)
	}

	content := components.MetricGrid(cards, 1)
	if m.outcome.Breakdown != nil {
		content += "\n\n" + components.NewProportionBar(*m.outcome.Breakdown).WithWidth(36).Render()
	}
	return content
}

func (m *CalculatorModel) renderSimilar() string {
	var b strings.Builder
	b.WriteString(tuistyles.ParameterLabelStyle.Bold(true).Render("Similar Calculators"))
	for i, e := range m.similar {
		if i%4 == 0 {
			b.WriteString("\n")
		}
		b.WriteString(fmt.Sprintf("%s %-22s", tuistyles.HelpKeyStyle.Render(strconv.Itoa(i+1)), e.Name))
	}
	return b.String()
}

func (m *CalculatorModel) renderHelp() string {
	if m.editing {
		return tuistyles.HelpDescStyle.Render("type a value • Enter/Esc done")
	}
	return tuistyles.HelpDescStyle.Render("↑↓ select • ←→ adjust • Enter type value • r reset • 1-8 open similar • Esc back")
}
