package modal

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nrun-sh/nrun/internal/ui"
)

// ArgsResultMsg carries the extra argument string entered in the wizard.
type ArgsResultMsg struct {
	Value string
	// Back returns to the env picker instead of advancing.
	Back bool
}

// ArgsInputModal is a single-line input with history navigation.
type ArgsInputModal struct {
	script     string
	input      textinput.Model
	history    []string
	historyPos int // -1 means editing a fresh value
	draft      string
	done       bool
	result     any
	keys       argsInputKeyMap
}

type argsInputKeyMap struct {
	HistoryPrev key.Binding
	HistoryNext key.Binding
	Confirm     key.Binding
	Back        key.Binding
}

func defaultArgsInputKeyMap() argsInputKeyMap {
	return argsInputKeyMap{
		HistoryPrev: key.NewBinding(key.WithKeys("up")),
		HistoryNext: key.NewBinding(key.WithKeys("down")),
		Confirm:     key.NewBinding(key.WithKeys("enter")),
		Back:        key.NewBinding(key.WithKeys("esc")),
	}
}

// NewArgsInputModal creates the args step pre-filled with the script's last
// used value. History is most recent first.
func NewArgsInputModal(script, initial string, history []string) *ArgsInputModal {
	input := textinput.New()
	input.Placeholder = "--watch --filter ..."
	input.CharLimit = 200
	input.SetValue(initial)
	input.CursorEnd()
	input.Focus()

	return &ArgsInputModal{
		script:     script,
		input:      input,
		history:    history,
		historyPos: -1,
		keys:       defaultArgsInputKeyMap(),
	}
}

// Update handles input for the args step.
func (m *ArgsInputModal) Update(msg tea.Msg) (Context, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Confirm):
		m.done = true
		m.result = ArgsResultMsg{Value: strings.TrimSpace(m.input.Value())}
		return m, nil

	case key.Matches(keyMsg, m.keys.Back):
		m.done = true
		m.result = ArgsResultMsg{Back: true}
		return m, nil

	case key.Matches(keyMsg, m.keys.HistoryPrev):
		m.historyBack()
		return m, nil

	case key.Matches(keyMsg, m.keys.HistoryNext):
		m.historyForward()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(keyMsg)
	m.historyPos = -1
	return m, cmd
}

func (m *ArgsInputModal) historyBack() {
	if len(m.history) == 0 || m.historyPos+1 >= len(m.history) {
		return
	}
	if m.historyPos == -1 {
		m.draft = m.input.Value()
	}
	m.historyPos++
	m.input.SetValue(m.history[m.historyPos])
	m.input.CursorEnd()
}

func (m *ArgsInputModal) historyForward() {
	if m.historyPos == -1 {
		return
	}
	m.historyPos--
	if m.historyPos == -1 {
		m.input.SetValue(m.draft)
	} else {
		m.input.SetValue(m.history[m.historyPos])
	}
	m.input.CursorEnd()
}

// View renders the args step.
func (m *ArgsInputModal) View() string {
	var s strings.Builder

	s.WriteString(ui.TitleStyle.Render("Extra args: " + m.script))
	s.WriteString("\n\n")
	s.WriteString(m.input.View())
	s.WriteString("\n\n")
	if len(m.history) > 0 {
		s.WriteString(ui.SubtitleStyle.Render("up/down for history"))
		s.WriteString("\n")
	}
	s.WriteString(ui.HelpStyle.Render("enter next · esc back"))
	return s.String()
}

// IsDone returns true once the value was confirmed or the user went back.
func (m *ArgsInputModal) IsDone() bool {
	return m.done
}

// Result returns the ArgsResultMsg after completion.
func (m *ArgsInputModal) Result() any {
	return m.result
}
