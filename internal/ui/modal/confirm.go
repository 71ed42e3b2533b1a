package modal

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nrun-sh/nrun/internal/ui"
)

// ConfirmResultMsg is the wizard's final answer.
type ConfirmResultMsg struct {
	Confirmed bool
	// Back returns to the args step instead of finishing.
	Back bool
}

// ConfirmModal shows the resolved command line and asks for a go-ahead.
type ConfirmModal struct {
	command  string
	dir      string
	envFiles []string
	done     bool
	result   any
	keys     confirmKeyMap
}

type confirmKeyMap struct {
	Confirm key.Binding
	Back    key.Binding
	Cancel  key.Binding
}

func defaultConfirmKeyMap() confirmKeyMap {
	return confirmKeyMap{
		Confirm: key.NewBinding(key.WithKeys("enter", "y")),
		Back:    key.NewBinding(key.WithKeys("esc")),
		Cancel:  key.NewBinding(key.WithKeys("n", "q")),
	}
}

// NewConfirmModal creates the confirmation step. envFiles are display
// names, command is the full resolved command line.
func NewConfirmModal(command, dir string, envFiles []string) *ConfirmModal {
	return &ConfirmModal{
		command:  command,
		dir:      dir,
		envFiles: envFiles,
		keys:     defaultConfirmKeyMap(),
	}
}

// Update handles input for the confirmation step.
func (m *ConfirmModal) Update(msg tea.Msg) (Context, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Confirm):
		m.done = true
		m.result = ConfirmResultMsg{Confirmed: true}
	case key.Matches(keyMsg, m.keys.Back):
		m.done = true
		m.result = ConfirmResultMsg{Back: true}
	case key.Matches(keyMsg, m.keys.Cancel):
		m.done = true
		m.result = ConfirmResultMsg{}
	}
	return m, nil
}

// View renders the confirmation step.
func (m *ConfirmModal) View() string {
	var s strings.Builder

	s.WriteString(ui.TitleStyle.Render("Run?"))
	s.WriteString("\n\n")
	s.WriteString(ui.CommandStyle.Render(m.command))
	s.WriteString("\n")
	s.WriteString(ui.SubtitleStyle.Render("in " + m.dir))
	s.WriteString("\n")

	if len(m.envFiles) > 0 {
		s.WriteString(ui.SubtitleStyle.Render("env: " + strings.Join(m.envFiles, ", ")))
		s.WriteString("\n")
	}

	s.WriteString("\n")
	s.WriteString(ui.HelpStyle.Render("enter run · esc back · n cancel"))
	return s.String()
}

// IsDone returns true once answered.
func (m *ConfirmModal) IsDone() bool {
	return m.done
}

// Result returns the ConfirmResultMsg after completion.
func (m *ConfirmModal) Result() any {
	return m.result
}
