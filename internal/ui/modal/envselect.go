package modal

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nrun-sh/nrun/internal/envfile"
	"github.com/nrun-sh/nrun/internal/ui"
)

// EnvResultMsg carries the wizard's env file selection.
type EnvResultMsg struct {
	// Selected are the chosen files in merge order.
	Selected []envfile.File
	// Canceled means the user backed out of the wizard entirely.
	Canceled bool
}

// EnvSelectModal is a multi-select checkbox list of discovered env files.
type EnvSelectModal struct {
	script  string
	files   []envfile.File
	checked []bool
	cursor  int
	done    bool
	result  any
	keys    envSelectKeyMap
}

type envSelectKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Toggle  key.Binding
	Confirm key.Binding
	Cancel  key.Binding
}

func defaultEnvSelectKeyMap() envSelectKeyMap {
	return envSelectKeyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k")),
		Down:    key.NewBinding(key.WithKeys("down", "j")),
		Toggle:  key.NewBinding(key.WithKeys(" ")),
		Confirm: key.NewBinding(key.WithKeys("enter")),
		Cancel:  key.NewBinding(key.WithKeys("esc")),
	}
}

// NewEnvSelectModal creates the env picker for a script. Files whose paths
// appear in preselected start checked.
func NewEnvSelectModal(script string, files envfile.List, preselected []string) *EnvSelectModal {
	ordered := files.All()
	checked := make([]bool, len(ordered))
	for i, f := range ordered {
		for _, path := range preselected {
			if f.Path == path {
				checked[i] = true
			}
		}
	}
	return &EnvSelectModal{
		script:  script,
		files:   ordered,
		checked: checked,
		keys:    defaultEnvSelectKeyMap(),
	}
}

// Update handles input for the env picker.
func (m *EnvSelectModal) Update(msg tea.Msg) (Context, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(m.files)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, m.keys.Toggle):
		if len(m.files) > 0 {
			m.checked[m.cursor] = !m.checked[m.cursor]
		}
	case key.Matches(keyMsg, m.keys.Confirm):
		m.done = true
		m.result = EnvResultMsg{Selected: m.selection()}
	case key.Matches(keyMsg, m.keys.Cancel):
		m.done = true
		m.result = EnvResultMsg{Canceled: true}
	}
	return m, nil
}

// selection returns the checked files in merge order: root files first so
// package-level variables win.
func (m *EnvSelectModal) selection() []envfile.File {
	var roots, pkgs []envfile.File
	for i, f := range m.files {
		if !m.checked[i] {
			continue
		}
		if f.FromRoot {
			roots = append(roots, f)
		} else {
			pkgs = append(pkgs, f)
		}
	}
	return append(roots, pkgs...)
}

// View renders the env picker.
func (m *EnvSelectModal) View() string {
	var s strings.Builder

	s.WriteString(ui.TitleStyle.Render("Env files: " + m.script))
	s.WriteString("\n\n")

	if len(m.files) == 0 {
		s.WriteString(ui.SubtitleStyle.Render("No .env files found"))
		s.WriteString("\n")
	}

	for i, f := range m.files {
		box := "[ ]"
		if m.checked[i] {
			box = "[x]"
		}
		line := box + " " + f.DisplayName
		if i == m.cursor {
			s.WriteString(ui.SelectedStyle.Render("> " + line))
		} else {
			s.WriteString(ui.NormalStyle.Render("  " + line))
		}
		s.WriteString("\n")
	}

	s.WriteString("\n")
	s.WriteString(ui.HelpStyle.Render("space toggle · enter next · esc cancel"))
	return s.String()
}

// IsDone returns true once a selection or cancel happened.
func (m *EnvSelectModal) IsDone() bool {
	return m.done
}

// Result returns the EnvResultMsg after completion.
func (m *EnvSelectModal) Result() any {
	return m.result
}
