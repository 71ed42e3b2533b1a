// Package modal implements the stacked overlay dialogs used by the
// configuration wizard.
package modal

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nrun-sh/nrun/internal/ui"
)

// Context is one active modal. Update returns the (possibly replaced)
// modal; when IsDone reports true the stack pops it and delivers Result to
// the app as a message.
type Context interface {
	Update(msg tea.Msg) (Context, tea.Cmd)
	View() string
	IsDone() bool
	Result() any
}

// Stack manages the active modals, topmost last.
type Stack struct {
	modals []Context
	width  int
	height int
}

// NewStack creates an empty modal stack.
func NewStack() *Stack {
	return &Stack{}
}

// Push makes the modal the new topmost.
func (s *Stack) Push(m Context) {
	s.modals = append(s.modals, m)
}

// HasActive reports whether any modal is showing.
func (s *Stack) HasActive() bool {
	return len(s.modals) > 0
}

// SetSize records the terminal size for rendering.
func (s *Stack) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// Update routes the message to the topmost modal. When that modal finishes
// it is popped and its non-nil Result is delivered as a message so the app
// can react.
func (s *Stack) Update(msg tea.Msg) tea.Cmd {
	if len(s.modals) == 0 {
		return nil
	}

	top := s.modals[len(s.modals)-1]
	next, cmd := top.Update(msg)
	s.modals[len(s.modals)-1] = next

	if next.IsDone() {
		result := next.Result()
		s.modals = s.modals[:len(s.modals)-1]
		if result != nil {
			resultCmd := func() tea.Msg { return result }
			if cmd == nil {
				return resultCmd
			}
			return tea.Batch(cmd, resultCmd)
		}
	}
	return cmd
}

// Render overlays the topmost modal centered over the background view.
func (s *Stack) Render(background string) string {
	if len(s.modals) == 0 {
		return background
	}

	content := s.modals[len(s.modals)-1].View()
	box := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(ui.PrimaryColor).
		Background(ui.ModalBgColor).
		Padding(1, 2).
		Render(content)

	return lipgloss.Place(s.width, s.height, lipgloss.Center, lipgloss.Center, box)
}
