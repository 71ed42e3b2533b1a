package panes

import (
	"fmt"
	"strings"
	"time"

	"github.com/nrun-sh/nrun/internal/ui"
)

func formatTimeAgo(t time.Time) string {
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	default:
		return t.Format("Jan 2")
	}
}

// ScriptEntry is one row in the script list.
type ScriptEntry struct {
	Key      string
	Name     string
	Command  string
	Favorite bool
	// LastRunAt is zero when the script never ran.
	LastRunAt time.Time
}

// ScriptsModel manages the script list pane.
type ScriptsModel struct {
	title         string
	entries       []ScriptEntry
	query         string
	selectedIndex int
	scrollOffset  int
	focused       bool
	width         int
	height        int
}

// NewScriptsModel creates a new script list pane model.
func NewScriptsModel(title string) ScriptsModel {
	return ScriptsModel{title: title}
}

// SetTitle updates the pane title.
func (m *ScriptsModel) SetTitle(title string) {
	m.title = title
}

// SetEntries replaces the visible entries, clamping the selection.
func (m *ScriptsModel) SetEntries(entries []ScriptEntry) {
	m.entries = entries
	if m.selectedIndex >= len(entries) {
		m.selectedIndex = 0
		m.scrollOffset = 0
	}
	m.ensureVisible()
}

// SetQuery updates the search line shown above the list and resets the
// selection to the top match.
func (m *ScriptsModel) SetQuery(query string) {
	m.query = query
	m.selectedIndex = 0
	m.scrollOffset = 0
}

// SetSize updates the pane dimensions.
func (m *ScriptsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.ensureVisible()
}

// SetFocused updates the focus state.
func (m *ScriptsModel) SetFocused(focused bool) {
	m.focused = focused
}

// MoveUp moves selection up, wrapping to the bottom.
func (m *ScriptsModel) MoveUp() {
	if len(m.entries) == 0 {
		return
	}
	m.selectedIndex--
	if m.selectedIndex < 0 {
		m.selectedIndex = len(m.entries) - 1
	}
	m.ensureVisible()
}

// MoveDown moves selection down, wrapping to the top.
func (m *ScriptsModel) MoveDown() {
	if len(m.entries) == 0 {
		return
	}
	m.selectedIndex++
	if m.selectedIndex >= len(m.entries) {
		m.selectedIndex = 0
	}
	m.ensureVisible()
}

// Selected returns the highlighted entry, or nil when the list is empty.
func (m *ScriptsModel) Selected() *ScriptEntry {
	if len(m.entries) == 0 || m.selectedIndex >= len(m.entries) {
		return nil
	}
	return &m.entries[m.selectedIndex]
}

// visibleRows is how many entries fit under the title and query lines.
func (m *ScriptsModel) visibleRows() int {
	rows := m.height - 6
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (m *ScriptsModel) ensureVisible() {
	rows := m.visibleRows()
	if m.selectedIndex < m.scrollOffset {
		m.scrollOffset = m.selectedIndex
	}
	if m.selectedIndex >= m.scrollOffset+rows {
		m.scrollOffset = m.selectedIndex - rows + 1
	}
	if m.scrollOffset < 0 {
		m.scrollOffset = 0
	}
}

// View renders the script list pane.
func (m ScriptsModel) View() string {
	style := ui.PaneStyle(m.width, m.height, m.focused)
	return style.Render(ui.TitleStyle.Render(m.title) + "\n" + m.ViewContent())
}

// ViewContent renders just the list content without the pane border.
func (m ScriptsModel) ViewContent() string {
	var content strings.Builder

	if m.query != "" {
		content.WriteString(ui.QueryStyle.Render("/" + m.query))
	} else {
		content.WriteString(ui.SubtitleStyle.Render("type to search"))
	}
	content.WriteString("\n\n")

	if len(m.entries) == 0 {
		if m.query != "" {
			content.WriteString(ui.SubtitleStyle.Render("No scripts match"))
		} else {
			content.WriteString(ui.SubtitleStyle.Render("No scripts found"))
		}
		return content.String()
	}

	nameWidth := 24
	cmdWidth := m.width - nameWidth - 18
	if cmdWidth < 10 {
		cmdWidth = 10
	}

	rows := m.visibleRows()
	end := m.scrollOffset + rows
	if end > len(m.entries) {
		end = len(m.entries)
	}

	for i := m.scrollOffset; i < end; i++ {
		entry := m.entries[i]

		indicator := "  "
		if i == m.selectedIndex {
			indicator = "> "
		}

		star := "  "
		if entry.Favorite {
			star = ui.FavoriteStyle.Render("★ ")
		}

		name := ui.PadRight(ui.TruncateWithEllipsis(entry.Name, nameWidth), nameWidth)
		cmd := ui.TruncateWithEllipsis(entry.Command, cmdWidth)

		var nameStyle = ui.NormalStyle
		if i == m.selectedIndex {
			nameStyle = ui.SelectedStyle
		}

		content.WriteString(indicator + star + nameStyle.Render(name) + "  " + ui.CommandStyle.Render(cmd))

		if !entry.LastRunAt.IsZero() {
			content.WriteString("  " + ui.RecencyStyle.Render(formatTimeAgo(entry.LastRunAt)))
		}

		if i < end-1 {
			content.WriteString("\n")
		}
	}
	return content.String()
}
