package panes

import (
	"fmt"
	"strings"

	"github.com/nrun-sh/nrun/internal/ui"
	"github.com/nrun-sh/nrun/internal/workspace"
)

// PackagesModel manages the workspace package list pane.
type PackagesModel struct {
	packages      []workspace.Package
	query         string
	selectedIndex int
	focused       bool
	width         int
	height        int
}

// NewPackagesModel creates a new package list pane model.
func NewPackagesModel(packages []workspace.Package) PackagesModel {
	return PackagesModel{packages: packages}
}

// SetPackages replaces the visible packages, clamping the selection.
func (m *PackagesModel) SetPackages(packages []workspace.Package) {
	m.packages = packages
	if m.selectedIndex >= len(packages) {
		m.selectedIndex = 0
	}
}

// SetQuery updates the search line shown above the list and resets the
// selection to the top match.
func (m *PackagesModel) SetQuery(query string) {
	m.query = query
	m.selectedIndex = 0
}

// SetSize updates the pane dimensions.
func (m *PackagesModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetFocused updates the focus state.
func (m *PackagesModel) SetFocused(focused bool) {
	m.focused = focused
}

// MoveUp moves selection up, wrapping to the bottom.
func (m *PackagesModel) MoveUp() {
	if len(m.packages) == 0 {
		return
	}
	m.selectedIndex--
	if m.selectedIndex < 0 {
		m.selectedIndex = len(m.packages) - 1
	}
}

// MoveDown moves selection down, wrapping to the top.
func (m *PackagesModel) MoveDown() {
	if len(m.packages) == 0 {
		return
	}
	m.selectedIndex++
	if m.selectedIndex >= len(m.packages) {
		m.selectedIndex = 0
	}
}

// Selected returns the highlighted package, or nil when none exist.
func (m *PackagesModel) Selected() *workspace.Package {
	if len(m.packages) == 0 || m.selectedIndex >= len(m.packages) {
		return nil
	}
	return &m.packages[m.selectedIndex]
}

// View renders the package list pane.
func (m PackagesModel) View() string {
	style := ui.PaneStyle(m.width, m.height, m.focused)
	return style.Render(ui.TitleStyle.Render("Packages") + "\n" + m.ViewContent())
}

// ViewContent renders just the list content without the pane border.
func (m PackagesModel) ViewContent() string {
	var content strings.Builder

	if m.query != "" {
		content.WriteString(ui.QueryStyle.Render("/" + m.query))
	} else {
		content.WriteString(ui.SubtitleStyle.Render("type to search"))
	}
	content.WriteString("\n\n")

	if len(m.packages) == 0 {
		if m.query != "" {
			content.WriteString(ui.SubtitleStyle.Render("No packages match"))
		} else {
			content.WriteString(ui.SubtitleStyle.Render("No workspace packages"))
		}
		return content.String()
	}

	for i, pkg := range m.packages {
		indicator := "  "
		if i == m.selectedIndex {
			indicator = "> "
		}

		name := ui.PadRight(ui.TruncateWithEllipsis(pkg.Name, 28), 28)
		detail := fmt.Sprintf("%s  %d scripts", pkg.RelPath, len(pkg.Scripts))

		var nameStyle = ui.NormalStyle
		if i == m.selectedIndex {
			nameStyle = ui.SelectedStyle
		}

		content.WriteString(indicator + nameStyle.Render(name) + "  " + ui.SubtitleStyle.Render(detail))
		if i < len(m.packages)-1 {
			content.WriteString("\n")
		}
	}
	return content.String()
}
