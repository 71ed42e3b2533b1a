// Package theme defines the color palette used by the UI.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme is the set of colors the UI draws with.
type Theme struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Favorite  lipgloss.Color
	Muted     lipgloss.Color
	SoftMuted lipgloss.Color
	Text      lipgloss.Color
	ModalBg   lipgloss.Color
}

// Default is the built-in palette.
func Default() Theme {
	return Theme{
		Primary:   lipgloss.Color("#7D56F4"),
		Secondary: lipgloss.Color("#5A56E0"),
		Accent:    lipgloss.Color("#04B575"),
		Favorite:  lipgloss.Color("#F5C518"),
		Muted:     lipgloss.Color("#6C6C6C"),
		SoftMuted: lipgloss.Color("#8A8A8A"),
		Text:      lipgloss.Color("#FAFAFA"),
		ModalBg:   lipgloss.Color("#1C1C1C"),
	}
}
