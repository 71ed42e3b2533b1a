package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/nrun-sh/nrun/internal/ui/theme"
)

var currentTheme theme.Theme

// Colors used throughout the UI.
var (
	PrimaryColor   lipgloss.Color
	SecondaryColor lipgloss.Color
	AccentColor    lipgloss.Color
	FavoriteColor  lipgloss.Color
	MutedColor     lipgloss.Color
	SoftMutedColor lipgloss.Color
	TextColor      lipgloss.Color
	ModalBgColor   lipgloss.Color
)

// Styles for the application (initialized in ApplyTheme).
var (
	BorderStyle        lipgloss.Style
	CommandStyle       lipgloss.Style
	FavoriteStyle      lipgloss.Style
	FocusedBorderStyle lipgloss.Style
	HelpStyle          lipgloss.Style
	NormalStyle        lipgloss.Style
	QueryStyle         lipgloss.Style
	RecencyStyle       lipgloss.Style
	SelectedStyle      lipgloss.Style
	SubtitleStyle      lipgloss.Style
	TabActiveStyle     lipgloss.Style
	TabInactiveStyle   lipgloss.Style
	TitleStyle         lipgloss.Style
)

// InitTheme sets the theme and applies colors.
func InitTheme(t theme.Theme) {
	currentTheme = t
	ApplyTheme()
}

// ApplyTheme updates all colors and styles from current theme.
func ApplyTheme() {
	PrimaryColor = currentTheme.Primary
	SecondaryColor = currentTheme.Secondary
	AccentColor = currentTheme.Accent
	FavoriteColor = currentTheme.Favorite
	MutedColor = currentTheme.Muted
	SoftMutedColor = currentTheme.SoftMuted
	TextColor = currentTheme.Text
	ModalBgColor = currentTheme.ModalBg

	BorderStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(SecondaryColor)

	CommandStyle = lipgloss.NewStyle().
		Foreground(MutedColor).
		Italic(true)

	FavoriteStyle = lipgloss.NewStyle().
		Foreground(FavoriteColor)

	FocusedBorderStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(PrimaryColor)

	HelpStyle = lipgloss.NewStyle().
		Foreground(SoftMutedColor)

	NormalStyle = lipgloss.NewStyle().
		Foreground(TextColor)

	QueryStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(PrimaryColor)

	RecencyStyle = lipgloss.NewStyle().
		Italic(true).
		Foreground(MutedColor)

	SelectedStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(AccentColor)

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(SoftMutedColor)

	TabActiveStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(PrimaryColor)

	TabInactiveStyle = lipgloss.NewStyle().
		Foreground(SoftMutedColor)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(PrimaryColor)
}

// PaneStyle returns a style for a pane with optional focus.
func PaneStyle(width, height int, focused bool) lipgloss.Style {
	style := BorderStyle
	if focused {
		style = FocusedBorderStyle
	}
	return style.Width(width - 2).Height(height - 2)
}
