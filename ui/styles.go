package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/doums/apekey/config"
)

// Styles holds the lipgloss styles derived from the user theme
type Styles struct {
	Title   lipgloss.Style
	Section lipgloss.Style
	Keys    lipgloss.Style
	Desc    lipgloss.Style
	Error   lipgloss.Style
	Help    lipgloss.Style
	Status  lipgloss.Style
	Match   lipgloss.Style
}

// NewStyles builds the style set from the configured colors
func NewStyles(theme config.Colors) Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(theme.Title)).
			Padding(1, 0),
		Section: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(theme.Section)),
		Keys: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Keybind)),
		Desc: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Fg)),
		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(theme.Error)),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Padding(1, 0),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		Match: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(theme.Keybind)),
	}
}
