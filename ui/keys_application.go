package ui

import "github.com/charmbracelet/bubbles/key"

// ApplicationKeys defines key bindings for application-level actions.
// The search input is always focused, so every binding here has to stay
// off the printable characters.
type ApplicationKeys struct {
	Quit   key.Binding
	Reload key.Binding
}

// newApplicationKeys creates application key bindings
func newApplicationKeys() ApplicationKeys {
	return ApplicationKeys{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Reload: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "reload"),
		),
	}
}
