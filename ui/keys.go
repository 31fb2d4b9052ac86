package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap contains all keyboard shortcuts organized by context
type KeyMap struct {
	Application ApplicationKeys
	Navigation  NavigationKeys
}

// NewKeyMap creates a new KeyMap with all key bindings initialized
func NewKeyMap() KeyMap {
	return KeyMap{
		Application: newApplicationKeys(),
		Navigation:  newNavigationKeys(),
	}
}

// ShortHelp returns the key bindings shown in the bottom bar
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Navigation.Up,
		k.Navigation.Down,
		k.Navigation.ClearFilter,
		k.Application.Reload,
		k.Application.Quit,
	}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Navigation.Up, k.Navigation.Down, k.Navigation.PageUp, k.Navigation.PageDown},
		{k.Navigation.ClearFilter, k.Application.Reload, k.Application.Quit},
	}
}
