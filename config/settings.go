package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/doums/apekey/paths"
)

// Default theme colors, matching the stock apekey palette
const (
	DefaultBgColor      = "#2A211C"
	DefaultFgColor      = "#BDAE9D"
	DefaultTitleColor   = "#BDAE9D"
	DefaultSectionColor = "#7F4A2B"
	DefaultKeybindColor = "#C5656B"
	DefaultErrorColor   = "#E53935"
)

// Settings represents the structure of $XDG_CONFIG_HOME/apekey/apekey.toml
type Settings struct {
	// SourcePath is the xmonad.hs file the keymap is extracted from
	SourcePath  string  `toml:"source_path"`
	Watch       *bool   `toml:"watch,omitempty"`
	Debug       *bool   `toml:"debug,omitempty"`
	MaxLogFiles *int    `toml:"max_log_files,omitempty"`
	Colors      *Colors `toml:"colors,omitempty"`
	Server      *Server `toml:"server,omitempty"`
}

// Colors holds the theme colors, as hex strings or ANSI color numbers
type Colors struct {
	Fg      string `toml:"fg,omitempty"`
	Bg      string `toml:"bg,omitempty"`
	Title   string `toml:"title,omitempty"`
	Section string `toml:"section,omitempty"`
	Keybind string `toml:"keybind,omitempty"`
	Error   string `toml:"error,omitempty"`
}

// Server holds the SSH server settings
type Server struct {
	Host string `toml:"host,omitempty"`
	Port string `toml:"port,omitempty"`
}

// LoadSettings loads settings from $XDG_CONFIG_HOME/apekey/apekey.toml.
// Returns default Settings if the file doesn't exist (not an error).
func LoadSettings() (*Settings, error) {
	return loadSettingsFrom(paths.SettingsPath())
}

func loadSettingsFrom(path string) (*Settings, error) {
	settings := &Settings{}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			settings.SourcePath = paths.DefaultSourcePath()
			return settings, nil // Not an error, use defaults
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	if err := toml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", path, err)
	}

	if settings.SourcePath == "" {
		settings.SourcePath = paths.DefaultSourcePath()
	} else {
		settings.SourcePath = paths.ExpandPath(settings.SourcePath)
	}

	return settings, nil
}

// Theme returns the configured colors merged over the defaults
func (s *Settings) Theme() Colors {
	theme := Colors{
		Fg:      DefaultFgColor,
		Bg:      DefaultBgColor,
		Title:   DefaultTitleColor,
		Section: DefaultSectionColor,
		Keybind: DefaultKeybindColor,
		Error:   DefaultErrorColor,
	}
	if s.Colors == nil {
		return theme
	}
	if s.Colors.Fg != "" {
		theme.Fg = s.Colors.Fg
	}
	if s.Colors.Bg != "" {
		theme.Bg = s.Colors.Bg
	}
	if s.Colors.Title != "" {
		theme.Title = s.Colors.Title
	}
	if s.Colors.Section != "" {
		theme.Section = s.Colors.Section
	}
	if s.Colors.Keybind != "" {
		theme.Keybind = s.Colors.Keybind
	}
	if s.Colors.Error != "" {
		theme.Error = s.Colors.Error
	}
	return theme
}
