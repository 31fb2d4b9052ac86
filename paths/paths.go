package paths

import (
	"os"
	"path/filepath"
)

// ConfigDir returns the apekey configuration directory,
// $XDG_CONFIG_HOME/apekey or ~/.config/apekey.
func ConfigDir() string {
	xdg := os.Getenv("XDG_CONFIG_HOME")
	if xdg == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".config"
		}
		xdg = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(ExpandPath(xdg), "apekey")
}

// SettingsPath returns the user config file, <ConfigDir>/apekey.toml
func SettingsPath() string {
	return filepath.Join(ConfigDir(), "apekey.toml")
}

// DefaultSourcePath returns the default xmonad.hs location
func DefaultSourcePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".xmonad", "xmonad.hs")
	}
	return filepath.Join(homeDir, ".xmonad", "xmonad.hs")
}

// SSHDir returns the directory holding the server host key
func SSHDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".apekey", "ssh")
	}
	return filepath.Join(homeDir, ".apekey", "ssh")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
