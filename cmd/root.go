package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/doums/apekey/config"
	"github.com/doums/apekey/logging"
	"github.com/doums/apekey/paths"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`

	Run    RunCmd    `cmd:"" help:"Start the apekey TUI (default)" default:"1"`
	Keys   KeysCmd   `cmd:"keys" help:"Inspect the keymap without the TUI (list, export)"`
	Server ServerCmd `cmd:"server" help:"Serve the keymap TUI over SSH"`

	// Internal field for settings (not a flag)
	settings *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	// Apply settings with proper precedence: CLI flags > env vars > apekey.toml > defaults
	// Only apply if flag is at default value and env var is not set

	if c.settings != nil {
		if c.MaxLogFiles == 1000 {
			if _, hasEnv := os.LookupEnv("APEKEY_MAX_LOG_FILES"); !hasEnv {
				if c.settings.MaxLogFiles != nil {
					c.MaxLogFiles = *c.settings.MaxLogFiles
				}
			}
		}

		if !c.Debug {
			if _, hasEnv := os.LookupEnv("APEKEY_DEBUG"); !hasEnv {
				if c.settings.Debug != nil && *c.settings.Debug {
					c.Debug = true
				}
			}
		}
	}

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	// Set environment variables AFTER initialization so child processes
	// inherit debug settings and append to the SAME log file
	if c.Debug || c.DebugFile != "" {
		os.Setenv("APEKEY_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("APEKEY_DEBUG_FILE", logFilePath)
		}
	}
	if c.MaxLogFiles != 1000 {
		os.Setenv("APEKEY_MAX_LOG_FILES", fmt.Sprintf("%d", c.MaxLogFiles))
	}

	return nil
}

// sourcePath resolves the xmonad config path with the usual precedence:
// the positional argument if given, else apekey.toml, else
// ~/.xmonad/xmonad.hs
func (c *CLI) sourcePath(override string) string {
	if override != "" {
		return override
	}
	if c.settings != nil && c.settings.SourcePath != "" {
		return c.settings.SourcePath
	}
	return paths.DefaultSourcePath()
}
