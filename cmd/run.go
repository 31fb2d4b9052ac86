package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/doums/apekey/config"
	"github.com/doums/apekey/logging"
	"github.com/doums/apekey/ui"
)

// RunCmd starts the TUI application
type RunCmd struct {
	Path  string `arg:"" optional:"" help:"Path to the xmonad config file (overrides apekey.toml)" type:"path"`
	Watch bool   `help:"Re-parse the config file whenever it changes" short:"w"`
}

// Run executes the TUI
func (r *RunCmd) Run(cli *CLI) error {
	source := cli.sourcePath(r.Path)

	settings := cli.settings
	if settings == nil {
		settings = &config.Settings{}
	}
	watch := r.Watch
	if !watch && settings.Watch != nil {
		watch = *settings.Watch
	}

	logging.Logger.Info("Starting TUI program",
		"source", source,
		"watch", watch)

	p := tea.NewProgram(
		ui.NewModel(source, settings.Theme(), watch),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	if _, err := p.Run(); err != nil {
		logging.Logger.Error("TUI program error", "error", err)
		return fmt.Errorf("error running program: %w", err)
	}

	logging.Logger.Info("TUI program exited normally")
	return nil
}
