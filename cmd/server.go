package cmd

import (
	"fmt"

	"github.com/doums/apekey/config"
	"github.com/doums/apekey/logging"
	"github.com/doums/apekey/server"
)

// ServerCmd starts the SSH server
type ServerCmd struct {
	Path string `arg:"" optional:"" help:"Path to the xmonad config file (overrides apekey.toml)" type:"path"`
	Host string `help:"Host to bind to" default:"localhost"`
	Port string `help:"Port to listen on" default:"23234"`
}

// Run executes the server command
func (s *ServerCmd) Run(cli *CLI) error {
	settings := cli.settings
	if settings == nil {
		settings = &config.Settings{}
	}
	host := s.Host
	port := s.Port
	if settings.Server != nil {
		if host == "localhost" && settings.Server.Host != "" {
			host = settings.Server.Host
		}
		if port == "23234" && settings.Server.Port != "" {
			port = settings.Server.Port
		}
	}

	source := cli.sourcePath(s.Path)
	logging.Logger.Info("Starting apekey SSH server",
		"host", host,
		"port", port,
		"source", source)

	srv, err := server.NewServer(host, port, source, settings)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	// Blocks until shutdown
	return srv.Start()
}
