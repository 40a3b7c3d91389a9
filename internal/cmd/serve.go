package cmd

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/umlstudio/umlstudio/internal/config"
	"github.com/umlstudio/umlstudio/internal/logging"
	"github.com/umlstudio/umlstudio/internal/server"
)

// ServeCmd serves the TUI over SSH
type ServeCmd struct {
	AuthorizedKeys string `help:"authorized_keys file (defaults to ~/.ssh/authorized_keys)" type:"path"`
	Dev            bool   `help:"Enable development mode (shows version info in dialogs)"`
	Host           string `help:"Address to listen on" default:"localhost"`
	Port           string `help:"Port to listen on" default:"23234"`
}

// Run starts the SSH server and blocks until it is stopped
func (s *ServeCmd) Run(cli *CLI) error {
	srv, err := server.NewServer(server.Options{
		AuthorizedKeysPath: s.AuthorizedKeys,
		Host:               s.Host,
		HostKeyDir:         config.GetSSHDir(),
		NewModel:           s.modelFactory(cli.Container),
		Port:               s.Port,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	fmt.Printf("Serving umlstudio on ssh://%s\n", srv.Address())
	logging.Logger.Info("SSH server starting", "address", srv.Address())
	return srv.Start(context.Background())
}

// modelFactory gives every SSH connection its own session controller
func (s *ServeCmd) modelFactory(container *Container) server.ModelFactory {
	return func(sessionID string) (tea.Model, func(), error) {
		model, cleanup, err := container.NewTUIModel(context.Background(), sessionID, s.Dev, nil)
		if err != nil {
			return nil, nil, err
		}
		return model, cleanup, nil
	}
}
