package cmd

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/umlstudio/umlstudio/internal/domain"
	"github.com/umlstudio/umlstudio/internal/logging"
)

// RunCmd starts the TUI application
type RunCmd struct {
	Dev    bool   `help:"Enable development mode (shows version info in dialogs)"`
	Replay string `help:"Open the session with an archived diagram loaded (see 'history list')" placeholder:"ID"`
}

// Run executes the TUI
func (r *RunCmd) Run(cli *CLI) error {
	logging.Logger.Info("Starting umlstudio TUI")

	ctx := context.Background()
	sessionID := uuid.New().String()
	logging.Logger.Info("Generated new session ID", "session_id", sessionID)

	var initial *domain.HistoryEntry
	if r.Replay != "" {
		if cli.Container.ArchiveService == nil {
			return errArchiveDisabled
		}
		entry, err := cli.Container.ArchiveService.Replay(ctx, r.Replay)
		if err != nil {
			return fmt.Errorf("failed to replay archived diagram: %w", err)
		}
		initial = &entry
	}

	model, cleanup, err := cli.Container.NewTUIModel(ctx, sessionID, r.Dev, initial)
	if err != nil {
		return err
	}
	defer cleanup()

	logging.Logger.Debug("Initializing Bubble Tea program")
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Enable mouse support
	)

	logging.Logger.Info("Starting TUI program")
	if _, err := p.Run(); err != nil {
		logging.Logger.Error("TUI program error", "error", err)
		return fmt.Errorf("error running program: %w", err)
	}

	logging.Logger.Info("TUI program exited normally")
	return nil
}
