// Package tui is the agent's interactive task browser. It drives the same
// local replica services the background sync job reconciles, so every edit
// made here reaches the server on the next cycle.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kvasnikov/go-task-sync/internal/logger"
	"github.com/kvasnikov/go-task-sync/internal/service"
)

type TUI struct {
	services *service.ClientServices
	logger   *logger.Logger
}

func New(services *service.ClientServices, log *logger.Logger) *TUI {
	return &TUI{services: services, logger: log}
}

// Run blocks until the user quits or ctx is cancelled. Cancellation is a
// normal shutdown, not an error.
func (t *TUI) Run(ctx context.Context) error {
	model := newBrowserModel(ctx, t.services.TaskService, t.services.SyncService)

	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		t.logger.Err(err).Str("func", "TUI.Run").Msg("task browser terminated abnormally")
		return err
	}

	return nil
}
