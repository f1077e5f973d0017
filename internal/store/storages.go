package store

import (
	"context"
	"fmt"

	"github.com/kvasnikov/go-task-sync/internal/config"
	"github.com/kvasnikov/go-task-sync/internal/logger"
)

// Storages aggregates every server-side repository behind a single
// constructor so the service layer receives one wired dependency.
type Storages struct {
	UserRepository UserRepository
	TaskRepository TaskRepository
}

// NewStorages connects to PostgreSQL, runs pending migrations, and
// constructs all repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to postgres: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("error running migrations: %w", err)
	}

	return &Storages{
		UserRepository: NewUserRepository(db, log),
		TaskRepository: NewTaskRepository(db, log),
	}, nil
}
