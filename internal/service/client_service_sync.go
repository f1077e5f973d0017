package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/kvasnikov/go-task-sync/internal/adapter"
	"github.com/kvasnikov/go-task-sync/internal/config"
	"github.com/kvasnikov/go-task-sync/internal/logger"
	"github.com/kvasnikov/go-task-sync/internal/store"
	"github.com/kvasnikov/go-task-sync/models"
)

type clientSyncService struct {
	localStore store.LocalStorage
	adapter    adapter.ServerAdapter

	// schemaVersion and migration describe the replica's schema to the
	// server on every pull. migration stays nil unless the agent was
	// started after a schema upgrade.
	schemaVersion int
	migration     *string

	logger *logger.Logger
}

// NewClientSyncService constructs a ClientSyncService that reconciles the
// local replica through serverAdapter. When cfg records a completed
// schema upgrade, the first pulls after it request a full resync of
// mutable fields by carrying a migration descriptor.
func NewClientSyncService(localStore store.LocalStorage, serverAdapter adapter.ServerAdapter, cfg config.AgentSync, log *logger.Logger) ClientSyncService {
	s := &clientSyncService{
		localStore:    localStore,
		adapter:       serverAdapter,
		schemaVersion: cfg.SchemaVersion,
		logger:        log,
	}

	if cfg.MigratedFrom > 0 && cfg.MigratedFrom < cfg.SchemaVersion {
		descriptor, err := json.Marshal(models.MigrationDescriptor{From: cfg.MigratedFrom})
		if err == nil {
			migration := string(descriptor)
			s.migration = &migration
		}
	}

	return s
}

// Sync implements ClientSyncService.
//
// The cycle is push first, pull second: the pull response then reflects
// everything this replica just uploaded, stamped with server watermarks,
// and the upsert of pulled records clears any drift between the replica
// and the server's merged state.
func (s *clientSyncService) Sync(ctx context.Context) error {
	log := s.logger.With().Str("func", "clientSyncService.Sync").Logger()

	lastPulledAt, err := s.localStore.LastPulledAt(ctx)
	if err != nil {
		return fmt.Errorf("reading watermark: %w", err)
	}

	changes, err := s.localStore.CollectLocalChanges(ctx)
	if err != nil {
		return fmt.Errorf("collecting local changes: %w", err)
	}

	if !changes.IsEmpty() {
		if err = s.adapter.Push(ctx, models.PushRequest{Changes: changes, LastPulledAt: lastPulledAt}); err != nil {
			return fmt.Errorf("pushing local changes: %w", err)
		}

		if err = s.localStore.MarkSynced(ctx, changes); err != nil {
			return fmt.Errorf("marking pushed changes: %w", err)
		}

		log.Debug().
			Int("created", len(changes.Tasks.Created)).
			Int("updated", len(changes.Tasks.Updated)).
			Int("deleted", len(changes.Tasks.Deleted)).
			Msg("pushed local changes")
	}

	response, err := s.adapter.Pull(ctx, models.PullRequest{
		LastPulledAt:  lastPulledAt,
		SchemaVersion: s.schemaVersion,
		Migration:     s.migration,
	})
	if err != nil {
		return fmt.Errorf("pulling remote changes: %w", err)
	}

	if err = s.localStore.ApplyRemoteChanges(ctx, response.Changes); err != nil {
		return fmt.Errorf("applying remote changes: %w", err)
	}

	if err = s.localStore.SaveLastPulledAt(ctx, response.Timestamp); err != nil {
		return fmt.Errorf("saving watermark: %w", err)
	}

	// The descriptor triggered its full resync; later pulls are
	// incremental again.
	s.migration = nil

	log.Debug().
		Int("created", len(response.Changes.Tasks.Created)).
		Int("updated", len(response.Changes.Tasks.Updated)).
		Int64("watermark", response.Timestamp).
		Msg("applied remote changes")

	return nil
}
