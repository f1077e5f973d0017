package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/kvasnikov/go-task-sync/internal/logger"
	"github.com/kvasnikov/go-task-sync/models"
)

// fullSyncWatermark replaces an absent watermark. Real watermarks are
// epoch milliseconds and therefore always far greater than 1, so the
// sentinel can never collide with one.
const fullSyncWatermark = 1

// resyncSchemaVersion is the schema boundary past which a migrating
// client's local replica can no longer be trusted incrementally.
const resyncSchemaVersion = 2

// partitionTasks builds the pull response's change set: records created
// since the watermark, records updated since it, and an always empty
// deleted list. The two queried sets are disjoint for any watermark
// because a record created after it is classified as created only, even
// when it was also updated after it.
//
// No deletion tombstones are kept server-side, so deletions are never
// propagated to pulling clients. Pushed deletes remove rows permanently
// and other replicas only converge on them through a full resync.
func (s *syncService) partitionTasks(ctx context.Context, userID int64, request models.PullRequest) (models.ChangeSet, error) {
	log := logger.FromContext(ctx)

	watermark := normalizeWatermark(request.LastPulledAt)

	fullResync, err := migrationNeedsFullResync(request)
	if err != nil {
		return models.ChangeSet{}, err
	}

	created, err := s.taskRepository.GetCreatedSince(ctx, userID, watermark)
	if err != nil {
		return models.ChangeSet{}, err
	}

	var updated []models.Task
	if fullResync {
		// A client crossing the schema boundary cannot trust the shape of
		// its replica: every stored record is returned as updated, while
		// the created partition stays watermark-driven.
		log.Info().
			Str("func", "syncService.partitionTasks").
			Int64("user_id", userID).
			Int("schema_version", request.SchemaVersion).
			Msg("migration crosses resync boundary, returning all records as updated")
		updated, err = s.taskRepository.GetAllTasks(ctx, userID)
	} else {
		updated, err = s.taskRepository.GetUpdatedSince(ctx, userID, watermark)
	}
	if err != nil {
		return models.ChangeSet{}, err
	}

	var changes models.ChangeSet
	changes.Tasks.Created = created
	changes.Tasks.Updated = updated
	changes.Tasks.Deleted = []string{}

	return changes, nil
}

// normalizeWatermark maps a missing watermark to the full-sync sentinel.
func normalizeWatermark(lastPulledAt *int64) int64 {
	if lastPulledAt == nil {
		return fullSyncWatermark
	}
	return *lastPulledAt
}

// migrationNeedsFullResync reports whether the caller declared a schema
// migration that started below the resync boundary while its target
// version is at or past it.
func migrationNeedsFullResync(request models.PullRequest) (bool, error) {
	if request.SchemaVersion < resyncSchemaVersion || request.Migration == nil {
		return false, nil
	}

	var descriptor models.MigrationDescriptor
	if err := json.Unmarshal([]byte(*request.Migration), &descriptor); err != nil {
		return false, fmt.Errorf("%w: %w", ErrInvalidMigration, err)
	}

	return descriptor.From < resyncSchemaVersion, nil
}
