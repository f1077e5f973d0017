package service

import (
	"context"
	"fmt"
	"time"

	"github.com/kvasnikov/go-task-sync/internal/logger"
	"github.com/kvasnikov/go-task-sync/internal/store"
	"github.com/kvasnikov/go-task-sync/models"
)

// syncService is the concrete implementation of SyncService. It owns the
// transaction boundary for push and the wall-clock reads that stamp server
// watermarks; the reconciliation and partitioning logic lives in
// service_push.go and service_pull.go, which never read the clock
// themselves.
type syncService struct {
	taskRepository store.TaskRepository
	logger         *logger.Logger
}

// NewSyncService constructs a SyncService backed by the given task
// repository.
func NewSyncService(taskRepository store.TaskRepository, logger *logger.Logger) SyncService {
	return &syncService{
		taskRepository: taskRepository,
		logger:         logger,
	}
}

// Push implements SyncService.
//
// The whole reconciliation runs inside a single transaction, and every
// record touched by it shares a single "now" value read once up front.
// Creates and updates stamped in the same push therefore carry identical
// watermarks, which keeps the created/updated pull partition stable.
func (s *syncService) Push(ctx context.Context, userID int64, request models.PushRequest) error {
	log := logger.FromContext(ctx)

	if request.Changes.IsEmpty() {
		return nil
	}

	tx, err := s.taskRepository.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("push failed: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UnixMilli()

	if err = s.reconcileTasks(ctx, s.taskRepository.WithTx(tx), userID, now, request.Changes.Tasks); err != nil {
		log.Err(err).
			Str("func", "syncService.Push").
			Int64("user_id", userID).
			Msg("reconciliation failed, rolling back")
		return fmt.Errorf("push failed: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("push failed: %w: %w", store.ErrCommitingTransaction, err)
	}

	return nil
}

// Pull implements SyncService. The response timestamp is read before the
// partition queries run, so a record written concurrently with this pull is
// never lost: it will reappear in the next pull even if this one already
// returned it.
func (s *syncService) Pull(ctx context.Context, userID int64, request models.PullRequest) (models.PullResponse, error) {
	log := logger.FromContext(ctx)

	now := time.Now().UnixMilli()

	changes, err := s.partitionTasks(ctx, userID, request)
	if err != nil {
		log.Err(err).
			Str("func", "syncService.Pull").
			Int64("user_id", userID).
			Msg("pull partitioning failed")
		return models.PullResponse{}, fmt.Errorf("pull failed: %w", err)
	}

	return models.PullResponse{
		Changes:   changes,
		Timestamp: now,
	}, nil
}
