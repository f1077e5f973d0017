package service

import (
	"context"
	"errors"

	"github.com/kvasnikov/go-task-sync/internal/logger"
	"github.com/kvasnikov/go-task-sync/internal/store"
	"github.com/kvasnikov/go-task-sync/models"
)

// reconcileTasks applies one inbound change set through repo, which is
// expected to be transaction-bound. now is the transaction-wide watermark
// stamped on every touched record.
//
// Inbound creates whose id is already stored are reapplied as updates
// instead of being inserted. This makes a retried push harmless: the first
// attempt may have committed before the client saw the response, and the
// resent creates must not raise duplicate-key errors.
func (s *syncService) reconcileTasks(ctx context.Context, repo store.TaskRepository, userID, now int64, changes models.TaskChanges) error {
	log := logger.FromContext(ctx)

	createIDs := make([]string, 0, len(changes.Created))
	for _, task := range changes.Created {
		createIDs = append(createIDs, task.ID)
	}

	existing, err := repo.GetTasksByIDs(ctx, userID, createIDs)
	if err != nil {
		return err
	}

	existingIDs := make(map[string]struct{}, len(existing))
	for _, task := range existing {
		existingIDs[task.ID] = struct{}{}
	}

	creates := make([]models.Task, 0, len(changes.Created))
	updates := make([]models.Task, 0, len(changes.Created)+len(changes.Updated))

	for _, task := range changes.Created {
		if _, alreadyStored := existingIDs[task.ID]; alreadyStored {
			log.Warn().
				Str("func", "syncService.reconcileTasks").
				Int64("user_id", userID).
				Str("task_id", task.ID).
				Msg("create for an already stored id, reapplying as update")
			updates = append(updates, task)
			continue
		}

		task.UserID = userID
		task.ServerCreatedAt = now
		task.ServerUpdatedAt = now
		creates = append(creates, task)
	}

	updates = append(updates, changes.Updated...)

	if err = repo.InsertTasks(ctx, creates); err != nil {
		return err
	}

	for _, task := range updates {
		err = repo.UpdateTask(ctx, updatePatch(task, userID, now))
		if errors.Is(err, store.ErrTaskNotFound) {
			// Another replica deleted the record after this one edited it.
			// The edit is dropped and the rest of the batch still commits.
			log.Warn().
				Str("func", "syncService.reconcileTasks").
				Int64("user_id", userID).
				Str("task_id", task.ID).
				Msg("update for an id no longer stored, skipping")
			continue
		}
		if err != nil {
			return err
		}
	}

	return repo.DeleteTasks(ctx, userID, changes.Deleted)
}

// updatePatch turns an inbound record into the sparse patch applied to its
// stored counterpart. Required fields always overwrite; the tri-state
// optionals carry through only when the inbound payload supplied them, so
// an omitted key preserves whatever the store already holds. The record's
// server creation watermark is never part of the patch.
func updatePatch(task models.Task, userID, now int64) models.TaskPatch {
	return models.TaskPatch{
		ID:              task.ID,
		UserID:          userID,
		Name:            &task.Name,
		Icon:            &task.Icon,
		Done:            &task.Done,
		Urgent:          task.Urgent,
		Comment:         task.Comment,
		ClientUpdatedAt: &task.ClientUpdatedAt,
		ServerUpdatedAt: now,
	}
}
