package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/kvasnikov/go-task-sync/internal/logger"
	"github.com/kvasnikov/go-task-sync/models"
)

type localTaskRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewLocalStorage returns a LocalStorage backed by the agent's SQLite replica.
func NewLocalStorage(db *DB, log *logger.Logger) LocalStorage {
	return &localTaskRepository{db: db, logger: log}
}

func (r *localTaskRepository) Bootstrap(ctx context.Context) error {
	r.logger.Debug().Str("func", "localTaskRepository.Bootstrap").Msg("creating replica schema")

	if _, err := r.db.ExecContext(ctx, replicaSchema); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *localTaskRepository) CreateTask(ctx context.Context, task models.Task) error {
	r.logger.Debug().Str("func", "localTaskRepository.CreateTask").Str("task_id", task.ID).Send()

	_, err := r.db.ExecContext(ctx, insertLocalTask,
		task.ID, task.Name, task.Icon, task.Done, task.Urgent.Ptr(), task.Comment.Ptr(),
		task.ClientCreatedAt, task.ClientUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *localTaskRepository) UpdateTask(ctx context.Context, task models.Task) error {
	r.logger.Debug().Str("func", "localTaskRepository.UpdateTask").Str("task_id", task.ID).Send()

	result, err := r.db.ExecContext(ctx, updateLocalTask,
		task.Name, task.Icon, task.Done, task.Urgent.Ptr(), task.Comment.Ptr(),
		task.ClientUpdatedAt, task.ID,
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrTaskNotFound
	}

	return nil
}

func (r *localTaskRepository) DeleteTask(ctx context.Context, id string) error {
	log := r.logger.With().Str("func", "localTaskRepository.DeleteTask").Str("task_id", id).Logger()

	var locallyCreated bool
	err := r.db.QueryRowContext(ctx, isLocallyCreated, id).Scan(&locallyCreated)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrTaskNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if _, err := r.db.ExecContext(ctx, deleteLocalTask, id); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	// A record the server never saw needs no tombstone.
	if locallyCreated {
		log.Debug().Msg("deleted before first sync, no tombstone recorded")
		return nil
	}

	if _, err := r.db.ExecContext(ctx, insertTombstone, id); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *localTaskRepository) GetTask(ctx context.Context, id string) (models.Task, error) {
	row := r.db.QueryRowContext(ctx, getLocalTask, id)

	task, err := scanLocalTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Task{}, ErrTaskNotFound
	}
	if err != nil {
		return models.Task{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return task, nil
}

func (r *localTaskRepository) GetAllTasks(ctx context.Context) ([]models.Task, error) {
	return r.queryLocalTasks(ctx, getAllLocalTasks)
}

func (r *localTaskRepository) CollectLocalChanges(ctx context.Context) (models.ChangeSet, error) {
	r.logger.Debug().Str("func", "localTaskRepository.CollectLocalChanges").Send()

	var changes models.ChangeSet

	created, err := r.queryLocalTasks(ctx, getLocallyCreatedTasks)
	if err != nil {
		return models.ChangeSet{}, err
	}

	updated, err := r.queryLocalTasks(ctx, getDirtyTasks)
	if err != nil {
		return models.ChangeSet{}, err
	}

	deleted, err := r.queryTombstones(ctx)
	if err != nil {
		return models.ChangeSet{}, err
	}

	changes.Tasks.Created = created
	changes.Tasks.Updated = updated
	changes.Tasks.Deleted = deleted

	return changes, nil
}

func (r *localTaskRepository) MarkSynced(ctx context.Context, changes models.ChangeSet) error {
	r.logger.Debug().Str("func", "localTaskRepository.MarkSynced").Send()

	for _, task := range changes.Tasks.Created {
		if _, err := r.db.ExecContext(ctx, clearTaskFlags, task.ID); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}
	for _, task := range changes.Tasks.Updated {
		if _, err := r.db.ExecContext(ctx, clearTaskFlags, task.ID); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}
	for _, id := range changes.Tasks.Deleted {
		if _, err := r.db.ExecContext(ctx, deleteTombstones, id); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	return nil
}

func (r *localTaskRepository) ApplyRemoteChanges(ctx context.Context, changes models.ChangeSet) error {
	r.logger.Debug().Str("func", "localTaskRepository.ApplyRemoteChanges").
		Int("created", len(changes.Tasks.Created)).
		Int("updated", len(changes.Tasks.Updated)).
		Msg("applying pulled records")

	for _, task := range changes.Tasks.Created {
		if err := r.upsertRemote(ctx, task); err != nil {
			return err
		}
	}
	for _, task := range changes.Tasks.Updated {
		if err := r.upsertRemote(ctx, task); err != nil {
			return err
		}
	}
	for _, id := range changes.Tasks.Deleted {
		if _, err := r.db.ExecContext(ctx, deleteLocalTask, id); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	return nil
}

func (r *localTaskRepository) LastPulledAt(ctx context.Context) (*int64, error) {
	var watermark sql.NullInt64
	err := r.db.QueryRowContext(ctx, getLastPulledAt).Scan(&watermark)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	if !watermark.Valid {
		return nil, nil
	}

	return &watermark.Int64, nil
}

func (r *localTaskRepository) SaveLastPulledAt(ctx context.Context, timestamp int64) error {
	if _, err := r.db.ExecContext(ctx, saveLastPulledAt, timestamp); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *localTaskRepository) upsertRemote(ctx context.Context, task models.Task) error {
	_, err := r.db.ExecContext(ctx, upsertRemoteTask,
		task.ID, task.Name, task.Icon, task.Done, task.Urgent.Ptr(), task.Comment.Ptr(),
		task.ClientCreatedAt, task.ClientUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *localTaskRepository) queryLocalTasks(ctx context.Context, query string) ([]models.Task, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		task, err := scanLocalTask(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return tasks, nil
}

func (r *localTaskRepository) queryTombstones(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, getTombstones)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return ids, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLocalTask(row rowScanner) (models.Task, error) {
	var (
		task    models.Task
		urgent  sql.NullBool
		comment sql.NullString
	)

	err := row.Scan(
		&task.ID, &task.Name, &task.Icon, &task.Done, &urgent, &comment,
		&task.ClientCreatedAt, &task.ClientUpdatedAt,
	)
	if err != nil {
		return models.Task{}, err
	}

	task.Urgent = optionalFromNullBool(urgent)
	task.Comment = optionalFromNullString(comment)

	return task, nil
}
