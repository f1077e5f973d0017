package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/kvasnikov/go-task-sync/internal/logger"
	"github.com/kvasnikov/go-task-sync/models"
)

// taskRepository is the PostgreSQL-backed implementation of
// [TaskRepository]. It executes all task record operations against the
// "tasks" table through the embedded querier, which is either the pooled
// connection or a caller-owned transaction (see [taskRepository.WithTx]).
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced with
// structured fields (user_id, task id, batch sizes).
type taskRepository struct {
	db     *DB
	q      querier
	logger *logger.Logger
}

// NewTaskRepository constructs a [TaskRepository] backed by the provided
// database connection and logger.
func NewTaskRepository(db *DB, logger *logger.Logger) TaskRepository {
	return &taskRepository{
		db:     db,
		q:      db.DB,
		logger: logger,
	}
}

// BeginTx implements [TaskRepository].
func (r *taskRepository) BeginTx(ctx context.Context) (*sql.Tx, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "taskRepository.BeginTx").
			Msg("failed to begin transaction")
		return nil, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	return tx, nil
}

// WithTx implements [TaskRepository]. The returned view shares the
// connection and logger but routes every statement through tx.
func (r *taskRepository) WithTx(tx *sql.Tx) TaskRepository {
	return &taskRepository{
		db:     r.db,
		q:      tx,
		logger: r.logger,
	}
}

// GetTasksByIDs implements [TaskRepository]. An empty id slice returns an
// empty result without touching the database.
func (r *taskRepository) GetTasksByIDs(ctx context.Context, userID int64, ids []string) ([]models.Task, error) {
	log := logger.FromContext(ctx)

	if len(ids) == 0 {
		return nil, nil
	}

	query, args, err := buildTasksByIDsQuery(userID, ids)
	if err != nil {
		log.Err(err).
			Str("func", "taskRepository.GetTasksByIDs").
			Int64("user_id", userID).
			Msg("failed to create query")
		return nil, err
	}

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "taskRepository.GetTasksByIDs").
			Int64("user_id", userID).
			Int("ids_count", len(ids)).
			Msg("failed to execute batched point lookup")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return scanTasks(ctx, rows)
}

// InsertTasks implements [TaskRepository]. All records are inserted through
// the repository's querier; when that querier is a transaction, the batch
// commits or rolls back as a unit together with the rest of the push.
func (r *taskRepository) InsertTasks(ctx context.Context, tasks []models.Task) error {
	log := logger.FromContext(ctx)

	for _, task := range tasks {
		result, err := r.q.ExecContext(ctx, insertTask,
			task.ID,
			task.UserID,
			task.Name,
			task.Icon,
			task.Done,
			task.Urgent.Ptr(),
			task.Comment.Ptr(),
			task.ClientCreatedAt,
			task.ClientUpdatedAt,
			task.ServerCreatedAt,
			task.ServerUpdatedAt,
		)
		if err != nil {
			log.Err(err).
				Str("func", "taskRepository.InsertTasks").
				Int64("user_id", task.UserID).
				Str("task_id", task.ID).
				Msg("failed to insert task")

			if isUniqueViolation(err) {
				return fmt.Errorf("%w: %s", ErrDuplicateTask, task.ID)
			}
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		rowsAffected, _ := result.RowsAffected()
		if rowsAffected == 0 {
			log.Error().
				Str("func", "taskRepository.InsertTasks").
				Str("task_id", task.ID).
				Msg("provided task was not saved")
			return ErrTaskNotSaved
		}
	}

	return nil
}

// UpdateTask implements [TaskRepository]. Targeting a record that does not
// exist returns [ErrTaskNotFound].
func (r *taskRepository) UpdateTask(ctx context.Context, patch models.TaskPatch) error {
	log := logger.FromContext(ctx)

	query, args, err := buildTaskUpdateQuery(patch)
	if err != nil {
		log.Err(err).
			Str("func", "taskRepository.UpdateTask").
			Str("task_id", patch.ID).
			Msg("failed to build sparse update query")
		return err
	}

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "taskRepository.UpdateTask").
			Int64("user_id", patch.UserID).
			Str("task_id", patch.ID).
			Msg("failed to execute sparse update")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		log.Warn().
			Str("func", "taskRepository.UpdateTask").
			Str("task_id", patch.ID).
			Msg("record not found")
		return ErrTaskNotFound
	}

	return nil
}

// DeleteTasks implements [TaskRepository].
func (r *taskRepository) DeleteTasks(ctx context.Context, userID int64, ids []string) error {
	log := logger.FromContext(ctx)

	if len(ids) == 0 {
		return nil
	}

	_, err := r.q.ExecContext(ctx, deleteTasks, userID, ids)
	if err != nil {
		log.Err(err).
			Str("func", "taskRepository.DeleteTasks").
			Int64("user_id", userID).
			Int("ids_count", len(ids)).
			Msg("failed to delete tasks")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// GetCreatedSince implements [TaskRepository].
func (r *taskRepository) GetCreatedSince(ctx context.Context, userID int64, watermark int64) ([]models.Task, error) {
	return r.queryTasks(ctx, "taskRepository.GetCreatedSince", getCreatedSince, userID, watermark)
}

// GetUpdatedSince implements [TaskRepository].
func (r *taskRepository) GetUpdatedSince(ctx context.Context, userID int64, watermark int64) ([]models.Task, error) {
	return r.queryTasks(ctx, "taskRepository.GetUpdatedSince", getUpdatedSince, userID, watermark)
}

// GetAllTasks implements [TaskRepository].
func (r *taskRepository) GetAllTasks(ctx context.Context, userID int64) ([]models.Task, error) {
	return r.queryTasks(ctx, "taskRepository.GetAllTasks", getAllTasks, userID)
}

// queryTasks runs one of the multi-row SELECT constants and scans the result.
func (r *taskRepository) queryTasks(ctx context.Context, caller, query string, args ...any) ([]models.Task, error) {
	log := logger.FromContext(ctx)

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", caller).
			Msg("failed to execute task range query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return scanTasks(ctx, rows)
}

// scanTasks drains rows into a task slice following the taskColumns order.
func scanTasks(ctx context.Context, rows *sql.Rows) ([]models.Task, error) {
	log := logger.FromContext(ctx)

	tasks := make([]models.Task, 0, 50)

	for rows.Next() {
		var task models.Task
		var urgent sql.NullBool
		var comment sql.NullString

		scanErr := rows.Scan(
			&task.ID,
			&task.UserID,
			&task.Name,
			&task.Icon,
			&task.Done,
			&urgent,
			&comment,
			&task.ClientCreatedAt,
			&task.ClientUpdatedAt,
			&task.ServerCreatedAt,
			&task.ServerUpdatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "scanTasks").
				Msg("failed to scan task row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		task.Urgent = optionalFromNullBool(urgent)
		task.Comment = optionalFromNullString(comment)

		tasks = append(tasks, task)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "scanTasks").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return tasks, nil
}

func optionalFromNullBool(v sql.NullBool) models.Optional[bool] {
	if !v.Valid {
		return models.Null[bool]()
	}
	return models.Some(v.Bool)
}

func optionalFromNullString(v sql.NullString) models.Optional[string] {
	if !v.Valid {
		return models.Null[string]()
	}
	return models.Some(v.String)
}
