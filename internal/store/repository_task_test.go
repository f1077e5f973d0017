package store

import (
	"context"
	"database/sql/driver"
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvasnikov/go-task-sync/internal/logger"
	"github.com/kvasnikov/go-task-sync/models"
)

// pgArgConverter widens sqlmock's default converter so []string arguments,
// which the pgx driver accepts natively for ANY($n), survive the
// database/sql layer in tests.
type pgArgConverter struct{}

func (pgArgConverter) ConvertValue(v any) (driver.Value, error) {
	if ids, ok := v.([]string); ok {
		return "{" + strings.Join(ids, ",") + "}", nil
	}
	return driver.DefaultParameterConverter.ConvertValue(v)
}

func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New(sqlmock.ValueConverterOption(pgArgConverter{}))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	log := logger.Nop()

	return &DB{
		DB:                 conn,
		logger:             log,
		errorClassificator: NewPostgresErrorClassifier(),
	}, mock
}

func taskRows(tasks ...models.Task) *sqlmock.Rows {
	rows := sqlmock.NewRows(taskColumns)
	for _, task := range tasks {
		rows.AddRow(
			task.ID, task.UserID, task.Name, task.Icon, task.Done,
			task.Urgent.Ptr(), task.Comment.Ptr(),
			task.ClientCreatedAt, task.ClientUpdatedAt,
			task.ServerCreatedAt, task.ServerUpdatedAt,
		)
	}
	return rows
}

func TestTaskRepository_GetTasksByIDs(t *testing.T) {
	ctx := context.Background()

	t.Run("empty id slice skips the database", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewTaskRepository(db, logger.Nop())

		got, err := repo.GetTasksByIDs(ctx, 1, nil)

		require.NoError(t, err)
		assert.Nil(t, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns matched records", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewTaskRepository(db, logger.Nop())

		existing := models.Task{
			ID:              "task-1",
			UserID:          1,
			Name:            "groceries",
			Icon:            "cart",
			Done:            false,
			Urgent:          models.Some(true),
			Comment:         models.Null[string](),
			ClientCreatedAt: 1700000000001,
			ClientUpdatedAt: 1700000000002,
			ServerCreatedAt: 1700000000100,
			ServerUpdatedAt: 1700000000100,
		}

		mock.ExpectQuery(`SELECT id, user_id, .+ FROM tasks WHERE id IN \(\$1,\$2\) AND user_id = \$3`).
			WithArgs("task-1", "task-2", int64(1)).
			WillReturnRows(taskRows(existing))

		got, err := repo.GetTasksByIDs(ctx, 1, []string{"task-1", "task-2"})

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, existing, got[0])
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query error is wrapped", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewTaskRepository(db, logger.Nop())

		mock.ExpectQuery(`SELECT id, user_id, .+ FROM tasks`).
			WillReturnError(errors.New("connection reset"))

		got, err := repo.GetTasksByIDs(ctx, 1, []string{"task-1"})

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrExecutingQuery)
		assert.Nil(t, got)
	})
}

func TestTaskRepository_InsertTasks(t *testing.T) {
	ctx := context.Background()

	task := models.Task{
		ID:              "task-1",
		UserID:          1,
		Name:            "groceries",
		Icon:            "cart",
		Done:            false,
		Urgent:          models.Some(true),
		Comment:         models.Some("pick up milk"),
		ClientCreatedAt: 1700000000001,
		ClientUpdatedAt: 1700000000002,
		ServerCreatedAt: 1700000000100,
		ServerUpdatedAt: 1700000000100,
	}

	t.Run("inserts every record in the batch", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewTaskRepository(db, logger.Nop())

		second := task
		second.ID = "task-2"

		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO tasks")).
			WithArgs(task.ID, task.UserID, task.Name, task.Icon, task.Done,
				task.Urgent.Ptr(), task.Comment.Ptr(),
				task.ClientCreatedAt, task.ClientUpdatedAt,
				task.ServerCreatedAt, task.ServerUpdatedAt).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO tasks")).
			WithArgs(second.ID, second.UserID, second.Name, second.Icon, second.Done,
				second.Urgent.Ptr(), second.Comment.Ptr(),
				second.ClientCreatedAt, second.ClientUpdatedAt,
				second.ServerCreatedAt, second.ServerUpdatedAt).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.InsertTasks(ctx, []models.Task{task, second})

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unique violation maps to duplicate error", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewTaskRepository(db, logger.Nop())

		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO tasks")).
			WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

		err := repo.InsertTasks(ctx, []models.Task{task})

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrDuplicateTask)
	})

	t.Run("zero rows affected means record was not saved", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewTaskRepository(db, logger.Nop())

		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO tasks")).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.InsertTasks(ctx, []models.Task{task})

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrTaskNotSaved)
	})
}

func TestTaskRepository_UpdateTask(t *testing.T) {
	ctx := context.Background()

	name := "groceries"
	patch := models.TaskPatch{
		ID:              "task-1",
		UserID:          1,
		Name:            &name,
		ServerUpdatedAt: 1700000000500,
	}

	t.Run("applies sparse patch", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewTaskRepository(db, logger.Nop())

		mock.ExpectExec(regexp.QuoteMeta("UPDATE tasks SET server_updated_at = $1, name = $2 WHERE id = $3 AND user_id = $4")).
			WithArgs(int64(1700000000500), "groceries", "task-1", int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateTask(ctx, patch)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing record returns not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewTaskRepository(db, logger.Nop())

		mock.ExpectExec(regexp.QuoteMeta("UPDATE tasks")).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateTask(ctx, patch)

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrTaskNotFound)
	})

	t.Run("execution error is wrapped", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewTaskRepository(db, logger.Nop())

		mock.ExpectExec(regexp.QuoteMeta("UPDATE tasks")).
			WillReturnError(errors.New("connection reset"))

		err := repo.UpdateTask(ctx, patch)

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrExecutingStatement)
	})
}

func TestTaskRepository_DeleteTasks(t *testing.T) {
	ctx := context.Background()

	t.Run("empty id slice skips the database", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewTaskRepository(db, logger.Nop())

		err := repo.DeleteTasks(ctx, 1, nil)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ids are passed as a single array argument", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewTaskRepository(db, logger.Nop())

		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM tasks")).
			WithArgs(int64(1), "{task-1,task-2}").
			WillReturnResult(sqlmock.NewResult(0, 2))

		err := repo.DeleteTasks(ctx, 1, []string{"task-1", "task-2"})

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("execution error is wrapped", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewTaskRepository(db, logger.Nop())

		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM tasks")).
			WillReturnError(errors.New("connection reset"))

		err := repo.DeleteTasks(ctx, 1, []string{"task-1"})

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrExecutingStatement)
	})
}

func TestTaskRepository_PullQueries(t *testing.T) {
	ctx := context.Background()

	created := models.Task{
		ID:              "task-1",
		UserID:          1,
		Name:            "groceries",
		Icon:            "cart",
		Urgent:          models.Null[bool](),
		Comment:         models.Null[string](),
		ClientCreatedAt: 1700000000001,
		ClientUpdatedAt: 1700000000001,
		ServerCreatedAt: 1700000000200,
		ServerUpdatedAt: 1700000000200,
	}

	t.Run("created since watermark", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewTaskRepository(db, logger.Nop())

		mock.ExpectQuery(`WHERE user_id = \$1 AND server_created_at > \$2`).
			WithArgs(int64(1), int64(1700000000100)).
			WillReturnRows(taskRows(created))

		got, err := repo.GetCreatedSince(ctx, 1, 1700000000100)

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, created, got[0])
	})

	t.Run("updated since watermark excludes records created after it", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewTaskRepository(db, logger.Nop())

		mock.ExpectQuery(`WHERE user_id = \$1 AND server_updated_at > \$2 AND server_created_at <= \$2`).
			WithArgs(int64(1), int64(1700000000100)).
			WillReturnRows(taskRows())

		got, err := repo.GetUpdatedSince(ctx, 1, 1700000000100)

		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("all tasks for full resync", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewTaskRepository(db, logger.Nop())

		mock.ExpectQuery(`FROM tasks\s+WHERE user_id = \$1\s+ORDER BY server_created_at ASC`).
			WithArgs(int64(1)).
			WillReturnRows(taskRows(created))

		got, err := repo.GetAllTasks(ctx, 1)

		require.NoError(t, err)
		require.Len(t, got, 1)
	})
}

func TestTaskRepository_WithTx(t *testing.T) {
	ctx := context.Background()

	db, mock := newMockDB(t)
	repo := NewTaskRepository(db, logger.Nop())

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE tasks")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := repo.BeginTx(ctx)
	require.NoError(t, err)

	name := "groceries"
	err = repo.WithTx(tx).UpdateTask(ctx, models.TaskPatch{
		ID:              "task-1",
		UserID:          1,
		Name:            &name,
		ServerUpdatedAt: 1700000000500,
	})
	require.NoError(t, err)

	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}
