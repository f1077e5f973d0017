package store

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvasnikov/go-task-sync/internal/logger"
	"github.com/kvasnikov/go-task-sync/models"
)

var userColumns = []string{"user_id", "login", "password_hash", "name", "created_at"}

func TestUserRepository_CreateUser(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	t.Run("returns user with server-assigned fields", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db, logger.Nop())

		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
			WithArgs("alice", "$argon2id$...", "Alice").
			WillReturnRows(sqlmock.NewRows(userColumns).
				AddRow(int64(7), "alice", "$argon2id$...", "Alice", now))

		got, err := repo.CreateUser(ctx, models.User{
			Login:        "alice",
			Name:         "Alice",
			PasswordHash: "$argon2id$...",
		})

		require.NoError(t, err)
		assert.Equal(t, int64(7), got.UserID)
		assert.Equal(t, "alice", got.Login)
		assert.Equal(t, now, got.CreatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate login", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db, logger.Nop())

		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
			WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

		_, err := repo.CreateUser(ctx, models.User{Login: "alice"})

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrLoginAlreadyExists)
	})

	t.Run("unexpected error", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db, logger.Nop())

		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
			WillReturnError(errors.New("connection reset"))

		_, err := repo.CreateUser(ctx, models.User{Login: "alice"})

		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrLoginAlreadyExists)
	})
}

func TestUserRepository_FindUserByLogin(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	t.Run("found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db, logger.Nop())

		mock.ExpectQuery(regexp.QuoteMeta("SELECT user_id, login, password_hash, name, created_at")).
			WithArgs("alice").
			WillReturnRows(sqlmock.NewRows(userColumns).
				AddRow(int64(7), "alice", "$argon2id$...", "Alice", now))

		got, err := repo.FindUserByLogin(ctx, "alice")

		require.NoError(t, err)
		assert.Equal(t, int64(7), got.UserID)
		assert.Equal(t, "$argon2id$...", got.PasswordHash)
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db, logger.Nop())

		mock.ExpectQuery(regexp.QuoteMeta("SELECT user_id, login, password_hash, name, created_at")).
			WithArgs("ghost").
			WillReturnRows(sqlmock.NewRows(userColumns))

		_, err := repo.FindUserByLogin(ctx, "ghost")

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNoUserWasFound)
	})
}
