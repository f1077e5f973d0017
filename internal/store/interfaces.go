package store

import (
	"context"
	"database/sql"

	"github.com/kvasnikov/go-task-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists and looks up user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
}

// TaskRepository is the record store adapter consumed by the sync service.
//
// The transaction boundary belongs to the caller: BeginTx opens a
// transaction and WithTx returns a repository view whose mutations run
// inside it. All effects of a push become visible together on commit or not
// at all.
type TaskRepository interface {
	// BeginTx opens a database transaction.
	BeginTx(ctx context.Context) (*sql.Tx, error)

	// WithTx returns a repository view executing against tx instead of the
	// connection pool. The receiver is not modified.
	WithTx(tx *sql.Tx) TaskRepository

	// GetTasksByIDs performs a batched point lookup of the given record ids
	// scoped to userID. Missing ids are simply absent from the result.
	GetTasksByIDs(ctx context.Context, userID int64, ids []string) ([]models.Task, error)

	// InsertTasks persists a batch of genuinely new records. Both server
	// timestamps must already be stamped by the caller.
	InsertTasks(ctx context.Context, tasks []models.Task) error

	// UpdateTask applies a field-level sparse patch to a stored record,
	// re-stamping server_updated_at and leaving server_created_at untouched.
	UpdateTask(ctx context.Context, patch models.TaskPatch) error

	// DeleteTasks removes the given record ids scoped to userID. Ids that
	// do not exist are ignored.
	DeleteTasks(ctx context.Context, userID int64, ids []string) error

	// GetCreatedSince returns records with server_created_at > watermark.
	GetCreatedSince(ctx context.Context, userID int64, watermark int64) ([]models.Task, error)

	// GetUpdatedSince returns records with server_updated_at > watermark
	// AND server_created_at <= watermark, guaranteeing disjointness with
	// GetCreatedSince for the same watermark.
	GetUpdatedSince(ctx context.Context, userID int64, watermark int64) ([]models.Task, error)

	// GetAllTasks returns the user's entire record set, used by the
	// migration-driven full resync.
	GetAllTasks(ctx context.Context, userID int64) ([]models.Task, error)
}

// querier abstracts the subset of database/sql shared by *sql.DB and
// *sql.Tx, letting repository methods run either pooled or transactional.
type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}
