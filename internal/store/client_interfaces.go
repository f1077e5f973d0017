package store

import (
	"context"

	"github.com/kvasnikov/go-task-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalStorage is the agent's local task replica. It tracks which records
// changed since the last successful sync (dirty / locally-created flags and
// a tombstone table) and remembers the watermark issued by the last pull.
type LocalStorage interface {
	// Bootstrap creates the replica schema when it does not exist yet.
	Bootstrap(ctx context.Context) error

	// CreateTask inserts a new local record and marks it for upload as a
	// creation on the next sync.
	CreateTask(ctx context.Context, task models.Task) error

	// UpdateTask overwrites the local record and marks it for upload as an
	// update, unless it is still pending upload as a creation.
	UpdateTask(ctx context.Context, task models.Task) error

	// DeleteTask removes the local record. Records the id as a tombstone
	// for the next push unless the record never reached the server.
	DeleteTask(ctx context.Context, id string) error

	// GetTask returns a single local record by id.
	GetTask(ctx context.Context, id string) (models.Task, error)

	// GetAllTasks returns the full local replica.
	GetAllTasks(ctx context.Context) ([]models.Task, error)

	// CollectLocalChanges assembles the change set to push: locally
	// created records, dirty records, and tombstoned ids.
	CollectLocalChanges(ctx context.Context) (models.ChangeSet, error)

	// MarkSynced clears the dirty/created flags and tombstones covered by
	// the given change set after a successful push.
	MarkSynced(ctx context.Context, changes models.ChangeSet) error

	// ApplyRemoteChanges upserts pulled records into the replica as clean.
	ApplyRemoteChanges(ctx context.Context, changes models.ChangeSet) error

	// LastPulledAt returns the stored watermark, or nil before first sync.
	LastPulledAt(ctx context.Context) (*int64, error)

	// SaveLastPulledAt persists the watermark issued by a pull response.
	SaveLastPulledAt(ctx context.Context, timestamp int64) error
}
