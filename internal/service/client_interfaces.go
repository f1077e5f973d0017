package service

import (
	"context"
	"time"

	"github.com/kvasnikov/go-task-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientTaskService is the agent-side contract for managing tasks. All
// writes land in the local replica first and reach the server on the next
// sync cycle.
type ClientTaskService interface {
	// Create assigns the task a new client-side id and creation
	// timestamps, then stores it locally marked for upload.
	Create(ctx context.Context, task models.Task) (models.Task, error)

	// Update overwrites the local record and marks it for upload.
	Update(ctx context.Context, task models.Task) (models.Task, error)

	// Delete removes the local record and schedules the deletion for the
	// next push when the server has already seen the record.
	Delete(ctx context.Context, id string) error

	// Get returns a single local record by id.
	Get(ctx context.Context, id string) (models.Task, error)

	// GetAll returns the full local replica.
	GetAll(ctx context.Context) ([]models.Task, error)
}

// ClientSyncService is the agent-side contract for one reconciliation
// cycle against the server.
type ClientSyncService interface {
	// Sync pushes accumulated local changes, pulls everything the server
	// recorded since the stored watermark, applies it to the replica, and
	// advances the watermark. Returns an error if any step fails; the
	// next cycle retries from the last durable state.
	Sync(ctx context.Context) error
}

// ClientSyncJob is a background worker that periodically runs sync cycles.
type ClientSyncJob interface {
	// Start launches the background sync goroutine. It syncs every
	// interval, defaulting to 5 minutes if interval is zero or negative.
	// Any previously running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it
	// has fully terminated.
	Stop()
}
