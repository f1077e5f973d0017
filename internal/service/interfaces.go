package service

import (
	"context"

	"github.com/kvasnikov/go-task-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SyncService is the server-side reconciliation endpoint. Push applies a
// client's change set inside one transaction; Pull partitions the server's
// state into the changes the client has not seen yet.
type SyncService interface {
	// Push applies the inbound change set for the given user. All effects
	// are visible together or not at all. Retrying the same push is safe:
	// creates whose id already exists are reapplied as updates.
	Push(ctx context.Context, userID int64, request models.PushRequest) error

	// Pull returns the records created or updated since the request's
	// watermark, together with the watermark for the client's next call.
	Pull(ctx context.Context, userID int64, request models.PullRequest) (models.PullResponse, error)
}

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}
