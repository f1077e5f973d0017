// Package adapter provides transport-layer abstractions for communicating
// with the sync server.
//
// The primary abstraction is [ServerAdapter], which decouples the agent's
// service layer from the underlying protocol. The package ships an
// HTTP/REST implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/kvasnikov/go-task-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the sync
// server. Implementations are responsible for serialisation, bearer token
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It should be called immediately
	// after a successful Register or Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or
	// an empty string if no token has been set yet.
	Token() string

	// Register creates a new account with the provided credentials. On
	// success it stores the returned bearer token via SetToken. Returns
	// an error if the request fails or the server responds with a non-2xx
	// status.
	Register(ctx context.Context, user models.User) error

	// Login authenticates the user. On success it stores the returned
	// bearer token via SetToken. Returns an error if the request fails or
	// the server responds with a non-2xx status.
	Login(ctx context.Context, user models.User) error

	// Push uploads the agent's accumulated change set. Requires a valid
	// bearer token.
	Push(ctx context.Context, request models.PushRequest) error

	// Pull downloads the changes recorded server-side since the request's
	// watermark. Requires a valid bearer token.
	Pull(ctx context.Context, request models.PullRequest) (models.PullResponse, error)
}
