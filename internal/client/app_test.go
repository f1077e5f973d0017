package client

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/kvasnikov/go-task-sync/internal/adapter"
	"github.com/kvasnikov/go-task-sync/internal/config"
	"github.com/kvasnikov/go-task-sync/internal/logger"
	"github.com/kvasnikov/go-task-sync/internal/mock"
	"github.com/kvasnikov/go-task-sync/models"
)

func newTestApp(serverAdapter adapter.ServerAdapter) *App {
	return &App{
		cfg: &config.AgentConfig{
			Auth: config.AgentAuth{Login: "john", Password: "secret"},
		},
		serverAdapter: serverAdapter,
		logger:        logger.Nop(),
	}
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()
	credentials := models.User{Login: "john", Password: "secret"}

	t.Run("login succeeds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		serverAdapter := mock.NewMockServerAdapter(ctrl)
		serverAdapter.EXPECT().Login(ctx, credentials).Return(nil)

		app := newTestApp(serverAdapter)
		require.NoError(t, app.authenticate(ctx))
	})

	t.Run("unknown account falls back to registration", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		serverAdapter := mock.NewMockServerAdapter(ctrl)
		serverAdapter.EXPECT().Login(ctx, credentials).Return(adapter.ErrUnauthorized)
		serverAdapter.EXPECT().Register(ctx, credentials).Return(nil)

		app := newTestApp(serverAdapter)
		require.NoError(t, app.authenticate(ctx))
	})

	t.Run("other errors are returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		serverAdapter := mock.NewMockServerAdapter(ctrl)
		serverAdapter.EXPECT().Login(ctx, credentials).Return(adapter.ErrBadGateway)

		app := newTestApp(serverAdapter)

		err := app.authenticate(ctx)
		require.ErrorIs(t, err, adapter.ErrBadGateway)
	})

	t.Run("registration failure surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		serverAdapter := mock.NewMockServerAdapter(ctrl)
		serverAdapter.EXPECT().Login(ctx, credentials).Return(adapter.ErrNotFound)
		serverAdapter.EXPECT().Register(ctx, credentials).Return(errors.New("boom"))

		app := newTestApp(serverAdapter)
		require.Error(t, app.authenticate(ctx))
	})
}
