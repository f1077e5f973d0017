package client

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/kvasnikov/go-task-sync/internal/adapter"
	"github.com/kvasnikov/go-task-sync/internal/config"
	"github.com/kvasnikov/go-task-sync/internal/logger"
	"github.com/kvasnikov/go-task-sync/internal/service"
	"github.com/kvasnikov/go-task-sync/internal/store"
	"github.com/kvasnikov/go-task-sync/internal/tui"
	"github.com/kvasnikov/go-task-sync/internal/workers"
	"github.com/kvasnikov/go-task-sync/models"
)

type App struct {
	cfg           *config.AgentConfig
	localStore    store.LocalStorage
	serverAdapter adapter.ServerAdapter
	services      *service.ClientServices
	workers       *workers.Workers
	logger        *logger.Logger
}

func NewApp(cfg *config.AgentConfig, log *logger.Logger) (*App, error) {
	db, err := store.NewConnectSQLite(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		return nil, fmt.Errorf("create local replica: %w", err)
	}
	localStore := store.NewLocalStorage(db, log)

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	services := service.NewClientServices(localStore, serverAdapter, cfg, log)

	return &App{
		cfg:           cfg,
		localStore:    localStore,
		serverAdapter: serverAdapter,
		services:      services,
		workers:       workers.NewWorkers(services, cfg.Workers, log),
		logger:        log,
	}, nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := a.localStore.Bootstrap(ctx); err != nil {
		return fmt.Errorf("bootstrap local replica: %w", err)
	}

	if err := a.authenticate(ctx); err != nil {
		return fmt.Errorf("authenticate against server: %w", err)
	}

	// First sync runs eagerly so a freshly started agent converges without
	// waiting a full interval.
	if err := a.services.SyncService.Sync(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("initial sync failed, background job will retry")
	}

	a.workers.Run()
	defer a.workers.Stop()

	// The interactive browser takes the foreground while the sync job
	// keeps running behind it; quitting the browser shuts the agent down.
	if a.cfg.Interactive {
		if err := tui.New(a.services, a.logger).Run(ctx); err != nil {
			return fmt.Errorf("run task browser: %w", err)
		}
		a.logger.Info().Msg("agent shut down gracefully")
		return nil
	}

	<-ctx.Done()
	a.logger.Info().Msg("agent shut down gracefully")

	return nil
}

// authenticate logs in with the configured credentials, registering the
// account first when the server does not know it yet.
func (a *App) authenticate(ctx context.Context) error {
	user := models.User{
		Login:    a.cfg.Auth.Login,
		Password: a.cfg.Auth.Password,
	}

	err := a.serverAdapter.Login(ctx, user)
	if err == nil {
		return nil
	}

	if errors.Is(err, adapter.ErrUnauthorized) || errors.Is(err, adapter.ErrNotFound) {
		a.logger.Info().Str("login", user.Login).Msg("account unknown to server, registering")
		return a.serverAdapter.Register(ctx, user)
	}

	return err
}
