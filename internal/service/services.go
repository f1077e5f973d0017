package service

import (
	"github.com/kvasnikov/go-task-sync/internal/config"
	"github.com/kvasnikov/go-task-sync/internal/crypto"
	"github.com/kvasnikov/go-task-sync/internal/logger"
	"github.com/kvasnikov/go-task-sync/internal/store"
)

type Services struct {
	AuthService AuthService
	SyncService SyncService
}

func NewServices(storages store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(storages.UserRepository, crypto.NewPasswordHasher(), cfg.Auth, logger),
		SyncService: NewSyncService(storages.TaskRepository, logger),
	}
}
