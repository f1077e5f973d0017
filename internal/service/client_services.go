package service

import (
	"github.com/kvasnikov/go-task-sync/internal/adapter"
	"github.com/kvasnikov/go-task-sync/internal/config"
	"github.com/kvasnikov/go-task-sync/internal/logger"
	"github.com/kvasnikov/go-task-sync/internal/store"
)

// ClientServices bundles the agent-side services.
type ClientServices struct {
	TaskService ClientTaskService
	SyncService ClientSyncService
	SyncJob     ClientSyncJob
}

func NewClientServices(localStore store.LocalStorage, serverAdapter adapter.ServerAdapter, cfg *config.AgentConfig, logger *logger.Logger) *ClientServices {
	syncService := NewClientSyncService(localStore, serverAdapter, cfg.Sync, logger)

	return &ClientServices{
		TaskService: NewClientTaskService(localStore, logger),
		SyncService: syncService,
		SyncJob:     NewClientSyncJob(syncService),
	}
}
