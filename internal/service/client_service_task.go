package service

import (
	"context"
	"fmt"
	"time"

	"github.com/kvasnikov/go-task-sync/internal/logger"
	"github.com/kvasnikov/go-task-sync/internal/store"
	"github.com/kvasnikov/go-task-sync/internal/utils"
	"github.com/kvasnikov/go-task-sync/models"
)

type clientTaskService struct {
	localStore store.LocalStorage
	ids        *utils.UUIDGenerator
	logger     *logger.Logger
}

// NewClientTaskService constructs a ClientTaskService over the agent's
// local replica.
func NewClientTaskService(localStore store.LocalStorage, log *logger.Logger) ClientTaskService {
	return &clientTaskService{
		localStore: localStore,
		ids:        utils.NewUUIDGenerator(),
		logger:     log,
	}
}

// Create implements ClientTaskService. The id and both client timestamps
// are assigned here; the server never issues ids.
func (s *clientTaskService) Create(ctx context.Context, task models.Task) (models.Task, error) {
	if task.Name == "" {
		return models.Task{}, ErrInvalidDataProvided
	}

	now := time.Now().UnixMilli()
	task.ID = s.ids.Generate()
	task.ClientCreatedAt = now
	task.ClientUpdatedAt = now

	if err := s.localStore.CreateTask(ctx, task); err != nil {
		return models.Task{}, fmt.Errorf("creating local task: %w", err)
	}

	s.logger.Debug().Str("func", "clientTaskService.Create").Str("task_id", task.ID).Send()

	return task, nil
}

// Update implements ClientTaskService.
func (s *clientTaskService) Update(ctx context.Context, task models.Task) (models.Task, error) {
	if task.ID == "" || task.Name == "" {
		return models.Task{}, ErrInvalidDataProvided
	}

	task.ClientUpdatedAt = time.Now().UnixMilli()

	if err := s.localStore.UpdateTask(ctx, task); err != nil {
		return models.Task{}, fmt.Errorf("updating local task: %w", err)
	}

	return task, nil
}

// Delete implements ClientTaskService.
func (s *clientTaskService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidDataProvided
	}

	if err := s.localStore.DeleteTask(ctx, id); err != nil {
		return fmt.Errorf("deleting local task: %w", err)
	}

	return nil
}

// Get implements ClientTaskService.
func (s *clientTaskService) Get(ctx context.Context, id string) (models.Task, error) {
	if id == "" {
		return models.Task{}, ErrInvalidDataProvided
	}

	task, err := s.localStore.GetTask(ctx, id)
	if err != nil {
		return models.Task{}, fmt.Errorf("loading local task: %w", err)
	}

	return task, nil
}

// GetAll implements ClientTaskService.
func (s *clientTaskService) GetAll(ctx context.Context) ([]models.Task, error) {
	tasks, err := s.localStore.GetAllTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading local tasks: %w", err)
	}

	return tasks, nil
}
