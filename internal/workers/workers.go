package workers

import (
	"context"

	"github.com/kvasnikov/go-task-sync/internal/config"
	"github.com/kvasnikov/go-task-sync/internal/logger"
	"github.com/kvasnikov/go-task-sync/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers assembles the agent's background workers. Currently the only
// worker is the periodic sync job.
func NewWorkers(services *service.ClientServices, cfg config.AgentWorkers, logger *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			newSyncWorker(services.SyncJob, cfg, logger),
		},
	}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

// Stop stops every worker that supports stopping.
func (w *Workers) Stop() {
	for _, worker := range w.workers {
		if stoppable, ok := worker.(interface{ Stop() }); ok {
			stoppable.Stop()
		}
	}
}

// syncWorker adapts the periodic sync job to the Worker interface.
type syncWorker struct {
	job    service.ClientSyncJob
	cfg    config.AgentWorkers
	logger *logger.Logger
}

func newSyncWorker(job service.ClientSyncJob, cfg config.AgentWorkers, logger *logger.Logger) *syncWorker {
	return &syncWorker{job: job, cfg: cfg, logger: logger}
}

func (s *syncWorker) Run() {
	s.logger.Info().Dur("interval", s.cfg.SyncInterval).Msg("starting background sync job")
	s.job.Start(context.Background(), s.cfg.SyncInterval)
}

func (s *syncWorker) Stop() {
	s.job.Stop()
}
