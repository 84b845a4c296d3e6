package workers

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-task-tamer/internal/config"
	"github.com/MKhiriev/go-task-tamer/internal/logger"
	"github.com/MKhiriev/go-task-tamer/internal/service"
	"github.com/MKhiriev/go-task-tamer/internal/store"
)

type Workers struct {
	workers []Worker
	logger  *logger.Logger
}

// NewWorkers registers the workers enabled by cfg. A zero digest interval
// leaves the digest worker out.
func NewWorkers(services *service.Services, storages *store.Storages, cfg config.Workers, logger *logger.Logger) *Workers {
	w := &Workers{logger: logger}

	if cfg.DigestInterval > 0 {
		w.workers = append(w.workers, NewMetricsDigestWorker(storages.UserRepository, services.AnalyticsService, cfg.DigestInterval, logger))
	}

	logger.Info().Int("count", len(w.workers)).Msg("workers created")
	return w
}

// Run starts every worker and waits for all of them. The first failure
// cancels the others and is returned.
func (w *Workers) Run(ctx context.Context) error {
	group, groupCtx := errgroup.WithContext(ctx)
	for _, worker := range w.workers {
		group.Go(func() error {
			return worker.Run(groupCtx)
		})
	}

	return group.Wait()
}
