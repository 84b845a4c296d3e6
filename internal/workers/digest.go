package workers

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-task-tamer/internal/logger"
	"github.com/MKhiriev/go-task-tamer/internal/service"
	"github.com/MKhiriev/go-task-tamer/internal/store"
)

// MetricsDigestWorker periodically computes the metrics of every user and
// writes one structured log line per user.
type MetricsDigestWorker struct {
	users     store.UserRepository
	analytics service.AnalyticsService
	interval  time.Duration
	logger    *logger.Logger
}

func NewMetricsDigestWorker(users store.UserRepository, analytics service.AnalyticsService, interval time.Duration, logger *logger.Logger) *MetricsDigestWorker {
	return &MetricsDigestWorker{
		users:     users,
		analytics: analytics,
		interval:  interval,
		logger:    logger,
	}
}

// Run digests on every tick until ctx is done. Failed rounds are logged and
// retried on the next tick.
func (w *MetricsDigestWorker) Run(ctx context.Context) error {
	t := time.NewTicker(w.interval)
	defer t.Stop()

	w.logger.Info().Dur("interval", w.interval).Msg("metrics digest worker started")

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("metrics digest worker stopped")
			return nil
		case <-t.C:
			if err := w.digest(ctx); err != nil {
				w.logger.Err(err).Msg("metrics digest failed")
			}
		}
	}
}

// digest logs the metrics of every user. A user whose metrics cannot be
// computed is skipped.
func (w *MetricsDigestWorker) digest(ctx context.Context) error {
	userIDs, err := w.users.ListUserIDs(ctx)
	if err != nil {
		return fmt.Errorf("error listing users: %w", err)
	}

	for _, userID := range userIDs {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		m, err := w.analytics.ComputeMetrics(ctx, userID)
		if err != nil {
			w.logger.Err(err).Str("user_id", userID).Msg("error computing metrics for digest")
			continue
		}

		w.logger.Info().
			Str("user_id", userID).
			Float64("avg_daily_hours", m.AvgDailyHours).
			Int64("monthly_hours", m.MonthlyHours).
			Int("work_streak", m.WorkStreak).
			Str("monthly_earnings", m.MonthlyEarnings.String()).
			Int64("income_change_percent", m.IncomeChangePercent).
			Float64("hours_change", m.HoursChange).
			Msg("metrics digest")
	}

	return nil
}
