package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-task-tamer/internal/logger"
	"github.com/MKhiriev/go-task-tamer/internal/metrics"
	"github.com/MKhiriev/go-task-tamer/internal/store"
	"github.com/MKhiriev/go-task-tamer/models"
)

// MaxChartMonths bounds the length of chart series.
const MaxChartMonths = 24

var ErrInvalidChartMonths = fmt.Errorf("months must be between 1 and %d", MaxChartMonths)

// analyticsService recomputes everything from the full history of the user
// on each call.
type analyticsService struct {
	sessions store.WorkSessionRepository
	earnings store.EarningsRepository
	clock    Clock
	location *time.Location
	logger   *logger.Logger
}

func NewAnalyticsService(
	sessions store.WorkSessionRepository,
	earnings store.EarningsRepository,
	clock Clock,
	location *time.Location,
	logger *logger.Logger,
) AnalyticsService {
	return &analyticsService{
		sessions: sessions,
		earnings: earnings,
		clock:    clock,
		location: location,
		logger:   logger,
	}
}

func (s *analyticsService) ComputeMetrics(ctx context.Context, userID string) (models.Metrics, error) {
	sessions, earnings, err := s.load(ctx, userID)
	if err != nil {
		return models.Metrics{}, err
	}

	return metrics.Compute(sessions, earnings, s.clock().In(s.location)), nil
}

// Charts treats months == 0 as the default length.
func (s *analyticsService) Charts(ctx context.Context, userID string, months int) (models.Charts, error) {
	if months == 0 {
		months = metrics.DefaultChartMonths
	}
	if months < 1 || months > MaxChartMonths {
		return models.Charts{}, validationError(ErrInvalidChartMonths)
	}

	sessions, earnings, err := s.load(ctx, userID)
	if err != nil {
		return models.Charts{}, err
	}

	now := s.clock().In(s.location)
	return models.Charts{
		Hours:    metrics.MonthlyHoursSeries(sessions, now, months),
		Earnings: metrics.MonthlyEarningsSeries(earnings, now, months),
	}, nil
}

func (s *analyticsService) load(ctx context.Context, userID string) ([]models.WorkSession, []models.MonthlyEarnings, error) {
	sessions, err := s.sessions.GetWorkSessionsByUser(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", userID).Msg("error loading sessions for analytics")
		return nil, nil, fmt.Errorf("error loading sessions: %w", err)
	}

	earnings, err := s.earnings.GetMonthlyEarningsByUser(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", userID).Msg("error loading earnings for analytics")
		return nil, nil, fmt.Errorf("error loading earnings: %w", err)
	}

	return sessions, earnings, nil
}
