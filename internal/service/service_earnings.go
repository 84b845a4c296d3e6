package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-task-tamer/internal/logger"
	"github.com/MKhiriev/go-task-tamer/internal/store"
	"github.com/MKhiriev/go-task-tamer/internal/utils"
	"github.com/MKhiriev/go-task-tamer/internal/validators"
	"github.com/MKhiriev/go-task-tamer/models"
)

type earningsService struct {
	repository store.EarningsRepository
	validator  validators.Validator
	ids        *utils.UUIDGenerator
	clock      Clock
	logger     *logger.Logger
}

func NewEarningsService(repository store.EarningsRepository, clock Clock, logger *logger.Logger) EarningsService {
	return &earningsService{
		repository: repository,
		validator:  validators.NewRequestValidator(),
		ids:        utils.NewUUIDGenerator(),
		clock:      clock,
		logger:     logger,
	}
}

// UpsertEarnings stores the amount for the request's month. An existing
// record for the same month keeps its id and creation time.
func (s *earningsService) UpsertEarnings(ctx context.Context, userID string, request models.EarningsRequest) (models.MonthlyEarnings, error) {
	if err := s.validator.Validate(ctx, request); err != nil {
		return models.MonthlyEarnings{}, validationError(err)
	}

	saved, err := s.repository.UpsertMonthlyEarnings(ctx, models.MonthlyEarnings{
		ID:        s.ids.Generate(),
		UserID:    userID,
		Month:     request.Month,
		Year:      request.Year,
		Amount:    request.Amount,
		CreatedAt: s.clock(),
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("user_id", userID).
			Int("month", request.Month).
			Int("year", request.Year).
			Msg("error saving monthly earnings")
		return models.MonthlyEarnings{}, fmt.Errorf("error saving monthly earnings: %w", err)
	}

	return saved, nil
}

func (s *earningsService) ListEarnings(ctx context.Context, userID string) ([]models.MonthlyEarnings, error) {
	earnings, err := s.repository.GetMonthlyEarningsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing monthly earnings: %w", err)
	}

	return earnings, nil
}

func (s *earningsService) GetEarnings(ctx context.Context, userID string, month, year int) (models.MonthlyEarnings, error) {
	if err := s.validator.Validate(ctx, models.EarningsRequest{Month: month, Year: year}, validators.FieldMonth, validators.FieldYear); err != nil {
		return models.MonthlyEarnings{}, validationError(err)
	}

	earnings, err := s.repository.GetMonthlyEarnings(ctx, userID, month, year)
	if errors.Is(err, store.ErrEarningsNotFound) {
		return models.MonthlyEarnings{}, ErrEarningsNotFound
	}
	if err != nil {
		return models.MonthlyEarnings{}, fmt.Errorf("error getting monthly earnings: %w", err)
	}

	return earnings, nil
}
