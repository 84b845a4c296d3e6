package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-task-tamer/internal/locker"
	"github.com/MKhiriev/go-task-tamer/internal/logger"
	"github.com/MKhiriev/go-task-tamer/internal/metrics"
	"github.com/MKhiriev/go-task-tamer/internal/store"
	"github.com/MKhiriev/go-task-tamer/internal/utils"
	"github.com/MKhiriev/go-task-tamer/internal/validators"
	"github.com/MKhiriev/go-task-tamer/models"
)

// DefaultJournalSpan is the journal range used without explicit dates.
const DefaultJournalSpan = 7 * 24 * time.Hour

// workSessionService is the concrete implementation of WorkSessionService.
//
// Mutations of one user's sessions run under that user's lock, so the
// read-decide-write of each transition is not interleaved with another
// request. The repository's one-active-session check backs the lock when
// several processes share a database without a shared locker.
type workSessionService struct {
	repository store.WorkSessionRepository
	locker     locker.Locker
	validator  validators.Validator
	ids        *utils.UUIDGenerator

	clock Clock
	// location defines calendar days for "today" and the journal.
	location *time.Location

	logger *logger.Logger
}

func NewWorkSessionService(
	repository store.WorkSessionRepository,
	lock locker.Locker,
	clock Clock,
	location *time.Location,
	logger *logger.Logger,
) WorkSessionService {
	return &workSessionService{
		repository: repository,
		locker:     lock,
		validator:  validators.NewRequestValidator(),
		ids:        utils.NewUUIDGenerator(),
		clock:      clock,
		location:   location,
		logger:     logger,
	}
}

func (s *workSessionService) now() time.Time {
	return s.clock().In(s.location)
}

// StartSession creates an active session starting now.
func (s *workSessionService) StartSession(ctx context.Context, userID, taskName string) (models.WorkSession, error) {
	request := models.StartSessionRequest{TaskName: strings.TrimSpace(taskName)}
	if err := s.validator.Validate(ctx, request); err != nil {
		return models.WorkSession{}, validationError(err)
	}

	return s.withUserLock(ctx, userID, func() (models.WorkSession, error) {
		if _, err := s.repository.GetActiveWorkSession(ctx, userID); err == nil {
			return models.WorkSession{}, ErrActiveSessionExists
		} else if !errors.Is(err, store.ErrWorkSessionNotFound) {
			return models.WorkSession{}, fmt.Errorf("error checking active session: %w", err)
		}

		now := s.now()
		session := models.WorkSession{
			ID:        s.ids.Generate(),
			UserID:    userID,
			TaskName:  request.TaskName,
			StartTime: now,
			IsActive:  true,
			CreatedAt: now,
		}

		created, err := s.repository.CreateWorkSession(ctx, session)
		if err != nil {
			return models.WorkSession{}, s.translate(ctx, "StartSession", err)
		}

		logger.FromContext(ctx).Info().
			Str("user_id", userID).
			Str("session_id", created.ID).
			Msg("work session started")

		return created, nil
	})
}

func (s *workSessionService) PauseSession(ctx context.Context, sessionID, userID string) (models.WorkSession, error) {
	return s.withUserLock(ctx, userID, func() (models.WorkSession, error) {
		session, err := s.owned(ctx, sessionID, userID)
		if err != nil {
			return models.WorkSession{}, err
		}
		if !session.IsActive {
			return session, nil
		}

		inactive := false
		return s.update(ctx, "PauseSession", sessionID, models.WorkSessionUpdate{IsActive: &inactive})
	})
}

func (s *workSessionService) ResumeSession(ctx context.Context, sessionID, userID string) (models.WorkSession, error) {
	return s.withUserLock(ctx, userID, func() (models.WorkSession, error) {
		session, err := s.owned(ctx, sessionID, userID)
		if err != nil {
			return models.WorkSession{}, err
		}

		switch session.Status() {
		case models.SessionActive:
			return session, nil
		case models.SessionCompleted:
			return models.WorkSession{}, ErrSessionCompleted
		}

		if _, err = s.repository.GetActiveWorkSession(ctx, userID); err == nil {
			return models.WorkSession{}, ErrActiveSessionExists
		} else if !errors.Is(err, store.ErrWorkSessionNotFound) {
			return models.WorkSession{}, fmt.Errorf("error checking active session: %w", err)
		}

		active := true
		return s.update(ctx, "ResumeSession", sessionID, models.WorkSessionUpdate{IsActive: &active})
	})
}

// CompleteSession stamps the end time and the whole seconds elapsed since
// the start. A clock behind the start time yields a zero-length session.
func (s *workSessionService) CompleteSession(ctx context.Context, sessionID, userID string) (models.WorkSession, error) {
	return s.withUserLock(ctx, userID, func() (models.WorkSession, error) {
		session, err := s.owned(ctx, sessionID, userID)
		if err != nil {
			return models.WorkSession{}, err
		}

		end := s.now()
		if end.Before(session.StartTime) {
			end = session.StartTime
		}
		duration := int64(end.Sub(session.StartTime) / time.Second)
		inactive := false

		completed, err := s.update(ctx, "CompleteSession", sessionID, models.WorkSessionUpdate{
			IsActive: &inactive,
			EndTime:  &end,
			Duration: &duration,
		})
		if err != nil {
			return models.WorkSession{}, err
		}

		logger.FromContext(ctx).Info().
			Str("user_id", userID).
			Str("session_id", sessionID).
			Int64("duration", duration).
			Msg("work session completed")

		return completed, nil
	})
}

func (s *workSessionService) GetActiveSession(ctx context.Context, userID string) (models.WorkSession, error) {
	session, err := s.repository.GetActiveWorkSession(ctx, userID)
	if errors.Is(err, store.ErrWorkSessionNotFound) {
		return models.WorkSession{}, ErrNoActiveSession
	}
	if err != nil {
		return models.WorkSession{}, fmt.Errorf("error getting active session: %w", err)
	}

	return session, nil
}

func (s *workSessionService) GetCurrentSession(ctx context.Context, userID string) (models.WorkSession, error) {
	session, err := s.repository.GetLatestOpenWorkSession(ctx, userID)
	if errors.Is(err, store.ErrWorkSessionNotFound) {
		return models.WorkSession{}, ErrNoActiveSession
	}
	if err != nil {
		return models.WorkSession{}, fmt.Errorf("error getting current session: %w", err)
	}

	return session, nil
}

func (s *workSessionService) GetTodaysSessions(ctx context.Context, userID string) ([]models.WorkSession, error) {
	sessions, err := s.repository.GetTodaysWorkSessions(ctx, userID, s.now())
	if err != nil {
		return nil, fmt.Errorf("error getting today's sessions: %w", err)
	}

	return sessions, nil
}

func (s *workSessionService) ListSessions(ctx context.Context, userID string, dateRange *models.DateRange) ([]models.WorkSession, error) {
	if dateRange == nil {
		sessions, err := s.repository.GetWorkSessionsByUser(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("error listing sessions: %w", err)
		}
		return sessions, nil
	}

	if err := s.validator.Validate(ctx, *dateRange); err != nil {
		return nil, validationError(err)
	}

	sessions, err := s.repository.GetWorkSessionsByDateRange(ctx, userID, *dateRange)
	if err != nil {
		return nil, fmt.Errorf("error listing sessions by date range: %w", err)
	}

	return sessions, nil
}

func (s *workSessionService) GetJournal(ctx context.Context, userID string, dateRange *models.DateRange) ([]models.JournalDay, error) {
	if dateRange == nil {
		end := s.now()
		dateRange = &models.DateRange{Start: end.Add(-DefaultJournalSpan), End: end}
	}

	sessions, err := s.ListSessions(ctx, userID, dateRange)
	if err != nil {
		return nil, err
	}

	return metrics.GroupByDay(sessions, s.location), nil
}

func (s *workSessionService) withUserLock(ctx context.Context, userID string, fn func() (models.WorkSession, error)) (models.WorkSession, error) {
	unlock, err := s.locker.Lock(ctx, locker.UserKey(userID))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", userID).Msg("error acquiring user lock")
		return models.WorkSession{}, fmt.Errorf("error acquiring user lock: %w", err)
	}
	defer unlock()

	return fn()
}

// owned loads the session and hides sessions of other users behind
// ErrSessionNotFound.
func (s *workSessionService) owned(ctx context.Context, sessionID, userID string) (models.WorkSession, error) {
	session, err := s.repository.GetWorkSession(ctx, sessionID)
	if errors.Is(err, store.ErrWorkSessionNotFound) {
		return models.WorkSession{}, ErrSessionNotFound
	}
	if err != nil {
		return models.WorkSession{}, fmt.Errorf("error getting session: %w", err)
	}
	if session.UserID != userID {
		return models.WorkSession{}, ErrSessionNotFound
	}

	return session, nil
}

func (s *workSessionService) update(ctx context.Context, fn, sessionID string, update models.WorkSessionUpdate) (models.WorkSession, error) {
	session, err := s.repository.UpdateWorkSession(ctx, sessionID, update)
	if err != nil {
		return models.WorkSession{}, s.translate(ctx, fn, err)
	}

	return session, nil
}

// translate maps repository errors to service errors.
func (s *workSessionService) translate(ctx context.Context, fn string, err error) error {
	switch {
	case errors.Is(err, store.ErrActiveSessionExists):
		return ErrActiveSessionExists
	case errors.Is(err, store.ErrWorkSessionNotFound):
		return ErrSessionNotFound
	}

	logger.FromContext(ctx).Err(err).Str("func", "*workSessionService."+fn).Msg("work session write failed")
	return fmt.Errorf("work session write failed: %w", err)
}
