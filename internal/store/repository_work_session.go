// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-task-tamer/internal/logger"
	"github.com/MKhiriev/go-task-tamer/models"
)

// workSessionRepository is the SQL implementation of
// [WorkSessionRepository] over the "work_sessions" table. The partial unique
// index on (user_id) WHERE is_active turns every write that would create a
// second active session into a unique violation.
type workSessionRepository struct {
	*DB
	logger *logger.Logger
}

// NewWorkSessionRepository constructs a [WorkSessionRepository] backed by db.
func NewWorkSessionRepository(db *DB, logger *logger.Logger) WorkSessionRepository {
	logger.Debug().Msg("creating work session repository")
	return &workSessionRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *workSessionRepository) CreateWorkSession(ctx context.Context, session models.WorkSession) (models.WorkSession, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Insert("work_sessions").
		Columns(workSessionColumns...).
		Values(workSessionValues(session)...).
		ToSql()
	if err != nil {
		return models.WorkSession{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		classification := r.classify(err)
		log.Err(err).
			Str("func", "*workSessionRepository.CreateWorkSession").
			Str("user_id", session.UserID).
			Stringer("classification", classification).
			Msg("error inserting work session")

		if classification == UniqueViolation {
			return models.WorkSession{}, ErrActiveSessionExists
		}
		return models.WorkSession{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return session, nil
}

func (r *workSessionRepository) UpdateWorkSession(ctx context.Context, id string, update models.WorkSessionUpdate) (models.WorkSession, error) {
	if update.IsEmpty() {
		return r.GetWorkSession(ctx, id)
	}

	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Update("work_sessions").
		SetMap(workSessionSetMap(update)).
		Where(sq.Eq{"id": id}).
		Suffix(returningWorkSession).
		ToSql()
	if err != nil {
		return models.WorkSession{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	session, err := scanWorkSession(r.QueryRowContext(ctx, query, args...))
	switch {
	case err == nil:
		return session, nil
	case errors.Is(err, sql.ErrNoRows):
		return models.WorkSession{}, ErrWorkSessionNotFound
	case r.classify(err) == UniqueViolation:
		return models.WorkSession{}, ErrActiveSessionExists
	default:
		log.Err(err).
			Str("func", "*workSessionRepository.UpdateWorkSession").
			Str("session_id", id).
			Msg("error updating work session")
		return models.WorkSession{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}

func (r *workSessionRepository) GetWorkSession(ctx context.Context, id string) (models.WorkSession, error) {
	return r.getOne(ctx, "*workSessionRepository.GetWorkSession",
		r.selectSessions().Where(sq.Eq{"id": id}))
}

func (r *workSessionRepository) GetActiveWorkSession(ctx context.Context, userID string) (models.WorkSession, error) {
	return r.getOne(ctx, "*workSessionRepository.GetActiveWorkSession",
		r.selectSessions().
			Where(sq.Eq{"user_id": userID}).
			Where(sq.Eq{"is_active": true}).
			Limit(1))
}

func (r *workSessionRepository) GetLatestOpenWorkSession(ctx context.Context, userID string) (models.WorkSession, error) {
	return r.getOne(ctx, "*workSessionRepository.GetLatestOpenWorkSession",
		r.selectSessions().
			Where(sq.Eq{"user_id": userID}).
			Where(sq.Eq{"end_time": nil}).
			OrderBy("start_time DESC").
			Limit(1))
}

func (r *workSessionRepository) GetWorkSessionsByUser(ctx context.Context, userID string) ([]models.WorkSession, error) {
	return r.getMany(ctx, "*workSessionRepository.GetWorkSessionsByUser",
		r.selectSessions().
			Where(sq.Eq{"user_id": userID}).
			OrderBy("start_time DESC"))
}

func (r *workSessionRepository) GetTodaysWorkSessions(ctx context.Context, userID string, now time.Time) ([]models.WorkSession, error) {
	start, end := dayBounds(now)

	return r.getMany(ctx, "*workSessionRepository.GetTodaysWorkSessions",
		r.selectSessions().
			Where(sq.Eq{"user_id": userID}).
			Where(sq.Eq{"is_active": false}).
			Where(sq.GtOrEq{"start_time": dbTime(start)}).
			Where(sq.Lt{"start_time": dbTime(end)}).
			OrderBy("start_time ASC"))
}

func (r *workSessionRepository) GetWorkSessionsByDateRange(ctx context.Context, userID string, dateRange models.DateRange) ([]models.WorkSession, error) {
	return r.getMany(ctx, "*workSessionRepository.GetWorkSessionsByDateRange",
		r.selectSessions().
			Where(sq.Eq{"user_id": userID}).
			Where(sq.Eq{"is_active": false}).
			Where(sq.GtOrEq{"start_time": dbTime(dateRange.Start)}).
			Where(sq.LtOrEq{"start_time": dbTime(dateRange.End)}).
			OrderBy("start_time DESC"))
}

func (r *workSessionRepository) selectSessions() sq.SelectBuilder {
	return r.builder.Select(workSessionColumns...).From("work_sessions")
}

func (r *workSessionRepository) getOne(ctx context.Context, fn string, b sq.SelectBuilder) (models.WorkSession, error) {
	log := logger.FromContext(ctx)

	query, args, err := b.ToSql()
	if err != nil {
		return models.WorkSession{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	session, err := scanWorkSession(r.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.WorkSession{}, ErrWorkSessionNotFound
	}
	if err != nil {
		log.Err(err).Str("func", fn).Msg("error getting work session")
		return models.WorkSession{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return session, nil
}

func (r *workSessionRepository) getMany(ctx context.Context, fn string, b sq.SelectBuilder) ([]models.WorkSession, error) {
	log := logger.FromContext(ctx)

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to execute query for work sessions")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	sessions := make([]models.WorkSession, 0, 32)
	for rows.Next() {
		session, scanErr := scanWorkSession(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", fn).Msg("failed to scan work session row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		sessions = append(sessions, session)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", fn).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return sessions, nil
}
