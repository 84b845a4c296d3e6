package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-task-tamer/internal/logger"
	"github.com/MKhiriev/go-task-tamer/models"
)

// earningsRepository is the SQL implementation of [EarningsRepository] over
// the "monthly_earnings" table.
type earningsRepository struct {
	*DB
	logger *logger.Logger
}

// NewEarningsRepository constructs an [EarningsRepository] backed by db.
func NewEarningsRepository(db *DB, logger *logger.Logger) EarningsRepository {
	logger.Debug().Msg("creating earnings repository")
	return &earningsRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *earningsRepository) insert(e models.MonthlyEarnings) sq.InsertBuilder {
	return r.builder.
		Insert("monthly_earnings").
		Columns(earningsColumns...).
		Values(e.ID, e.UserID, e.Month, e.Year, e.Amount.Cents(), dbTime(e.CreatedAt))
}

func (r *earningsRepository) CreateMonthlyEarnings(ctx context.Context, earnings models.MonthlyEarnings) (models.MonthlyEarnings, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.insert(earnings).ToSql()
	if err != nil {
		return models.MonthlyEarnings{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		if r.classify(err) == UniqueViolation {
			return models.MonthlyEarnings{}, ErrEarningsAlreadyExist
		}
		log.Err(err).
			Str("func", "*earningsRepository.CreateMonthlyEarnings").
			Str("user_id", earnings.UserID).
			Msg("error inserting monthly earnings")
		return models.MonthlyEarnings{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return earnings, nil
}

// UpsertMonthlyEarnings relies on ON CONFLICT (user_id, month, year) so the
// read-decide-write happens inside a single statement.
func (r *earningsRepository) UpsertMonthlyEarnings(ctx context.Context, earnings models.MonthlyEarnings) (models.MonthlyEarnings, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.insert(earnings).Suffix(upsertEarningsSuffix).ToSql()
	if err != nil {
		return models.MonthlyEarnings{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	saved, err := scanEarnings(r.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).
			Str("func", "*earningsRepository.UpsertMonthlyEarnings").
			Str("user_id", earnings.UserID).
			Int("month", earnings.Month).
			Int("year", earnings.Year).
			Msg("error upserting monthly earnings")
		return models.MonthlyEarnings{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return saved, nil
}

func (r *earningsRepository) GetMonthlyEarnings(ctx context.Context, userID string, month, year int) (models.MonthlyEarnings, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Select(earningsColumns...).
		From("monthly_earnings").
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Eq{"month": month}).
		Where(sq.Eq{"year": year}).
		ToSql()
	if err != nil {
		return models.MonthlyEarnings{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	earnings, err := scanEarnings(r.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.MonthlyEarnings{}, ErrEarningsNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*earningsRepository.GetMonthlyEarnings").Msg("error getting monthly earnings")
		return models.MonthlyEarnings{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return earnings, nil
}

func (r *earningsRepository) GetMonthlyEarningsByUser(ctx context.Context, userID string) ([]models.MonthlyEarnings, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Select(earningsColumns...).
		From("monthly_earnings").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("year DESC", "month DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*earningsRepository.GetMonthlyEarningsByUser").Msg("failed to query monthly earnings")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	result := make([]models.MonthlyEarnings, 0, 12)
	for rows.Next() {
		e, scanErr := scanEarnings(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		result = append(result, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return result, nil
}
