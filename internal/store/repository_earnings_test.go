package store

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-task-tamer/internal/logger"
	"github.com/MKhiriev/go-task-tamer/models"
)

var earningsRowColumns = []string{"id", "user_id", "month", "year", "amount_cents", "created_at"}

func TestUpsertMonthlyEarnings_KeepsExistingID(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewEarningsRepository(db, logger.Nop())

	created := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	in := models.MonthlyEarnings{
		ID:        "new-id",
		UserID:    "u-1",
		Month:     3,
		Year:      2026,
		Amount:    models.FromUnits(1500),
		CreatedAt: created,
	}

	mock.ExpectQuery(`INSERT INTO monthly_earnings (.+) ON CONFLICT \(user_id, month, year\) DO UPDATE SET amount_cents = excluded.amount_cents RETURNING`).
		WithArgs("new-id", "u-1", 3, 2026, int64(150000), created).
		WillReturnRows(sqlmock.NewRows(earningsRowColumns).
			AddRow("old-id", "u-1", 3, 2026, int64(150000), created))

	got, err := repo.UpsertMonthlyEarnings(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "old-id", got.ID)
	assert.Equal(t, models.FromUnits(1500), got.Amount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateMonthlyEarnings_Duplicate(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewEarningsRepository(db, logger.Nop())

	mock.ExpectExec("INSERT INTO monthly_earnings").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateMonthlyEarnings(context.Background(), models.MonthlyEarnings{ID: "e", UserID: "u-1", Month: 1, Year: 2026})
	assert.ErrorIs(t, err, ErrEarningsAlreadyExist)
}

func TestGetMonthlyEarnings(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewEarningsRepository(db, logger.Nop())

		mock.ExpectQuery(`WHERE user_id = \$1 AND month = \$2 AND year = \$3`).
			WithArgs("u-1", 2, 2026).
			WillReturnRows(sqlmock.NewRows(earningsRowColumns).
				AddRow("e-1", "u-1", 2, 2026, int64(123456), time.Now()))

		got, err := repo.GetMonthlyEarnings(context.Background(), "u-1", 2, 2026)
		require.NoError(t, err)
		assert.Equal(t, "1234.56", got.Amount.String())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewEarningsRepository(db, logger.Nop())

		mock.ExpectQuery("SELECT (.+) FROM monthly_earnings").WillReturnError(sql.ErrNoRows)

		_, err := repo.GetMonthlyEarnings(context.Background(), "u-1", 2, 2026)
		assert.ErrorIs(t, err, ErrEarningsNotFound)
	})
}

func TestGetMonthlyEarningsByUser(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewEarningsRepository(db, logger.Nop())
	now := time.Now()

	mock.ExpectQuery(`WHERE user_id = \$1 ORDER BY year DESC, month DESC`).
		WithArgs("u-1").
		WillReturnRows(sqlmock.NewRows(earningsRowColumns).
			AddRow("e-2", "u-1", 2, 2026, int64(100), now).
			AddRow("e-1", "u-1", 12, 2025, int64(200), now))

	got, err := repo.GetMonthlyEarningsByUser(context.Background(), "u-1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "e-2", got[0].ID)
	assert.Equal(t, models.Money(200), got[1].Amount)
}
