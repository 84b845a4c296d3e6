package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-task-tamer/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser stores user as given; ErrUserAlreadyExists on a username
	// or email collision.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// GetUser returns ErrNoUserWasFound for an unknown id.
	GetUser(ctx context.Context, id string) (models.User, error)
	GetUserByEmail(ctx context.Context, email string) (models.User, error)
	GetUserByUsername(ctx context.Context, username string) (models.User, error)
	// ListUserIDs returns every user id, oldest account first.
	ListUserIDs(ctx context.Context) ([]string, error)
}

// WorkSessionRepository persists work sessions. Implementations reject any
// write that would give a user a second active session with
// ErrActiveSessionExists.
type WorkSessionRepository interface {
	CreateWorkSession(ctx context.Context, session models.WorkSession) (models.WorkSession, error)
	// UpdateWorkSession writes the non-nil fields of update and returns the
	// resulting session; ErrWorkSessionNotFound for an unknown id.
	UpdateWorkSession(ctx context.Context, id string, update models.WorkSessionUpdate) (models.WorkSession, error)
	GetWorkSession(ctx context.Context, id string) (models.WorkSession, error)
	// GetWorkSessionsByUser returns all sessions of the user, newest start first.
	GetWorkSessionsByUser(ctx context.Context, userID string) ([]models.WorkSession, error)
	// GetActiveWorkSession returns ErrWorkSessionNotFound when the user has
	// no active session.
	GetActiveWorkSession(ctx context.Context, userID string) (models.WorkSession, error)
	// GetLatestOpenWorkSession returns the newest session without an end
	// time, active or paused.
	GetLatestOpenWorkSession(ctx context.Context, userID string) (models.WorkSession, error)
	// GetTodaysWorkSessions returns the inactive sessions started on the
	// calendar day of now (in now's location), oldest first.
	GetTodaysWorkSessions(ctx context.Context, userID string, now time.Time) ([]models.WorkSession, error)
	// GetWorkSessionsByDateRange returns the inactive sessions started within
	// the inclusive range, newest first.
	GetWorkSessionsByDateRange(ctx context.Context, userID string, dateRange models.DateRange) ([]models.WorkSession, error)
}

// EarningsRepository persists monthly earnings.
type EarningsRepository interface {
	// CreateMonthlyEarnings returns ErrEarningsAlreadyExist when the period
	// is taken.
	CreateMonthlyEarnings(ctx context.Context, earnings models.MonthlyEarnings) (models.MonthlyEarnings, error)
	// UpsertMonthlyEarnings inserts earnings, or replaces only the amount of
	// the existing record for the same (user, month, year), keeping its id.
	UpsertMonthlyEarnings(ctx context.Context, earnings models.MonthlyEarnings) (models.MonthlyEarnings, error)
	// GetMonthlyEarnings returns ErrEarningsNotFound for an empty period.
	GetMonthlyEarnings(ctx context.Context, userID string, month, year int) (models.MonthlyEarnings, error)
	// GetMonthlyEarningsByUser returns records newest period first.
	GetMonthlyEarningsByUser(ctx context.Context, userID string) ([]models.MonthlyEarnings, error)
}

// dayBounds returns [start of now's day, start of the next day) in now's
// location.
func dayBounds(now time.Time) (time.Time, time.Time) {
	y, m, d := now.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, now.Location())

	return start, start.AddDate(0, 0, 1)
}
