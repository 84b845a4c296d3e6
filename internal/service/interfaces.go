package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-task-tamer/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService registers users, checks credentials and issues tokens.
type AuthService interface {
	// Register returns ErrValidation for an incomplete request and
	// ErrUserAlreadyExists when the username or email is taken.
	Register(ctx context.Context, request models.RegisterRequest) (models.User, error)
	// Login returns ErrInvalidCredentials for an unknown email or a wrong
	// password.
	Login(ctx context.Context, request models.LoginRequest) (models.User, error)
	Me(ctx context.Context, userID string) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// WorkSessionService drives the session lifecycle:
//
//	start -> active <-> paused
//	active|paused -> completed (terminal)
//
// Operations on another user's session report ErrSessionNotFound.
type WorkSessionService interface {
	StartSession(ctx context.Context, userID, taskName string) (models.WorkSession, error)
	// PauseSession is idempotent.
	PauseSession(ctx context.Context, sessionID, userID string) (models.WorkSession, error)
	// ResumeSession keeps the original start time, so paused time counts
	// towards the final duration.
	ResumeSession(ctx context.Context, sessionID, userID string) (models.WorkSession, error)
	// CompleteSession may be repeated; each call recomputes end and duration.
	CompleteSession(ctx context.Context, sessionID, userID string) (models.WorkSession, error)

	GetActiveSession(ctx context.Context, userID string) (models.WorkSession, error)
	// GetCurrentSession returns the newest session that is not completed.
	GetCurrentSession(ctx context.Context, userID string) (models.WorkSession, error)
	GetTodaysSessions(ctx context.Context, userID string) ([]models.WorkSession, error)
	// ListSessions returns every session when dateRange is nil, otherwise the
	// inactive sessions started within it.
	ListSessions(ctx context.Context, userID string, dateRange *models.DateRange) ([]models.WorkSession, error)
	// GetJournal groups sessions per calendar day. A nil dateRange covers
	// the last DefaultJournalSpan ending now.
	GetJournal(ctx context.Context, userID string, dateRange *models.DateRange) ([]models.JournalDay, error)
}

// EarningsService records monthly earnings.
type EarningsService interface {
	UpsertEarnings(ctx context.Context, userID string, request models.EarningsRequest) (models.MonthlyEarnings, error)
	ListEarnings(ctx context.Context, userID string) ([]models.MonthlyEarnings, error)
	GetEarnings(ctx context.Context, userID string, month, year int) (models.MonthlyEarnings, error)
}

// AnalyticsService derives dashboard data.
type AnalyticsService interface {
	ComputeMetrics(ctx context.Context, userID string) (models.Metrics, error)
	// Charts returns series for the last months months (1-24).
	Charts(ctx context.Context, userID string, months int) (models.Charts, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// Clock returns the current time.
type Clock func() time.Time
