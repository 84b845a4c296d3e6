// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client side of the task-tamer REST API used by the
// tamer CLI.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] regardless of the
// transport (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-task-tamer/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// ServerAdapter defines communication with the task-tamer server.
// Implementations handle serialisation, the bearer token, and mapping
// transport errors to the sentinel values of this package.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)
	Token() string

	// Register creates an account and stores the returned token.
	Register(ctx context.Context, request models.RegisterRequest) (models.User, error)
	// Login authenticates and stores the returned token.
	Login(ctx context.Context, request models.LoginRequest) (models.User, error)
	Me(ctx context.Context) (models.User, error)

	StartSession(ctx context.Context, taskName string) (models.WorkSession, error)
	PauseSession(ctx context.Context, sessionID string) (models.WorkSession, error)
	ResumeSession(ctx context.Context, sessionID string) (models.WorkSession, error)
	CompleteSession(ctx context.Context, sessionID string) (models.WorkSession, error)
	// ActiveSession returns nil when no session is running.
	ActiveSession(ctx context.Context) (*models.WorkSession, error)
	// CurrentSession returns nil when every session is completed.
	CurrentSession(ctx context.Context) (*models.WorkSession, error)
	TodaysSessions(ctx context.Context) ([]models.WorkSession, error)
	// ListSessions returns every session when dateRange is nil.
	ListSessions(ctx context.Context, dateRange *models.DateRange) ([]models.WorkSession, error)
	// Journal uses the server's default range when dateRange is nil.
	Journal(ctx context.Context, dateRange *models.DateRange) ([]models.JournalDay, error)

	UpsertEarnings(ctx context.Context, request models.EarningsRequest) (models.MonthlyEarnings, error)
	ListEarnings(ctx context.Context) ([]models.MonthlyEarnings, error)

	Metrics(ctx context.Context) (models.Metrics, error)
	// Charts asks for months months; zero lets the server pick.
	Charts(ctx context.Context, months int) (models.Charts, error)

	Version(ctx context.Context) (string, error)
}
