// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-task-tamer/internal/config"
	"github.com/MKhiriev/go-task-tamer/internal/logger"
	"github.com/MKhiriev/go-task-tamer/internal/mock"
	"github.com/MKhiriev/go-task-tamer/internal/store"
	"github.com/MKhiriev/go-task-tamer/internal/utils"
	"github.com/MKhiriev/go-task-tamer/models"
)

var testAppConfig = config.App{
	TokenSignKey:  "test-sign-key",
	TokenIssuer:   "task-tamer-test",
	TokenDuration: time.Hour,
	BcryptCost:    bcrypt.MinCost,
}

func newTestAuthSvc(t *testing.T) (AuthService, *mock.MockUserRepository, *fakeClock) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	clock := newFakeClock(time.Now())

	return NewAuthService(repo, testAppConfig, clock.Now, logger.Nop()), repo, clock
}

func validRegisterRequest() models.RegisterRequest {
	return models.RegisterRequest{
		Username: "ann",
		Email:    "ann@example.com",
		Password: "secret-pw",
		Name:     "Ann",
	}
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestAuthService_Register_Success(t *testing.T) {
	svc, repo, _ := newTestAuthSvc(t)
	ctx := context.Background()

	gomock.InOrder(
		repo.EXPECT().GetUserByUsername(ctx, "ann").Return(models.User{}, store.ErrNoUserWasFound),
		repo.EXPECT().GetUserByEmail(ctx, "ann@example.com").Return(models.User{}, store.ErrNoUserWasFound),
		repo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, u models.User) (models.User, error) {
				assert.NotEmpty(t, u.ID)
				assert.NotEqual(t, "secret-pw", u.Password, "password must be hashed")
				assert.NoError(t, utils.CheckPassword(u.Password, "secret-pw"))
				return u, nil
			},
		),
	)

	user, err := svc.Register(ctx, validRegisterRequest())
	require.NoError(t, err)
	assert.Equal(t, "ann", user.Username)
}

func TestAuthService_Register_Taken(t *testing.T) {
	svc, repo, _ := newTestAuthSvc(t)
	ctx := context.Background()

	t.Run("username", func(t *testing.T) {
		repo.EXPECT().GetUserByUsername(ctx, "ann").Return(models.User{ID: "x"}, nil)

		_, err := svc.Register(ctx, validRegisterRequest())
		assert.ErrorIs(t, err, ErrUserAlreadyExists)
		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("email", func(t *testing.T) {
		repo.EXPECT().GetUserByUsername(ctx, "ann").Return(models.User{}, store.ErrNoUserWasFound)
		repo.EXPECT().GetUserByEmail(ctx, "ann@example.com").Return(models.User{ID: "x"}, nil)

		_, err := svc.Register(ctx, validRegisterRequest())
		assert.ErrorIs(t, err, ErrUserAlreadyExists)
	})

	t.Run("concurrent registration hits the unique index", func(t *testing.T) {
		repo.EXPECT().GetUserByUsername(ctx, "ann").Return(models.User{}, store.ErrNoUserWasFound)
		repo.EXPECT().GetUserByEmail(ctx, "ann@example.com").Return(models.User{}, store.ErrNoUserWasFound)
		repo.EXPECT().CreateUser(ctx, gomock.Any()).Return(models.User{}, store.ErrUserAlreadyExists)

		_, err := svc.Register(ctx, validRegisterRequest())
		assert.ErrorIs(t, err, ErrUserAlreadyExists)
	})
}

func TestAuthService_Register_Invalid(t *testing.T) {
	svc, _, _ := newTestAuthSvc(t)

	req := validRegisterRequest()
	req.Password = "123"

	_, err := svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAuthService_Register_LookupError(t *testing.T) {
	svc, repo, _ := newTestAuthSvc(t)
	ctx := context.Background()

	repo.EXPECT().GetUserByUsername(ctx, "ann").Return(models.User{}, errors.New("db down"))

	_, err := svc.Register(ctx, validRegisterRequest())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrConflict)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login(t *testing.T) {
	svc, repo, _ := newTestAuthSvc(t)
	ctx := context.Background()

	hash, err := utils.HashPassword("secret-pw", bcrypt.MinCost)
	require.NoError(t, err)
	stored := models.User{ID: "u1", Email: "ann@example.com", Password: hash}

	t.Run("success", func(t *testing.T) {
		repo.EXPECT().GetUserByEmail(ctx, "ann@example.com").Return(stored, nil)

		user, err := svc.Login(ctx, models.LoginRequest{Email: " ann@example.com ", Password: "secret-pw"})
		require.NoError(t, err)
		assert.Equal(t, "u1", user.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		repo.EXPECT().GetUserByEmail(ctx, "ann@example.com").Return(stored, nil)

		_, err := svc.Login(ctx, models.LoginRequest{Email: "ann@example.com", Password: "nope"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		repo.EXPECT().GetUserByEmail(ctx, "bob@example.com").Return(models.User{}, store.ErrNoUserWasFound)

		_, err := svc.Login(ctx, models.LoginRequest{Email: "bob@example.com", Password: "secret-pw"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("missing password", func(t *testing.T) {
		_, err := svc.Login(ctx, models.LoginRequest{Email: "bob@example.com"})
		assert.ErrorIs(t, err, ErrValidation)
	})
}

// ── Me ───────────────────────────────────────────────────────────────────────

func TestAuthService_Me(t *testing.T) {
	svc, repo, _ := newTestAuthSvc(t)
	ctx := context.Background()

	repo.EXPECT().GetUser(ctx, "u1").Return(models.User{ID: "u1"}, nil)
	repo.EXPECT().GetUser(ctx, "gone").Return(models.User{}, store.ErrNoUserWasFound)

	user, err := svc.Me(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)

	_, err = svc.Me(ctx, "gone")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

// ── tokens ───────────────────────────────────────────────────────────────────

func TestAuthService_TokenRoundTrip(t *testing.T) {
	svc, _, _ := newTestAuthSvc(t)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{ID: "u1"})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "u1", parsed.UserID)
}

func TestAuthService_ParseToken_Rejects(t *testing.T) {
	svc, _, clock := newTestAuthSvc(t)
	ctx := context.Background()

	other := NewAuthService(nil, config.App{TokenSignKey: "other", TokenIssuer: testAppConfig.TokenIssuer, TokenDuration: time.Hour}, time.Now, logger.Nop())
	foreign, err := other.CreateToken(ctx, models.User{ID: "u1"})
	require.NoError(t, err)

	clock.Set(time.Now().Add(-2 * time.Hour))
	expired, err := svc.CreateToken(ctx, models.User{ID: "u1"})
	require.NoError(t, err)

	for name, raw := range map[string]string{
		"garbage":    "not-a-jwt",
		"wrong key":  foreign.SignedString,
		"expired":    expired.SignedString,
		"empty user": "",
	} {
		_, err := svc.ParseToken(ctx, raw)
		assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid, name)
	}
}

func TestAuthService_CreateToken_NoUserID(t *testing.T) {
	svc, _, _ := newTestAuthSvc(t)

	_, err := svc.CreateToken(context.Background(), models.User{})
	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}
