package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-task-tamer/internal/config"
	"github.com/MKhiriev/go-task-tamer/internal/logger"
	"github.com/MKhiriev/go-task-tamer/internal/store"
	"github.com/MKhiriev/go-task-tamer/internal/utils"
	"github.com/MKhiriev/go-task-tamer/internal/validators"
	"github.com/MKhiriev/go-task-tamer/models"
)

// authService is the concrete implementation of AuthService.
// Passwords are stored as bcrypt hashes; tokens are HS256 JWTs whose
// subject is the user id.
type authService struct {
	userRepository store.UserRepository
	validator      validators.Validator
	ids            *utils.UUIDGenerator
	clock          Clock

	// bcryptCost is the work factor used for new password hashes.
	bcryptCost int

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, clock Clock, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		validator:      validators.NewRequestValidator(),
		ids:            utils.NewUUIDGenerator(),
		clock:          clock,
		bcryptCost:     cfg.BcryptCost,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Register creates a new account.
//
// Username, email and name are trimmed before they are checked and stored.
// Returns ErrValidation for a malformed request and ErrUserAlreadyExists
// when either the username or the email belongs to another account.
func (a *authService) Register(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	request.Username = strings.TrimSpace(request.Username)
	request.Email = strings.TrimSpace(request.Email)
	request.Name = strings.TrimSpace(request.Name)

	if err := a.validator.Validate(ctx, request); err != nil {
		return models.User{}, validationError(err)
	}

	if taken, err := a.isTaken(ctx, request); err != nil {
		return models.User{}, err
	} else if taken {
		return models.User{}, ErrUserAlreadyExists
	}

	hash, err := utils.HashPassword(request.Password, a.bcryptCost)
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Msg("error hashing password")
		return models.User{}, fmt.Errorf("error hashing password: %w", err)
	}

	user := models.User{
		ID:        a.ids.Generate(),
		Username:  request.Username,
		Email:     request.Email,
		Password:  hash,
		Name:      request.Name,
		CreatedAt: a.clock(),
	}

	created, err := a.userRepository.CreateUser(ctx, user)
	if errors.Is(err, store.ErrUserAlreadyExists) {
		return models.User{}, ErrUserAlreadyExists
	}
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return created, nil
}

// isTaken reports whether the username or the email is already in use.
// The unique constraints still catch a concurrent registration.
func (a *authService) isTaken(ctx context.Context, request models.RegisterRequest) (bool, error) {
	lookups := []func(context.Context, string) (models.User, error){
		a.userRepository.GetUserByUsername,
		a.userRepository.GetUserByEmail,
	}
	values := []string{request.Username, request.Email}

	for i, lookup := range lookups {
		_, err := lookup(ctx, values[i])
		switch {
		case err == nil:
			return true, nil
		case errors.Is(err, store.ErrNoUserWasFound):
			continue
		default:
			return false, fmt.Errorf("user lookup failed: %w", err)
		}
	}

	return false, nil
}

// Login authenticates an existing user by email and password.
// An unknown email and a wrong password both yield ErrInvalidCredentials.
func (a *authService) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	request.Email = strings.TrimSpace(request.Email)
	if err := a.validator.Validate(ctx, request); err != nil {
		return models.User{}, validationError(err)
	}

	user, err := a.userRepository.GetUserByEmail(ctx, request.Email)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = utils.CheckPassword(user.Password, request.Password); err != nil {
		if !errors.Is(err, utils.ErrPasswordMismatch) {
			log.Err(err).Str("user_id", user.ID).Msg("stored password hash is unusable")
		}
		return models.User{}, ErrInvalidCredentials
	}

	return user, nil
}

func (a *authService) Me(ctx context.Context, userID string) (models.User, error) {
	user, err := a.userRepository.GetUser(ctx, userID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("error getting user: %w", err)
	}

	return user, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, a.tokenDuration, a.tokenSignKey, a.clock())
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect
// low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
