package services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/saved-locations/internal/logger"
	"github.com/sbilibin2017/saved-locations/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// minPasswordLen is the minimum accepted password length.
const minPasswordLen = 8

// Error variables
var (
	ErrPasswordTooShort   = errors.New("password too short")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUnauthorized       = errors.New("unauthorized")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
	GetByAccessToken(ctx context.Context, accessToken string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username, passwordHash, accessToken string) (*models.UserDB, error)
}

// TokenGenerator issues opaque access tokens.
type TokenGenerator interface {
	Generate(ctx context.Context) (string, error)
}

// AuthCache caches access-token to user resolutions.
type AuthCache interface {
	GetUserByToken(ctx context.Context, accessToken string) (*models.UserDB, error)
	SetUserByToken(ctx context.Context, accessToken string, user *models.UserDB) error
}

// AuthService handles registration, sign-in and token resolution.
type AuthService struct {
	reader UserReader
	writer UserWriter
	tokens TokenGenerator
	cache  AuthCache
}

// NewAuthService creates a new AuthService instance.
// cache may be nil, in which case every token resolution hits the store.
func NewAuthService(reader UserReader, writer UserWriter, tokens TokenGenerator, cache AuthCache) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		tokens: tokens,
		cache:  cache,
	}
}

// Register creates a new user with a freshly generated access token
// and returns its public projection.
func (svc *AuthService) Register(ctx context.Context, username, password string) (*models.UserPublic, error) {
	if len(password) < minPasswordLen {
		logger.Log.Errorw("password too short", "username", username)
		return nil, ErrPasswordTooShort
	}

	existing, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, err
	}
	if existing != nil {
		logger.Log.Errorw("user already exists", "username", username)
		return nil, ErrUsernameTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	accessToken, err := svc.tokens.Generate(ctx)
	if err != nil {
		logger.Log.Errorw("failed to generate access token", "err", err)
		return nil, err
	}

	user, err := svc.writer.Save(ctx, username, string(hashedPassword), accessToken)
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	return user.Public(), nil
}

// SignIn verifies the credentials and returns the user's public projection.
// Wrong username or password is a normal negative outcome, reported as
// ErrInvalidCredentials; only store failures are returned as other errors.
func (svc *AuthService) SignIn(ctx context.Context, username, password string) (*models.UserPublic, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil {
		logger.Log.Infow("sign-in for unknown user", "username", username)
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Infow("invalid credentials", "username", username)
		return nil, ErrInvalidCredentials
	}

	return user.Public(), nil
}

// Authenticate resolves an access token to its user.
// A missing or unknown token yields ErrUnauthorized; nothing distinguishes
// the two cases for the caller.
func (svc *AuthService) Authenticate(ctx context.Context, accessToken string) (*models.UserDB, error) {
	if accessToken == "" {
		return nil, ErrUnauthorized
	}

	if svc.cache != nil {
		if user, err := svc.cache.GetUserByToken(ctx, accessToken); err == nil {
			return user, nil
		}
	}

	user, err := svc.reader.GetByAccessToken(ctx, accessToken)
	if err != nil {
		logger.Log.Errorw("failed to resolve access token", "err", err)
		return nil, ErrUnauthorized
	}
	if user == nil {
		return nil, ErrUnauthorized
	}

	if svc.cache != nil {
		if err := svc.cache.SetUserByToken(ctx, accessToken, user); err != nil {
			logger.Log.Errorw("failed to cache resolved token", "err", err)
		}
	}

	return user, nil
}
