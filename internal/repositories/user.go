package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/saved-locations/internal/logger"
	"github.com/sbilibin2017/saved-locations/internal/models"
)

// UserReadRepository handles user read operations
type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByUsername returns the user with the exact username, or nil if absent.
func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.UserDB, error) {
	const query = `
		SELECT user_id, username, password_hash, access_token, created_at, updated_at
		FROM users
		WHERE username = $1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, username)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

// GetByAccessToken returns the user holding the exact access token, or nil if absent.
func (r *UserReadRepository) GetByAccessToken(ctx context.Context, accessToken string) (*models.UserDB, error) {
	const query = `
		SELECT user_id, username, password_hash, access_token, created_at, updated_at
		FROM users
		WHERE access_token = $1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, accessToken)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

// UserWriteRepository handles user write operations
type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a new user and returns the stored record.
// The unique constraint on username surfaces as an error from the driver.
func (r *UserWriteRepository) Save(ctx context.Context, username, passwordHash, accessToken string) (*models.UserDB, error) {
	const query = `
		INSERT INTO users (username, password_hash, access_token, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING user_id, username, password_hash, access_token, created_at, updated_at
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, username, passwordHash, accessToken)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username},
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &user, nil
}
