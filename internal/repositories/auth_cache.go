package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/saved-locations/internal/logger"
	"github.com/sbilibin2017/saved-locations/internal/models"
)

// ErrTokenNotCached is returned when an access token has no cached user.
var ErrTokenNotCached = errors.New("access token not found in cache")

// AuthCacheRepository caches access-token to user resolutions in Redis.
// PostgreSQL stays the source of truth; entries expire after the configured TTL.
type AuthCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

// NewAuthCacheRepository creates a new repository instance with the given TTL.
func NewAuthCacheRepository(client *redis.Client, expiration time.Duration) *AuthCacheRepository {
	return &AuthCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func authCacheKey(accessToken string) string {
	return fmt.Sprintf("auth_token:%s", accessToken)
}

// GetUserByToken fetches the cached user for an access token.
func (r *AuthCacheRepository) GetUserByToken(ctx context.Context, accessToken string) (*models.UserDB, error) {
	key := authCacheKey(accessToken)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow("auth cache miss",
			"key", key,
			"error", err,
		)
		if errors.Is(err, redis.Nil) {
			return nil, ErrTokenNotCached
		}
		return nil, err
	}

	var user models.UserDB
	if err := json.Unmarshal([]byte(val), &user); err != nil {
		logger.Log.Errorw("failed to decode cached user",
			"key", key,
			"error", err,
		)
		return nil, err
	}

	logger.Log.Infow("auth cache hit", "key", key)

	return &user, nil
}

// SetUserByToken caches the user under its access token with expiration.
func (r *AuthCacheRepository) SetUserByToken(ctx context.Context, accessToken string, user *models.UserDB) error {
	key := authCacheKey(accessToken)

	data, err := json.Marshal(user)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow("auth cache set",
		"key", key,
		"error", err,
	)

	return err
}
