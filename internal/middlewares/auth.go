package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/saved-locations/internal/logger"
	"github.com/sbilibin2017/saved-locations/internal/models"
)

// TokenExtractor pulls the access token out of an incoming request.
type TokenExtractor interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
}

// Authenticator resolves an access token to its user.
type Authenticator interface {
	Authenticate(ctx context.Context, accessToken string) (*models.UserDB, error)
}

// contextKey is an unexported type for keys in context
type contextKey struct{}

var userKey = contextKey{}

// SetUserToContext stores the authenticated user in the context.
func SetUserToContext(ctx context.Context, user *models.UserDB) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// GetUserFromContext retrieves the authenticated user from the context.
// Returns nil if not present.
func GetUserFromContext(ctx context.Context) *models.UserDB {
	user, _ := ctx.Value(userKey).(*models.UserDB)
	return user
}

// AuthMiddleware returns a middleware that resolves the bearer token to a user
// and attaches it to the request context. Requests without a resolvable token
// are answered with 401 and never reach the next handler. The response does
// not say whether the token was missing or unknown.
func AuthMiddleware(tokens TokenExtractor, auth Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokens.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(models.Fail("unauthorized"))
				return
			}

			user, err := auth.Authenticate(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(models.Fail("unauthorized"))
				return
			}

			next.ServeHTTP(w, r.WithContext(SetUserToContext(ctx, user)))
		})
	}
}
