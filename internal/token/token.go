package token

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"net/http"
)

// entropyBytes is the amount of randomness in a generated access token.
// Collisions are not checked; 128 bytes makes them practically impossible.
const entropyBytes = 128

// ErrMissingToken is returned when a request carries no Authorization header.
var ErrMissingToken = errors.New("authorization header missing")

// Generator issues and extracts opaque access tokens.
// Tokens are plain high-entropy random strings stored on the user record;
// they carry no claims and never expire.
type Generator struct{}

// New creates a new token Generator.
func New() *Generator {
	return &Generator{}
}

// Generate returns a fresh random access token as a hex string.
func (g *Generator) Generate(ctx context.Context) (string, error) {
	buf := make([]byte, entropyBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// GetTokenFromRequest extracts the access token from the Authorization header.
// The header carries the raw token with no scheme prefix.
func (g *Generator) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrMissingToken
	}
	return authHeader, nil
}
