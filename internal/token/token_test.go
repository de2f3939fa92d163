package token

import (
	"context"
	"encoding/hex"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate(t *testing.T) {
	g := New()
	ctx := context.Background()

	tok, err := g.Generate(ctx)
	assert.NoError(t, err)

	raw, err := hex.DecodeString(tok)
	assert.NoError(t, err)
	assert.Len(t, raw, entropyBytes)
}

func TestGenerate_Unique(t *testing.T) {
	g := New()
	ctx := context.Background()

	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		tok, err := g.Generate(ctx)
		assert.NoError(t, err)

		_, dup := seen[tok]
		assert.False(t, dup, "token generated twice")
		seen[tok] = struct{}{}
	}
}

func TestGetTokenFromRequest(t *testing.T) {
	g := New()
	ctx := context.Background()

	t.Run("RawToken", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/locations", nil)
		req.Header.Set("Authorization", "sometoken")

		tok, err := g.GetTokenFromRequest(ctx, req)
		assert.NoError(t, err)
		assert.Equal(t, "sometoken", tok)
	})

	t.Run("MissingHeader", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/locations", nil)

		tok, err := g.GetTokenFromRequest(ctx, req)
		assert.ErrorIs(t, err, ErrMissingToken)
		assert.Empty(t, tok)
	})
}
