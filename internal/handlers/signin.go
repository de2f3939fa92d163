package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/saved-locations/internal/logger"
	"github.com/sbilibin2017/saved-locations/internal/models"
	"github.com/sbilibin2017/saved-locations/internal/services"
)

// SignIner defines the interface that the sign-in service must implement.
type SignIner interface {
	SignIn(ctx context.Context, username, password string) (*models.UserPublic, error)
}

// SigninRequest represents the JSON body for user sign-in
// swagger:model SigninRequest
type SigninRequest struct {
	// Username
	// required: true
	// default: john_doe
	Username string `json:"username"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// NewSigninHandler returns an HTTP handler for user sign-in.
// Wrong credentials are a normal negative outcome: the handler answers 200
// with success:false, not an error status. Only store failures yield 400.
// @Summary Sign in
// @Description Verifies the credentials and returns the user's access token.
// @Tags auth
// @Accept json
// @Produce json
// @Param signinRequest body handlers.SigninRequest true "Sign-in request"
// @Success 200 {object} models.Response "Access token returned, or success:false on wrong credentials"
// @Failure 400 {object} models.Response "Store error"
// @Router /signin [post]
func NewSigninHandler(svc SignIner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SigninRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(models.Fail("invalid request body"))
			return
		}

		user, err := svc.SignIn(r.Context(), req.Username, req.Password)
		if err != nil {
			if errors.Is(err, services.ErrInvalidCredentials) {
				w.WriteHeader(http.StatusOK)
				json.NewEncoder(w).Encode(models.Fail("invalid username or password"))
				return
			}
			logger.Log.Errorw("failed to sign user in", "err", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(models.Fail("could not sign in"))
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(models.OK(user))
	}
}
