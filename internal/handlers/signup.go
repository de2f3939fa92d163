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

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, username, password string) (*models.UserPublic, error)
}

// SignupRequest represents the JSON body for user registration
// swagger:model SignupRequest
type SignupRequest struct {
	// Username
	// required: true
	// default: john_doe
	Username string `json:"username"`

	// Password, at least 8 characters
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// NewSignupHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account with a fresh access token. Usernames are unique; the password is hashed before storing.
// @Tags auth
// @Accept json
// @Produce json
// @Param signupRequest body handlers.SignupRequest true "User registration request"
// @Success 201 {object} models.Response "User successfully registered"
// @Failure 400 {object} models.Response "Password too short / username taken / store error"
// @Router /signup [post]
func NewSignupHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SignupRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(models.Fail("invalid request body"))
			return
		}

		user, err := svc.Register(r.Context(), req.Username, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrPasswordTooShort):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(models.Fail("password too short"))
			default:
				// Duplicate username and store failures look the same to the
				// caller; the real error stays in the log.
				logger.Log.Errorw("failed to register user", "err", err)
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(models.Fail("could not create user"))
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.OK(user))
	}
}
