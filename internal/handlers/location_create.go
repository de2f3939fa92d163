package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/saved-locations/internal/logger"
	"github.com/sbilibin2017/saved-locations/internal/middlewares"
	"github.com/sbilibin2017/saved-locations/internal/models"
	"github.com/sbilibin2017/saved-locations/internal/services"
)

// LocationCreator defines the interface that the service must implement.
type LocationCreator interface {
	Create(ctx context.Context, ownerID uuid.UUID, title, location, tag string) (*models.LocationDB, error)
}

// LocationRequest represents the JSON body for creating or editing a location.
// The owner is always the authenticated caller; an owner field in the body
// is ignored.
// swagger:model LocationRequest
type LocationRequest struct {
	// Label for the place
	// required: true
	// default: Park
	Title string `json:"title"`

	// Free-text address or place description
	// required: true
	// default: Main St
	Location string `json:"location"`

	// Optional user-defined category
	// default: outdoor
	Tag string `json:"tag"`
}

// NewCreateLocationHandler returns an HTTP handler that saves a new location
// owned by the authenticated user.
// @Summary Create a location
// @Description Saves a new location for the authenticated user. created_at is assigned server-side.
// @Tags locations
// @Accept json
// @Produce json
// @Param locationRequest body handlers.LocationRequest true "Location to create"
// @Success 200 {object} models.Response "Created location"
// @Failure 401 {object} models.Response "Unauthenticated"
// @Failure 400 {object} models.Response "Validation or store error"
// @Router /locations [post]
// @Security BearerAuth
func NewCreateLocationHandler(svc LocationCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		user := middlewares.GetUserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(models.Fail("unauthorized"))
			return
		}

		var req LocationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(models.Fail("invalid request body"))
			return
		}

		loc, err := svc.Create(r.Context(), user.UserID, req.Title, req.Location, req.Tag)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrEmptyTitle), errors.Is(err, services.ErrEmptyLocation):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(models.Fail(err.Error()))
			default:
				logger.Log.Errorw("failed to create location", "err", err)
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(models.Fail("could not create location"))
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(models.OK(loc))
	}
}
