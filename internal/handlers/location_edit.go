package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/saved-locations/internal/logger"
	"github.com/sbilibin2017/saved-locations/internal/middlewares"
	"github.com/sbilibin2017/saved-locations/internal/models"
	"github.com/sbilibin2017/saved-locations/internal/services"
)

// LocationEditor defines the interface that the service must implement.
type LocationEditor interface {
	Edit(ctx context.Context, ownerID, locationID uuid.UUID, title, location, tag string) (*models.LocationDB, error)
}

// NewEditLocationHandler returns an HTTP handler that replaces title,
// location and tag of one of the authenticated user's locations.
// A location owned by another user answers 404, same as a nonexistent one.
// @Summary Edit a location
// @Description Replaces title, location and tag of the given location. id, owner and created_at never change.
// @Tags locations
// @Accept json
// @Produce json
// @Param id path string true "Location id"
// @Param locationRequest body handlers.LocationRequest true "New field values"
// @Success 201 {object} models.Response "Updated location"
// @Failure 401 {object} models.Response "Unauthenticated"
// @Failure 404 {object} models.Response "Location absent or owned by another user"
// @Failure 400 {object} models.Response "Validation or store error"
// @Router /locations/{id}/edit [patch]
// @Security BearerAuth
func NewEditLocationHandler(svc LocationEditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		user := middlewares.GetUserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(models.Fail("unauthorized"))
			return
		}

		// A malformed id cannot match any record, same outcome as a miss.
		locationID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(models.Fail("location not found"))
			return
		}

		var req LocationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(models.Fail("invalid request body"))
			return
		}

		loc, err := svc.Edit(r.Context(), user.UserID, locationID, req.Title, req.Location, req.Tag)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrLocationNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(models.Fail("location not found"))
			case errors.Is(err, services.ErrEmptyTitle), errors.Is(err, services.ErrEmptyLocation):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(models.Fail(err.Error()))
			default:
				logger.Log.Errorw("failed to edit location", "err", err)
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(models.Fail("could not edit location"))
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.OKWithMessage(loc, "edited successfully"))
	}
}
