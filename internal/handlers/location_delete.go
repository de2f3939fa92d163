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

// LocationDeleter defines the interface that the service must implement.
type LocationDeleter interface {
	Delete(ctx context.Context, ownerID, locationID uuid.UUID) (*models.LocationDB, error)
}

// NewDeleteLocationHandler returns an HTTP handler that removes one of the
// authenticated user's locations and returns the deleted record.
// @Summary Delete a location
// @Description Removes the given location and returns its pre-delete snapshot.
// @Tags locations
// @Produce json
// @Param id path string true "Location id"
// @Success 201 {object} models.Response "Deleted location"
// @Failure 401 {object} models.Response "Unauthenticated"
// @Failure 404 {object} models.Response "Location absent or owned by another user"
// @Failure 400 {object} models.Response "Store error"
// @Router /locations/{id} [delete]
// @Security BearerAuth
func NewDeleteLocationHandler(svc LocationDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		user := middlewares.GetUserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(models.Fail("unauthorized"))
			return
		}

		locationID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(models.Fail("location not found"))
			return
		}

		loc, err := svc.Delete(r.Context(), user.UserID, locationID)
		if err != nil {
			if errors.Is(err, services.ErrLocationNotFound) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(models.Fail("location not found"))
				return
			}
			logger.Log.Errorw("failed to delete location", "err", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(models.Fail("could not delete location"))
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.OKWithMessage(loc, "Deleted successfully"))
	}
}
