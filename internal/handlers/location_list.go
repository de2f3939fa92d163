package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/saved-locations/internal/logger"
	"github.com/sbilibin2017/saved-locations/internal/middlewares"
	"github.com/sbilibin2017/saved-locations/internal/models"
)

// LocationLister defines the interface that the service must implement.
type LocationLister interface {
	List(ctx context.Context, ownerID uuid.UUID) ([]models.LocationDB, error)
}

// NewListLocationsHandler returns an HTTP handler that lists the
// authenticated user's locations, most recent first.
// @Summary List own locations
// @Description Returns all locations of the authenticated user, sorted by creation time descending.
// @Tags locations
// @Produce json
// @Success 200 {object} models.Response "Locations of the caller"
// @Failure 401 {object} models.Response "Unauthenticated"
// @Failure 400 {object} models.Response "Store error"
// @Router /locations [get]
// @Security BearerAuth
func NewListLocationsHandler(svc LocationLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		user := middlewares.GetUserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(models.Fail("unauthorized"))
			return
		}

		locations, err := svc.List(r.Context(), user.UserID)
		if err != nil {
			logger.Log.Errorw("failed to list locations", "err", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(models.Fail("could not fetch locations"))
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(models.OK(locations))
	}
}
