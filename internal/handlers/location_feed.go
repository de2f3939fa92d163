package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/saved-locations/internal/logger"
	"github.com/sbilibin2017/saved-locations/internal/models"
)

// RecentLister defines the interface that the service must implement.
type RecentLister interface {
	ListRecent(ctx context.Context) ([]models.LocationDB, error)
}

// NewRecentLocationsHandler returns an HTTP handler for the public feed of
// the most recently saved locations across all users, capped server-side.
// @Summary Recent locations feed
// @Description Returns the latest saved locations across all users, capped at a fixed number.
// @Tags locations
// @Produce json
// @Success 200 {object} models.Response "Most recent locations"
// @Failure 400 {object} models.Response "Store error"
// @Router /locations/recent [get]
func NewRecentLocationsHandler(svc RecentLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		locations, err := svc.ListRecent(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list recent locations", "err", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(models.Fail("could not fetch locations"))
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(models.OK(locations))
	}
}
