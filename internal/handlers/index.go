package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/saved-locations/internal/models"
)

// RouteDescriptor describes one endpoint of the service.
type RouteDescriptor struct {
	Method      string `json:"method"`
	Path        string `json:"path"`
	Auth        bool   `json:"auth"`
	Description string `json:"description"`
}

var routes = []RouteDescriptor{
	{Method: http.MethodGet, Path: "/", Auth: false, Description: "this route listing"},
	{Method: http.MethodPost, Path: "/signup", Auth: false, Description: "register a new user"},
	{Method: http.MethodPost, Path: "/signin", Auth: false, Description: "sign in and get the access token"},
	{Method: http.MethodGet, Path: "/locations/recent", Auth: false, Description: "recent locations across all users"},
	{Method: http.MethodGet, Path: "/locations", Auth: true, Description: "list own locations"},
	{Method: http.MethodPost, Path: "/locations", Auth: true, Description: "save a new location"},
	{Method: http.MethodPatch, Path: "/locations/{id}/edit", Auth: true, Description: "edit an own location"},
	{Method: http.MethodDelete, Path: "/locations/{id}", Auth: true, Description: "delete an own location"},
}

// NewIndexHandler returns an HTTP handler listing all routes of the service.
// @Summary List routes
// @Description Returns descriptors of every endpoint the service exposes.
// @Tags meta
// @Produce json
// @Success 200 {object} models.Response "Route descriptors"
// @Router / [get]
func NewIndexHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(models.OK(routes))
	}
}
