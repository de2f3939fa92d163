package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sbilibin2017/saved-locations/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestIndexHandler(t *testing.T) {
	handler := NewIndexHandler()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp models.Response
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.True(t, resp.Success)

	descriptors, ok := resp.Response.([]any)
	assert.True(t, ok)
	assert.Len(t, descriptors, len(routes))

	paths := make(map[string]bool)
	for _, d := range descriptors {
		entry := d.(map[string]any)
		paths[entry["method"].(string)+" "+entry["path"].(string)] = true
	}

	assert.True(t, paths["POST /signup"])
	assert.True(t, paths["POST /signin"])
	assert.True(t, paths["GET /locations"])
	assert.True(t, paths["POST /locations"])
	assert.True(t, paths["PATCH /locations/{id}/edit"])
	assert.True(t, paths["DELETE /locations/{id}"])
}
