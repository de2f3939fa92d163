package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/saved-locations/internal/middlewares"
	"github.com/sbilibin2017/saved-locations/internal/models"
	"github.com/sbilibin2017/saved-locations/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestDeleteLocationHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ownerID := uuid.New()
	locationID := uuid.New()
	user := &models.UserDB{UserID: ownerID, Username: "alice"}
	snapshot := &models.LocationDB{
		LocationID: locationID,
		OwnerID:    ownerID,
		Title:      "Park",
		Location:   "Main St",
	}

	tests := []struct {
		name         string
		target       string
		withUser     bool
		mockSetup    func(m *MockLocationDeleter)
		expectedCode int
		wantSuccess  bool
		wantMessage  string
		wantResponse string
	}{
		{
			name:     "success returns deleted record",
			target:   "/locations/" + locationID.String(),
			withUser: true,
			mockSetup: func(m *MockLocationDeleter) {
				m.EXPECT().
					Delete(gomock.Any(), ownerID, locationID).
					Return(snapshot, nil)
			},
			expectedCode: http.StatusCreated,
			wantSuccess:  true,
			wantMessage:  "Deleted successfully",
		},
		{
			name:     "not found or foreign owner",
			target:   "/locations/" + locationID.String(),
			withUser: true,
			mockSetup: func(m *MockLocationDeleter) {
				m.EXPECT().
					Delete(gomock.Any(), ownerID, locationID).
					Return(nil, services.ErrLocationNotFound)
			},
			expectedCode: http.StatusNotFound,
			wantResponse: "location not found",
		},
		{
			name:         "malformed id behaves like a miss",
			target:       "/locations/not-a-uuid",
			withUser:     true,
			expectedCode: http.StatusNotFound,
			wantResponse: "location not found",
		},
		{
			name:     "store error",
			target:   "/locations/" + locationID.String(),
			withUser: true,
			mockSetup: func(m *MockLocationDeleter) {
				m.EXPECT().
					Delete(gomock.Any(), ownerID, locationID).
					Return(nil, errors.New("connection refused"))
			},
			expectedCode: http.StatusBadRequest,
			wantResponse: "could not delete location",
		},
		{
			name:         "unauthenticated",
			target:       "/locations/" + locationID.String(),
			expectedCode: http.StatusUnauthorized,
			wantResponse: "unauthorized",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockLocationDeleter(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			r := chi.NewRouter()
			r.Delete("/locations/{id}", NewDeleteLocationHandler(mockSvc))

			req := httptest.NewRequest(http.MethodDelete, tt.target, nil)
			if tt.withUser {
				req = req.WithContext(middlewares.SetUserToContext(req.Context(), user))
			}
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var resp models.Response
			assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, tt.wantSuccess, resp.Success)

			if tt.wantSuccess {
				assert.Equal(t, tt.wantMessage, resp.Message)
				payload, ok := resp.Response.(map[string]any)
				assert.True(t, ok)
				assert.Equal(t, locationID.String(), payload["id"])
			} else {
				assert.Equal(t, tt.wantResponse, resp.Response)
			}
		})
	}
}
