package adaptor

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fleet-booking/internal/data/repository/memstore"
	"fleet-booking/internal/usecase"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHandleServiceError(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{
			name:    "validation",
			err:     &usecase.ServiceError{Kind: usecase.ErrValidation, Message: "Validation failed", Fields: map[string]string{"number": "This field is required"}},
			status:  http.StatusBadRequest,
			message: "Validation failed",
		},
		{
			name:    "invalid id",
			err:     &usecase.ServiceError{Kind: usecase.ErrInvalidID, Message: "Invalid booking ID format."},
			status:  http.StatusBadRequest,
			message: "Invalid booking ID format.",
		},
		{
			name:    "not found",
			err:     fmt.Errorf("wrapped: %w", &usecase.ServiceError{Kind: usecase.ErrNotFound, Message: "Booking not found"}),
			status:  http.StatusNotFound,
			message: "Booking not found",
		},
		{
			name:    "conflict",
			err:     &usecase.ServiceError{Kind: usecase.ErrConflict, Message: "A vehicle with this number already exists.", Cause: errors.New("E11000")},
			status:  http.StatusConflict,
			message: "A vehicle with this number already exists.",
		},
		{
			name:    "unexpected",
			err:     errors.New("connection reset"),
			status:  http.StatusInternalServerError,
			message: "Server error",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handleServiceError(zap.NewNop(), rec, tc.err, "test")

			assert.Equal(t, tc.status, rec.Code)
			body := decodeError(t, rec)
			assert.Equal(t, tc.message, body["message"])
		})
	}
}

func TestHandleServiceError_Details(t *testing.T) {
	rec := httptest.NewRecorder()
	handleServiceError(zap.NewNop(), rec, &usecase.ServiceError{
		Kind:    usecase.ErrValidation,
		Message: "Validation failed",
		Fields:  map[string]string{"trip.from": "This field is required"},
	}, "test")
	assert.Equal(t, map[string]any{"trip.from": "This field is required"}, decodeError(t, rec)["error"])

	rec = httptest.NewRecorder()
	handleServiceError(zap.NewNop(), rec, errors.New("connection reset"), "test")
	assert.Equal(t, "connection reset", decodeError(t, rec)["error"])

	rec = httptest.NewRecorder()
	handleServiceError(zap.NewNop(), rec, &usecase.ServiceError{Kind: usecase.ErrNotFound, Message: "Vehicle not found"}, "test")
	assert.NotContains(t, decodeError(t, rec), "error")
}

func TestDecodeJSON_Malformed(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"number":`))

	var dst map[string]any
	assert.False(t, decodeJSON(rec, req, &dst))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid request body", decodeError(t, rec)["message"])
}

func newVehicleRouter() *chi.Mux {
	service := usecase.NewService(memstore.NewRepository(), zap.NewNop())
	h := NewHandler(service, zap.NewNop())

	r := chi.NewRouter()
	r.Post("/vehicles", h.Vehicle.CreateVehicle)
	r.Post("/vehicles/many", h.Vehicle.CreateVehicles)
	r.Get("/vehicles/compliance", h.Vehicle.GetComplianceNearingExpiry)
	return r
}

func TestVehicleHandler_CreateVehicles(t *testing.T) {
	r := newVehicleRouter()

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/vehicles/many", strings.NewReader(`{"number":"KA01AB1234"}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Request body must be a non-empty array of vehicle objects.", decodeError(t, rec)["message"])

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/vehicles/many", strings.NewReader(`[]`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/vehicles/many", strings.NewReader(`[{"number":"KA01AB1234","type":"bus"}]`)))
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/vehicles/many", strings.NewReader(`[{"number":"ka01ab1234","type":"bus"}]`)))
	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "No new vehicles were created.", body["message"])
	assert.NotContains(t, body, "createdVehicles")
}

func TestVehicleHandler_ComplianceDays(t *testing.T) {
	r := newVehicleRouter()

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/vehicles/compliance?days=-2", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/vehicles/compliance", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "No vehicle compliance documents expiring within the next 30 days.", decodeError(t, rec)["message"])

	for _, days := range []string{"36501", "9223372036854775807"} {
		rec = httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/vehicles/compliance?days="+days, nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code, days)
	}
}
