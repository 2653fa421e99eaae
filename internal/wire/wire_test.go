package wire

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"fleet-booking/internal/data/repository/memstore"
	"fleet-booking/pkg/middleware"
	"fleet-booking/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	config := &utils.Config{
		App:  utils.AppConfig{Name: "fleet-booking", Env: "test"},
		CORS: utils.CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}},
	}
	return Wiring(memstore.NewRepository(), config, zap.NewNop())
}

func do(t *testing.T, app *App, method, path string, body any, headers ...string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)

	var decoded map[string]any
	if bytes.HasPrefix(bytes.TrimSpace(rec.Body.Bytes()), []byte("{")) {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	}
	return rec, decoded
}

func bookingPayload(vehicleID string) map[string]any {
	return map[string]any{
		"customer": map[string]any{"name": "Asha Rao", "phone": "9990001111", "email": "asha@example.com"},
		"vehicle":  map[string]any{"vehicleId": vehicleID, "type": "bus", "number": "KA01AB1234", "driver": "Manoj"},
		"trip": map[string]any{
			"from": "Bengaluru", "to": "Mysuru",
			"startDate": "2025-03-01", "endDate": "2025-03-03",
			"purpose": "Offsite",
		},
		"payment": map[string]any{"total": 30000, "advance": 10000},
	}
}

func TestBookingLifecycle(t *testing.T) {
	app := newTestApp(t)

	rec, vehicle := do(t, app, http.MethodPost, "/api/vehicles", map[string]any{
		"number": "KA01AB1234", "type": "bus", "model": "Volvo 9400", "capacity": 45,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	vehicleID := vehicle["_id"].(string)

	rec, created := do(t, app, http.MethodPost, "/api/bookings", bookingPayload(vehicleID))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "Booking created successfully", created["message"])

	booking := created["booking"].(map[string]any)
	bookingID := booking["_id"].(string)
	assert.Regexp(t, `^BK-[A-F0-9]{8}$`, booking["bookingNumber"])
	assert.Equal(t, "pending", booking["status"])
	assert.Len(t, booking["timeline"], 1)

	rec, consumers := doList(t, app, "/api/consumers")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, consumers, 1)
	assert.Equal(t, "9990001111", consumers[0]["phone"])

	rec, updated := do(t, app, http.MethodPatch, "/api/bookings/"+bookingID+"/status",
		map[string]any{"status": "approved"}, middleware.ActorHeader, "Dispatcher")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "Booking status updated successfully", updated["message"])
	updatedBooking := updated["booking"].(map[string]any)
	assert.Equal(t, "approved", updatedBooking["status"])
	timeline := updatedBooking["timeline"].([]any)
	require.Len(t, timeline, 2)
	assert.Equal(t, "Dispatcher", timeline[1].(map[string]any)["user"])

	rec, _ = do(t, app, http.MethodPatch, "/api/bookings/"+bookingID+"/status", map[string]any{"status": "bogus"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, fetched := do(t, app, http.MethodGet, "/api/bookings/"+bookingID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "approved", fetched["status"])
	assert.Len(t, fetched["timeline"], 2)
}

func doList(t *testing.T, app *App, path string) (*httptest.ResponseRecorder, []map[string]any) {
	t.Helper()
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

	var list []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	return rec, list
}

func TestVehicleRoutes_FixedSegmentsBeforeID(t *testing.T) {
	app := newTestApp(t)

	rec, stats := do(t, app, http.MethodGet, "/api/vehicles/stats/overall", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, map[string]any{}, stats["fleetSummary"])

	rec, body := do(t, app, http.MethodGet, "/api/vehicles/compliance/nearing-expiry?days=0", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "No vehicle compliance documents expiring within the next 0 days.", body["message"])

	rec, body = do(t, app, http.MethodGet, "/api/vehicles/number/KA09ZZ0000", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Vehicle with number KA09ZZ0000 not found", body["message"])

	rec, body = do(t, app, http.MethodGet, "/api/vehicles/not-an-id", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid vehicle ID format.", body["message"])
}

func TestVehicleRoutes_DuplicateAndUpdateByNumber(t *testing.T) {
	app := newTestApp(t)

	rec, _ := do(t, app, http.MethodPost, "/api/vehicles", map[string]any{"number": "KA01AB1234", "type": "bus"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, _ = do(t, app, http.MethodPost, "/api/vehicles", map[string]any{"number": "ka01ab1234", "type": "car"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec, updated := do(t, app, http.MethodPut, "/api/vehicles/ka01ab1234", map[string]any{"capacity": 40})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, float64(40), updated["capacity"])

	rec, list := do(t, app, http.MethodGet, "/api/vehicles?page=1&limit=5", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), list["totalVehicles"])
	assert.Equal(t, float64(1), list["currentPage"])

	rec, _ = do(t, app, http.MethodGet, "/api/vehicles?type=truck", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTeamRoutes(t *testing.T) {
	app := newTestApp(t)

	rec, member := do(t, app, http.MethodPost, "/api/team", map[string]any{
		"name": "Priya", "email": "priya@example.com", "role": "dispatcher",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec, _ = do(t, app, http.MethodPost, "/api/team", map[string]any{
		"name": "Priya Two", "email": "priya@example.com", "role": "admin",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec, body := do(t, app, http.MethodDelete, "/api/team/"+member["_id"].(string), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Team member deleted successfully.", body["message"])
}

func TestWelcomeAndHealth(t *testing.T) {
	app := newTestApp(t)

	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Welcome to the Scheduling API! Environment: test", rec.Body.String())

	rec = httptest.NewRecorder()
	app.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}
