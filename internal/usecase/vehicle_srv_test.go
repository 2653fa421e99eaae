package usecase

import (
	"encoding/json"
	"testing"
	"time"

	"fleet-booking/internal/data/entity"
	"fleet-booking/internal/dto/request"
	"fleet-booking/internal/dto/response"
	"fleet-booking/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vehicleRequest(number string) *request.VehicleRequest {
	return &request.VehicleRequest{
		Number:   number,
		Type:     "bus",
		Model:    "Volvo 9400",
		Capacity: 45,
	}
}

func rawEntries(t *testing.T, entries ...string) []json.RawMessage {
	t.Helper()
	out := make([]json.RawMessage, len(entries))
	for i, e := range entries {
		out[i] = json.RawMessage(e)
	}
	return out
}

func TestCreateVehicle_Defaults(t *testing.T) {
	svc, _ := newTestService(t)

	vehicle, err := svc.Vehicle.CreateVehicle(t.Context(), vehicleRequest(" ka01ab1234 "))
	require.NoError(t, err)

	assert.Equal(t, "KA01AB1234", vehicle.Number)
	assert.Equal(t, entity.VehicleStatusAvailable, vehicle.Status)
	assert.Equal(t, entity.OwnershipOwn, vehicle.Ownership)
	assert.NotEmpty(t, vehicle.ID)
}

func TestCreateVehicle_DuplicateInAnyCasing(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := t.Context()

	_, err := svc.Vehicle.CreateVehicle(ctx, vehicleRequest("KA01AB1234"))
	require.NoError(t, err)

	_, err = svc.Vehicle.CreateVehicle(ctx, vehicleRequest("ka01ab1234"))
	svcErr := assertKind(t, err, ErrConflict)
	assert.Equal(t, "A vehicle with this number already exists.", svcErr.Message)

	list, err := svc.Vehicle.GetVehicles(ctx, &request.VehicleListRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), list.TotalVehicles)
}

func TestCreateVehicle_Validation(t *testing.T) {
	svc, _ := newTestService(t)

	req := vehicleRequest("")
	req.Type = "truck"
	req.Capacity = -1

	_, err := svc.Vehicle.CreateVehicle(t.Context(), req)
	svcErr := assertKind(t, err, ErrValidation)
	assert.Contains(t, svcErr.Fields, "number")
	assert.Contains(t, svcErr.Fields, "type")
	assert.Contains(t, svcErr.Fields, "capacity")
}

func TestCreateVehicles_SkipReasons(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := t.Context()

	_, err := svc.Vehicle.CreateVehicle(ctx, vehicleRequest("KA01AB1234"))
	require.NoError(t, err)

	result, err := svc.Vehicle.CreateVehicles(ctx, rawEntries(t,
		`{"number":"KA02CD5678","type":"car"}`,
		`{"type":"bus"}`,
		`{"number":"ka01ab1234","type":"bus"}`,
		`{"number":"ka02cd5678","type":"car"}`,
		`{"number":"KA03EF9012","type":"truck"}`,
		`"not an object"`,
	))
	require.NoError(t, err)

	assert.Equal(t, 1, result.CreatedCount)
	assert.Equal(t, 5, result.SkippedCount)
	assert.Equal(t, "Operation complete. Successfully created 1 vehicles.", result.Message)
	require.Len(t, result.CreatedVehicles, 1)
	assert.Equal(t, "KA02CD5678", result.CreatedVehicles[0].Number)

	require.Len(t, result.SkippedVehicles, 5)
	assert.Equal(t, SkipMissingNumber, result.SkippedVehicles[0].Reason)
	assert.JSONEq(t, `{"type":"bus"}`, string(result.SkippedVehicles[0].Data))

	assert.Equal(t, response.SkippedVehicle{Number: "KA01AB1234", Reason: SkipExistsInDatabase}, result.SkippedVehicles[1])
	assert.Equal(t, response.SkippedVehicle{Number: "KA02CD5678", Reason: SkipDuplicateInBatch}, result.SkippedVehicles[2])

	assert.Equal(t, "KA03EF9012", result.SkippedVehicles[3].Number)
	assert.Contains(t, result.SkippedVehicles[3].Reason, "validation failed: type")

	assert.Equal(t, "validation failed: invalid vehicle object", result.SkippedVehicles[4].Reason)
}

func TestCreateVehicles_NothingCreated(t *testing.T) {
	svc, _ := newTestService(t)

	result, err := svc.Vehicle.CreateVehicles(t.Context(), rawEntries(t, `{"type":"bus"}`))
	require.NoError(t, err)

	assert.Equal(t, "No new vehicles were created.", result.Message)
	assert.Zero(t, result.CreatedCount)
	assert.Equal(t, 1, result.SkippedCount)
	assert.Empty(t, result.CreatedVehicles)
}

func TestCreateVehicles_EmptyBody(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Vehicle.CreateVehicles(t.Context(), nil)
	svcErr := assertKind(t, err, ErrValidation)
	assert.Equal(t, "Request body must be a non-empty array of vehicle objects.", svcErr.Message)
}

func TestGetVehicles_Pagination(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := t.Context()

	for _, number := range []string{"KA01AA0001", "KA01AA0002", "KA01AA0003"} {
		_, err := svc.Vehicle.CreateVehicle(ctx, vehicleRequest(number))
		require.NoError(t, err)
	}

	list, err := svc.Vehicle.GetVehicles(ctx, &request.VehicleListRequest{
		PaginatedRequest: request.PaginatedRequest{Page: 2, Limit: 2},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, list.CurrentPage)
	assert.Equal(t, 2, list.TotalPages)
	assert.Equal(t, int64(3), list.TotalVehicles)
	assert.Len(t, list.Vehicles, 1)

	_, err = svc.Vehicle.GetVehicles(ctx, &request.VehicleListRequest{Status: "parked"})
	assertKind(t, err, ErrValidation)
}

func TestGetVehicleByNumber(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := t.Context()

	created, err := svc.Vehicle.CreateVehicle(ctx, vehicleRequest("KA01AB1234"))
	require.NoError(t, err)

	found, err := svc.Vehicle.GetVehicleByNumber(ctx, "ka01ab1234")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = svc.Vehicle.GetVehicleByNumber(ctx, "KA09ZZ0000")
	svcErr := assertKind(t, err, ErrNotFound)
	assert.Equal(t, "Vehicle with number KA09ZZ0000 not found", svcErr.Message)
}

func TestGetVehicleByID_Errors(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Vehicle.GetVehicleByID(t.Context(), "nope")
	assertKind(t, err, ErrInvalidID)

	_, err = svc.Vehicle.GetVehicleByID(t.Context(), "65f1a2b3c4d5e6f708192a3b")
	assertKind(t, err, ErrNotFound)
}

func TestGetVehicle_ExpandsVendor(t *testing.T) {
	svc, store := newTestService(t)
	ctx := t.Context()

	vendorID := store.PutVendor(entity.Vendor{Name: "Sharma Travels"})
	req := vehicleRequest("KA01AB1234")
	req.Ownership = "vendor"
	req.Vendor = request.VendorLinkRequest{VendorID: vendorID.Hex(), Rate: 18}

	created, err := svc.Vehicle.CreateVehicle(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, vendorID.Hex(), created.Vendor.VendorID)

	found, err := svc.Vehicle.GetVehicleByID(ctx, created.ID)
	require.NoError(t, err)
	vendor, ok := found.Vendor.VendorID.(*response.VendorResponse)
	require.True(t, ok)
	assert.Equal(t, "Sharma Travels", vendor.Name)
}

func TestUpdateVehicle_ByIDOrNumber(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := t.Context()

	created, err := svc.Vehicle.CreateVehicle(ctx, vehicleRequest("KA01AB1234"))
	require.NoError(t, err)

	capacity := 50
	updated, err := svc.Vehicle.UpdateVehicle(ctx, "ka01ab1234", &request.VehicleUpdateRequest{Capacity: &capacity})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, 50, updated.Capacity)
	assert.Equal(t, "Volvo 9400", updated.Model)

	status := "maintenance"
	updated, err = svc.Vehicle.UpdateVehicle(ctx, created.ID, &request.VehicleUpdateRequest{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, entity.VehicleStatusMaintenance, updated.Status)
	assert.Equal(t, 50, updated.Capacity)
}

func TestUpdateVehicle_NumberTaken(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := t.Context()

	_, err := svc.Vehicle.CreateVehicle(ctx, vehicleRequest("KA01AB1234"))
	require.NoError(t, err)
	second, err := svc.Vehicle.CreateVehicle(ctx, vehicleRequest("KA02CD5678"))
	require.NoError(t, err)

	number := "ka01ab1234"
	_, err = svc.Vehicle.UpdateVehicle(ctx, second.ID, &request.VehicleUpdateRequest{Number: &number})
	svcErr := assertKind(t, err, ErrValidation)
	assert.Equal(t, "Another vehicle with this number already exists.", svcErr.Message)

	// Keeping its own number is not a conflict
	own := "KA02CD5678"
	_, err = svc.Vehicle.UpdateVehicle(ctx, second.ID, &request.VehicleUpdateRequest{Number: &own})
	assert.NoError(t, err)
}

func TestUpdateVehicle_NotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Vehicle.UpdateVehicle(t.Context(), "KA09ZZ0000", &request.VehicleUpdateRequest{})
	svcErr := assertKind(t, err, ErrNotFound)
	assert.Equal(t, "Vehicle not found to update.", svcErr.Message)
}

func TestDeleteVehicle(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := t.Context()

	created, err := svc.Vehicle.CreateVehicle(ctx, vehicleRequest("KA01AB1234"))
	require.NoError(t, err)

	require.NoError(t, svc.Vehicle.DeleteVehicle(ctx, created.ID))

	err = svc.Vehicle.DeleteVehicle(ctx, created.ID)
	svcErr := assertKind(t, err, ErrNotFound)
	assert.Equal(t, "Vehicle not found to delete.", svcErr.Message)
}

func TestGetComplianceNearingExpiry_Subset(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := t.Context()
	now := time.Now().UTC()

	expired := vehicleRequest("KA01AA0001")
	past := utils.NewDate(now.AddDate(0, 0, -3))
	expired.Compliance.RCExpiry = &past

	soon := vehicleRequest("KA01AA0002")
	inTwenty := utils.NewDate(now.AddDate(0, 0, 20))
	soon.Compliance.Permit = request.NumberedExpiryRequest{Number: "PRM-7", Expiry: &inTwenty}

	far := vehicleRequest("KA01AA0003")
	nextYear := utils.NewDate(now.AddDate(1, 0, 0))
	far.Compliance.FitnessExpiry = &nextYear

	for _, req := range []*request.VehicleRequest{expired, soon, far} {
		_, err := svc.Vehicle.CreateVehicle(ctx, req)
		require.NoError(t, err)
	}

	numbers := func(days int) []string {
		found, err := svc.Vehicle.GetComplianceNearingExpiry(ctx, days)
		require.NoError(t, err)
		out := make([]string, len(found))
		for i, f := range found {
			out[i] = f.Number
		}
		return out
	}

	today := numbers(0)
	month := numbers(DefaultComplianceDays)
	assert.ElementsMatch(t, []string{"KA01AA0001"}, today)
	assert.ElementsMatch(t, []string{"KA01AA0001", "KA01AA0002"}, month)
	assert.Subset(t, month, today)

	century := numbers(MaxComplianceDays)
	assert.ElementsMatch(t, []string{"KA01AA0001", "KA01AA0002", "KA01AA0003"}, century)
	assert.Subset(t, century, month)

	_, err := svc.Vehicle.GetComplianceNearingExpiry(ctx, -1)
	assertKind(t, err, ErrValidation)

	_, err = svc.Vehicle.GetComplianceNearingExpiry(ctx, MaxComplianceDays+1)
	svcErr := assertKind(t, err, ErrValidation)
	assert.Equal(t, "days must not exceed 36500", svcErr.Message)
}

func TestGetFleetStats(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := t.Context()

	empty, err := svc.Vehicle.GetFleetStats(ctx)
	require.NoError(t, err)
	out, err := json.Marshal(empty)
	require.NoError(t, err)
	assert.JSONEq(t, `{"fleetSummary":{},"statusBreakdown":{}}`, string(out))

	req := vehicleRequest("KA01AA0001")
	req.Stats = request.VehicleStatsRequest{TotalTrips: 3, TotalKms: 450, Revenue: 21000}
	_, err = svc.Vehicle.CreateVehicle(ctx, req)
	require.NoError(t, err)

	booked := vehicleRequest("KA01AA0002")
	booked.Status = "booked"
	booked.Stats = request.VehicleStatsRequest{TotalTrips: 1, TotalKms: 50, Revenue: 4000}
	_, err = svc.Vehicle.CreateVehicle(ctx, booked)
	require.NoError(t, err)

	stats, err := svc.Vehicle.GetFleetStats(ctx)
	require.NoError(t, err)
	summary, ok := stats.FleetSummary.(*response.FleetSummaryResponse)
	require.True(t, ok)
	assert.Equal(t, int64(2), summary.TotalVehicles)
	assert.Equal(t, int64(4), summary.TotalTrips)
	assert.InDelta(t, 500, summary.TotalKms, 0.001)
	assert.InDelta(t, 25000, summary.TotalRevenue, 0.001)
	assert.Equal(t, map[string]int64{"available": 1, "booked": 1}, stats.StatusBreakdown)
}
