package adaptor

import (
	"encoding/json"
	"fmt"
	"net/http"

	"fleet-booking/internal/dto/request"
	"fleet-booking/internal/usecase"
	"fleet-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type VehicleHandler struct {
	service usecase.VehicleService
	log     *zap.Logger
}

func NewVehicleHandler(service usecase.VehicleService, log *zap.Logger) *VehicleHandler {
	return &VehicleHandler{
		service: service,
		log:     log.With(zap.String("handler", "vehicle")),
	}
}

// CreateVehicle handles POST /api/vehicles
func (h *VehicleHandler) CreateVehicle(w http.ResponseWriter, r *http.Request) {
	var req request.VehicleRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	vehicle, err := h.service.CreateVehicle(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create vehicle")
		return
	}

	utils.ResponseCreated(w, vehicle)
}

// CreateVehicles handles POST /api/vehicles/many
func (h *VehicleHandler) CreateVehicles(w http.ResponseWriter, r *http.Request) {
	var entries []json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&entries); err != nil {
		utils.ResponseBadRequest(w, "Request body must be a non-empty array of vehicle objects.", err.Error())
		return
	}

	result, err := h.service.CreateVehicles(r.Context(), entries)
	if err != nil {
		handleServiceError(h.log, w, err, "create vehicles")
		return
	}

	if result.CreatedCount == 0 {
		utils.ResponseSuccess(w, result)
		return
	}
	utils.ResponseCreated(w, result)
}

// GetVehicles handles GET /api/vehicles?type=&status=&ownership=&page=&limit=
func (h *VehicleHandler) GetVehicles(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.VehicleListRequest{
		PaginatedRequest: request.PaginatedRequest{
			Page:  utils.ParseInt(query.Get("page"), request.DefaultPage),
			Limit: utils.ParseInt(query.Get("limit"), request.DefaultLimit),
		},
		Type:      query.Get("type"),
		Status:    query.Get("status"),
		Ownership: query.Get("ownership"),
	}

	vehicles, err := h.service.GetVehicles(r.Context(), req)
	if err != nil {
		handleServiceError(h.log, w, err, "get vehicles")
		return
	}

	utils.ResponseSuccess(w, vehicles)
}

// GetVehicleByID handles GET /api/vehicles/{id}
func (h *VehicleHandler) GetVehicleByID(w http.ResponseWriter, r *http.Request) {
	vehicle, err := h.service.GetVehicleByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(h.log, w, err, "get vehicle by ID")
		return
	}

	utils.ResponseSuccess(w, vehicle)
}

// GetVehicleByNumber handles GET /api/vehicles/number/{number}
func (h *VehicleHandler) GetVehicleByNumber(w http.ResponseWriter, r *http.Request) {
	vehicle, err := h.service.GetVehicleByNumber(r.Context(), chi.URLParam(r, "number"))
	if err != nil {
		handleServiceError(h.log, w, err, "get vehicle by number")
		return
	}

	utils.ResponseSuccess(w, vehicle)
}

// UpdateVehicle handles PUT /api/vehicles/{id}, where id may also be a
// registration number
func (h *VehicleHandler) UpdateVehicle(w http.ResponseWriter, r *http.Request) {
	var req request.VehicleUpdateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	vehicle, err := h.service.UpdateVehicle(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update vehicle")
		return
	}

	utils.ResponseSuccess(w, vehicle)
}

// DeleteVehicle handles DELETE /api/vehicles/{id}
func (h *VehicleHandler) DeleteVehicle(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteVehicle(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(h.log, w, err, "delete vehicle")
		return
	}

	utils.ResponseMessage(w, "Vehicle deleted successfully.")
}

// GetComplianceNearingExpiry handles GET /api/vehicles/compliance/nearing-expiry?days=N
func (h *VehicleHandler) GetComplianceNearingExpiry(w http.ResponseWriter, r *http.Request) {
	days, ok := utils.ParseNonNegativeInt(r.URL.Query().Get("days"), usecase.DefaultComplianceDays)
	if !ok {
		utils.ResponseBadRequest(w, "days must be a non-negative integer", nil)
		return
	}

	vehicles, err := h.service.GetComplianceNearingExpiry(r.Context(), days)
	if err != nil {
		handleServiceError(h.log, w, err, "get compliance nearing expiry")
		return
	}

	// An empty result is a message, not an empty list
	if len(vehicles) == 0 {
		utils.ResponseMessage(w, fmt.Sprintf("No vehicle compliance documents expiring within the next %d days.", days))
		return
	}

	utils.ResponseSuccess(w, vehicles)
}

// GetFleetStats handles GET /api/vehicles/stats/overall
func (h *VehicleHandler) GetFleetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.GetFleetStats(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "get fleet stats")
		return
	}

	utils.ResponseSuccess(w, stats)
}
