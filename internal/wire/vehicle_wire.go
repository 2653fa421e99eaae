package wire

import (
	"fleet-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireVehicle(r chi.Router, vehicleHandler *adaptor.VehicleHandler) {
	r.Route("/api/vehicles", func(r chi.Router) {
		// Fixed segments first so they never match as {id}
		r.Get("/stats/overall", vehicleHandler.GetFleetStats)
		r.Get("/compliance/nearing-expiry", vehicleHandler.GetComplianceNearingExpiry)
		r.Get("/number/{number}", vehicleHandler.GetVehicleByNumber)

		r.Get("/", vehicleHandler.GetVehicles)
		r.Post("/", vehicleHandler.CreateVehicle)

		// POST /api/vehicles/many - Bulk create with per-entry skip reasons
		r.Post("/many", vehicleHandler.CreateVehicles)

		// PUT /api/vehicles/{id} - id may be an ObjectID or a registration number
		r.Put("/{id}", vehicleHandler.UpdateVehicle)
		r.Get("/{id}", vehicleHandler.GetVehicleByID)
		r.Delete("/{id}", vehicleHandler.DeleteVehicle)
	})
}
