package response

import (
	"encoding/json"
	"time"

	"fleet-booking/internal/data/entity"
)

type VehicleResponse struct {
	ID         string               `json:"_id"`
	Number     string               `json:"number"`
	Type       entity.VehicleType   `json:"type"`
	Model      string               `json:"model"`
	Capacity   int                  `json:"capacity"`
	Status     entity.VehicleStatus `json:"status"`
	Driver     DriverResponse       `json:"driver"`
	Compliance ComplianceResponse   `json:"compliance"`
	Ownership  entity.Ownership     `json:"ownership"`
	Vendor     VendorLinkResponse   `json:"vendor"`
	Stats      VehicleStatsResponse `json:"stats"`
	Image      string               `json:"image,omitempty"`
	CreatedAt  time.Time            `json:"createdAt"`
	UpdatedAt  time.Time            `json:"updatedAt"`
}

type DriverResponse struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	License string `json:"license"`
	Address string `json:"address"`
}

type ComplianceResponse struct {
	RCExpiry      *time.Time             `json:"rcExpiry,omitempty"`
	Insurance     NumberedExpiryResponse `json:"insurance"`
	FitnessExpiry *time.Time             `json:"fitnessExpiry,omitempty"`
	Permit        NumberedExpiryResponse `json:"permit"`
	PUCExpiry     *time.Time             `json:"pocExpiry,omitempty"`
}

type NumberedExpiryResponse struct {
	Number string     `json:"number,omitempty"`
	Expiry *time.Time `json:"expiry,omitempty"`
}

// VendorLinkResponse.VendorID is the hex id, or a *VendorResponse once
// expanded; absent when the vehicle has no vendor.
type VendorLinkResponse struct {
	VendorID any     `json:"vendorId,omitempty"`
	Rate     float64 `json:"rate"`
	Notes    string  `json:"notes,omitempty"`
}

type VehicleStatsResponse struct {
	TotalTrips int64   `json:"totalTrips"`
	TotalKms   float64 `json:"totalKms"`
	Revenue    float64 `json:"revenue"`
}

type VendorResponse struct {
	ID                string     `json:"_id"`
	Name              string     `json:"name"`
	ContactPerson     string     `json:"contactPerson"`
	Phone             string     `json:"phone"`
	AlternatePhone    string     `json:"alternatePhone,omitempty"`
	Email             string     `json:"email"`
	Address           string     `json:"address"`
	City              string     `json:"city"`
	State             string     `json:"state"`
	Pincode           string     `json:"pincode"`
	GST               string     `json:"gst,omitempty"`
	PAN               string     `json:"pan,omitempty"`
	Status            string     `json:"status"`
	VehicleCount      int        `json:"vehicleCount"`
	TotalBusiness     float64    `json:"totalBusiness"`
	OutstandingAmount float64    `json:"outstandingAmount"`
	LastTransaction   *time.Time `json:"lastTransaction,omitempty"`
}

// ComplianceExpiryResponse is the projection returned by the expiry query
type ComplianceExpiryResponse struct {
	ID         string             `json:"_id"`
	Number     string             `json:"number"`
	Model      string             `json:"model"`
	Compliance ComplianceResponse `json:"compliance"`
}

type FleetSummaryResponse struct {
	TotalVehicles int64   `json:"totalVehicles"`
	TotalTrips    int64   `json:"totalTrips"`
	TotalKms      float64 `json:"totalKms"`
	TotalRevenue  float64 `json:"totalRevenue"`
}

// FleetStatsResponse.FleetSummary is a *FleetSummaryResponse, or an empty
// object when there are no vehicles.
type FleetStatsResponse struct {
	FleetSummary    any              `json:"fleetSummary"`
	StatusBreakdown map[string]int64 `json:"statusBreakdown"`
}

type SkippedVehicle struct {
	Number string          `json:"number,omitempty"`
	Data   json.RawMessage `json:"data,omitempty"`
	Reason string          `json:"reason"`
}

type BulkCreateVehiclesResponse struct {
	Message         string            `json:"message"`
	CreatedCount    int               `json:"createdCount"`
	SkippedCount    int               `json:"skippedCount"`
	CreatedVehicles []VehicleResponse `json:"createdVehicles,omitempty"`
	SkippedVehicles []SkippedVehicle  `json:"skippedVehicles"`
}

// Helper converters

func VehicleToResponse(v *entity.Vehicle) VehicleResponse {
	resp := VehicleResponse{
		ID:       v.ID.Hex(),
		Number:   v.Number,
		Type:     v.Type,
		Model:    v.Model,
		Capacity: v.Capacity,
		Status:   v.Status,
		Driver: DriverResponse{
			Name:    v.Driver.Name,
			Phone:   v.Driver.Phone,
			License: v.Driver.License,
			Address: v.Driver.Address,
		},
		Compliance: ComplianceToResponse(v.Compliance),
		Ownership:  v.Ownership,
		Vendor: VendorLinkResponse{
			Rate:  v.Vendor.Rate,
			Notes: v.Vendor.Notes,
		},
		Stats: VehicleStatsResponse{
			TotalTrips: v.Stats.TotalTrips,
			TotalKms:   v.Stats.TotalKms,
			Revenue:    v.Stats.Revenue,
		},
		Image:     v.Image,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
	if v.Vendor.VendorID != nil {
		resp.Vendor.VendorID = v.Vendor.VendorID.Hex()
	}
	return resp
}

// ExpandedVehicleToResponse replaces a set vendor id with the vendor record,
// or null when the vendor no longer exists.
func ExpandedVehicleToResponse(v *entity.Vehicle, vendor *entity.Vendor) VehicleResponse {
	resp := VehicleToResponse(v)
	if v.Vendor.VendorID == nil {
		return resp
	}

	var ref *VendorResponse
	if vendor != nil {
		ref = VendorToResponse(vendor)
	}
	resp.Vendor.VendorID = ref
	return resp
}

func VendorToResponse(v *entity.Vendor) *VendorResponse {
	return &VendorResponse{
		ID:                v.ID.Hex(),
		Name:              v.Name,
		ContactPerson:     v.ContactPerson,
		Phone:             v.Phone,
		AlternatePhone:    v.AlternatePhone,
		Email:             v.Email,
		Address:           v.Address,
		City:              v.City,
		State:             v.State,
		Pincode:           v.Pincode,
		GST:               v.GST,
		PAN:               v.PAN,
		Status:            v.Status,
		VehicleCount:      v.VehicleCount,
		TotalBusiness:     v.TotalBusiness,
		OutstandingAmount: v.OutstandingAmount,
		LastTransaction:   v.LastTransaction,
	}
}

func ComplianceToResponse(c entity.Compliance) ComplianceResponse {
	return ComplianceResponse{
		RCExpiry:      c.RCExpiry,
		Insurance:     NumberedExpiryResponse{Number: c.Insurance.Number, Expiry: c.Insurance.Expiry},
		FitnessExpiry: c.FitnessExpiry,
		Permit:        NumberedExpiryResponse{Number: c.Permit.Number, Expiry: c.Permit.Expiry},
		PUCExpiry:     c.PUCExpiry,
	}
}

func ComplianceExpiryToResponse(v *entity.Vehicle) ComplianceExpiryResponse {
	return ComplianceExpiryResponse{
		ID:         v.ID.Hex(),
		Number:     v.Number,
		Model:      v.Model,
		Compliance: ComplianceToResponse(v.Compliance),
	}
}

func NewFleetStatsResponse(summary *entity.FleetSummary, breakdown map[string]int64) *FleetStatsResponse {
	if breakdown == nil {
		breakdown = map[string]int64{}
	}

	resp := &FleetStatsResponse{
		FleetSummary:    struct{}{},
		StatusBreakdown: breakdown,
	}
	if summary != nil {
		resp.FleetSummary = &FleetSummaryResponse{
			TotalVehicles: summary.TotalVehicles,
			TotalTrips:    summary.TotalTrips,
			TotalKms:      summary.TotalKms,
			TotalRevenue:  summary.TotalRevenue,
		}
	}
	return resp
}
