package request

import (
	"time"

	"fleet-booking/internal/data/entity"
	"fleet-booking/pkg/utils"
)

type VehicleRequest struct {
	Number     string              `json:"number" validate:"required"`
	Type       string              `json:"type" validate:"required,oneof=bus car tempo mini-bus"`
	Model      string              `json:"model"`
	Capacity   int                 `json:"capacity" validate:"min=0"`
	Status     string              `json:"status" validate:"omitempty,oneof=available booked maintenance"`
	Driver     DriverRequest       `json:"driver"`
	Compliance ComplianceRequest   `json:"compliance"`
	Ownership  string              `json:"ownership" validate:"omitempty,oneof=own vendor leased"`
	Vendor     VendorLinkRequest   `json:"vendor"`
	Stats      VehicleStatsRequest `json:"stats"`
	Image      string              `json:"image"`
}

type DriverRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	License string `json:"license"`
	Address string `json:"address"`
}

type ComplianceRequest struct {
	RCExpiry      *utils.Date           `json:"rcExpiry,omitempty"`
	Insurance     NumberedExpiryRequest `json:"insurance"`
	FitnessExpiry *utils.Date           `json:"fitnessExpiry,omitempty"`
	Permit        NumberedExpiryRequest `json:"permit"`
	PUCExpiry     *utils.Date           `json:"pocExpiry,omitempty"`
}

type NumberedExpiryRequest struct {
	Number string      `json:"number"`
	Expiry *utils.Date `json:"expiry,omitempty"`
}

type VendorLinkRequest struct {
	VendorID string  `json:"vendorId" validate:"omitempty,mongodb"`
	Rate     float64 `json:"rate" validate:"min=0"`
	Notes    string  `json:"notes"`
}

type VehicleStatsRequest struct {
	TotalTrips int64   `json:"totalTrips" validate:"min=0"`
	TotalKms   float64 `json:"totalKms" validate:"min=0"`
	Revenue    float64 `json:"revenue" validate:"min=0"`
}

// VehicleUpdateRequest merges into the stored vehicle. Absent top-level
// fields are kept; a present nested block replaces the stored one whole.
type VehicleUpdateRequest struct {
	Number     *string              `json:"number,omitempty"`
	Type       *string              `json:"type,omitempty"`
	Model      *string              `json:"model,omitempty"`
	Capacity   *int                 `json:"capacity,omitempty"`
	Status     *string              `json:"status,omitempty"`
	Driver     *DriverRequest       `json:"driver,omitempty"`
	Compliance *ComplianceRequest   `json:"compliance,omitempty"`
	Ownership  *string              `json:"ownership,omitempty"`
	Vendor     *VendorLinkRequest   `json:"vendor,omitempty"`
	Stats      *VehicleStatsRequest `json:"stats,omitempty"`
	Image      *string              `json:"image,omitempty"`
}

// ApplyTo overlays every provided field onto base
func (u *VehicleUpdateRequest) ApplyTo(base *VehicleRequest) {
	if u.Number != nil {
		base.Number = *u.Number
	}
	if u.Type != nil {
		base.Type = *u.Type
	}
	if u.Model != nil {
		base.Model = *u.Model
	}
	if u.Capacity != nil {
		base.Capacity = *u.Capacity
	}
	if u.Status != nil {
		base.Status = *u.Status
	}
	if u.Driver != nil {
		base.Driver = *u.Driver
	}
	if u.Compliance != nil {
		base.Compliance = *u.Compliance
	}
	if u.Ownership != nil {
		base.Ownership = *u.Ownership
	}
	if u.Vendor != nil {
		base.Vendor = *u.Vendor
	}
	if u.Stats != nil {
		base.Stats = *u.Stats
	}
	if u.Image != nil {
		base.Image = *u.Image
	}
}

// VehicleRequestFromEntity is the inverse of the service's request mapping,
// used as the base of a partial update.
func VehicleRequestFromEntity(v *entity.Vehicle) VehicleRequest {
	req := VehicleRequest{
		Number:    v.Number,
		Type:      string(v.Type),
		Model:     v.Model,
		Capacity:  v.Capacity,
		Status:    string(v.Status),
		Ownership: string(v.Ownership),
		Image:     v.Image,
		Driver: DriverRequest{
			Name:    v.Driver.Name,
			Phone:   v.Driver.Phone,
			License: v.Driver.License,
			Address: v.Driver.Address,
		},
		Compliance: ComplianceRequest{
			RCExpiry:      datePtr(v.Compliance.RCExpiry),
			Insurance:     NumberedExpiryRequest{Number: v.Compliance.Insurance.Number, Expiry: datePtr(v.Compliance.Insurance.Expiry)},
			FitnessExpiry: datePtr(v.Compliance.FitnessExpiry),
			Permit:        NumberedExpiryRequest{Number: v.Compliance.Permit.Number, Expiry: datePtr(v.Compliance.Permit.Expiry)},
			PUCExpiry:     datePtr(v.Compliance.PUCExpiry),
		},
		Vendor: VendorLinkRequest{
			Rate:  v.Vendor.Rate,
			Notes: v.Vendor.Notes,
		},
		Stats: VehicleStatsRequest{
			TotalTrips: v.Stats.TotalTrips,
			TotalKms:   v.Stats.TotalKms,
			Revenue:    v.Stats.Revenue,
		},
	}
	if v.Vendor.VendorID != nil {
		req.Vendor.VendorID = v.Vendor.VendorID.Hex()
	}
	return req
}

func datePtr(t *time.Time) *utils.Date {
	if t == nil {
		return nil
	}
	d := utils.NewDate(*t)
	return &d
}
