package entity

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type VehicleType string

const (
	VehicleTypeBus     VehicleType = "bus"
	VehicleTypeCar     VehicleType = "car"
	VehicleTypeTempo   VehicleType = "tempo"
	VehicleTypeMiniBus VehicleType = "mini-bus"
)

type VehicleStatus string

const (
	VehicleStatusAvailable   VehicleStatus = "available"
	VehicleStatusBooked      VehicleStatus = "booked"
	VehicleStatusMaintenance VehicleStatus = "maintenance"
)

type Ownership string

const (
	OwnershipOwn    Ownership = "own"
	OwnershipVendor Ownership = "vendor"
	OwnershipLeased Ownership = "leased"
)

type Vehicle struct {
	Base       `bson:",inline"`
	Number     string        `bson:"number"`
	Type       VehicleType   `bson:"type"`
	Model      string        `bson:"model"`
	Capacity   int           `bson:"capacity"`
	Status     VehicleStatus `bson:"status"`
	Driver     Driver        `bson:"driver"`
	Compliance Compliance    `bson:"compliance"`
	Ownership  Ownership     `bson:"ownership"`
	Vendor     VendorLink    `bson:"vendor"`
	Stats      VehicleStats  `bson:"stats"`
	Image      string        `bson:"image,omitempty"`
}

// CanonicalNumber is the stored form of a registration number. Every lookup
// and uniqueness check compares canonical forms.
func CanonicalNumber(number string) string {
	return strings.ToUpper(strings.TrimSpace(number))
}

type Driver struct {
	Name    string `bson:"name"`
	Phone   string `bson:"phone"`
	License string `bson:"license"`
	Address string `bson:"address"`
}

// Compliance tracks five document expiries. Unset dates are not stored so
// they never match an expiry query.
type Compliance struct {
	RCExpiry      *time.Time     `bson:"rcExpiry,omitempty"`
	Insurance     NumberedExpiry `bson:"insurance"`
	FitnessExpiry *time.Time     `bson:"fitnessExpiry,omitempty"`
	Permit        NumberedExpiry `bson:"permit"`
	PUCExpiry     *time.Time     `bson:"pocExpiry,omitempty"`
}

type NumberedExpiry struct {
	Number string     `bson:"number,omitempty"`
	Expiry *time.Time `bson:"expiry,omitempty"`
}

type VendorLink struct {
	VendorID *primitive.ObjectID `bson:"vendorId,omitempty"`
	Rate     float64             `bson:"rate"`
	Notes    string              `bson:"notes,omitempty"`
}

type VehicleStats struct {
	TotalTrips int64   `bson:"totalTrips"`
	TotalKms   float64 `bson:"totalKms"`
	Revenue    float64 `bson:"revenue"`
}

// Expiries lists the tracked dates that are set
func (c Compliance) Expiries() []time.Time {
	var out []time.Time
	for _, t := range []*time.Time{c.RCExpiry, c.Insurance.Expiry, c.FitnessExpiry, c.Permit.Expiry, c.PUCExpiry} {
		if t != nil {
			out = append(out, *t)
		}
	}
	return out
}

// ExpiresBy reports whether any tracked date is at or before cutoff
func (c Compliance) ExpiresBy(cutoff time.Time) bool {
	for _, t := range c.Expiries() {
		if !t.After(cutoff) {
			return true
		}
	}
	return false
}

// VehicleFilter holds exact-match list filters; empty means any
type VehicleFilter struct {
	Type      string
	Status    string
	Ownership string
}

// FleetSummary is the sum over every vehicle
type FleetSummary struct {
	TotalVehicles int64   `bson:"totalVehicles"`
	TotalTrips    int64   `bson:"totalTrips"`
	TotalKms      float64 `bson:"totalKms"`
	TotalRevenue  float64 `bson:"totalRevenue"`
}
