package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusApproved  BookingStatus = "approved"
	BookingStatusRejected  BookingStatus = "rejected"
	BookingStatusCompleted BookingStatus = "completed"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusPartial   PaymentStatus = "partial"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusOverdue   PaymentStatus = "overdue"
)

type RateType string

const (
	RateTypeKmWise     RateType = "km_wise"
	RateTypeLumpsum    RateType = "lumpsum"
	RateTypeDailyWages RateType = "daily_wages"
)

// Booking keeps a point-in-time copy of the customer and vehicle. The copies
// are written with the booking and never refreshed from their source records.
type Booking struct {
	Base          `bson:",inline"`
	BookingNumber string          `bson:"bookingNumber"`
	Customer      CustomerInfo    `bson:"customer"`
	Vehicle       VehicleInfo     `bson:"vehicle"`
	Trip          Trip            `bson:"trip"`
	Payment       BookingPayment  `bson:"payment"`
	Status        BookingStatus   `bson:"status"`
	Timeline      []TimelineEntry `bson:"timeline"`
}

type CustomerInfo struct {
	ConsumerID primitive.ObjectID `bson:"consumerId"`
	Name       string             `bson:"name"`
	Phone      string             `bson:"phone"`
	Email      string             `bson:"email"`
}

type VehicleInfo struct {
	VehicleID primitive.ObjectID `bson:"vehicleId"`
	Type      VehicleType        `bson:"type"`
	Number    string             `bson:"number"`
	Driver    string             `bson:"driver"`
}

type Trip struct {
	From      string    `bson:"from"`
	To        string    `bson:"to"`
	StartDate time.Time `bson:"startDate"`
	EndDate   time.Time `bson:"endDate"`
	TotalDays int       `bson:"totalDays"`
	Purpose   string    `bson:"purpose"`
}

type BookingPayment struct {
	Total    float64       `bson:"total"`
	Advance  float64       `bson:"advance"`
	Balance  float64       `bson:"balance"`
	Status   PaymentStatus `bson:"status"`
	RateType RateType      `bson:"rateType"`
}

// TimelineEntry is one audit record. The actor name is stored under "user".
type TimelineEntry struct {
	Action string    `bson:"action"`
	User   string    `bson:"user"`
	Time   time.Time `bson:"time"`
}

// NewTimelineEntry stamps an audit record in UTC
func NewTimelineEntry(action, user string, now time.Time) TimelineEntry {
	return TimelineEntry{Action: action, User: user, Time: now.UTC()}
}

// BookingDetails is everything a full update replaces
type BookingDetails struct {
	Customer CustomerInfo
	Vehicle  VehicleInfo
	Trip     Trip
	Payment  BookingPayment
}

func IsValidBookingStatus(status string) bool {
	switch BookingStatus(status) {
	case BookingStatusPending, BookingStatusApproved, BookingStatusRejected, BookingStatusCompleted:
		return true
	}
	return false
}
