package request

import "fleet-booking/pkg/utils"

// BookingRequest is the full payload for both create and full update
type BookingRequest struct {
	Customer BookingCustomerRequest `json:"customer"`
	Vehicle  BookingVehicleRequest  `json:"vehicle"`
	Trip     BookingTripRequest     `json:"trip"`
	Payment  BookingPaymentRequest  `json:"payment"`
}

type BookingCustomerRequest struct {
	Name  string `json:"name" validate:"required"`
	Phone string `json:"phone" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

type BookingVehicleRequest struct {
	VehicleID string `json:"vehicleId" validate:"required,mongodb"`
	Type      string `json:"type" validate:"required,oneof=bus car tempo mini-bus"`
	Number    string `json:"number" validate:"required"`
	Driver    string `json:"driver" validate:"required"`
}

type BookingTripRequest struct {
	From      string     `json:"from" validate:"required"`
	To        string     `json:"to" validate:"required"`
	StartDate utils.Date `json:"startDate" validate:"required"`
	EndDate   utils.Date `json:"endDate" validate:"required,gtefield=StartDate"`
	TotalDays int        `json:"totalDays" validate:"min=0"`
	Purpose   string     `json:"purpose" validate:"required"`
}

type BookingPaymentRequest struct {
	Total    float64  `json:"total" validate:"gt=0"`
	Advance  *float64 `json:"advance,omitempty" validate:"omitempty,min=0"`
	Balance  *float64 `json:"balance,omitempty"`
	Status   string   `json:"status" validate:"omitempty,oneof=pending partial completed overdue"`
	RateType string   `json:"rateType" validate:"omitempty,oneof=km_wise lumpsum daily_wages"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending approved rejected completed"`
}
