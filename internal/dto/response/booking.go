package response

import (
	"time"

	"fleet-booking/internal/data/entity"
)

type BookingResponse struct {
	ID            string                  `json:"_id"`
	BookingNumber string                  `json:"bookingNumber"`
	Customer      BookingCustomerResponse `json:"customer"`
	Vehicle       BookingVehicleResponse  `json:"vehicle"`
	Trip          TripResponse            `json:"trip"`
	Payment       BookingPaymentResponse  `json:"payment"`
	Status        entity.BookingStatus    `json:"status"`
	Timeline      []TimelineResponse      `json:"timeline"`
	CreatedAt     time.Time               `json:"createdAt"`
	UpdatedAt     time.Time               `json:"updatedAt"`
}

// BookingCustomerResponse.ConsumerID holds the hex id, or a *ConsumerRef
// once expanded. A dangling reference expands to null.
type BookingCustomerResponse struct {
	ConsumerID any    `json:"consumerId"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
}

// BookingVehicleResponse.VehicleID follows the same rule with *VehicleRef
type BookingVehicleResponse struct {
	VehicleID any                `json:"vehicleId"`
	Type      entity.VehicleType `json:"type"`
	Number    string             `json:"number"`
	Driver    string             `json:"driver"`
}

type ConsumerRef struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

type VehicleRef struct {
	ID     string             `json:"_id"`
	Type   entity.VehicleType `json:"type"`
	Number string             `json:"number"`
}

type TripResponse struct {
	From      string    `json:"from"`
	To        string    `json:"to"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	TotalDays int       `json:"totalDays"`
	Purpose   string    `json:"purpose"`
}

type BookingPaymentResponse struct {
	Total    float64              `json:"total"`
	Advance  float64              `json:"advance"`
	Balance  float64              `json:"balance"`
	Status   entity.PaymentStatus `json:"status"`
	RateType entity.RateType      `json:"rateType"`
}

type TimelineResponse struct {
	Action string    `json:"action"`
	User   string    `json:"user"`
	Time   time.Time `json:"time"`
}

type BookingMessageResponse struct {
	Message string          `json:"message"`
	Booking BookingResponse `json:"booking"`
}

// Helper converters

// BookingToResponse renders the stored snapshot with plain reference ids
func BookingToResponse(b *entity.Booking) BookingResponse {
	timeline := make([]TimelineResponse, len(b.Timeline))
	for i, entry := range b.Timeline {
		timeline[i] = TimelineResponse{
			Action: entry.Action,
			User:   entry.User,
			Time:   entry.Time,
		}
	}

	return BookingResponse{
		ID:            b.ID.Hex(),
		BookingNumber: b.BookingNumber,
		Customer: BookingCustomerResponse{
			ConsumerID: b.Customer.ConsumerID.Hex(),
			Name:       b.Customer.Name,
			Phone:      b.Customer.Phone,
			Email:      b.Customer.Email,
		},
		Vehicle: BookingVehicleResponse{
			VehicleID: b.Vehicle.VehicleID.Hex(),
			Type:      b.Vehicle.Type,
			Number:    b.Vehicle.Number,
			Driver:    b.Vehicle.Driver,
		},
		Trip: TripResponse{
			From:      b.Trip.From,
			To:        b.Trip.To,
			StartDate: b.Trip.StartDate,
			EndDate:   b.Trip.EndDate,
			TotalDays: b.Trip.TotalDays,
			Purpose:   b.Trip.Purpose,
		},
		Payment: BookingPaymentResponse{
			Total:    b.Payment.Total,
			Advance:  b.Payment.Advance,
			Balance:  b.Payment.Balance,
			Status:   b.Payment.Status,
			RateType: b.Payment.RateType,
		},
		Status:    b.Status,
		Timeline:  timeline,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

// ExpandedBookingToResponse swaps both reference ids for their summaries.
// A nil consumer or vehicle renders as null.
func ExpandedBookingToResponse(b *entity.Booking, consumer *entity.Consumer, vehicle *entity.Vehicle) BookingResponse {
	resp := BookingToResponse(b)

	var consumerRef *ConsumerRef
	if consumer != nil {
		consumerRef = &ConsumerRef{
			ID:    consumer.ID.Hex(),
			Name:  consumer.Name,
			Email: consumer.Email,
		}
	}
	resp.Customer.ConsumerID = consumerRef

	var vehicleRef *VehicleRef
	if vehicle != nil {
		vehicleRef = &VehicleRef{
			ID:     vehicle.ID.Hex(),
			Type:   vehicle.Type,
			Number: vehicle.Number,
		}
	}
	resp.Vehicle.VehicleID = vehicleRef

	return resp
}
