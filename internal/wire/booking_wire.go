package wire

import (
	"fleet-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler) {
	r.Route("/api/bookings", func(r chi.Router) {
		// POST /api/bookings - Create booking, resolving the consumer by phone
		r.Post("/", bookingHandler.CreateBooking)

		// GET /api/bookings - All bookings, newest first
		r.Get("/", bookingHandler.GetBookings)

		r.Get("/{id}", bookingHandler.GetBookingByID)

		// PATCH /api/bookings/{id}/status - Move through the lifecycle
		r.Patch("/{id}/status", bookingHandler.UpdateBookingStatus)

		r.Patch("/{id}", bookingHandler.UpdateBooking)
	})
}
