package memstore

import (
	"context"
	"fmt"
	"slices"

	"fleet-booking/internal/data/entity"
	"fleet-booking/internal/data/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type bookingStore struct {
	*Store
}

// Timelines are cloned on the way in and out so callers never share
// backing arrays with stored records.
func cloneBooking(b entity.Booking) *entity.Booking {
	b.Timeline = slices.Clone(b.Timeline)
	return &b
}

func (s *bookingStore) Create(_ context.Context, booking *entity.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	assignID(&booking.Base)
	if _, ok := s.bookings[booking.ID]; ok {
		return fmt.Errorf("booking _id %s: %w", booking.ID.Hex(), repository.ErrDuplicateKey)
	}
	for _, b := range s.bookings {
		if b.BookingNumber == booking.BookingNumber {
			return fmt.Errorf("booking number %s: %w", booking.BookingNumber, repository.ErrDuplicateKey)
		}
	}
	s.bookings[booking.ID] = *cloneBooking(*booking)
	return nil
}

func (s *bookingStore) FindByID(_ context.Context, id primitive.ObjectID) (*entity.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.bookings[id]
	if !ok {
		return nil, nil
	}
	return cloneBooking(b), nil
}

func (s *bookingStore) FindAll(_ context.Context) ([]*entity.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*entity.Booking, 0, len(s.bookings))
	for _, b := range s.bookings {
		out = append(out, cloneBooking(b))
	}
	sortNewestFirst(out, func(b *entity.Booking) entity.Base { return b.Base })
	return out, nil
}

func (s *bookingStore) UpdateStatus(_ context.Context, id primitive.ObjectID, status entity.BookingStatus, entry entity.TimelineEntry) (*entity.Booking, error) {
	return s.update(id, entry, func(b *entity.Booking) {
		b.Status = status
	})
}

func (s *bookingStore) UpdateDetails(_ context.Context, id primitive.ObjectID, details entity.BookingDetails, entry entity.TimelineEntry) (*entity.Booking, error) {
	return s.update(id, entry, func(b *entity.Booking) {
		b.Customer = details.Customer
		b.Vehicle = details.Vehicle
		b.Trip = details.Trip
		b.Payment = details.Payment
	})
}

func (s *bookingStore) update(id primitive.ObjectID, entry entity.TimelineEntry, apply func(*entity.Booking)) (*entity.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.bookings[id]
	if !ok {
		return nil, fmt.Errorf("update booking %s: %w", id.Hex(), repository.ErrNotFound)
	}

	b := cloneBooking(stored)
	apply(b)
	b.UpdatedAt = entry.Time
	b.Timeline = append(b.Timeline, entry)
	s.bookings[id] = *b

	return cloneBooking(*b), nil
}
