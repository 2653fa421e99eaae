// Package memstore keeps every collection in process memory behind the same
// repository interfaces as the MongoDB implementation. Unique constraints
// mirror the indexes created by repository.EnsureIndexes.
package memstore

import (
	"bytes"
	"slices"
	"sync"

	"fleet-booking/internal/data/entity"
	"fleet-booking/internal/data/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Store struct {
	mu        sync.RWMutex
	vehicles  map[primitive.ObjectID]entity.Vehicle
	consumers map[primitive.ObjectID]entity.Consumer
	bookings  map[primitive.ObjectID]entity.Booking
	members   map[primitive.ObjectID]entity.TeamMember
	vendors   map[primitive.ObjectID]entity.Vendor
}

func New() *Store {
	return &Store{
		vehicles:  make(map[primitive.ObjectID]entity.Vehicle),
		consumers: make(map[primitive.ObjectID]entity.Consumer),
		bookings:  make(map[primitive.ObjectID]entity.Booking),
		members:   make(map[primitive.ObjectID]entity.TeamMember),
		vendors:   make(map[primitive.ObjectID]entity.Vendor),
	}
}

// NewRepository wires a fresh store into the aggregate used by services
func NewRepository() *repository.Repository {
	return New().Repository()
}

func (s *Store) Repository() *repository.Repository {
	return &repository.Repository{
		Vehicle:    &vehicleStore{s},
		Consumer:   &consumerStore{s},
		Booking:    &bookingStore{s},
		TeamMember: &teamMemberStore{s},
		Vendor:     &vendorStore{s},
	}
}

// PutVendor stores a vendor. Vendors have no write path in the service.
func (s *Store) PutVendor(vendor entity.Vendor) primitive.ObjectID {
	s.mu.Lock()
	defer s.mu.Unlock()

	if vendor.ID.IsZero() {
		vendor.ID = primitive.NewObjectID()
	}
	s.vendors[vendor.ID] = vendor
	return vendor.ID
}

// sortNewestFirst orders by createdAt then id, both descending
func sortNewestFirst[T any](items []*T, base func(*T) entity.Base) {
	slices.SortFunc(items, func(a, b *T) int {
		ba, bb := base(a), base(b)
		if c := bb.CreatedAt.Compare(ba.CreatedAt); c != 0 {
			return c
		}
		return bytes.Compare(bb.ID[:], ba.ID[:])
	})
}

func assignID(base *entity.Base) {
	if base.ID.IsZero() {
		base.ID = primitive.NewObjectID()
	}
}
