package memstore

import (
	"context"
	"fmt"
	"time"

	"fleet-booking/internal/data/entity"
	"fleet-booking/internal/data/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type vehicleStore struct {
	*Store
}

func (s *vehicleStore) Create(_ context.Context, vehicle *entity.Vehicle) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.insertVehicle(vehicle)
}

// CreateMany is ordered like InsertMany: it stops at the first conflict
func (s *vehicleStore) CreateMany(_ context.Context, vehicles []*entity.Vehicle) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, v := range vehicles {
		if err := s.insertVehicle(v); err != nil {
			return err
		}
	}
	return nil
}

func (s *vehicleStore) insertVehicle(vehicle *entity.Vehicle) error {
	assignID(&vehicle.Base)
	if _, ok := s.vehicles[vehicle.ID]; ok {
		return fmt.Errorf("vehicle _id %s: %w", vehicle.ID.Hex(), repository.ErrDuplicateKey)
	}
	if s.numberTaken(vehicle.Number, primitive.NilObjectID) {
		return fmt.Errorf("vehicle number %s: %w", vehicle.Number, repository.ErrDuplicateKey)
	}
	s.vehicles[vehicle.ID] = *vehicle
	return nil
}

func (s *vehicleStore) numberTaken(number string, except primitive.ObjectID) bool {
	for id, v := range s.vehicles {
		if v.Number == number && id != except {
			return true
		}
	}
	return false
}

func (s *vehicleStore) FindByID(_ context.Context, id primitive.ObjectID) (*entity.Vehicle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.vehicles[id]
	if !ok {
		return nil, nil
	}
	return &v, nil
}

func (s *vehicleStore) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]*entity.Vehicle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*entity.Vehicle
	for _, id := range ids {
		if v, ok := s.vehicles[id]; ok {
			out = append(out, &v)
		}
	}
	return out, nil
}

func (s *vehicleStore) FindByNumber(_ context.Context, number string) (*entity.Vehicle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, v := range s.vehicles {
		if v.Number == number {
			return &v, nil
		}
	}
	return nil, nil
}

func (s *vehicleStore) FindExistingNumbers(_ context.Context, numbers []string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var existing []string
	for _, number := range numbers {
		if s.numberTaken(number, primitive.NilObjectID) {
			existing = append(existing, number)
		}
	}
	return existing, nil
}

func (s *vehicleStore) ExistsNumberExcept(_ context.Context, number string, excludeID primitive.ObjectID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.numberTaken(number, excludeID), nil
}

func (s *vehicleStore) FindAll(_ context.Context, filter entity.VehicleFilter, limit, offset int) ([]*entity.Vehicle, error) {
	matched := s.matching(filter)
	if offset >= len(matched) {
		return nil, nil
	}
	end := len(matched)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return matched[offset:end], nil
}

func (s *vehicleStore) CountAll(_ context.Context, filter entity.VehicleFilter) (int64, error) {
	return int64(len(s.matching(filter))), nil
}

func (s *vehicleStore) matching(filter entity.VehicleFilter) []*entity.Vehicle {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*entity.Vehicle
	for _, v := range s.vehicles {
		if filter.Type != "" && string(v.Type) != filter.Type {
			continue
		}
		if filter.Status != "" && string(v.Status) != filter.Status {
			continue
		}
		if filter.Ownership != "" && string(v.Ownership) != filter.Ownership {
			continue
		}
		out = append(out, &v)
	}
	sortNewestFirst(out, func(v *entity.Vehicle) entity.Base { return v.Base })
	return out
}

func (s *vehicleStore) FindComplianceExpiring(_ context.Context, cutoff time.Time) ([]*entity.Vehicle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*entity.Vehicle
	for _, v := range s.vehicles {
		if !v.Compliance.ExpiresBy(cutoff) {
			continue
		}
		out = append(out, &entity.Vehicle{
			Base:       entity.Base{ID: v.ID},
			Number:     v.Number,
			Model:      v.Model,
			Compliance: v.Compliance,
		})
	}
	return out, nil
}

func (s *vehicleStore) Update(_ context.Context, vehicle *entity.Vehicle) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.vehicles[vehicle.ID]; !ok {
		return fmt.Errorf("update vehicle %s: %w", vehicle.ID.Hex(), repository.ErrNotFound)
	}
	if s.numberTaken(vehicle.Number, vehicle.ID) {
		return fmt.Errorf("vehicle number %s: %w", vehicle.Number, repository.ErrDuplicateKey)
	}
	s.vehicles[vehicle.ID] = *vehicle
	return nil
}

func (s *vehicleStore) Delete(_ context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.vehicles[id]; !ok {
		return fmt.Errorf("delete vehicle %s: %w", id.Hex(), repository.ErrNotFound)
	}
	delete(s.vehicles, id)
	return nil
}

func (s *vehicleStore) FleetSummary(_ context.Context) (*entity.FleetSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.vehicles) == 0 {
		return nil, nil
	}

	summary := &entity.FleetSummary{}
	for _, v := range s.vehicles {
		summary.TotalVehicles++
		summary.TotalTrips += v.Stats.TotalTrips
		summary.TotalKms += v.Stats.TotalKms
		summary.TotalRevenue += v.Stats.Revenue
	}
	return summary, nil
}

func (s *vehicleStore) StatusBreakdown(_ context.Context) (map[string]int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	breakdown := make(map[string]int64)
	for _, v := range s.vehicles {
		breakdown[string(v.Status)]++
	}
	return breakdown, nil
}
