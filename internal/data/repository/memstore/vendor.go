package memstore

import (
	"context"

	"fleet-booking/internal/data/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type vendorStore struct {
	*Store
}

func (s *vendorStore) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]*entity.Vendor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*entity.Vendor
	for _, id := range ids {
		if v, ok := s.vendors[id]; ok {
			out = append(out, &v)
		}
	}
	return out, nil
}
