package repository

import (
	"context"
	"fmt"

	"fleet-booking/internal/data/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// VendorRepository is read-only; vendors are only looked up to expand vehicles
type VendorRepository interface {
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*entity.Vendor, error)
}

type vendorRepository struct {
	coll *mongo.Collection
	log  *zap.Logger
}

func NewVendorRepository(db *mongo.Database, log *zap.Logger) VendorRepository {
	return &vendorRepository{
		coll: db.Collection(VendorCollection),
		log:  log.With(zap.String("repository", "vendor")),
	}
}

func (r *vendorRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*entity.Vendor, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	vendors, err := findMany[entity.Vendor](ctx, r.coll, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		r.log.Error("Failed to find vendors by IDs",
			zap.Error(err),
			zap.Int("count", len(ids)),
		)
		return nil, fmt.Errorf("find vendors by ids: %w", err)
	}

	return vendors, nil
}
