package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fleet-booking/internal/data/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type VehicleRepository interface {
	Create(ctx context.Context, vehicle *entity.Vehicle) error
	CreateMany(ctx context.Context, vehicles []*entity.Vehicle) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Vehicle, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*entity.Vehicle, error)
	FindByNumber(ctx context.Context, number string) (*entity.Vehicle, error)
	FindExistingNumbers(ctx context.Context, numbers []string) ([]string, error)
	ExistsNumberExcept(ctx context.Context, number string, excludeID primitive.ObjectID) (bool, error)
	FindAll(ctx context.Context, filter entity.VehicleFilter, limit, offset int) ([]*entity.Vehicle, error)
	CountAll(ctx context.Context, filter entity.VehicleFilter) (int64, error)
	FindComplianceExpiring(ctx context.Context, cutoff time.Time) ([]*entity.Vehicle, error)
	Update(ctx context.Context, vehicle *entity.Vehicle) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	FleetSummary(ctx context.Context) (*entity.FleetSummary, error)
	StatusBreakdown(ctx context.Context) (map[string]int64, error)
}

type vehicleRepository struct {
	coll *mongo.Collection
	log  *zap.Logger
}

func NewVehicleRepository(db *mongo.Database, log *zap.Logger) VehicleRepository {
	return &vehicleRepository{
		coll: db.Collection(VehicleCollection),
		log:  log.With(zap.String("repository", "vehicle")),
	}
}

func (r *vehicleRepository) Create(ctx context.Context, vehicle *entity.Vehicle) error {
	if _, err := r.coll.InsertOne(ctx, vehicle); err != nil {
		r.log.Error("Failed to create vehicle",
			zap.Error(err),
			zap.String("number", vehicle.Number),
		)
		return fmt.Errorf("create vehicle %s: %w", vehicle.Number, translateWriteError(err))
	}

	return nil
}

func (r *vehicleRepository) CreateMany(ctx context.Context, vehicles []*entity.Vehicle) error {
	if len(vehicles) == 0 {
		return nil
	}

	docs := make([]interface{}, len(vehicles))
	for i, v := range vehicles {
		docs[i] = v
	}

	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		r.log.Error("Failed to bulk create vehicles",
			zap.Error(err),
			zap.Int("count", len(vehicles)),
		)
		return fmt.Errorf("create %d vehicles: %w", len(vehicles), translateWriteError(err))
	}

	return nil
}

func (r *vehicleRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Vehicle, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *vehicleRepository) FindByNumber(ctx context.Context, number string) (*entity.Vehicle, error) {
	return r.findOne(ctx, bson.M{"number": number})
}

func (r *vehicleRepository) findOne(ctx context.Context, filter bson.M) (*entity.Vehicle, error) {
	var vehicle entity.Vehicle
	err := r.coll.FindOne(ctx, filter).Decode(&vehicle)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find vehicle",
			zap.Error(err),
			zap.Any("filter", filter),
		)
		return nil, fmt.Errorf("find vehicle: %w", err)
	}

	return &vehicle, nil
}

func (r *vehicleRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*entity.Vehicle, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	return r.find(ctx, bson.M{"_id": bson.M{"$in": ids}}, options.Find())
}

func (r *vehicleRepository) FindExistingNumbers(ctx context.Context, numbers []string) ([]string, error) {
	if len(numbers) == 0 {
		return nil, nil
	}

	opts := options.Find().SetProjection(bson.D{{Key: "number", Value: 1}})
	vehicles, err := r.find(ctx, bson.M{"number": bson.M{"$in": numbers}}, opts)
	if err != nil {
		return nil, err
	}

	existing := make([]string, len(vehicles))
	for i, v := range vehicles {
		existing[i] = v.Number
	}
	return existing, nil
}

func (r *vehicleRepository) ExistsNumberExcept(ctx context.Context, number string, excludeID primitive.ObjectID) (bool, error) {
	filter := bson.M{"number": number, "_id": bson.M{"$ne": excludeID}}

	count, err := r.coll.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		r.log.Error("Failed to check vehicle number",
			zap.Error(err),
			zap.String("number", number),
		)
		return false, fmt.Errorf("check vehicle number %s: %w", number, err)
	}

	return count > 0, nil
}

func (r *vehicleRepository) FindAll(ctx context.Context, filter entity.VehicleFilter, limit, offset int) ([]*entity.Vehicle, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))

	return r.find(ctx, vehicleFilter(filter), opts)
}

func (r *vehicleRepository) CountAll(ctx context.Context, filter entity.VehicleFilter) (int64, error) {
	total, err := r.coll.CountDocuments(ctx, vehicleFilter(filter))
	if err != nil {
		r.log.Error("Failed to count vehicles",
			zap.Error(err),
			zap.Any("filter", filter),
		)
		return 0, fmt.Errorf("count vehicles: %w", err)
	}

	return total, nil
}

func (r *vehicleRepository) FindComplianceExpiring(ctx context.Context, cutoff time.Time) ([]*entity.Vehicle, error) {
	filter := bson.M{
		"$or": bson.A{
			bson.M{"compliance.rcExpiry": bson.M{"$lte": cutoff}},
			bson.M{"compliance.insurance.expiry": bson.M{"$lte": cutoff}},
			bson.M{"compliance.fitnessExpiry": bson.M{"$lte": cutoff}},
			bson.M{"compliance.permit.expiry": bson.M{"$lte": cutoff}},
			bson.M{"compliance.pocExpiry": bson.M{"$lte": cutoff}},
		},
	}
	opts := options.Find().SetProjection(bson.D{
		{Key: "number", Value: 1},
		{Key: "model", Value: 1},
		{Key: "compliance", Value: 1},
	})

	return r.find(ctx, filter, opts)
}

func (r *vehicleRepository) Update(ctx context.Context, vehicle *entity.Vehicle) error {
	result, err := r.coll.ReplaceOne(ctx, bson.M{"_id": vehicle.ID}, vehicle)
	if err != nil {
		r.log.Error("Failed to update vehicle",
			zap.Error(err),
			zap.String("vehicle_id", vehicle.ID.Hex()),
		)
		return fmt.Errorf("update vehicle %s: %w", vehicle.ID.Hex(), translateWriteError(err))
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("update vehicle %s: %w", vehicle.ID.Hex(), ErrNotFound)
	}

	return nil
}

func (r *vehicleRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		r.log.Error("Failed to delete vehicle",
			zap.Error(err),
			zap.String("vehicle_id", id.Hex()),
		)
		return fmt.Errorf("delete vehicle %s: %w", id.Hex(), err)
	}

	if result.DeletedCount == 0 {
		return fmt.Errorf("delete vehicle %s: %w", id.Hex(), ErrNotFound)
	}

	r.log.Info("Vehicle deleted", zap.String("vehicle_id", id.Hex()))
	return nil
}

func (r *vehicleRepository) FleetSummary(ctx context.Context) (*entity.FleetSummary, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "totalVehicles", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "totalTrips", Value: bson.D{{Key: "$sum", Value: "$stats.totalTrips"}}},
			{Key: "totalKms", Value: bson.D{{Key: "$sum", Value: "$stats.totalKms"}}},
			{Key: "totalRevenue", Value: bson.D{{Key: "$sum", Value: "$stats.revenue"}}},
		}}},
		{{Key: "$project", Value: bson.D{{Key: "_id", Value: 0}}}},
	}

	var rows []entity.FleetSummary
	if err := r.aggregate(ctx, pipeline, &rows); err != nil {
		return nil, fmt.Errorf("fleet summary: %w", err)
	}

	// No vehicles, no group
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

func (r *vehicleRepository) StatusBreakdown(ctx context.Context) (map[string]int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$status"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}

	var rows []struct {
		Status string `bson:"_id"`
		Count  int64  `bson:"count"`
	}
	if err := r.aggregate(ctx, pipeline, &rows); err != nil {
		return nil, fmt.Errorf("status breakdown: %w", err)
	}

	breakdown := make(map[string]int64, len(rows))
	for _, row := range rows {
		breakdown[row.Status] = row.Count
	}
	return breakdown, nil
}

func (r *vehicleRepository) find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]*entity.Vehicle, error) {
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		r.log.Error("Failed to query vehicles", zap.Error(err))
		return nil, fmt.Errorf("find vehicles: %w", err)
	}
	defer cursor.Close(ctx)

	var vehicles []*entity.Vehicle
	if err := cursor.All(ctx, &vehicles); err != nil {
		r.log.Error("Failed to decode vehicles", zap.Error(err))
		return nil, fmt.Errorf("decode vehicles: %w", err)
	}

	return vehicles, nil
}

func (r *vehicleRepository) aggregate(ctx context.Context, pipeline mongo.Pipeline, out interface{}) error {
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		r.log.Error("Failed to aggregate vehicles", zap.Error(err))
		return err
	}
	defer cursor.Close(ctx)

	return cursor.All(ctx, out)
}

func vehicleFilter(filter entity.VehicleFilter) bson.M {
	query := bson.M{}
	if filter.Type != "" {
		query["type"] = filter.Type
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Ownership != "" {
		query["ownership"] = filter.Ownership
	}
	return query
}
