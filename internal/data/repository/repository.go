package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// Collection names, one per entity kind
const (
	VehicleCollection    = "vehicles"
	ConsumerCollection   = "consumers"
	BookingCollection    = "bookings"
	TeamMemberCollection = "teammembers"
	VendorCollection     = "vendors"
	PaymentCollection    = "payments"
)

var (
	// ErrNotFound is returned by writes that matched no document
	ErrNotFound = errors.New("document not found")
	// ErrDuplicateKey is returned when a unique index rejects a write
	ErrDuplicateKey = errors.New("duplicate key")
)

type Repository struct {
	Vehicle    VehicleRepository
	Consumer   ConsumerRepository
	Booking    BookingRepository
	TeamMember TeamMemberRepository
	Vendor     VendorRepository
}

func NewRepository(db *mongo.Database, log *zap.Logger) *Repository {
	return &Repository{
		Vehicle:    NewVehicleRepository(db, log),
		Consumer:   NewConsumerRepository(db, log),
		Booking:    NewBookingRepository(db, log),
		TeamMember: NewTeamMemberRepository(db, log),
		Vendor:     NewVendorRepository(db, log),
	}
}

// EnsureIndexes creates the unique constraints every repository relies on
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		VehicleCollection: {
			{Keys: bson.D{{Key: "number", Value: 1}}, Options: options.Index().SetUnique(true).SetName("uniq_number")},
			{Keys: bson.D{{Key: "type", Value: 1}, {Key: "status", Value: 1}, {Key: "ownership", Value: 1}}, Options: options.Index().SetName("list_filters")},
		},
		ConsumerCollection: {
			{Keys: bson.D{{Key: "phone", Value: 1}}, Options: options.Index().SetUnique(true).SetName("uniq_phone")},
			{
				Keys: bson.D{{Key: "email", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("uniq_email").
					SetPartialFilterExpression(bson.M{"email": bson.M{"$type": "string"}}),
			},
		},
		BookingCollection: {
			{Keys: bson.D{{Key: "bookingNumber", Value: 1}}, Options: options.Index().SetUnique(true).SetName("uniq_booking_number")},
			{Keys: bson.D{{Key: "createdAt", Value: -1}}, Options: options.Index().SetName("newest_first")},
		},
		TeamMemberCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true).SetName("uniq_email")},
		},
		VendorCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true).SetName("uniq_email")},
		},
		PaymentCollection: {
			{Keys: bson.D{{Key: "invoiceNumber", Value: 1}}, Options: options.Index().SetUnique(true).SetName("uniq_invoice_number")},
		},
	}

	for collection, models := range indexes {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create indexes on %s: %w", collection, err)
		}
	}

	return nil
}

// translateWriteError maps driver errors onto the package sentinels
func translateWriteError(err error) error {
	if err == nil {
		return nil
	}
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%w: %v", ErrDuplicateKey, err)
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}

// findOne decodes a single document, returning nil when nothing matches
func findOne[T any](ctx context.Context, coll *mongo.Collection, filter interface{}) (*T, error) {
	var doc T
	err := coll.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func findMany[T any](ctx context.Context, coll *mongo.Collection, filter interface{}, opts ...*options.FindOptions) ([]*T, error) {
	cursor, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []*T
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func newestFirst() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}})
}
