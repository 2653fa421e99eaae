package repository

import (
	"context"
	"errors"
	"fmt"

	"fleet-booking/internal/data/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Booking, error)
	FindAll(ctx context.Context) ([]*entity.Booking, error)

	// Business queries
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status entity.BookingStatus, entry entity.TimelineEntry) (*entity.Booking, error)
	UpdateDetails(ctx context.Context, id primitive.ObjectID, details entity.BookingDetails, entry entity.TimelineEntry) (*entity.Booking, error)
}

type bookingRepository struct {
	coll *mongo.Collection
	log  *zap.Logger
}

func NewBookingRepository(db *mongo.Database, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		coll: db.Collection(BookingCollection),
		log:  log.With(zap.String("repository", "booking")),
	}
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("booking_number", booking.BookingNumber),
			zap.String("consumer_id", booking.Customer.ConsumerID.Hex()),
		)
		return fmt.Errorf("create booking %s: %w", booking.BookingNumber, translateWriteError(err))
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Booking, error) {
	var booking entity.Booking
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&booking)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.Hex()),
		)
		return nil, fmt.Errorf("find booking by id %s: %w", id.Hex(), err)
	}

	return &booking, nil
}

func (r *bookingRepository) FindAll(ctx context.Context) ([]*entity.Booking, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}})

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		r.log.Error("Failed to list bookings", zap.Error(err))
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []*entity.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		r.log.Error("Failed to decode bookings", zap.Error(err))
		return nil, fmt.Errorf("decode bookings: %w", err)
	}

	return bookings, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status entity.BookingStatus, entry entity.TimelineEntry) (*entity.Booking, error) {
	set := bson.M{
		"status":    status,
		"updatedAt": entry.Time,
	}

	booking, err := r.updateWithTimeline(ctx, id, set, entry)
	if errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("update booking status %s: %w", id.Hex(), err)
	}
	if err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", id.Hex()),
			zap.String("status", string(status)),
		)
		return nil, fmt.Errorf("update booking status %s: %w", id.Hex(), err)
	}

	return booking, nil
}

func (r *bookingRepository) UpdateDetails(ctx context.Context, id primitive.ObjectID, details entity.BookingDetails, entry entity.TimelineEntry) (*entity.Booking, error) {
	set := bson.M{
		"customer":  details.Customer,
		"vehicle":   details.Vehicle,
		"trip":      details.Trip,
		"payment":   details.Payment,
		"updatedAt": entry.Time,
	}

	booking, err := r.updateWithTimeline(ctx, id, set, entry)
	if errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("update booking %s: %w", id.Hex(), err)
	}
	if err != nil {
		r.log.Error("Failed to update booking",
			zap.Error(err),
			zap.String("booking_id", id.Hex()),
		)
		return nil, fmt.Errorf("update booking %s: %w", id.Hex(), err)
	}

	return booking, nil
}

// updateWithTimeline applies set and appends entry in one atomic write
func (r *bookingRepository) updateWithTimeline(ctx context.Context, id primitive.ObjectID, set bson.M, entry entity.TimelineEntry) (*entity.Booking, error) {
	update := bson.M{
		"$set":  set,
		"$push": bson.M{"timeline": entry},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var booking entity.Booking
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&booking); err != nil {
		return nil, translateWriteError(err)
	}

	return &booking, nil
}
