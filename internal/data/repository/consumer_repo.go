package repository

import (
	"context"
	"fmt"

	"fleet-booking/internal/data/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type ConsumerRepository interface {
	Create(ctx context.Context, consumer *entity.Consumer) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Consumer, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*entity.Consumer, error)
	FindByPhone(ctx context.Context, phone string) (*entity.Consumer, error)
	FindByEmail(ctx context.Context, email string) (*entity.Consumer, error)
	FindAll(ctx context.Context) ([]*entity.Consumer, error)
	Update(ctx context.Context, consumer *entity.Consumer) error
	Delete(ctx context.Context, id primitive.ObjectID) error

	// UpsertByPhone inserts consumer unless a record with its phone exists,
	// and returns whichever record is stored. An existing record is untouched.
	UpsertByPhone(ctx context.Context, consumer *entity.Consumer) (*entity.Consumer, error)
}

type consumerRepository struct {
	coll *mongo.Collection
	log  *zap.Logger
}

func NewConsumerRepository(db *mongo.Database, log *zap.Logger) ConsumerRepository {
	return &consumerRepository{
		coll: db.Collection(ConsumerCollection),
		log:  log.With(zap.String("repository", "consumer")),
	}
}

func (r *consumerRepository) Create(ctx context.Context, consumer *entity.Consumer) error {
	if _, err := r.coll.InsertOne(ctx, consumer); err != nil {
		r.log.Error("Failed to create consumer",
			zap.Error(err),
			zap.String("phone", consumer.Phone),
		)
		return fmt.Errorf("create consumer %s: %w", consumer.Phone, translateWriteError(err))
	}

	return nil
}

func (r *consumerRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Consumer, error) {
	consumer, err := findOne[entity.Consumer](ctx, r.coll, bson.M{"_id": id})
	if err != nil {
		r.log.Error("Failed to find consumer by ID",
			zap.Error(err),
			zap.String("consumer_id", id.Hex()),
		)
		return nil, fmt.Errorf("find consumer by id %s: %w", id.Hex(), err)
	}

	return consumer, nil
}

func (r *consumerRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*entity.Consumer, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	consumers, err := findMany[entity.Consumer](ctx, r.coll, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		r.log.Error("Failed to find consumers by IDs",
			zap.Error(err),
			zap.Int("count", len(ids)),
		)
		return nil, fmt.Errorf("find consumers by ids: %w", err)
	}

	return consumers, nil
}

func (r *consumerRepository) FindByPhone(ctx context.Context, phone string) (*entity.Consumer, error) {
	consumer, err := findOne[entity.Consumer](ctx, r.coll, bson.M{"phone": phone})
	if err != nil {
		r.log.Error("Failed to find consumer by phone",
			zap.Error(err),
			zap.String("phone", phone),
		)
		return nil, fmt.Errorf("find consumer by phone %s: %w", phone, err)
	}

	return consumer, nil
}

func (r *consumerRepository) FindByEmail(ctx context.Context, email string) (*entity.Consumer, error) {
	consumer, err := findOne[entity.Consumer](ctx, r.coll, bson.M{"email": email})
	if err != nil {
		r.log.Error("Failed to find consumer by email",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find consumer by email %s: %w", email, err)
	}

	return consumer, nil
}

func (r *consumerRepository) FindAll(ctx context.Context) ([]*entity.Consumer, error) {
	consumers, err := findMany[entity.Consumer](ctx, r.coll, bson.M{}, newestFirst())
	if err != nil {
		r.log.Error("Failed to list consumers", zap.Error(err))
		return nil, fmt.Errorf("list consumers: %w", err)
	}

	return consumers, nil
}

func (r *consumerRepository) Update(ctx context.Context, consumer *entity.Consumer) error {
	result, err := r.coll.ReplaceOne(ctx, bson.M{"_id": consumer.ID}, consumer)
	if err != nil {
		r.log.Error("Failed to update consumer",
			zap.Error(err),
			zap.String("consumer_id", consumer.ID.Hex()),
		)
		return fmt.Errorf("update consumer %s: %w", consumer.ID.Hex(), translateWriteError(err))
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("update consumer %s: %w", consumer.ID.Hex(), ErrNotFound)
	}

	return nil
}

func (r *consumerRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		r.log.Error("Failed to delete consumer",
			zap.Error(err),
			zap.String("consumer_id", id.Hex()),
		)
		return fmt.Errorf("delete consumer %s: %w", id.Hex(), err)
	}

	if result.DeletedCount == 0 {
		return fmt.Errorf("delete consumer %s: %w", id.Hex(), ErrNotFound)
	}

	r.log.Info("Consumer deleted", zap.String("consumer_id", id.Hex()))
	return nil
}

func (r *consumerRepository) UpsertByPhone(ctx context.Context, consumer *entity.Consumer) (*entity.Consumer, error) {
	filter := bson.M{"phone": consumer.Phone}
	update := bson.M{"$setOnInsert": consumer}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var stored entity.Consumer
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&stored); err != nil {
		err = translateWriteError(err)
		r.log.Warn("Failed to upsert consumer",
			zap.Error(err),
			zap.String("phone", consumer.Phone),
		)
		return nil, fmt.Errorf("upsert consumer %s: %w", consumer.Phone, err)
	}

	return &stored, nil
}
