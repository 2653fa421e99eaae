package repository

import (
	"testing"

	"fleet-booking/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
	"go.uber.org/zap"
)

func TestConsumerRepository_UpsertByPhone(t *testing.T) {
	mt := newMockT(t)

	mt.Run("returns the stored consumer", func(mt *mtest.T) {
		repo := NewConsumerRepository(mt.DB, zap.NewNop())
		storedID := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{
			{Key: "_id", Value: storedID},
			{Key: "name", Value: "Asha"},
			{Key: "phone", Value: "9990001111"},
			{Key: "type", Value: "regular"},
		}}))

		candidate := &entity.Consumer{
			Base:  entity.Base{ID: primitive.NewObjectID()},
			Name:  "Someone Else",
			Phone: "9990001111",
			Type:  entity.ConsumerTypeNew,
		}
		consumer, err := repo.UpsertByPhone(t.Context(), candidate)
		require.NoError(t, err)
		assert.Equal(t, storedID, consumer.ID)
		assert.Equal(t, "Asha", consumer.Name)
		assert.Equal(t, entity.ConsumerTypeRegular, consumer.Type)
	})

	mt.Run("email collision", func(mt *mtest.T) {
		repo := NewConsumerRepository(mt.DB, zap.NewNop())
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    11000,
			Message: "E11000 duplicate key error collection: fleet.consumers index: uniq_email",
		}))

		_, err := repo.UpsertByPhone(t.Context(), &entity.Consumer{Phone: "9990002222", Email: "asha@example.com"})
		assert.ErrorIs(t, err, ErrDuplicateKey)
	})
}

func TestConsumerRepository_FindByPhone(t *testing.T) {
	mt := newMockT(t)

	mt.Run("found", func(mt *mtest.T) {
		repo := NewConsumerRepository(mt.DB, zap.NewNop())
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "fleet.consumers", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "name", Value: "Asha"},
			{Key: "phone", Value: "9990001111"},
		}))

		consumer, err := repo.FindByPhone(t.Context(), "9990001111")
		require.NoError(t, err)
		require.NotNil(t, consumer)
		assert.Equal(t, "Asha", consumer.Name)
	})

	mt.Run("missing", func(mt *mtest.T) {
		repo := NewConsumerRepository(mt.DB, zap.NewNop())
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "fleet.consumers", mtest.FirstBatch))

		consumer, err := repo.FindByPhone(t.Context(), "9990001111")
		assert.NoError(t, err)
		assert.Nil(t, consumer)
	})
}

func TestConsumerRepository_Update(t *testing.T) {
	mt := newMockT(t)

	mt.Run("duplicate phone", func(mt *mtest.T) {
		repo := NewConsumerRepository(mt.DB, zap.NewNop())
		mt.AddMockResponses(duplicateKeyResponse())

		err := repo.Update(t.Context(), &entity.Consumer{Base: entity.Base{ID: primitive.NewObjectID()}, Phone: "9990001111"})
		assert.ErrorIs(t, err, ErrDuplicateKey)
	})
}
