package usecase

import (
	"context"
	"testing"
	"time"

	"fleet-booking/internal/data/entity"
	"fleet-booking/internal/data/repository"
	"fleet-booking/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// racingConsumerRepo loses every upsert on the phone index to a record
// written by a concurrent request.
type racingConsumerRepo struct {
	repository.ConsumerRepository
	winner      *entity.Consumer
	upserts     int
	phoneLookup []string
}

func (r *racingConsumerRepo) UpsertByPhone(_ context.Context, _ *entity.Consumer) (*entity.Consumer, error) {
	r.upserts++
	return nil, repository.ErrDuplicateKey
}

func (r *racingConsumerRepo) FindByPhone(_ context.Context, phone string) (*entity.Consumer, error) {
	r.phoneLookup = append(r.phoneLookup, phone)
	if r.winner != nil && r.winner.Phone == phone {
		return r.winner, nil
	}
	return nil, nil
}

func TestResolveConsumer_Idempotent(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := t.Context()

	first, err := svc.Consumer.ResolveConsumer(ctx, "Asha Rao", "9990001111", "asha@example.com")
	require.NoError(t, err)
	second, err := svc.Consumer.ResolveConsumer(ctx, "Someone Else", " 9990001111 ", "other@example.com")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Asha Rao", second.Name)
	assert.Equal(t, entity.ConsumerTypeNew, second.Type)

	all, err := svc.Consumer.GetConsumers(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestResolveConsumer_EmailTakenByAnotherPhone(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := t.Context()

	_, err := svc.Consumer.ResolveConsumer(ctx, "Asha Rao", "9990001111", "asha@example.com")
	require.NoError(t, err)

	_, err = svc.Consumer.ResolveConsumer(ctx, "Kiran", "9990002222", "asha@example.com")
	svcErr := assertKind(t, err, ErrConflict)
	assert.Equal(t, "A consumer with this email already exists.", svcErr.Message)
}

func TestCreateConsumer(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := t.Context()

	consumer, err := svc.Consumer.CreateConsumer(ctx, &request.ConsumerRequest{Name: " Asha ", Phone: "9990001111"})
	require.NoError(t, err)
	assert.Equal(t, "Asha", consumer.Name)
	assert.Equal(t, entity.ConsumerTypeNew, consumer.Type)

	_, err = svc.Consumer.CreateConsumer(ctx, &request.ConsumerRequest{Name: "Other", Phone: "9990001111"})
	svcErr := assertKind(t, err, ErrConflict)
	assert.Equal(t, "A consumer with this phone number already exists.", svcErr.Message)

	_, err = svc.Consumer.CreateConsumer(ctx, &request.ConsumerRequest{Phone: "9990003333", Email: "bad", Type: "vip"})
	svcErr = assertKind(t, err, ErrValidation)
	assert.Contains(t, svcErr.Fields, "name")
	assert.Contains(t, svcErr.Fields, "email")
	assert.Contains(t, svcErr.Fields, "type")
}

func TestUpdateConsumer(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := t.Context()

	asha, err := svc.Consumer.CreateConsumer(ctx, &request.ConsumerRequest{Name: "Asha", Phone: "9990001111"})
	require.NoError(t, err)
	_, err = svc.Consumer.CreateConsumer(ctx, &request.ConsumerRequest{Name: "Kiran", Phone: "9990002222"})
	require.NoError(t, err)

	company := "Acme Corp"
	corporate := "corporate"
	updated, err := svc.Consumer.UpdateConsumer(ctx, asha.ID, &request.ConsumerUpdateRequest{Company: &company, Type: &corporate})
	require.NoError(t, err)
	assert.Equal(t, "Asha", updated.Name)
	assert.Equal(t, "Acme Corp", updated.Company)
	assert.Equal(t, entity.ConsumerTypeCorporate, updated.Type)

	taken := "9990002222"
	_, err = svc.Consumer.UpdateConsumer(ctx, asha.ID, &request.ConsumerUpdateRequest{Phone: &taken})
	svcErr := assertKind(t, err, ErrConflict)
	assert.Equal(t, "Duplicate phone number. This phone is already in use by another consumer.", svcErr.Message)

	_, err = svc.Consumer.UpdateConsumer(ctx, "65f1a2b3c4d5e6f708192a3b", &request.ConsumerUpdateRequest{})
	assertKind(t, err, ErrNotFound)
}

func TestDeleteConsumer(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := t.Context()

	consumer, err := svc.Consumer.CreateConsumer(ctx, &request.ConsumerRequest{Name: "Asha", Phone: "9990001111"})
	require.NoError(t, err)

	require.NoError(t, svc.Consumer.DeleteConsumer(ctx, consumer.ID))

	_, err = svc.Consumer.GetConsumerByID(ctx, consumer.ID)
	svcErr := assertKind(t, err, ErrNotFound)
	assert.Equal(t, "Consumer not found.", svcErr.Message)

	assertKind(t, svc.Consumer.DeleteConsumer(ctx, "xyz"), ErrInvalidID)
}

func TestResolveConsumer_LostUpsertReadsBackWinner(t *testing.T) {
	winner := &entity.Consumer{
		Base:  entity.NewBase(time.Now().UTC()),
		Name:  "Asha Rao",
		Phone: "9990001111",
		Email: "asha@example.com",
		Type:  entity.ConsumerTypeNew,
	}
	repo := &racingConsumerRepo{winner: winner}
	svc := NewConsumerService(&repository.Repository{Consumer: repo}, zap.NewNop())

	got, err := svc.ResolveConsumer(t.Context(), "Someone Else", " 9990001111 ", "other@example.com")
	require.NoError(t, err)
	assert.Same(t, winner, got)
	assert.Equal(t, 1, repo.upserts)
	assert.Equal(t, []string{"9990001111"}, repo.phoneLookup)
}
