package memstore

import (
	"context"
	"fmt"

	"fleet-booking/internal/data/entity"
	"fleet-booking/internal/data/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type consumerStore struct {
	*Store
}

func (s *consumerStore) Create(_ context.Context, consumer *entity.Consumer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.insertConsumer(consumer)
}

func (s *consumerStore) insertConsumer(consumer *entity.Consumer) error {
	assignID(&consumer.Base)
	if _, ok := s.consumers[consumer.ID]; ok {
		return fmt.Errorf("consumer _id %s: %w", consumer.ID.Hex(), repository.ErrDuplicateKey)
	}
	if err := s.checkConsumerUnique(consumer); err != nil {
		return err
	}
	s.consumers[consumer.ID] = *consumer
	return nil
}

func (s *consumerStore) checkConsumerUnique(consumer *entity.Consumer) error {
	for id, c := range s.consumers {
		if id == consumer.ID {
			continue
		}
		if c.Phone == consumer.Phone {
			return fmt.Errorf("consumer phone %s: %w", consumer.Phone, repository.ErrDuplicateKey)
		}
		if consumer.Email != "" && c.Email == consumer.Email {
			return fmt.Errorf("consumer email %s: %w", consumer.Email, repository.ErrDuplicateKey)
		}
	}
	return nil
}

func (s *consumerStore) FindByID(_ context.Context, id primitive.ObjectID) (*entity.Consumer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.consumers[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (s *consumerStore) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]*entity.Consumer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*entity.Consumer
	for _, id := range ids {
		if c, ok := s.consumers[id]; ok {
			out = append(out, &c)
		}
	}
	return out, nil
}

func (s *consumerStore) FindByPhone(_ context.Context, phone string) (*entity.Consumer, error) {
	return s.findBy(func(c entity.Consumer) bool { return c.Phone == phone }), nil
}

func (s *consumerStore) FindByEmail(_ context.Context, email string) (*entity.Consumer, error) {
	return s.findBy(func(c entity.Consumer) bool { return c.Email == email }), nil
}

func (s *consumerStore) findBy(match func(entity.Consumer) bool) *entity.Consumer {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.consumers {
		if match(c) {
			return &c
		}
	}
	return nil
}

func (s *consumerStore) FindAll(_ context.Context) ([]*entity.Consumer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*entity.Consumer, 0, len(s.consumers))
	for _, c := range s.consumers {
		out = append(out, &c)
	}
	sortNewestFirst(out, func(c *entity.Consumer) entity.Base { return c.Base })
	return out, nil
}

func (s *consumerStore) Update(_ context.Context, consumer *entity.Consumer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.consumers[consumer.ID]; !ok {
		return fmt.Errorf("update consumer %s: %w", consumer.ID.Hex(), repository.ErrNotFound)
	}
	if err := s.checkConsumerUnique(consumer); err != nil {
		return err
	}
	s.consumers[consumer.ID] = *consumer
	return nil
}

func (s *consumerStore) Delete(_ context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.consumers[id]; !ok {
		return fmt.Errorf("delete consumer %s: %w", id.Hex(), repository.ErrNotFound)
	}
	delete(s.consumers, id)
	return nil
}

func (s *consumerStore) UpsertByPhone(_ context.Context, consumer *entity.Consumer) (*entity.Consumer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.consumers {
		if c.Phone == consumer.Phone {
			return &c, nil
		}
	}

	stored := *consumer
	if err := s.insertConsumer(&stored); err != nil {
		return nil, fmt.Errorf("upsert consumer %s: %w", consumer.Phone, err)
	}
	return &stored, nil
}
