package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"fleet-booking/internal/data/entity"
	"fleet-booking/internal/data/repository"
	"fleet-booking/internal/dto/request"
	"fleet-booking/internal/dto/response"

	"go.uber.org/zap"
)

type ConsumerService interface {
	CreateConsumer(ctx context.Context, req *request.ConsumerRequest) (*response.ConsumerResponse, error)
	GetConsumers(ctx context.Context) ([]response.ConsumerResponse, error)
	GetConsumerByID(ctx context.Context, consumerID string) (*response.ConsumerResponse, error)
	UpdateConsumer(ctx context.Context, consumerID string, req *request.ConsumerUpdateRequest) (*response.ConsumerResponse, error)
	DeleteConsumer(ctx context.Context, consumerID string) error

	ConsumerResolver
}

// ConsumerResolver finds the consumer owning a phone number, creating one
// from the given details when none exists.
type ConsumerResolver interface {
	ResolveConsumer(ctx context.Context, name, phone, email string) (*entity.Consumer, error)
}

type consumerService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewConsumerService(repo *repository.Repository, log *zap.Logger) ConsumerService {
	return &consumerService{
		repo: repo,
		log:  log.With(zap.String("service", "consumer")),
	}
}

func (s *consumerService) CreateConsumer(ctx context.Context, req *request.ConsumerRequest) (*response.ConsumerResponse, error) {
	normalizeConsumerRequest(req)
	if err := validate(req); err != nil {
		s.log.Warn("Create consumer validation failed", zap.Error(err))
		return nil, err
	}

	existing, err := s.repo.Consumer.FindByPhone(ctx, req.Phone)
	if err != nil {
		return nil, fmt.Errorf("check consumer phone: %w", err)
	}
	if existing != nil {
		return nil, conflictError("A consumer with this phone number already exists.", nil)
	}

	consumer := &entity.Consumer{Base: entity.NewBase(time.Now().UTC())}
	applyConsumerRequest(consumer, req)

	if err := s.repo.Consumer.Create(ctx, consumer); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, conflictError("Duplicate key error. Check unique fields like phone/email.", err)
		}
		return nil, fmt.Errorf("create consumer: %w", err)
	}

	s.log.Info("Consumer created",
		zap.String("consumer_id", consumer.ID.Hex()),
		zap.String("phone", consumer.Phone),
	)

	resp := response.ConsumerToResponse(consumer)
	return &resp, nil
}

func (s *consumerService) GetConsumers(ctx context.Context) ([]response.ConsumerResponse, error) {
	consumers, err := s.repo.Consumer.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get consumers: %w", err)
	}

	resp := make([]response.ConsumerResponse, len(consumers))
	for i, c := range consumers {
		resp[i] = response.ConsumerToResponse(c)
	}
	return resp, nil
}

func (s *consumerService) GetConsumerByID(ctx context.Context, consumerID string) (*response.ConsumerResponse, error) {
	consumer, err := s.findConsumer(ctx, consumerID)
	if err != nil {
		return nil, err
	}

	resp := response.ConsumerToResponse(consumer)
	return &resp, nil
}

func (s *consumerService) UpdateConsumer(ctx context.Context, consumerID string, req *request.ConsumerUpdateRequest) (*response.ConsumerResponse, error) {
	consumer, err := s.findConsumer(ctx, consumerID)
	if err != nil {
		return nil, err
	}

	merged := request.ConsumerRequest{
		Name:    consumer.Name,
		Phone:   consumer.Phone,
		Email:   consumer.Email,
		Address: consumer.Address,
		Company: consumer.Company,
		Type:    string(consumer.Type),
	}
	req.ApplyTo(&merged)
	normalizeConsumerRequest(&merged)
	if err := validate(&merged); err != nil {
		s.log.Warn("Update consumer validation failed",
			zap.Error(err),
			zap.String("consumer_id", consumerID),
		)
		return nil, err
	}

	applyConsumerRequest(consumer, &merged)
	consumer.UpdatedAt = time.Now().UTC()

	if err := s.repo.Consumer.Update(ctx, consumer); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateKey):
			return nil, conflictError("Duplicate phone number. This phone is already in use by another consumer.", err)
		case errors.Is(err, repository.ErrNotFound):
			return nil, notFoundError("Consumer not found.")
		}
		return nil, fmt.Errorf("update consumer: %w", err)
	}

	s.log.Info("Consumer updated", zap.String("consumer_id", consumerID))

	resp := response.ConsumerToResponse(consumer)
	return &resp, nil
}

func (s *consumerService) DeleteConsumer(ctx context.Context, consumerID string) error {
	id, err := parseID(consumerID, "consumer")
	if err != nil {
		return err
	}

	if err := s.repo.Consumer.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFoundError("Consumer not found.")
		}
		return fmt.Errorf("delete consumer: %w", err)
	}

	return nil
}

// ResolveConsumer is a single upsert keyed on phone. Two first-time
// submissions racing on the same phone are settled by the unique index: the
// loser reads back the winner's record.
func (s *consumerService) ResolveConsumer(ctx context.Context, name, phone, email string) (*entity.Consumer, error) {
	candidate := &entity.Consumer{
		Base:  entity.NewBase(time.Now().UTC()),
		Name:  strings.TrimSpace(name),
		Phone: strings.TrimSpace(phone),
		Email: strings.TrimSpace(email),
		Type:  entity.ConsumerTypeNew,
	}

	consumer, err := s.repo.Consumer.UpsertByPhone(ctx, candidate)
	if err == nil {
		return consumer, nil
	}
	if !errors.Is(err, repository.ErrDuplicateKey) {
		return nil, fmt.Errorf("resolve consumer: %w", err)
	}

	consumer, findErr := s.repo.Consumer.FindByPhone(ctx, candidate.Phone)
	if findErr != nil {
		return nil, fmt.Errorf("resolve consumer: %w", findErr)
	}
	if consumer == nil {
		// The phone is free, so the collision was on email
		s.log.Warn("Consumer email already in use",
			zap.String("phone", candidate.Phone),
			zap.String("email", candidate.Email),
		)
		return nil, conflictError("A consumer with this email already exists.", err)
	}

	return consumer, nil
}

func (s *consumerService) findConsumer(ctx context.Context, consumerID string) (*entity.Consumer, error) {
	id, err := parseID(consumerID, "consumer")
	if err != nil {
		return nil, err
	}

	consumer, err := s.repo.Consumer.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get consumer by id: %w", err)
	}
	if consumer == nil {
		return nil, notFoundError("Consumer not found.")
	}

	return consumer, nil
}

func normalizeConsumerRequest(req *request.ConsumerRequest) {
	req.Name = strings.TrimSpace(req.Name)
	req.Phone = strings.TrimSpace(req.Phone)
	req.Email = strings.TrimSpace(req.Email)
	if req.Type == "" {
		req.Type = string(entity.ConsumerTypeNew)
	}
}

func applyConsumerRequest(c *entity.Consumer, req *request.ConsumerRequest) {
	c.Name = req.Name
	c.Phone = req.Phone
	c.Email = req.Email
	c.Address = req.Address
	c.Company = req.Company
	c.Type = entity.ConsumerType(req.Type)
}
