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
	"fleet-booking/pkg/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const (
	actionBookingCreated = "Booking created"
	actionBookingUpdated = "Booking updated"
	actionStatusUpdated  = "Status updated to %s"
)

type BookingService interface {
	CreateBooking(ctx context.Context, req *request.BookingRequest) (*response.BookingResponse, error)
	GetBookings(ctx context.Context) ([]response.BookingResponse, error)
	GetBookingByID(ctx context.Context, bookingID string) (*response.BookingResponse, error)

	// Lifecycle
	UpdateBookingStatus(ctx context.Context, bookingID string, req *request.UpdateBookingStatusRequest) (*response.BookingResponse, error)
	UpdateBooking(ctx context.Context, bookingID string, req *request.BookingRequest) (*response.BookingResponse, error)
}

type bookingService struct {
	repo      *repository.Repository
	consumers ConsumerResolver
	log       *zap.Logger
}

func NewBookingService(repo *repository.Repository, consumers ConsumerResolver, log *zap.Logger) BookingService {
	return &bookingService{
		repo:      repo,
		consumers: consumers,
		log:       log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, req *request.BookingRequest) (*response.BookingResponse, error) {
	if err := validate(req); err != nil {
		s.log.Warn("Create booking validation failed", zap.Error(err))
		return nil, err
	}

	consumer, err := s.consumers.ResolveConsumer(ctx, req.Customer.Name, req.Customer.Phone, req.Customer.Email)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	details := bookingDetails(req, consumer.ID)
	booking := &entity.Booking{
		Base:          entity.NewBase(now),
		BookingNumber: utils.GenerateBookingNumber(),
		Customer:      details.Customer,
		Vehicle:       details.Vehicle,
		Trip:          details.Trip,
		Payment:       details.Payment,
		Status:        entity.BookingStatusPending,
		Timeline: []entity.TimelineEntry{
			entity.NewTimelineEntry(actionBookingCreated, consumer.Name, now),
		},
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, conflictError("Booking number already in use, please retry.", err)
		}
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.Hex()),
		zap.String("booking_number", booking.BookingNumber),
		zap.String("consumer_id", consumer.ID.Hex()),
	)

	return s.expand(ctx, booking)
}

func (s *bookingService) GetBookings(ctx context.Context) ([]response.BookingResponse, error) {
	bookings, err := s.repo.Booking.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get bookings: %w", err)
	}

	consumerIDs := make([]primitive.ObjectID, 0, len(bookings))
	vehicleIDs := make([]primitive.ObjectID, 0, len(bookings))
	for _, b := range bookings {
		consumerIDs = append(consumerIDs, b.Customer.ConsumerID)
		vehicleIDs = append(vehicleIDs, b.Vehicle.VehicleID)
	}

	consumers, err := s.repo.Consumer.FindByIDs(ctx, consumerIDs)
	if err != nil {
		return nil, fmt.Errorf("expand booking consumers: %w", err)
	}
	vehicles, err := s.repo.Vehicle.FindByIDs(ctx, vehicleIDs)
	if err != nil {
		return nil, fmt.Errorf("expand booking vehicles: %w", err)
	}

	consumerByID := make(map[primitive.ObjectID]*entity.Consumer, len(consumers))
	for _, c := range consumers {
		consumerByID[c.ID] = c
	}
	vehicleByID := make(map[primitive.ObjectID]*entity.Vehicle, len(vehicles))
	for _, v := range vehicles {
		vehicleByID[v.ID] = v
	}

	resp := make([]response.BookingResponse, len(bookings))
	for i, b := range bookings {
		resp[i] = response.ExpandedBookingToResponse(b, consumerByID[b.Customer.ConsumerID], vehicleByID[b.Vehicle.VehicleID])
	}
	return resp, nil
}

func (s *bookingService) GetBookingByID(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	return s.expand(ctx, booking)
}

func (s *bookingService) UpdateBookingStatus(ctx context.Context, bookingID string, req *request.UpdateBookingStatusRequest) (*response.BookingResponse, error) {
	id, err := parseID(bookingID, "booking")
	if err != nil {
		return nil, err
	}

	if !entity.IsValidBookingStatus(req.Status) {
		s.log.Warn("Invalid booking status",
			zap.String("booking_id", bookingID),
			zap.String("status", req.Status),
		)
		return nil, validationError("Invalid status", map[string]string{
			"status": "Must be one of: pending, approved, rejected, completed",
		})
	}

	status := entity.BookingStatus(req.Status)
	actor := utils.ActorOrSystem(ctx)
	entry := entity.NewTimelineEntry(fmt.Sprintf(actionStatusUpdated, status), actor, time.Now())

	booking, err := s.repo.Booking.UpdateStatus(ctx, id, status, entry)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFoundError("Booking not found")
		}
		return nil, fmt.Errorf("update booking status: %w", err)
	}

	s.log.Info("Booking status updated",
		zap.String("booking_id", bookingID),
		zap.String("status", string(status)),
		zap.String("actor", actor),
	)

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) UpdateBooking(ctx context.Context, bookingID string, req *request.BookingRequest) (*response.BookingResponse, error) {
	id, err := parseID(bookingID, "booking")
	if err != nil {
		return nil, err
	}

	if err := validate(req); err != nil {
		s.log.Warn("Update booking validation failed",
			zap.Error(err),
			zap.String("booking_id", bookingID),
		)
		return nil, err
	}

	// Resolve only for a booking that exists, so a bad id cannot create a consumer
	existing, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking by id: %w", err)
	}
	if existing == nil {
		return nil, notFoundError("Booking not found")
	}

	consumer, err := s.consumers.ResolveConsumer(ctx, req.Customer.Name, req.Customer.Phone, req.Customer.Email)
	if err != nil {
		return nil, err
	}

	actor := consumer.Name
	if strings.TrimSpace(actor) == "" {
		actor = utils.SystemActor
	}
	entry := entity.NewTimelineEntry(actionBookingUpdated, actor, time.Now())

	booking, err := s.repo.Booking.UpdateDetails(ctx, id, bookingDetails(req, consumer.ID), entry)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFoundError("Booking not found")
		}
		return nil, fmt.Errorf("update booking: %w", err)
	}

	s.log.Info("Booking updated",
		zap.String("booking_id", bookingID),
		zap.String("consumer_id", consumer.ID.Hex()),
	)

	return s.expand(ctx, booking)
}

func (s *bookingService) findBooking(ctx context.Context, bookingID string) (*entity.Booking, error) {
	id, err := parseID(bookingID, "booking")
	if err != nil {
		return nil, err
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking by id: %w", err)
	}
	if booking == nil {
		return nil, notFoundError("Booking not found")
	}

	return booking, nil
}

// expand resolves the consumer and vehicle references for the response only
func (s *bookingService) expand(ctx context.Context, booking *entity.Booking) (*response.BookingResponse, error) {
	consumer, err := s.repo.Consumer.FindByID(ctx, booking.Customer.ConsumerID)
	if err != nil {
		return nil, fmt.Errorf("expand booking consumer: %w", err)
	}
	vehicle, err := s.repo.Vehicle.FindByID(ctx, booking.Vehicle.VehicleID)
	if err != nil {
		return nil, fmt.Errorf("expand booking vehicle: %w", err)
	}

	resp := response.ExpandedBookingToResponse(booking, consumer, vehicle)
	return &resp, nil
}

// bookingDetails snapshots the request. The caller has validated it, so the
// vehicle id is well formed.
func bookingDetails(req *request.BookingRequest, consumerID primitive.ObjectID) entity.BookingDetails {
	vehicleID, _ := primitive.ObjectIDFromHex(req.Vehicle.VehicleID)

	start := req.Trip.StartDate.UTC()
	end := req.Trip.EndDate.UTC()
	totalDays := req.Trip.TotalDays
	if totalDays == 0 {
		totalDays = inclusiveDays(start, end)
	}

	var advance float64
	if req.Payment.Advance != nil {
		advance = *req.Payment.Advance
	}
	balance := req.Payment.Total - advance
	if req.Payment.Balance != nil {
		balance = *req.Payment.Balance
	}
	paymentStatus := entity.PaymentStatusPending
	if req.Payment.Status != "" {
		paymentStatus = entity.PaymentStatus(req.Payment.Status)
	}
	rateType := entity.RateTypeKmWise
	if req.Payment.RateType != "" {
		rateType = entity.RateType(req.Payment.RateType)
	}

	return entity.BookingDetails{
		Customer: entity.CustomerInfo{
			ConsumerID: consumerID,
			Name:       strings.TrimSpace(req.Customer.Name),
			Phone:      strings.TrimSpace(req.Customer.Phone),
			Email:      strings.TrimSpace(req.Customer.Email),
		},
		Vehicle: entity.VehicleInfo{
			VehicleID: vehicleID,
			Type:      entity.VehicleType(req.Vehicle.Type),
			Number:    entity.CanonicalNumber(req.Vehicle.Number),
			Driver:    req.Vehicle.Driver,
		},
		Trip: entity.Trip{
			From:      req.Trip.From,
			To:        req.Trip.To,
			StartDate: start,
			EndDate:   end,
			TotalDays: totalDays,
			Purpose:   req.Trip.Purpose,
		},
		Payment: entity.BookingPayment{
			Total:    req.Payment.Total,
			Advance:  advance,
			Balance:  balance,
			Status:   paymentStatus,
			RateType: rateType,
		},
	}
}

// inclusiveDays counts calendar days from start to end, both included
func inclusiveDays(start, end time.Time) int {
	startDay := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	endDay := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return int(endDay.Sub(startDay).Hours()/24) + 1
}
