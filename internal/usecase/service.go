package usecase

import (
	"fleet-booking/internal/data/repository"

	"go.uber.org/zap"
)

type Service struct {
	Booking    BookingService
	Vehicle    VehicleService
	Consumer   ConsumerService
	TeamMember TeamMemberService
}

func NewService(repo *repository.Repository, log *zap.Logger) *Service {
	consumer := NewConsumerService(repo, log)

	return &Service{
		Booking:    NewBookingService(repo, consumer, log),
		Vehicle:    NewVehicleService(repo, log),
		Consumer:   consumer,
		TeamMember: NewTeamMemberService(repo, log),
	}
}
