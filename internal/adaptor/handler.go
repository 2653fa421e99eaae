package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"fleet-booking/internal/usecase"
	"fleet-booking/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Booking    *BookingHandler
	Vehicle    *VehicleHandler
	Consumer   *ConsumerHandler
	TeamMember *TeamMemberHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Booking:    NewBookingHandler(service.Booking, log),
		Vehicle:    NewVehicleHandler(service.Vehicle, log),
		Consumer:   NewConsumerHandler(service.Consumer, log),
		TeamMember: NewTeamMemberHandler(service.TeamMember, log),
	}
}

// decodeJSON reads the request body into dst, answering 400 itself on failure
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", err.Error())
		return false
	}
	return true
}

// handleServiceError maps the usecase error kinds onto status codes. Client
// errors are logged at Warn; anything unrecognised is a 500 carrying the
// underlying message.
func handleServiceError(log *zap.Logger, w http.ResponseWriter, err error, operation string) {
	var svcErr *usecase.ServiceError
	if !errors.As(err, &svcErr) {
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Server error", err.Error())
		return
	}

	log.Warn(operation+" failed",
		zap.Error(err),
		zap.String("operation", operation))

	switch {
	case errors.Is(err, usecase.ErrValidation):
		var fields any
		if len(svcErr.Fields) > 0 {
			fields = svcErr.Fields
		}
		utils.ResponseBadRequest(w, svcErr.Message, fields)

	case errors.Is(err, usecase.ErrInvalidID):
		utils.ResponseBadRequest(w, svcErr.Message, nil)

	case errors.Is(err, usecase.ErrNotFound):
		utils.ResponseNotFound(w, svcErr.Message)

	case errors.Is(err, usecase.ErrConflict):
		var cause any
		if svcErr.Cause != nil {
			cause = svcErr.Cause.Error()
		}
		utils.ResponseConflict(w, svcErr.Message, cause)

	default:
		utils.ResponseInternalError(w, "Server error", err.Error())
	}
}
