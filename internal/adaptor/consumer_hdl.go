package adaptor

import (
	"net/http"

	"fleet-booking/internal/dto/request"
	"fleet-booking/internal/usecase"
	"fleet-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ConsumerHandler struct {
	service usecase.ConsumerService
	log     *zap.Logger
}

func NewConsumerHandler(service usecase.ConsumerService, log *zap.Logger) *ConsumerHandler {
	return &ConsumerHandler{
		service: service,
		log:     log.With(zap.String("handler", "consumer")),
	}
}

// CreateConsumer handles POST /api/consumers
func (h *ConsumerHandler) CreateConsumer(w http.ResponseWriter, r *http.Request) {
	var req request.ConsumerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	consumer, err := h.service.CreateConsumer(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create consumer")
		return
	}

	utils.ResponseCreated(w, consumer)
}

// GetConsumers handles GET /api/consumers
func (h *ConsumerHandler) GetConsumers(w http.ResponseWriter, r *http.Request) {
	consumers, err := h.service.GetConsumers(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "get consumers")
		return
	}

	utils.ResponseSuccess(w, consumers)
}

// GetConsumerByID handles GET /api/consumers/{id}
func (h *ConsumerHandler) GetConsumerByID(w http.ResponseWriter, r *http.Request) {
	consumer, err := h.service.GetConsumerByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(h.log, w, err, "get consumer by ID")
		return
	}

	utils.ResponseSuccess(w, consumer)
}

// UpdateConsumer handles PUT /api/consumers/{id}
func (h *ConsumerHandler) UpdateConsumer(w http.ResponseWriter, r *http.Request) {
	var req request.ConsumerUpdateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	consumer, err := h.service.UpdateConsumer(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update consumer")
		return
	}

	utils.ResponseSuccess(w, consumer)
}

// DeleteConsumer handles DELETE /api/consumers/{id}
func (h *ConsumerHandler) DeleteConsumer(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteConsumer(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(h.log, w, err, "delete consumer")
		return
	}

	utils.ResponseMessage(w, "Consumer deleted successfully.")
}
