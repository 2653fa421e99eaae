package wire

import (
	"fleet-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireConsumer(r chi.Router, consumerHandler *adaptor.ConsumerHandler) {
	r.Route("/api/consumers", func(r chi.Router) {
		r.Post("/", consumerHandler.CreateConsumer)
		r.Get("/", consumerHandler.GetConsumers)
		r.Get("/{id}", consumerHandler.GetConsumerByID)
		r.Put("/{id}", consumerHandler.UpdateConsumer)
		r.Delete("/{id}", consumerHandler.DeleteConsumer)
	})
}
