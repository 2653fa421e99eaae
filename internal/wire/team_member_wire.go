package wire

import (
	"fleet-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireTeamMember(r chi.Router, teamHandler *adaptor.TeamMemberHandler) {
	r.Route("/api/team", func(r chi.Router) {
		r.Post("/", teamHandler.CreateTeamMember)
		r.Get("/", teamHandler.GetTeamMembers)
		r.Get("/{id}", teamHandler.GetTeamMemberByID)
		r.Put("/{id}", teamHandler.UpdateTeamMember)
		r.Delete("/{id}", teamHandler.DeleteTeamMember)
	})
}
