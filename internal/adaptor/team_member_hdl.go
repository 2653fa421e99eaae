package adaptor

import (
	"net/http"

	"fleet-booking/internal/dto/request"
	"fleet-booking/internal/usecase"
	"fleet-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type TeamMemberHandler struct {
	service usecase.TeamMemberService
	log     *zap.Logger
}

func NewTeamMemberHandler(service usecase.TeamMemberService, log *zap.Logger) *TeamMemberHandler {
	return &TeamMemberHandler{
		service: service,
		log:     log.With(zap.String("handler", "team_member")),
	}
}

// CreateTeamMember handles POST /api/team
func (h *TeamMemberHandler) CreateTeamMember(w http.ResponseWriter, r *http.Request) {
	var req request.TeamMemberRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	member, err := h.service.CreateTeamMember(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create team member")
		return
	}

	utils.ResponseCreated(w, member)
}

// GetTeamMembers handles GET /api/team
func (h *TeamMemberHandler) GetTeamMembers(w http.ResponseWriter, r *http.Request) {
	members, err := h.service.GetTeamMembers(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "get team members")
		return
	}

	utils.ResponseSuccess(w, members)
}

// GetTeamMemberByID handles GET /api/team/{id}
func (h *TeamMemberHandler) GetTeamMemberByID(w http.ResponseWriter, r *http.Request) {
	member, err := h.service.GetTeamMemberByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(h.log, w, err, "get team member by ID")
		return
	}

	utils.ResponseSuccess(w, member)
}

// UpdateTeamMember handles PUT /api/team/{id}
func (h *TeamMemberHandler) UpdateTeamMember(w http.ResponseWriter, r *http.Request) {
	var req request.TeamMemberUpdateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	member, err := h.service.UpdateTeamMember(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update team member")
		return
	}

	utils.ResponseSuccess(w, member)
}

// DeleteTeamMember handles DELETE /api/team/{id}
func (h *TeamMemberHandler) DeleteTeamMember(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteTeamMember(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(h.log, w, err, "delete team member")
		return
	}

	utils.ResponseMessage(w, "Team member deleted successfully.")
}
