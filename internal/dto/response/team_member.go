package response

import (
	"time"

	"fleet-booking/internal/data/entity"
)

type TeamMemberResponse struct {
	ID          string                  `json:"_id"`
	Name        string                  `json:"name"`
	Email       string                  `json:"email"`
	Phone       string                  `json:"phone"`
	Role        string                  `json:"role"`
	Permissions []string                `json:"permissions"`
	Status      entity.TeamMemberStatus `json:"status"`
	CreatedAt   time.Time               `json:"createdAt"`
	UpdatedAt   time.Time               `json:"updatedAt"`
}

func TeamMemberToResponse(m *entity.TeamMember) TeamMemberResponse {
	permissions := m.Permissions
	if permissions == nil {
		permissions = []string{}
	}

	return TeamMemberResponse{
		ID:          m.ID.Hex(),
		Name:        m.Name,
		Email:       m.Email,
		Phone:       m.Phone,
		Role:        m.Role,
		Permissions: permissions,
		Status:      m.Status,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
