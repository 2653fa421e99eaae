package request

type TeamMemberRequest struct {
	Name        string   `json:"name" validate:"required"`
	Email       string   `json:"email" validate:"required,email"`
	Phone       string   `json:"phone"`
	Role        string   `json:"role" validate:"required"`
	Permissions []string `json:"permissions" validate:"dive,required"`
	Status      string   `json:"status" validate:"omitempty,oneof=active inactive"`
}

type TeamMemberUpdateRequest struct {
	Name        *string   `json:"name,omitempty"`
	Email       *string   `json:"email,omitempty"`
	Phone       *string   `json:"phone,omitempty"`
	Role        *string   `json:"role,omitempty"`
	Permissions *[]string `json:"permissions,omitempty"`
	Status      *string   `json:"status,omitempty"`
}

// ApplyTo overlays every provided field onto base
func (u *TeamMemberUpdateRequest) ApplyTo(base *TeamMemberRequest) {
	if u.Name != nil {
		base.Name = *u.Name
	}
	if u.Email != nil {
		base.Email = *u.Email
	}
	if u.Phone != nil {
		base.Phone = *u.Phone
	}
	if u.Role != nil {
		base.Role = *u.Role
	}
	if u.Permissions != nil {
		base.Permissions = *u.Permissions
	}
	if u.Status != nil {
		base.Status = *u.Status
	}
}
