package request

type ConsumerRequest struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
	Email   string `json:"email" validate:"omitempty,email"`
	Address string `json:"address"`
	Company string `json:"company"`
	Type    string `json:"type" validate:"omitempty,oneof=regular corporate new"`
}

type ConsumerUpdateRequest struct {
	Name    *string `json:"name,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Email   *string `json:"email,omitempty"`
	Address *string `json:"address,omitempty"`
	Company *string `json:"company,omitempty"`
	Type    *string `json:"type,omitempty"`
}

// ApplyTo overlays every provided field onto base
func (u *ConsumerUpdateRequest) ApplyTo(base *ConsumerRequest) {
	if u.Name != nil {
		base.Name = *u.Name
	}
	if u.Phone != nil {
		base.Phone = *u.Phone
	}
	if u.Email != nil {
		base.Email = *u.Email
	}
	if u.Address != nil {
		base.Address = *u.Address
	}
	if u.Company != nil {
		base.Company = *u.Company
	}
	if u.Type != nil {
		base.Type = *u.Type
	}
}
