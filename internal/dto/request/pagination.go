package request

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

type PaginatedRequest struct {
	Page  int `json:"page" validate:"min=1"`
	Limit int `json:"limit" validate:"min=1,max=100"`
}

// Normalize clamps page and limit into range so Offset and PerPage are safe
func (p *PaginatedRequest) Normalize() {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
}

func (p PaginatedRequest) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.PerPage()
}

func (p PaginatedRequest) PerPage() int {
	if p.Limit < 1 {
		return DefaultLimit
	}
	if p.Limit > MaxLimit {
		return MaxLimit
	}
	return p.Limit
}

// VehicleListRequest is the query string of GET /api/vehicles
type VehicleListRequest struct {
	PaginatedRequest
	Type      string `json:"type" validate:"omitempty,oneof=bus car tempo mini-bus"`
	Status    string `json:"status" validate:"omitempty,oneof=available booked maintenance"`
	Ownership string `json:"ownership" validate:"omitempty,oneof=own vendor leased"`
}
