package response

import (
	"time"

	"fleet-booking/internal/data/entity"
)

type ConsumerResponse struct {
	ID                string              `json:"_id"`
	Name              string              `json:"name"`
	Phone             string              `json:"phone"`
	Email             string              `json:"email,omitempty"`
	Address           string              `json:"address"`
	Company           string              `json:"company"`
	Type              entity.ConsumerType `json:"type"`
	TotalBookings     int64               `json:"totalBookings"`
	TotalAmount       float64             `json:"totalAmount"`
	OutstandingAmount float64             `json:"outstandingAmount"`
	CreatedAt         time.Time           `json:"createdAt"`
	UpdatedAt         time.Time           `json:"updatedAt"`
}

func ConsumerToResponse(c *entity.Consumer) ConsumerResponse {
	return ConsumerResponse{
		ID:                c.ID.Hex(),
		Name:              c.Name,
		Phone:             c.Phone,
		Email:             c.Email,
		Address:           c.Address,
		Company:           c.Company,
		Type:              c.Type,
		TotalBookings:     c.TotalBookings,
		TotalAmount:       c.TotalAmount,
		OutstandingAmount: c.OutstandingAmount,
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
	}
}
