package response

import (
	"time"

	"gruas_rd/internal/domain/entities"
)

type ServiceResponse struct {
	ID                  string    `json:"id"`
	ClientID            string    `json:"client_id"`
	Category            string    `json:"category"`
	Subtype             string    `json:"subtype,omitempty"`
	Description         string    `json:"description,omitempty"`
	RequiresNegotiation bool      `json:"requires_negotiation"`
	AssignedDriverID    string    `json:"assigned_driver_id,omitempty"`
	AgreedAmount        *string   `json:"agreed_amount,omitempty"`
	Status              string    `json:"status"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

func FromService(s entities.Service) ServiceResponse {
	return ServiceResponse{
		ID:                  s.ID,
		ClientID:            s.ClientID,
		Category:            string(s.Category),
		Subtype:             string(s.Subtype),
		Description:         s.Description,
		RequiresNegotiation: s.RequiresNegotiation,
		AssignedDriverID:    s.AssignedDriverID,
		AgreedAmount:        amountString(s.AgreedAmount),
		Status:              string(s.Status),
		CreatedAt:           s.CreatedAt,
		UpdatedAt:           s.UpdatedAt,
	}
}
