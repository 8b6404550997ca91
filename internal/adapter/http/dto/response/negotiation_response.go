package response

import (
	"time"

	"gruas_rd/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type NegotiationResponse struct {
	ID              string    `json:"id"`
	ServiceID       string    `json:"service_id"`
	Attempt         int       `json:"attempt"`
	State           string    `json:"state"`
	ProposedAmount  *string   `json:"proposed_amount,omitempty"`
	ConfirmedAmount *string   `json:"confirmed_amount,omitempty"`
	Version         int64     `json:"version"`
	LastActor       string    `json:"last_actor,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func FromNegotiation(n entities.Negotiation) NegotiationResponse {
	return NegotiationResponse{
		ID:              n.ID,
		ServiceID:       n.ServiceID,
		Attempt:         n.Attempt,
		State:           string(n.State),
		ProposedAmount:  amountString(n.ProposedAmount),
		ConfirmedAmount: amountString(n.ConfirmedAmount),
		Version:         n.Version,
		LastActor:       string(n.LastActor),
		CreatedAt:       n.CreatedAt,
		UpdatedAt:       n.UpdatedAt,
	}
}

func amountString(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := d.StringFixed(2)
	return &s
}
