package entities

import "github.com/shopspring/decimal"

// NegotiationEventType is the outbound wire name of a transition. Cancel
// produces no event: the service-level cancellation is broadcast by the
// service lifecycle, not by the negotiation engine.

type NegotiationEventType string

const (
	NegotiationEventAmountProposed  NegotiationEventType = "amount_proposed"
	NegotiationEventAmountConfirmed NegotiationEventType = "amount_confirmed"
	NegotiationEventAmountAccepted  NegotiationEventType = "amount_accepted"
	NegotiationEventAmountRejected  NegotiationEventType = "amount_rejected"
)

// NegotiationEvent is emitted once per successful transition and consumed
// by the real-time broadcast layer and the push dispatcher. Delivery is
// at-least-once; consumers dedupe on (ServiceID, Type, Version).
type NegotiationEvent struct {
	ServiceID string               `json:"service_id"`
	Type      NegotiationEventType `json:"type"`
	Amount    *decimal.Decimal     `json:"amount,omitempty"`
	ActorID   string               `json:"actor_id"`
	Version   int64                `json:"version"`
}
