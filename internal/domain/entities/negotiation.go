package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// NegotiationState is the lifecycle of one price-agreement attempt.
//
// aceptado, rechazado, cancelado and no_aplica are terminal: there is no
// outgoing transition from them. A rejection is terminal for that attempt
// only; the use case opens a fresh attempt in pendiente_evaluacion for the
// same service.

type NegotiationState string

const (
	NegotiationStateNoAplica            NegotiationState = "no_aplica"
	NegotiationStatePendienteEvaluacion NegotiationState = "pendiente_evaluacion"
	NegotiationStatePropuesto           NegotiationState = "propuesto"
	NegotiationStateConfirmado          NegotiationState = "confirmado"
	NegotiationStateAceptado            NegotiationState = "aceptado"
	NegotiationStateRechazado           NegotiationState = "rechazado"
	NegotiationStateCancelado           NegotiationState = "cancelado"
)

type NegotiationAction string

const (
	NegotiationActionProposeAmount  NegotiationAction = "propose_amount"
	NegotiationActionUpdateProposal NegotiationAction = "update_proposal"
	NegotiationActionConfirmAmount  NegotiationAction = "confirm_amount"
	NegotiationActionAcceptAmount   NegotiationAction = "accept_amount"
	NegotiationActionRejectAmount   NegotiationAction = "reject_amount"
	NegotiationActionCancelService  NegotiationAction = "cancel_service"
)

// ActorRole is who is acting on a negotiation. `sistema` authors the
// synthetic chat messages that document transitions.

type ActorRole string

const (
	ActorRoleConductor ActorRole = "conductor"
	ActorRoleCliente   ActorRole = "cliente"
	ActorRoleSistema   ActorRole = "sistema"
)

// Negotiation is the active price-agreement attempt for one service.
//
// Storage model (DynamoDB):
//   - PK: service_id (at most one active attempt per service)
//
// Version is a per-service monotonic counter used for optimistic
// concurrency. It keeps increasing across re-opened attempts so that
// (service_id, event type, version) stays a valid idempotency key for
// downstream consumers.
type Negotiation struct {
	ID              string           `json:"id"`
	ServiceID       string           `json:"service_id"`
	Attempt         int              `json:"attempt"`
	State           NegotiationState `json:"state"`
	ProposedAmount  *decimal.Decimal `json:"proposed_amount,omitempty"`
	ConfirmedAmount *decimal.Decimal `json:"confirmed_amount,omitempty"`
	Version         int64            `json:"version"`
	LastActor       ActorRole        `json:"last_actor,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

type negotiationTransition struct {
	from   NegotiationState
	action NegotiationAction
	role   ActorRole
	to     NegotiationState
}

// The full transition table. Any (state, action, role) triple not listed
// here is rejected; callers treat that as a recoverable validation failure,
// never as a reason to guess the closest valid transition.
var negotiationTransitions = []negotiationTransition{
	{NegotiationStatePendienteEvaluacion, NegotiationActionProposeAmount, ActorRoleConductor, NegotiationStatePropuesto},
	{NegotiationStatePropuesto, NegotiationActionUpdateProposal, ActorRoleConductor, NegotiationStatePropuesto},
	{NegotiationStatePropuesto, NegotiationActionConfirmAmount, ActorRoleConductor, NegotiationStateConfirmado},
	{NegotiationStateConfirmado, NegotiationActionAcceptAmount, ActorRoleCliente, NegotiationStateAceptado},
	{NegotiationStateConfirmado, NegotiationActionRejectAmount, ActorRoleCliente, NegotiationStateRechazado},
	{NegotiationStatePendienteEvaluacion, NegotiationActionCancelService, ActorRoleCliente, NegotiationStateCancelado},
	{NegotiationStatePropuesto, NegotiationActionCancelService, ActorRoleCliente, NegotiationStateCancelado},
	{NegotiationStateConfirmado, NegotiationActionCancelService, ActorRoleCliente, NegotiationStateCancelado},
}

// NextNegotiationState resolves the transition table for (state, action,
// role). The second return is false when the triple is not in the table.
func NextNegotiationState(from NegotiationState, action NegotiationAction, role ActorRole) (NegotiationState, bool) {
	for _, t := range negotiationTransitions {
		if t.from == from && t.action == action && t.role == role {
			return t.to, true
		}
	}
	return "", false
}

// CanActorPerform reports whether the role may trigger the action from the
// given state.
func CanActorPerform(state NegotiationState, action NegotiationAction, role ActorRole) bool {
	_, ok := NextNegotiationState(state, action, role)
	return ok
}

func IsTerminalNegotiationState(s NegotiationState) bool {
	switch s {
	case NegotiationStateAceptado, NegotiationStateRechazado, NegotiationStateCancelado, NegotiationStateNoAplica:
		return true
	}
	return false
}

func InitialNegotiationState(requiresNegotiation bool) NegotiationState {
	if requiresNegotiation {
		return NegotiationStatePendienteEvaluacion
	}
	return NegotiationStateNoAplica
}

// CanProposeAmount reports whether a (first or updated) proposal is
// acceptable in the given state. This is the gate the chat-message path
// checks before running the amount detector.
func CanProposeAmount(state NegotiationState) bool {
	return state == NegotiationStatePendienteEvaluacion || state == NegotiationStatePropuesto
}

// ProposalActionFor picks propose_amount vs update_proposal for the state.
// The caller still validates the result through the transition table.
func ProposalActionFor(state NegotiationState) NegotiationAction {
	if state == NegotiationStatePropuesto {
		return NegotiationActionUpdateProposal
	}
	return NegotiationActionProposeAmount
}
