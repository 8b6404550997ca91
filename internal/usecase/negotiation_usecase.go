package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"gruas_rd/internal/domain/amounts"
	"gruas_rd/internal/domain/entities"
	"gruas_rd/internal/usecase/interfaces"
	"gruas_rd/pkg/keymutex"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

var (
	ErrServiceNotFound        = errors.New("service not found")
	ErrNegotiationNotFound    = errors.New("negotiation not found")
	ErrInvalidServiceID       = errors.New("invalid service id")
	ErrInvalidActorID         = errors.New("invalid actor id")
	ErrInvalidAmount          = errors.New("amount outside negotiation limits")
	ErrInvalidMessage         = errors.New("invalid chat message")
	ErrUnauthorizedTransition = errors.New("transition not allowed for this actor in the current state")

	// ErrVersionConflict signals a stale expected_version. The caller must
	// re-read the negotiation and retry with the fresh version.
	ErrVersionConflict = interfaces.ErrVersionConflict
)

// INegotiationUseCase is the single authority over negotiation state. It is
// where amount detection, actor authorization and concurrency control meet:
// every mutation goes through the transition table, holds the per-service
// lock for the validate-and-apply step, and emits the system chat message
// plus the outbound event for the transition.

type INegotiationUseCase interface {
	GetByServiceID(ctx context.Context, serviceID string) (entities.Negotiation, error)
	ProposeAmount(ctx context.Context, serviceID, driverID string, amount decimal.Decimal, expectedVersion int64) (entities.Negotiation, error)
	ConfirmAmount(ctx context.Context, serviceID, driverID string, expectedVersion int64) (entities.Negotiation, error)
	AcceptAmount(ctx context.Context, serviceID, clientID string, expectedVersion int64) (entities.Negotiation, error)
	RejectAmount(ctx context.Context, serviceID, clientID string, expectedVersion int64) (entities.Negotiation, error)
	CancelService(ctx context.Context, serviceID, clientID string, expectedVersion int64) (entities.Negotiation, error)
	HandleChatMessage(ctx context.Context, serviceID, senderID string, role entities.ActorRole, text string) (entities.ChatMessage, error)
	ListMessages(ctx context.Context, serviceID string) ([]entities.ChatMessage, error)
	MarkMessagesRead(ctx context.Context, serviceID, readerID string) error
}

type NegotiationUseCase struct {
	negotiations interfaces.INegotiationRepository
	services     interfaces.IServiceRepository
	chat         interfaces.IChatMessageRepository
	publisher    interfaces.IEventPublisher
	notifier     interfaces.IPushNotifier
	locks        *keymutex.KeyMutex
}

var _ INegotiationUseCase = (*NegotiationUseCase)(nil)

func NewNegotiationUseCase(
	negotiations interfaces.INegotiationRepository,
	services interfaces.IServiceRepository,
	chat interfaces.IChatMessageRepository,
	publisher interfaces.IEventPublisher,
	notifier interfaces.IPushNotifier,
) *NegotiationUseCase {
	return &NegotiationUseCase{
		negotiations: negotiations,
		services:     services,
		chat:         chat,
		publisher:    publisher,
		notifier:     notifier,
		locks:        keymutex.New(),
	}
}

func (u *NegotiationUseCase) GetByServiceID(ctx context.Context, serviceID string) (entities.Negotiation, error) {
	serviceID = strings.TrimSpace(serviceID)
	if serviceID == "" {
		return entities.Negotiation{}, ErrInvalidServiceID
	}

	n, err := u.negotiations.GetByServiceID(ctx, serviceID)
	if err != nil {
		return entities.Negotiation{}, err
	}
	if n.ID == "" {
		return entities.Negotiation{}, ErrNegotiationNotFound
	}
	return n, nil
}

func (u *NegotiationUseCase) ProposeAmount(ctx context.Context, serviceID, driverID string, amount decimal.Decimal, expectedVersion int64) (entities.Negotiation, error) {
	if !amounts.IsValidNegotiationAmount(amount) {
		return entities.Negotiation{}, ErrInvalidAmount
	}
	return u.transition(ctx, transitionCommand{
		serviceID:       serviceID,
		actorID:         driverID,
		role:            entities.ActorRoleConductor,
		action:          entities.NegotiationActionProposeAmount,
		amount:          &amount,
		expectedVersion: expectedVersion,
	})
}

func (u *NegotiationUseCase) ConfirmAmount(ctx context.Context, serviceID, driverID string, expectedVersion int64) (entities.Negotiation, error) {
	return u.transition(ctx, transitionCommand{
		serviceID:       serviceID,
		actorID:         driverID,
		role:            entities.ActorRoleConductor,
		action:          entities.NegotiationActionConfirmAmount,
		expectedVersion: expectedVersion,
	})
}

func (u *NegotiationUseCase) AcceptAmount(ctx context.Context, serviceID, clientID string, expectedVersion int64) (entities.Negotiation, error) {
	return u.transition(ctx, transitionCommand{
		serviceID:       serviceID,
		actorID:         clientID,
		role:            entities.ActorRoleCliente,
		action:          entities.NegotiationActionAcceptAmount,
		expectedVersion: expectedVersion,
	})
}

func (u *NegotiationUseCase) RejectAmount(ctx context.Context, serviceID, clientID string, expectedVersion int64) (entities.Negotiation, error) {
	return u.transition(ctx, transitionCommand{
		serviceID:       serviceID,
		actorID:         clientID,
		role:            entities.ActorRoleCliente,
		action:          entities.NegotiationActionRejectAmount,
		expectedVersion: expectedVersion,
	})
}

func (u *NegotiationUseCase) CancelService(ctx context.Context, serviceID, clientID string, expectedVersion int64) (entities.Negotiation, error) {
	return u.transition(ctx, transitionCommand{
		serviceID:       serviceID,
		actorID:         clientID,
		role:            entities.ActorRoleCliente,
		action:          entities.NegotiationActionCancelService,
		expectedVersion: expectedVersion,
	})
}

// HandleChatMessage stores an inbound human chat message and, when the
// sender is the driver and the negotiation can still take a proposal, runs
// the amount detector over the text. A detected amount is applied exactly
// as an explicit proposal would be; detection never overrides
// authorization, so for any other sender or state the message is stored as
// plain text with no side effect.
func (u *NegotiationUseCase) HandleChatMessage(ctx context.Context, serviceID, senderID string, role entities.ActorRole, text string) (entities.ChatMessage, error) {
	serviceID = strings.TrimSpace(serviceID)
	if serviceID == "" {
		return entities.ChatMessage{}, ErrInvalidServiceID
	}
	senderID = strings.TrimSpace(senderID)
	if senderID == "" {
		return entities.ChatMessage{}, ErrInvalidActorID
	}
	if strings.TrimSpace(text) == "" {
		return entities.ChatMessage{}, ErrInvalidMessage
	}

	svc, err := u.services.GetByID(ctx, serviceID)
	if err != nil {
		return entities.ChatMessage{}, err
	}
	if svc.ID == "" {
		return entities.ChatMessage{}, ErrServiceNotFound
	}

	msg := entities.ChatMessage{
		ID:        ulid.Make().String(),
		ServiceID: serviceID,
		SenderID:  senderID,
		Role:      role,
		Kind:      entities.ChatMessageKindTexto,
		Content:   text,
		CreatedAt: time.Now().UTC(),
	}
	stored, err := u.chat.Append(ctx, msg)
	if err != nil {
		return entities.ChatMessage{}, err
	}

	if role != entities.ActorRoleConductor || !svc.RequiresNegotiation {
		return stored, nil
	}
	if svc.AssignedDriverID != "" && svc.AssignedDriverID != senderID {
		return stored, nil
	}

	det, ok := amounts.Detect(text)
	if !ok {
		return stored, nil
	}

	// Apply exactly as an explicit proposal. The transition revalidates
	// state and authorization under the per-service lock; if the
	// negotiation moved on since the read above, the text stays a plain
	// message and nothing else happens.
	_, err = u.transition(ctx, transitionCommand{
		serviceID:         serviceID,
		actorID:           senderID,
		role:              entities.ActorRoleConductor,
		action:            entities.NegotiationActionProposeAmount,
		amount:            &det.Amount,
		useCurrentVersion: true,
	})
	if err != nil {
		if errors.Is(err, ErrUnauthorizedTransition) || errors.Is(err, ErrNegotiationNotFound) {
			log.Printf("[negotiation][usecase] detected amount not applied service_id=%s state gate rejected: %v", serviceID, err)
			return stored, nil
		}
		return entities.ChatMessage{}, err
	}
	return stored, nil
}

func (u *NegotiationUseCase) ListMessages(ctx context.Context, serviceID string) ([]entities.ChatMessage, error) {
	serviceID = strings.TrimSpace(serviceID)
	if serviceID == "" {
		return nil, ErrInvalidServiceID
	}
	return u.chat.ListByServiceID(ctx, serviceID)
}

func (u *NegotiationUseCase) MarkMessagesRead(ctx context.Context, serviceID, readerID string) error {
	serviceID = strings.TrimSpace(serviceID)
	if serviceID == "" {
		return ErrInvalidServiceID
	}
	readerID = strings.TrimSpace(readerID)
	if readerID == "" {
		return ErrInvalidActorID
	}
	return u.chat.MarkRead(ctx, serviceID, readerID)
}

type transitionCommand struct {
	serviceID string
	actorID   string
	role      entities.ActorRole
	action    entities.NegotiationAction
	amount    *decimal.Decimal
	// expectedVersion is the version the caller last observed. The
	// chat-message path sets useCurrentVersion instead: it already runs
	// inside the coordinator and trusts the version read under the lock.
	expectedVersion   int64
	useCurrentVersion bool
}

// transition is the serialized validate-and-apply step. The per-service
// lock spans loading, validation, persistence and the system chat message;
// event emission happens after the lock is released.
func (u *NegotiationUseCase) transition(ctx context.Context, cmd transitionCommand) (entities.Negotiation, error) {
	cmd.serviceID = strings.TrimSpace(cmd.serviceID)
	if cmd.serviceID == "" {
		return entities.Negotiation{}, ErrInvalidServiceID
	}
	cmd.actorID = strings.TrimSpace(cmd.actorID)
	if cmd.actorID == "" {
		return entities.Negotiation{}, ErrInvalidActorID
	}

	u.locks.Lock(cmd.serviceID)
	saved, event, err := u.applyLocked(ctx, cmd)
	u.locks.Unlock(cmd.serviceID)
	if err != nil {
		return entities.Negotiation{}, err
	}

	if event != nil {
		if u.publisher != nil {
			u.publisher.Publish(*event)
		}
		if u.notifier != nil {
			u.notifier.Notify(*event)
		}
	}
	return saved, nil
}

func (u *NegotiationUseCase) applyLocked(ctx context.Context, cmd transitionCommand) (entities.Negotiation, *entities.NegotiationEvent, error) {
	svc, err := u.services.GetByID(ctx, cmd.serviceID)
	if err != nil {
		return entities.Negotiation{}, nil, err
	}
	if svc.ID == "" {
		return entities.Negotiation{}, nil, ErrServiceNotFound
	}
	if !svc.RequiresNegotiation {
		return entities.Negotiation{}, nil, ErrNegotiationNotFound
	}

	n, err := u.negotiations.GetByServiceID(ctx, cmd.serviceID)
	if err != nil {
		return entities.Negotiation{}, nil, err
	}
	if n.ID == "" {
		return entities.Negotiation{}, nil, ErrNegotiationNotFound
	}

	// Bind the actor to the negotiation's parties. The first proposal of an
	// attempt is open to any eligible driver; afterwards only the assigned
	// driver may act. Client actions are restricted to the requesting client.
	switch cmd.role {
	case entities.ActorRoleConductor:
		if svc.AssignedDriverID != "" && svc.AssignedDriverID != cmd.actorID {
			return entities.Negotiation{}, nil, ErrUnauthorizedTransition
		}
	case entities.ActorRoleCliente:
		if svc.ClientID != cmd.actorID {
			return entities.Negotiation{}, nil, ErrUnauthorizedTransition
		}
	default:
		return entities.Negotiation{}, nil, ErrUnauthorizedTransition
	}

	// Stale-version check comes before the transition table: a caller racing
	// against a concurrent winner must see a conflict and re-read, not a
	// misleading authorization error for the state it never observed.
	if !cmd.useCurrentVersion && cmd.expectedVersion != n.Version {
		return entities.Negotiation{}, nil, ErrVersionConflict
	}

	action := cmd.action
	if action == entities.NegotiationActionProposeAmount {
		action = entities.ProposalActionFor(n.State)
	}

	next, ok := entities.NextNegotiationState(n.State, action, cmd.role)
	if !ok {
		return entities.Negotiation{}, nil, ErrUnauthorizedTransition
	}
	if action == entities.NegotiationActionAcceptAmount && n.ConfirmedAmount == nil {
		return entities.Negotiation{}, nil, ErrInvalidAmount
	}

	now := time.Now().UTC()
	updated := n
	updated.State = next
	updated.Version = n.Version + 1
	updated.LastActor = cmd.role
	updated.UpdatedAt = now

	switch action {
	case entities.NegotiationActionProposeAmount, entities.NegotiationActionUpdateProposal:
		a := *cmd.amount
		updated.ProposedAmount = &a
	case entities.NegotiationActionConfirmAmount:
		updated.ConfirmedAmount = updated.ProposedAmount
	case entities.NegotiationActionRejectAmount:
		// Rejection closes this attempt and atomically re-opens a clean one
		// for the same service. Proposed/confirmed amounts do not carry over;
		// chat history stays as-is for the next driver to read.
		updated = entities.Negotiation{
			ID:        uuid.NewString(),
			ServiceID: n.ServiceID,
			Attempt:   n.Attempt + 1,
			State:     entities.NegotiationStatePendienteEvaluacion,
			Version:   n.Version + 1,
			LastActor: cmd.role,
			CreatedAt: now,
			UpdatedAt: now,
		}
	}

	saved, err := u.negotiations.Save(ctx, updated, n.Version)
	if err != nil {
		return entities.Negotiation{}, nil, err
	}
	log.Printf("[negotiation][usecase] transition applied service_id=%s action=%s state=%s version=%d", cmd.serviceID, action, saved.State, saved.Version)

	// The transition is durable once Save succeeds: the event must still go
	// out (delivery is at-least-once), so projection and chat failures are
	// logged as follow-up work instead of failing the call.
	if err := u.applyServiceProjection(ctx, svc, n, action, cmd.actorID); err != nil {
		log.Printf("[negotiation][usecase] service projection failed service_id=%s action=%s: %v", cmd.serviceID, action, err)
	}

	if err := u.appendSystemMessage(ctx, cmd, n, saved, action, now); err != nil {
		log.Printf("[negotiation][usecase] system message failed service_id=%s action=%s: %v", cmd.serviceID, action, err)
	}

	return saved, buildEvent(cmd, n, saved, action), nil
}

func (u *NegotiationUseCase) applyServiceProjection(ctx context.Context, svc entities.Service, prev entities.Negotiation, action entities.NegotiationAction, actorID string) error {
	switch action {
	case entities.NegotiationActionProposeAmount, entities.NegotiationActionUpdateProposal:
		if svc.AssignedDriverID == "" {
			if _, err := u.services.SetAssignedDriver(ctx, svc.ID, actorID); err != nil {
				return err
			}
		}
	case entities.NegotiationActionAcceptAmount:
		if _, err := u.services.SetAgreedAmount(ctx, svc.ID, *prev.ConfirmedAmount, entities.ServiceStatusAceptado); err != nil {
			return err
		}
	case entities.NegotiationActionRejectAmount:
		// Release the driver so any other one can evaluate afresh.
		if _, err := u.services.SetAssignedDriver(ctx, svc.ID, ""); err != nil {
			return err
		}
	case entities.NegotiationActionCancelService:
		if _, err := u.services.SetStatus(ctx, svc.ID, entities.ServiceStatusCancelado); err != nil {
			return err
		}
	}
	return nil
}

func (u *NegotiationUseCase) appendSystemMessage(ctx context.Context, cmd transitionCommand, prev, saved entities.Negotiation, action entities.NegotiationAction, now time.Time) error {
	var (
		kind    entities.ChatMessageKind
		content string
		amount  *decimal.Decimal
	)

	switch action {
	case entities.NegotiationActionProposeAmount, entities.NegotiationActionUpdateProposal:
		kind = entities.ChatMessageKindMontoPropuesto
		amount = saved.ProposedAmount
		content = "Propuesta de cotización: " + amounts.Format(*amount)
	case entities.NegotiationActionConfirmAmount:
		kind = entities.ChatMessageKindMontoConfirmado
		amount = saved.ConfirmedAmount
		content = "Cotización confirmada: " + amounts.Format(*amount)
	case entities.NegotiationActionAcceptAmount:
		kind = entities.ChatMessageKindMontoAceptado
		amount = prev.ConfirmedAmount
		content = "Cotización aceptada: " + amounts.Format(*amount)
	case entities.NegotiationActionRejectAmount:
		kind = entities.ChatMessageKindMontoRechazado
		content = "Cotización rechazada por el cliente. El servicio queda disponible para una nueva evaluación."
	case entities.NegotiationActionCancelService:
		kind = entities.ChatMessageKindSistema
		content = "Servicio cancelado por el cliente."
	default:
		return nil
	}

	_, err := u.chat.Append(ctx, entities.ChatMessage{
		ID:             ulid.Make().String(),
		ServiceID:      cmd.serviceID,
		SenderID:       cmd.actorID,
		Role:           cmd.role,
		Kind:           kind,
		Content:        content,
		AttachedAmount: amount,
		CreatedAt:      now,
	})
	return err
}

func buildEvent(cmd transitionCommand, prev, saved entities.Negotiation, action entities.NegotiationAction) *entities.NegotiationEvent {
	ev := entities.NegotiationEvent{
		ServiceID: cmd.serviceID,
		ActorID:   cmd.actorID,
		Version:   saved.Version,
	}

	switch action {
	case entities.NegotiationActionProposeAmount, entities.NegotiationActionUpdateProposal:
		ev.Type = entities.NegotiationEventAmountProposed
		ev.Amount = saved.ProposedAmount
	case entities.NegotiationActionConfirmAmount:
		ev.Type = entities.NegotiationEventAmountConfirmed
		ev.Amount = saved.ConfirmedAmount
	case entities.NegotiationActionAcceptAmount:
		ev.Type = entities.NegotiationEventAmountAccepted
		ev.Amount = prev.ConfirmedAmount
	case entities.NegotiationActionRejectAmount:
		ev.Type = entities.NegotiationEventAmountRejected
	default:
		return nil
	}
	return &ev
}
