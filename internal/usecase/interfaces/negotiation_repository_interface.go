package interfaces

import (
	"context"
	"errors"

	"gruas_rd/internal/domain/entities"
)

// ErrVersionConflict is returned by Save when the caller's expected version
// is stale. Callers must re-read the negotiation and retry; the conflict is
// never auto-merged.
var ErrVersionConflict = errors.New("negotiation version conflict")

// INegotiationRepository abstracts DynamoDB persistence for the active
// Negotiation of a service.
//
// The store keeps exactly one active attempt per service. Save replaces the
// whole record conditioned on the expected version, which is how both
// ordinary transitions and the atomic close-and-reopen on rejection are
// persisted.

type INegotiationRepository interface {
	Create(ctx context.Context, n entities.Negotiation) (entities.Negotiation, error)
	GetByServiceID(ctx context.Context, serviceID string) (entities.Negotiation, error)
	Save(ctx context.Context, n entities.Negotiation, expectedVersion int64) (entities.Negotiation, error)
}
