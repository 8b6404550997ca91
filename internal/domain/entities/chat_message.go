package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type ChatMessageKind string

const (
	ChatMessageKindTexto           ChatMessageKind = "texto"
	ChatMessageKindImagen          ChatMessageKind = "imagen"
	ChatMessageKindVideo           ChatMessageKind = "video"
	ChatMessageKindMontoPropuesto  ChatMessageKind = "monto_propuesto"
	ChatMessageKindMontoConfirmado ChatMessageKind = "monto_confirmado"
	ChatMessageKindMontoAceptado   ChatMessageKind = "monto_aceptado"
	ChatMessageKindMontoRechazado  ChatMessageKind = "monto_rechazado"
	ChatMessageKindSistema         ChatMessageKind = "sistema"
)

// ChatMessage belongs to exactly one service's conversation.
//
// Storage model (DynamoDB):
//   - PK: id (ULID, so a service's messages sort by creation time)
//   - GSI: service_id-index (PK: service_id)
//
// The monto_* kinds are authored by the negotiation use case whenever a
// transition happens; human-authored messages arrive as texto/imagen/video.
// Chat history survives re-opened negotiation attempts untouched.
type ChatMessage struct {
	ID             string           `json:"id"`
	ServiceID      string           `json:"service_id"`
	SenderID       string           `json:"sender_id"`
	Role           ActorRole        `json:"role"`
	Kind           ChatMessageKind  `json:"kind"`
	Content        string           `json:"content,omitempty"`
	AttachedAmount *decimal.Decimal `json:"attached_amount,omitempty"`
	Read           bool             `json:"read"`
	CreatedAt      time.Time        `json:"created_at"`
}
