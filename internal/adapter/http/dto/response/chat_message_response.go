package response

import (
	"time"

	"gruas_rd/internal/domain/entities"
)

type ChatMessageResponse struct {
	ID             string    `json:"id"`
	ServiceID      string    `json:"service_id"`
	SenderID       string    `json:"sender_id"`
	Role           string    `json:"role"`
	Kind           string    `json:"kind"`
	Content        string    `json:"content,omitempty"`
	AttachedAmount *string   `json:"attached_amount,omitempty"`
	Read           bool      `json:"read"`
	CreatedAt      time.Time `json:"created_at"`
}

func FromChatMessage(m entities.ChatMessage) ChatMessageResponse {
	return ChatMessageResponse{
		ID:             m.ID,
		ServiceID:      m.ServiceID,
		SenderID:       m.SenderID,
		Role:           string(m.Role),
		Kind:           string(m.Kind),
		Content:        m.Content,
		AttachedAmount: amountString(m.AttachedAmount),
		Read:           m.Read,
		CreatedAt:      m.CreatedAt,
	}
}

func FromChatMessages(ms []entities.ChatMessage) []ChatMessageResponse {
	out := make([]ChatMessageResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromChatMessage(m))
	}
	return out
}
