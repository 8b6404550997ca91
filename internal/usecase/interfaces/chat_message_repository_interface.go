package interfaces

import (
	"context"

	"gruas_rd/internal/domain/entities"
)

// IChatMessageRepository abstracts DynamoDB persistence for ChatMessage.

type IChatMessageRepository interface {
	Append(ctx context.Context, m entities.ChatMessage) (entities.ChatMessage, error)
	ListByServiceID(ctx context.Context, serviceID string) ([]entities.ChatMessage, error)
	MarkRead(ctx context.Context, serviceID string, readerID string) error
}
