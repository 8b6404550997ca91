package repository

import (
	"context"
	"sort"
	"time"

	"gruas_rd/internal/domain/entities"
	"gruas_rd/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const (
	defaultChatMessagesTableName = "chat_messages"
	chatMessagesServiceIDIndex   = "service_id-index"
)

type chatMessageItem struct {
	ID             string `dynamodbav:"id"`
	ServiceID      string `dynamodbav:"service_id"`
	SenderID       string `dynamodbav:"sender_id"`
	Role           string `dynamodbav:"role"`
	Kind           string `dynamodbav:"kind"`
	Content        string `dynamodbav:"content,omitempty"`
	AttachedAmount string `dynamodbav:"attached_amount,omitempty"`
	Read           bool   `dynamodbav:"read"`
	CreatedAt      string `dynamodbav:"created_at"`
}

// ChatMessageDynamoRepository persists ChatMessage entities in DynamoDB.
//
// Table requirements:
//   - PK: id (ULID string; lexicographic order == creation order)
//   - GSI: service_id-index (PK: service_id)

type ChatMessageDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IChatMessageRepository = (*ChatMessageDynamoRepository)(nil)

func NewChatMessageDynamoRepository(ddb *dynamodb.Client) *ChatMessageDynamoRepository {
	return &ChatMessageDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CHAT_MESSAGES_TABLE", defaultChatMessagesTableName),
	}
}

func (r *ChatMessageDynamoRepository) Append(ctx context.Context, m entities.ChatMessage) (entities.ChatMessage, error) {
	av, err := attributevalue.MarshalMap(toChatMessageItem(m))
	if err != nil {
		return entities.ChatMessage{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.ChatMessage{}, err
	}
	return m, nil
}

func (r *ChatMessageDynamoRepository) ListByServiceID(ctx context.Context, serviceID string) ([]entities.ChatMessage, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(chatMessagesServiceIDIndex),
		KeyConditionExpression: aws.String("service_id = :sid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sid": &types.AttributeValueMemberS{Value: serviceID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.ChatMessage, 0, len(out.Items))
	for _, raw := range out.Items {
		var it chatMessageItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromChatMessageItem(it))
	}
	// ULIDs sort lexicographically by creation time; the index itself does
	// not guarantee an order.
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

// MarkRead flags every message in the conversation that was not authored by
// readerID. Read receipts are best-effort: a message that fails to update
// stays unread and gets retried on the next call.
func (r *ChatMessageDynamoRepository) MarkRead(ctx context.Context, serviceID string, readerID string) error {
	messages, err := r.ListByServiceID(ctx, serviceID)
	if err != nil {
		return err
	}

	for _, m := range messages {
		if m.SenderID == readerID || m.Read {
			continue
		}
		_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
			TableName: aws.String(r.tableName),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: m.ID},
			},
			UpdateExpression: aws.String("SET #read = :read"),
			ExpressionAttributeNames: map[string]string{
				"#read": "read",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":read": &types.AttributeValueMemberBOOL{Value: true},
			},
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func toChatMessageItem(m entities.ChatMessage) chatMessageItem {
	it := chatMessageItem{
		ID:        m.ID,
		ServiceID: m.ServiceID,
		SenderID:  m.SenderID,
		Role:      string(m.Role),
		Kind:      string(m.Kind),
		Content:   m.Content,
		Read:      m.Read,
		CreatedAt: m.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if m.AttachedAmount != nil {
		it.AttachedAmount = m.AttachedAmount.String()
	}
	return it
}

func fromChatMessageItem(it chatMessageItem) entities.ChatMessage {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	m := entities.ChatMessage{
		ID:        it.ID,
		ServiceID: it.ServiceID,
		SenderID:  it.SenderID,
		Role:      entities.ActorRole(it.Role),
		Kind:      entities.ChatMessageKind(it.Kind),
		Content:   it.Content,
		Read:      it.Read,
		CreatedAt: createdAt,
	}
	if it.AttachedAmount != "" {
		if d, err := decimal.NewFromString(it.AttachedAmount); err == nil {
			m.AttachedAmount = &d
		}
	}
	return m
}
