package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"gruas_rd/internal/domain/entities"
	"gruas_rd/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const defaultNegotiationsTableName = "negotiations"

type negotiationItem struct {
	ServiceID       string `dynamodbav:"service_id"`
	ID              string `dynamodbav:"id"`
	Attempt         int    `dynamodbav:"attempt"`
	State           string `dynamodbav:"state"`
	ProposedAmount  string `dynamodbav:"proposed_amount,omitempty"`
	ConfirmedAmount string `dynamodbav:"confirmed_amount,omitempty"`
	Version         int64  `dynamodbav:"version"`
	LastActor       string `dynamodbav:"last_actor,omitempty"`
	CreatedAt       string `dynamodbav:"created_at"`
	UpdatedAt       string `dynamodbav:"updated_at"`
}

// NegotiationDynamoRepository persists the active Negotiation per service.
//
// Table requirements:
//   - PK: service_id (string)
//
// Using service_id as PK guarantees at most one active attempt per service.
// Save replaces the full item conditioned on the stored version, which
// makes both ordinary transitions and the rejection close-and-reopen a
// single atomic write.

type NegotiationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.INegotiationRepository = (*NegotiationDynamoRepository)(nil)

func NewNegotiationDynamoRepository(ddb *dynamodb.Client) *NegotiationDynamoRepository {
	return &NegotiationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("NEGOTIATIONS_TABLE", defaultNegotiationsTableName),
	}
}

func (r *NegotiationDynamoRepository) Create(ctx context.Context, n entities.Negotiation) (entities.Negotiation, error) {
	av, err := attributevalue.MarshalMap(toNegotiationItem(n))
	if err != nil {
		return entities.Negotiation{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#sid)"),
		ExpressionAttributeNames: map[string]string{
			"#sid": "service_id",
		},
	})
	if err != nil {
		return entities.Negotiation{}, err
	}
	return n, nil
}

func (r *NegotiationDynamoRepository) GetByServiceID(ctx context.Context, serviceID string) (entities.Negotiation, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"service_id": &types.AttributeValueMemberS{Value: serviceID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Negotiation{}, err
	}
	if len(out.Item) == 0 {
		return entities.Negotiation{}, nil
	}

	var it negotiationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Negotiation{}, err
	}
	return fromNegotiationItem(it), nil
}

// Save writes the full record, requiring the stored version to equal
// expectedVersion. A failed condition means a concurrent writer won and is
// surfaced as ErrVersionConflict, never resolved silently.
func (r *NegotiationDynamoRepository) Save(ctx context.Context, n entities.Negotiation, expectedVersion int64) (entities.Negotiation, error) {
	av, err := attributevalue.MarshalMap(toNegotiationItem(n))
	if err != nil {
		return entities.Negotiation{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#sid) AND #version = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#sid":     "service_id",
			"#version": "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(expectedVersion, 10)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Negotiation{}, interfaces.ErrVersionConflict
		}
		return entities.Negotiation{}, err
	}
	return n, nil
}

func toNegotiationItem(n entities.Negotiation) negotiationItem {
	it := negotiationItem{
		ServiceID: n.ServiceID,
		ID:        n.ID,
		Attempt:   n.Attempt,
		State:     string(n.State),
		Version:   n.Version,
		LastActor: string(n.LastActor),
		CreatedAt: n.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: n.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if n.ProposedAmount != nil {
		it.ProposedAmount = n.ProposedAmount.String()
	}
	if n.ConfirmedAmount != nil {
		it.ConfirmedAmount = n.ConfirmedAmount.String()
	}
	return it
}

func fromNegotiationItem(it negotiationItem) entities.Negotiation {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	n := entities.Negotiation{
		ServiceID: it.ServiceID,
		ID:        it.ID,
		Attempt:   it.Attempt,
		State:     entities.NegotiationState(it.State),
		Version:   it.Version,
		LastActor: entities.ActorRole(it.LastActor),
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
	if it.ProposedAmount != "" {
		if d, err := decimal.NewFromString(it.ProposedAmount); err == nil {
			n.ProposedAmount = &d
		}
	}
	if it.ConfirmedAmount != "" {
		if d, err := decimal.NewFromString(it.ConfirmedAmount); err == nil {
			n.ConfirmedAmount = &d
		}
	}
	return n
}
