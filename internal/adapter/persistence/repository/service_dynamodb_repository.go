package repository

import (
	"context"
	"errors"
	"time"

	"gruas_rd/internal/domain/entities"
	"gruas_rd/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const defaultServicesTableName = "services"

type serviceItem struct {
	ID                  string `dynamodbav:"id"`
	ClientID            string `dynamodbav:"client_id"`
	Category            string `dynamodbav:"category"`
	Subtype             string `dynamodbav:"subtype,omitempty"`
	Description         string `dynamodbav:"description,omitempty"`
	RequiresNegotiation bool   `dynamodbav:"requires_negotiation"`
	AssignedDriverID    string `dynamodbav:"assigned_driver_id,omitempty"`
	AgreedAmount        string `dynamodbav:"agreed_amount,omitempty"`
	Status              string `dynamodbav:"status"`
	CreatedAt           string `dynamodbav:"created_at"`
	UpdatedAt           string `dynamodbav:"updated_at"`
}

// ServiceDynamoRepository persists Service entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type ServiceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IServiceRepository = (*ServiceDynamoRepository)(nil)

func NewServiceDynamoRepository(ddb *dynamodb.Client) *ServiceDynamoRepository {
	return &ServiceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SERVICES_TABLE", defaultServicesTableName),
	}
}

func (r *ServiceDynamoRepository) Create(ctx context.Context, s entities.Service) (entities.Service, error) {
	av, err := attributevalue.MarshalMap(toServiceItem(s))
	if err != nil {
		return entities.Service{}, err
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
		return entities.Service{}, err
	}
	return s, nil
}

func (r *ServiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Service, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Service{}, err
	}
	if len(out.Item) == 0 {
		return entities.Service{}, nil
	}

	var it serviceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Service{}, err
	}
	return fromServiceItem(it), nil
}

func (r *ServiceDynamoRepository) SetAssignedDriver(ctx context.Context, id string, driverID string) (entities.Service, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		if driverID == "" {
			expr := "REMOVE #driver SET #updated_at = :updated_at"
			vals := map[string]types.AttributeValue{
				":updated_at": &types.AttributeValueMemberS{Value: now},
			}
			names := map[string]string{
				"#driver":     "assigned_driver_id",
				"#updated_at": "updated_at",
			}
			return expr, vals, names
		}
		expr := "SET #driver = :driver, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":driver":     &types.AttributeValueMemberS{Value: driverID},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#driver":     "assigned_driver_id",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *ServiceDynamoRepository) SetAgreedAmount(ctx context.Context, id string, amount decimal.Decimal, status entities.ServiceStatus) (entities.Service, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #agreed = :agreed, #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":agreed":     &types.AttributeValueMemberS{Value: amount.String()},
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#agreed":     "agreed_amount",
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *ServiceDynamoRepository) SetStatus(ctx context.Context, id string, status entities.ServiceStatus) (entities.Service, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *ServiceDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Service, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Service{}, nil
		}
		return entities.Service{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Service{}, nil
	}
	var it serviceItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Service{}, err
	}
	return fromServiceItem(it), nil
}

func toServiceItem(s entities.Service) serviceItem {
	it := serviceItem{
		ID:                  s.ID,
		ClientID:            s.ClientID,
		Category:            string(s.Category),
		Subtype:             string(s.Subtype),
		Description:         s.Description,
		RequiresNegotiation: s.RequiresNegotiation,
		AssignedDriverID:    s.AssignedDriverID,
		Status:              string(s.Status),
		CreatedAt:           s.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:           s.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if s.AgreedAmount != nil {
		it.AgreedAmount = s.AgreedAmount.String()
	}
	return it
}

func fromServiceItem(it serviceItem) entities.Service {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	s := entities.Service{
		ID:                  it.ID,
		ClientID:            it.ClientID,
		Category:            entities.ServiceCategory(it.Category),
		Subtype:             entities.ServiceSubtype(it.Subtype),
		Description:         it.Description,
		RequiresNegotiation: it.RequiresNegotiation,
		AssignedDriverID:    it.AssignedDriverID,
		Status:              entities.ServiceStatus(it.Status),
		CreatedAt:           createdAt,
		UpdatedAt:           updatedAt,
	}
	if it.AgreedAmount != "" {
		if d, err := decimal.NewFromString(it.AgreedAmount); err == nil {
			s.AgreedAmount = &d
		}
	}
	return s
}
