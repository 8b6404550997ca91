package interfaces

import (
	"context"

	"gruas_rd/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// IServiceRepository abstracts DynamoDB persistence for Service.
//
// AssignedDriverID and AgreedAmount are projections owned by the
// negotiation use case; the setters below are only invoked as side effects
// of a successful transition.

type IServiceRepository interface {
	Create(ctx context.Context, s entities.Service) (entities.Service, error)
	GetByID(ctx context.Context, id string) (entities.Service, error)
	SetAssignedDriver(ctx context.Context, id string, driverID string) (entities.Service, error)
	SetAgreedAmount(ctx context.Context, id string, amount decimal.Decimal, status entities.ServiceStatus) (entities.Service, error)
	SetStatus(ctx context.Context, id string, status entities.ServiceStatus) (entities.Service, error)
}
