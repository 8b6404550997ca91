package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"gruas_rd/internal/domain/entities"
	"gruas_rd/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidClientID        = errors.New("invalid client id")
	ErrInvalidServiceCategory = errors.New("invalid service category")
)

// IServiceUseCase handles towing service intake. Whether a service needs a
// negotiated price is classified exactly once here; extraction services get
// their negotiation opened in the same call.

type IServiceUseCase interface {
	CreateService(ctx context.Context, clientID string, category entities.ServiceCategory, subtype entities.ServiceSubtype, description string) (entities.Service, error)
	GetByID(ctx context.Context, id string) (entities.Service, error)
}

type ServiceUseCase struct {
	services     interfaces.IServiceRepository
	negotiations interfaces.INegotiationRepository
}

var _ IServiceUseCase = (*ServiceUseCase)(nil)

func NewServiceUseCase(services interfaces.IServiceRepository, negotiations interfaces.INegotiationRepository) *ServiceUseCase {
	return &ServiceUseCase{services: services, negotiations: negotiations}
}

func (u *ServiceUseCase) CreateService(ctx context.Context, clientID string, category entities.ServiceCategory, subtype entities.ServiceSubtype, description string) (entities.Service, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return entities.Service{}, ErrInvalidClientID
	}
	if !entities.IsValidServiceCategory(category) {
		return entities.Service{}, ErrInvalidServiceCategory
	}

	now := time.Now().UTC()
	svc := entities.Service{
		ID:                  uuid.NewString(),
		ClientID:            clientID,
		Category:            category,
		Subtype:             subtype,
		Description:         strings.TrimSpace(description),
		RequiresNegotiation: entities.ServiceRequiresNegotiation(category, subtype),
		Status:              entities.ServiceStatusPendiente,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	created, err := u.services.Create(ctx, svc)
	if err != nil {
		return entities.Service{}, err
	}

	if created.RequiresNegotiation {
		_, err = u.negotiations.Create(ctx, entities.Negotiation{
			ID:        uuid.NewString(),
			ServiceID: created.ID,
			Attempt:   1,
			State:     entities.InitialNegotiationState(true),
			Version:   0,
			CreatedAt: now,
			UpdatedAt: now,
		})
		if err != nil {
			return entities.Service{}, err
		}
		log.Printf("[service][usecase] negotiation opened service_id=%s category=%s subtype=%s", created.ID, category, subtype)
	}

	return created, nil
}

func (u *ServiceUseCase) GetByID(ctx context.Context, id string) (entities.Service, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Service{}, ErrInvalidServiceID
	}

	svc, err := u.services.GetByID(ctx, id)
	if err != nil {
		return entities.Service{}, err
	}
	if svc.ID == "" {
		return entities.Service{}, ErrServiceNotFound
	}
	return svc, nil
}
