package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// ServiceCategory identifies the kind of towing request.
//
// `extraccion` (and the extraction subtypes under remolque_especializado)
// cannot be priced up front: the driver has to inspect the vehicle first,
// so those services go through the negotiation flow.

type ServiceCategory string

const (
	ServiceCategoryExtraccion            ServiceCategory = "extraccion"
	ServiceCategoryRemolqueEstandar      ServiceCategory = "remolque_estandar"
	ServiceCategoryRemolqueMotocicletas  ServiceCategory = "remolque_motocicletas"
	ServiceCategoryRemolqueEspecializado ServiceCategory = "remolque_especializado"
	ServiceCategoryAuxilioVial           ServiceCategory = "auxilio_vial"
)

// ServiceSubtype refines a category. Only the extraction subtypes matter to
// this service; other subtypes are carried through untouched.

type ServiceSubtype string

const (
	ServiceSubtypeExtraccionZanja     ServiceSubtype = "extraccion_zanja"
	ServiceSubtypeExtraccionLodo      ServiceSubtype = "extraccion_lodo"
	ServiceSubtypeExtraccionVolcado   ServiceSubtype = "extraccion_volcado"
	ServiceSubtypeExtraccionAccidente ServiceSubtype = "extraccion_accidente"
	ServiceSubtypeExtraccionDificil   ServiceSubtype = "extraccion_dificil"
)

type ServiceStatus string

const (
	ServiceStatusPendiente ServiceStatus = "pendiente"
	ServiceStatusAceptado  ServiceStatus = "aceptado"
	ServiceStatusCancelado ServiceStatus = "cancelado"
)

// Service is the towing request persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// RequiresNegotiation is derived exactly once, at creation, from
// category/subtype and never recomputed. AssignedDriverID and AgreedAmount
// are owned by the negotiation use case: they only change as a side effect
// of a successful negotiation transition.
type Service struct {
	ID                  string           `json:"id"`
	ClientID            string           `json:"client_id"`
	Category            ServiceCategory  `json:"category"`
	Subtype             ServiceSubtype   `json:"subtype,omitempty"`
	Description         string           `json:"description,omitempty"`
	RequiresNegotiation bool             `json:"requires_negotiation"`
	AssignedDriverID    string           `json:"assigned_driver_id,omitempty"`
	AgreedAmount        *decimal.Decimal `json:"agreed_amount,omitempty"`
	Status              ServiceStatus    `json:"status"`
	CreatedAt           time.Time        `json:"created_at"`
	UpdatedAt           time.Time        `json:"updated_at"`
}

var serviceCategories = map[ServiceCategory]struct{}{
	ServiceCategoryExtraccion:            {},
	ServiceCategoryRemolqueEstandar:      {},
	ServiceCategoryRemolqueMotocicletas:  {},
	ServiceCategoryRemolqueEspecializado: {},
	ServiceCategoryAuxilioVial:           {},
}

func IsValidServiceCategory(c ServiceCategory) bool {
	_, ok := serviceCategories[c]
	return ok
}

var extractionSubtypes = map[ServiceSubtype]struct{}{
	ServiceSubtypeExtraccionZanja:     {},
	ServiceSubtypeExtraccionLodo:      {},
	ServiceSubtypeExtraccionVolcado:   {},
	ServiceSubtypeExtraccionAccidente: {},
	ServiceSubtypeExtraccionDificil:   {},
}

func IsExtractionSubtype(s ServiceSubtype) bool {
	_, ok := extractionSubtypes[s]
	return ok
}

// ServiceRequiresNegotiation is the single classification point for the
// "needs a negotiated price" rule. Callers store the result on the Service
// at creation instead of re-deriving it.
func ServiceRequiresNegotiation(category ServiceCategory, subtype ServiceSubtype) bool {
	if category == ServiceCategoryExtraccion {
		return true
	}
	return IsExtractionSubtype(subtype)
}
