package request

import (
	"strings"

	"gruas_rd/internal/domain/entities"
)

type CreateServiceRequest struct {
	Category    string `json:"category" binding:"required"`
	Subtype     string `json:"subtype"`
	Description string `json:"description"`
}

func (r CreateServiceRequest) ResolveCategory() entities.ServiceCategory {
	return entities.ServiceCategory(strings.TrimSpace(r.Category))
}

func (r CreateServiceRequest) ResolveSubtype() entities.ServiceSubtype {
	return entities.ServiceSubtype(strings.TrimSpace(r.Subtype))
}
