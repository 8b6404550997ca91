package handlers

import (
	"errors"
	"net/http"

	request "gruas_rd/internal/adapter/http/dto/request"
	response "gruas_rd/internal/adapter/http/dto/response"
	"gruas_rd/internal/adapter/http/middleware"
	"gruas_rd/internal/domain/entities"
	"gruas_rd/internal/usecase"
	"gruas_rd/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidServicePayload = pkg.NewDomainErrorSimple("INVALID_SERVICE_INPUT", "Invalid service payload", http.StatusBadRequest)

// ServiceHandler handles towing service intake.

type ServiceHandler struct {
	usecase usecase.IServiceUseCase
}

func NewServiceHandler(uc usecase.IServiceUseCase) *ServiceHandler {
	return &ServiceHandler{usecase: uc}
}

// CreateService registers a towing request for the authenticated client.
// Extraction requests get their negotiation opened in the same call.
func (h *ServiceHandler) CreateService(c *gin.Context) {
	identity, ok := requireRole(c, entities.ActorRoleCliente)
	if !ok {
		return
	}

	var payload request.CreateServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidServicePayload.HTTPStatus, errInvalidServicePayload.ToHTTPError())
		return
	}

	svc, err := h.usecase.CreateService(c.Request.Context(), identity.ActorID, payload.ResolveCategory(), payload.ResolveSubtype(), payload.Description)
	if err != nil {
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromService(svc))
}

// GetService returns a service snapshot.
func (h *ServiceHandler) GetService(c *gin.Context) {
	if _, ok := middleware.IdentityFrom(c); !ok {
		appErr := pkg.NewDomainErrorSimple("NOT_AUTHENTICATED", "Not authorized", http.StatusUnauthorized)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	svc, err := h.usecase.GetByID(c.Request.Context(), c.Param("service_id"))
	if err != nil {
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromService(svc))
}

func mapServiceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidClientID), errors.Is(err, usecase.ErrInvalidServiceCategory), errors.Is(err, usecase.ErrInvalidServiceID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
