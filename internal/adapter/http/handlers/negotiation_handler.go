package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	request "gruas_rd/internal/adapter/http/dto/request"
	response "gruas_rd/internal/adapter/http/dto/response"
	"gruas_rd/internal/adapter/http/middleware"
	"gruas_rd/internal/domain/entities"
	"gruas_rd/internal/usecase"
	"gruas_rd/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidNegotiationPayload = pkg.NewDomainErrorSimple("INVALID_NEGOTIATION_INPUT", "Invalid negotiation payload", http.StatusBadRequest)
	errRoleNotAllowed            = pkg.NewDomainErrorSimple("UNAUTHORIZED_TRANSITION", "Action not allowed for this role", http.StatusForbidden)
)

// NegotiationHandler exposes the negotiation protocol over HTTP. Role
// checks happen twice: the route gates on the expected role, and the use
// case enforces the transition table regardless of transport.

type NegotiationHandler struct {
	usecase usecase.INegotiationUseCase
}

func NewNegotiationHandler(uc usecase.INegotiationUseCase) *NegotiationHandler {
	return &NegotiationHandler{usecase: uc}
}

// GetNegotiation returns the active negotiation snapshot for a service.
func (h *NegotiationHandler) GetNegotiation(c *gin.Context) {
	if _, ok := middleware.IdentityFrom(c); !ok {
		appErr := pkg.NewDomainErrorSimple("NOT_AUTHENTICATED", "Not authorized", http.StatusUnauthorized)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	n, err := h.usecase.GetByServiceID(c.Request.Context(), c.Param("service_id"))
	if err != nil {
		appErr := mapNegotiationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromNegotiation(n))
}

// ProposeAmount registers the driver's quotation after on-site evaluation.
func (h *NegotiationHandler) ProposeAmount(c *gin.Context) {
	identity, ok := requireRole(c, entities.ActorRoleConductor)
	if !ok {
		return
	}

	var payload request.ProposeAmountRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidNegotiationPayload.HTTPStatus, errInvalidNegotiationPayload.ToHTTPError())
		return
	}

	n, err := h.usecase.ProposeAmount(c.Request.Context(), c.Param("service_id"), identity.ActorID, payload.Amount, payload.ExpectedVersion)
	if err != nil {
		log.Printf("[negotiation][handler] propose failed service_id=%s err=%v", c.Param("service_id"), err)
		appErr := mapNegotiationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromNegotiation(n))
}

// ConfirmAmount locks the proposed quotation for the client's response.
func (h *NegotiationHandler) ConfirmAmount(c *gin.Context) {
	h.actionByRole(c, entities.ActorRoleConductor, h.usecase.ConfirmAmount)
}

// AcceptAmount is the client's acceptance of the confirmed quotation.
func (h *NegotiationHandler) AcceptAmount(c *gin.Context) {
	h.actionByRole(c, entities.ActorRoleCliente, h.usecase.AcceptAmount)
}

// RejectAmount closes the attempt and re-opens the service for evaluation.
func (h *NegotiationHandler) RejectAmount(c *gin.Context) {
	h.actionByRole(c, entities.ActorRoleCliente, h.usecase.RejectAmount)
}

// CancelService cancels the whole service from the negotiation side.
func (h *NegotiationHandler) CancelService(c *gin.Context) {
	h.actionByRole(c, entities.ActorRoleCliente, h.usecase.CancelService)
}

func (h *NegotiationHandler) actionByRole(
	c *gin.Context,
	role entities.ActorRole,
	action func(ctx context.Context, serviceID, actorID string, expectedVersion int64) (entities.Negotiation, error),
) {
	identity, ok := requireRole(c, role)
	if !ok {
		return
	}

	var payload request.NegotiationActionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidNegotiationPayload.HTTPStatus, errInvalidNegotiationPayload.ToHTTPError())
		return
	}

	n, err := action(c.Request.Context(), c.Param("service_id"), identity.ActorID, payload.ExpectedVersion)
	if err != nil {
		log.Printf("[negotiation][handler] action failed service_id=%s role=%s err=%v", c.Param("service_id"), role, err)
		appErr := mapNegotiationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromNegotiation(n))
}

func requireRole(c *gin.Context, role entities.ActorRole) (middleware.Identity, bool) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		appErr := pkg.NewDomainErrorSimple("NOT_AUTHENTICATED", "Not authorized", http.StatusUnauthorized)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return middleware.Identity{}, false
	}
	if identity.Role != role {
		c.JSON(errRoleNotAllowed.HTTPStatus, errRoleNotAllowed.ToHTTPError())
		return middleware.Identity{}, false
	}
	return identity, true
}

func mapNegotiationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidServiceID), errors.Is(err, usecase.ErrInvalidActorID), errors.Is(err, usecase.ErrInvalidMessage):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidAmount):
		return pkg.NewDomainErrorSimple("INVALID_AMOUNT", "Amount outside negotiation limits", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnauthorizedTransition):
		return pkg.NewDomainErrorSimple("UNAUTHORIZED_TRANSITION", "Transition not allowed for this actor in the current state", http.StatusForbidden)
	case errors.Is(err, usecase.ErrVersionConflict):
		return pkg.NewDomainErrorSimple("NEGOTIATION_CONFLICT", "Negotiation changed since last read", http.StatusConflict)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNegotiationNotFound):
		return pkg.NewDomainErrorSimple("NEGOTIATION_NOT_FOUND", "Negotiation not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
