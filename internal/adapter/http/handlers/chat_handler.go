package handlers

import (
	"net/http"

	request "gruas_rd/internal/adapter/http/dto/request"
	response "gruas_rd/internal/adapter/http/dto/response"
	"gruas_rd/internal/adapter/http/middleware"
	"gruas_rd/internal/usecase"
	"gruas_rd/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidChatPayload = pkg.NewDomainErrorSimple("INVALID_CHAT_INPUT", "Invalid chat payload", http.StatusBadRequest)

// ChatHandler handles the service conversation. Sending runs through the
// negotiation use case so driver messages get the amount-detection path.

type ChatHandler struct {
	usecase usecase.INegotiationUseCase
}

func NewChatHandler(uc usecase.INegotiationUseCase) *ChatHandler {
	return &ChatHandler{usecase: uc}
}

// SendMessage stores an inbound human message; a driver message carrying a
// detectable amount also advances the negotiation.
func (h *ChatHandler) SendMessage(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		appErr := pkg.NewDomainErrorSimple("NOT_AUTHENTICATED", "Not authorized", http.StatusUnauthorized)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var payload request.ChatSendRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidChatPayload.HTTPStatus, errInvalidChatPayload.ToHTTPError())
		return
	}

	msg, err := h.usecase.HandleChatMessage(c.Request.Context(), payload.ResolveServiceID(), identity.ActorID, identity.Role, payload.ResolveContent())
	if err != nil {
		appErr := mapNegotiationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromChatMessage(msg))
}

// ListMessages returns the full conversation, negotiation attempts included.
func (h *ChatHandler) ListMessages(c *gin.Context) {
	if _, ok := middleware.IdentityFrom(c); !ok {
		appErr := pkg.NewDomainErrorSimple("NOT_AUTHENTICATED", "Not authorized", http.StatusUnauthorized)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	msgs, err := h.usecase.ListMessages(c.Request.Context(), c.Param("service_id"))
	if err != nil {
		appErr := mapNegotiationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromChatMessages(msgs))
}

// MarkRead marks the counterpart's messages as read.
func (h *ChatHandler) MarkRead(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		appErr := pkg.NewDomainErrorSimple("NOT_AUTHENTICATED", "Not authorized", http.StatusUnauthorized)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if err := h.usecase.MarkMessagesRead(c.Request.Context(), c.Param("service_id"), identity.ActorID); err != nil {
		appErr := mapNegotiationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
