package routes

import (
	"gruas_rd/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathServices     = "/services"
	PathNegotiations = "/negotiations"
	PathChat         = "/chat"
)

func addServiceRoutes(rg *gin.RouterGroup, serviceHandler *handlers.ServiceHandler) {
	services := rg.Group(PathServices)
	{
		services.POST("", serviceHandler.CreateService)
		services.GET("/:service_id", serviceHandler.GetService)
	}
}

func addNegotiationRoutes(rg *gin.RouterGroup, negotiationHandler *handlers.NegotiationHandler) {
	negotiations := rg.Group(PathNegotiations)
	{
		negotiations.GET("/:service_id", negotiationHandler.GetNegotiation)
		negotiations.POST("/:service_id/propose", negotiationHandler.ProposeAmount)
		negotiations.POST("/:service_id/confirm", negotiationHandler.ConfirmAmount)
		negotiations.POST("/:service_id/accept", negotiationHandler.AcceptAmount)
		negotiations.POST("/:service_id/reject", negotiationHandler.RejectAmount)
		negotiations.POST("/:service_id/cancel", negotiationHandler.CancelService)
	}
}

func addChatRoutes(rg *gin.RouterGroup, chatHandler *handlers.ChatHandler) {
	chat := rg.Group(PathChat)
	{
		chat.POST("/send", chatHandler.SendMessage)
		chat.GET("/:service_id", chatHandler.ListMessages)
		chat.POST("/:service_id/mark-read", chatHandler.MarkRead)
	}
}
