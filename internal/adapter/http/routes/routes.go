package routes

import (
	"log"
	"strconv"

	_ "gruas_rd/docs" // This will be auto-generated
	"gruas_rd/internal/adapter/http/handlers"
	"gruas_rd/internal/adapter/http/middleware"
	repository2 "gruas_rd/internal/adapter/persistence/repository"
	"gruas_rd/internal/infrastructure/database"
	"gruas_rd/internal/infrastructure/events"
	"gruas_rd/internal/infrastructure/notifications"
	"gruas_rd/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	serviceRepo := repository2.NewServiceDynamoRepository(ddb)
	negotiationRepo := repository2.NewNegotiationDynamoRepository(ddb)
	chatRepo := repository2.NewChatMessageDynamoRepository(ddb)

	// Outbound side: the broker feeds the real-time broadcast layer, the
	// notifier hands push requests to the platform notification service.
	broker := events.NewBroker(256)
	notifier := notifications.NewLogPushNotifier()

	serviceUseCase := usecase.NewServiceUseCase(serviceRepo, negotiationRepo)
	negotiationUseCase := usecase.NewNegotiationUseCase(negotiationRepo, serviceRepo, chatRepo, broker, notifier)

	serviceHandler := handlers.NewServiceHandler(serviceUseCase)
	negotiationHandler := handlers.NewNegotiationHandler(negotiationUseCase)
	chatHandler := handlers.NewChatHandler(negotiationUseCase)

	identity := middleware.RequireIdentity(middleware.NewHeaderIdentityResolver())

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	authenticated := v1.Group("", identity)
	addServiceRoutes(authenticated, serviceHandler)
	addNegotiationRoutes(authenticated, negotiationHandler)
	addChatRoutes(authenticated, chatHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
