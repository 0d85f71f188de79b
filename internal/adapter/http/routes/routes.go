package routes

import (
	"log"
	"os"
	"time"

	_ "recibozap/docs" // This will be auto-generated
	"recibozap/internal/adapter/http/handlers"
	repository2 "recibozap/internal/adapter/persistence/repository"
	"recibozap/internal/infrastructure/database"
	"recibozap/internal/infrastructure/messaging"
	"recibozap/internal/infrastructure/render"
	"recibozap/internal/infrastructure/session"
	"recibozap/internal/infrastructure/storage"
	"recibozap/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const (
	defaultPort       = "8080"
	sessionTTL        = 30 * time.Minute
	sessionSweepEvery = 5 * time.Minute
)

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}
	err := router.Run(":" + port)
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()
	tables := database.TablesFromEnv()

	userRepo := repository2.NewUserDynamoRepository(ddb, tables.Users)
	receiptRepo := repository2.NewReceiptDynamoRepository(ddb, tables.Receipts)
	usageRepo := repository2.NewUsageDynamoRepository(ddb, tables.Usage)

	fileStore, err := storage.NewLocalStore()
	if err != nil {
		log.Fatalf("Failed to initialize receipt storage: %v", err)
	}

	sessions := session.NewMemoryStore(sessionTTL, sessionSweepEvery)
	messenger := messaging.NewTwilioMessenger()
	renderer := render.NewPDFRenderer()

	publicURL := os.Getenv("BASE_URL")
	if publicURL == "" {
		publicURL = "http://localhost:" + defaultPort
	}

	userUseCase := usecase.NewUserUseCase(userRepo, usageRepo)
	numberingUseCase := usecase.NewNumberingUseCase(userRepo)
	receiptUseCase := usecase.NewReceiptUseCase(receiptRepo, userUseCase, numberingUseCase, renderer, fileStore, publicURL)
	analyticsUseCase := usecase.NewAnalyticsUseCase(receiptRepo, userRepo)
	conversationUseCase := usecase.NewConversationUseCase(sessions, userUseCase, receiptUseCase, analyticsUseCase, publicURL)

	whatsappHandler := handlers.NewWhatsAppHandler(conversationUseCase, messenger, sessions)
	receiptHandler := handlers.NewReceiptHandler(receiptUseCase, userUseCase)
	userHandler := handlers.NewUserHandler(userUseCase)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsUseCase)

	// Rotas publicas
	addHealthRoutes(router)
	api := router.Group("/api")
	addAPIRoutes(api, whatsappHandler, receiptHandler, userHandler, analyticsHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
