package routes

import (
	"log"
	_ "cotacao_service/docs" // This will be auto-generated
	"cotacao_service/internal/adapter/http/handlers"
	"cotacao_service/internal/adapter/persistence/repository"
	"cotacao_service/internal/infrastructure/database"
	"cotacao_service/internal/infrastructure/notification"
	"cotacao_service/internal/infrastructure/storage"
	"cotacao_service/internal/usecase"
	"strconv"

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
	fileStorage := storage.ConnectS3()
	notifier := notification.NewLogNotifier()

	quotationRepo := repository.NewQuotationDynamoRepository(ddb)
	pendingRepo := repository.NewPendingRequestDynamoRepository(ddb)
	sequenceRepo := repository.NewSequenceDynamoRepository(ddb)

	quotationUseCase := usecase.NewQuotationUseCase(quotationRepo, sequenceRepo, fileStorage, notifier)
	pendingUseCase := usecase.NewPendingRequestUseCase(pendingRepo, sequenceRepo, fileStorage)
	uploadUseCase := usecase.NewUploadUseCase(fileStorage)

	quotationHandler := handlers.NewQuotationHandler(quotationUseCase)
	pendingHandler := handlers.NewPendingRequestHandler(pendingUseCase)
	uploadHandler := handlers.NewUploadHandler(uploadUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuotationRoutes(v1, quotationHandler)
	addPendingRequestRoutes(v1, pendingHandler)
	addUploadRoutes(v1, uploadHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
