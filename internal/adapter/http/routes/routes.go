package routes

import (
	"log"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "quoteflow/docs" // generated swagger docs
	"quoteflow/internal/adapter/http/handlers"
	"quoteflow/internal/adapter/http/middleware"
	"quoteflow/internal/adapter/persistence/repository"
	"quoteflow/internal/infrastructure/database"
	"quoteflow/internal/infrastructure/metrics"
	"quoteflow/internal/infrastructure/orders"
	"quoteflow/internal/infrastructure/pricingengine"
	"quoteflow/internal/usecase"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	registry := metrics.NewRegistry()
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(registry.Handler()))

	getRoutes(registry)

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(registry *metrics.Registry) {
	ddb := database.ConnectDynamoDB()
	quoteRepo := repository.NewQuoteDynamoRepository(ddb)

	orderClient, err := orders.NewOrderClient(os.Getenv("ORDER_SERVICE_URL"))
	if err != nil {
		log.Fatalf("order service client not configured: %v", err)
	}

	pricingClient, err := pricingengine.NewWaterfallClient(os.Getenv("PRICING_ENGINE_URL"))
	if err != nil {
		log.Fatalf("pricing engine client not configured: %v", err)
	}

	workflowUseCase := usecase.NewQuoteWorkflowUseCase(quoteRepo, orderClient, registry)
	pricingUseCase := usecase.NewPricingUseCase(quoteRepo, pricingClient, registry)

	quoteHandler := handlers.NewQuoteHandler(workflowUseCase)
	pricingHandler := handlers.NewPricingHandler(pricingUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuoteRoutes(v1, quoteHandler, pricingHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(middleware.Identity())
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}
