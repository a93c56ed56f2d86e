package routes

import (
	"context"
	"log"
	_ "pintura_pro/docs" // This will be auto-generated
	"pintura_pro/internal/adapter/http/handlers"
	repository2 "pintura_pro/internal/adapter/persistence/repository"
	"pintura_pro/internal/infrastructure/database"
	"pintura_pro/internal/infrastructure/payments"
	"pintura_pro/internal/usecase"
	"pintura_pro/internal/usecase/interfaces"
	"os"
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
	ctx := context.Background()
	ddb := database.ConnectDynamoDB()

	if err := database.EnsureTables(ctx, ddb); err != nil {
		log.Fatalf("Failed to ensure ledger tables: %v", err)
	}

	serviceRepo := repository2.NewServiceDynamoRepository(ddb)
	expenseRepo := repository2.NewExpenseDynamoRepository(ddb)
	categoryRepo := repository2.NewCategoryDynamoRepository(ddb)
	migrationRepo := repository2.NewMigrationDynamoRepository(ddb)
	paymentRepo := repository2.NewPaymentDynamoRepository(ddb)

	syncUseCase := usecase.NewSyncUseCase(expenseRepo, serviceRepo, migrationRepo)
	serviceUseCase := usecase.NewServiceUseCase(serviceRepo, expenseRepo, syncUseCase)
	expenseUseCase := usecase.NewExpenseUseCase(expenseRepo)
	categoryUseCase := usecase.NewCategoryUseCase(categoryRepo)

	// Retrofit derived expenses onto services that predate the sync engine.
	if err := syncUseCase.MigrateExistingServices(ctx); err != nil {
		log.Fatalf("Failed to migrate existing services: %v", err)
	}

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, serviceRepo, paymentGateway)

	serviceHandler := handlers.NewServiceHandler(serviceUseCase)
	expenseHandler := handlers.NewExpenseHandler(expenseUseCase)
	categoryHandler := handlers.NewCategoryHandler(categoryUseCase)
	reportHandler := handlers.NewReportHandler(serviceUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addLedgerRoutes(v1, serviceHandler, expenseHandler, categoryHandler, reportHandler, paymentHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
