package routes

import (
	"log"
	"os"

	_ "madeireira_api/docs" // This will be auto-generated
	"madeireira_api/internal/adapter/http/handlers"
	"madeireira_api/internal/adapter/http/middleware"
	repository2 "madeireira_api/internal/adapter/persistence/repository"
	"madeireira_api/internal/infrastructure/database"
	"madeireira_api/internal/infrastructure/logger"
	"madeireira_api/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const defaultPort = "8080"

// Run will start the server
func Run() {
	appLogger := logger.New()

	setMiddlewares(appLogger)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(appLogger)

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(appLogger zerolog.Logger) {
	store := database.NewFileStore("", appLogger)

	produtoRepo := repository2.NewProdutoFileRepository(store)
	orcamentoRepo := repository2.NewOrcamentoFileRepository(store)
	configRepo := repository2.NewConfigFileRepository(store)

	produtoUseCase := usecase.NewProdutoUseCase(produtoRepo, configRepo)
	orcamentoUseCase := usecase.NewOrcamentoUseCase(orcamentoRepo)
	configUseCase := usecase.NewConfigUseCase(configRepo)
	analiseUseCase := usecase.NewAnaliseUseCase(produtoRepo)

	produtoHandler := handlers.NewProdutoHandler(produtoUseCase)
	orcamentoHandler := handlers.NewOrcamentoHandler(orcamentoUseCase)
	configHandler := handlers.NewConfigHandler(configUseCase)
	analiseHandler := handlers.NewAnaliseHandler(analiseUseCase)

	// Rotas publicas
	api := router.Group("/api")
	addPingRoutes(api)
	addCatalogoRoutes(api, produtoHandler, orcamentoHandler, configHandler, analiseHandler)
}

func setMiddlewares(appLogger zerolog.Logger) {
	router.Use(middleware.CorrelationID())
	router.Use(middleware.RequestLogger(appLogger))
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		appLogger.Error().Interface("panic", recovered).Msg("recovered from panic")
		c.AbortWithStatus(500)
	}))
}
