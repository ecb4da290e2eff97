package app

import (
	"fmt"

	"foodshare_backend/database"
	"foodshare_backend/internal/config"
	"foodshare_backend/internal/handlers"
	"foodshare_backend/internal/logger"
	"foodshare_backend/internal/middleware"
	"foodshare_backend/internal/repositories"
	"foodshare_backend/internal/routes"
	"foodshare_backend/internal/services"
	"foodshare_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.Migrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter builds the full gin engine. Tests call it directly with their
// own DB handle.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	serviceContainer := initializeServices()
	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter(gormDB)
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices() *services.ServiceContainer {
	userRepo := repositories.NewUserRepository()
	listingRepo := repositories.NewListingRepository()
	claimRepo := repositories.NewClaimRepository()
	taskRepo := repositories.NewTaskRepository()
	analyticsRepo := repositories.NewAnalyticsRepository()

	return &services.ServiceContainer{
		AuthService:      services.NewAuthService(userRepo),
		ListingService:   services.NewListingService(listingRepo, claimRepo, userRepo),
		LogisticsService: services.NewLogisticsService(taskRepo, listingRepo, userRepo),
		AnalyticsService: services.NewAnalyticsService(analyticsRepo, claimRepo),
	}
}

func initializeHandlers(services *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:      handlers.NewAuthHandler(baseHandler, services.AuthService),
		ListingHandler:   handlers.NewListingHandler(baseHandler, services.ListingService),
		LogisticsHandler: handlers.NewLogisticsHandler(baseHandler, services.LogisticsService),
		AnalyticsHandler: handlers.NewAnalyticsHandler(baseHandler, services.AnalyticsService),
	}
}

func initializeGinRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))
	return router
}
