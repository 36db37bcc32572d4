package app

import (
	"fmt"
	"time"

	"vinolog_backend/database"
	"vinolog_backend/internal/auth"
	"vinolog_backend/internal/config"
	"vinolog_backend/internal/handlers"
	"vinolog_backend/internal/logger"
	"vinolog_backend/internal/middleware"
	"vinolog_backend/internal/repositories"
	"vinolog_backend/internal/routes"
	"vinolog_backend/internal/services"
	"vinolog_backend/internal/storage"
	"vinolog_backend/internal/validator"

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
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
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
	logger.Info(fmt.Sprintf("🚀 Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter собирает полный *gin.Engine (сервисы, хендлеры, middleware).
// Вынесено отдельно, чтобы тесты могли поднять приложение без main.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	storageInstance, err := storage.NewStorage(storage.Config{
		Type:      cfg.Storage.Type,
		BasePath:  cfg.Storage.BasePath,
		BaseURL:   cfg.Storage.BaseURL,
		Bucket:    cfg.Storage.Bucket,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Endpoint:  cfg.Storage.Endpoint,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	googleVerifier := auth.NewGoogleVerifier(auth.GoogleVerifierConfig{
		ClientID:     cfg.Google.ClientID,
		TokenInfoURL: cfg.Google.TokenInfoURL,
		Timeout:      time.Duration(cfg.Google.TimeoutSec) * time.Second,
	})

	serviceContainer := initializeServices(googleVerifier, storageInstance)
	appHandlers := handlers.NewAppHandlers(serviceContainer, validator.New())

	ginRouter := initializeGinRouter(gormDB)
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(googleVerifier auth.GoogleVerifier, storageInstance storage.Storage) *services.ServiceContainer {
	userRepo := repositories.NewUserRepository()
	wineRepo := repositories.NewWineRepository()
	reviewRepo := repositories.NewReviewRepository()
	commentRepo := repositories.NewCommentRepository()

	uploadConfig := services.GetDefaultUploadConfig()

	return &services.ServiceContainer{
		AuthService:    services.NewAuthService(googleVerifier, userRepo),
		UserService:    services.NewUserService(userRepo),
		WineService:    services.NewWineService(wineRepo),
		ReviewService:  services.NewReviewService(reviewRepo, wineRepo),
		CommentService: services.NewCommentService(commentRepo, reviewRepo),
		UploadService:  services.NewUploadService(storageInstance, uploadConfig),
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
