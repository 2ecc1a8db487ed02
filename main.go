package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"mymirro/internal/config"
	"mymirro/internal/handlers"
	"mymirro/internal/models"
	"mymirro/internal/repositories"
	"mymirro/internal/services"
	"mymirro/pkg/googleauth"
	"mymirro/pkg/logger"
	"mymirro/pkg/rabbitmq"
	"mymirro/pkg/storage"
)

func main() {
	// --- Configuration ---
	// Missing secret or database URL is fatal; better to refuse to start
	// than to run degraded.
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	if err := logger.Init(cfg.Environment); err != nil {
		logger.Fatal("failed to initialize logger", zap.Error(err))
	}
	defer logger.Close()

	// --- Database ---
	// TranslateError turns driver-specific duplicate-key failures into
	// gorm.ErrDuplicatedKey; the unique indexes are the real uniqueness
	// guarantee behind the handlers' friendlier pre-checks.
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{TranslateError: true})
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	if err := db.AutoMigrate(&models.User{}, &models.Product{}, &models.Entry{}); err != nil {
		logger.Fatal("failed to migrate database", zap.Error(err))
	}

	// --- Repositories ---
	userRepo := repositories.NewGORMUserRepository(db)
	productRepo := repositories.NewGORMProductRepository(db)
	entryRepo := repositories.NewGORMEntryRepository(db)

	// --- Catalog event publisher (optional) ---
	var publisher services.CatalogPublisher
	if cfg.RabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			logger.Fatal("failed to initialize RabbitMQ client", zap.Error(err))
		}
		defer mqClient.Close()
		publisher = mqClient
	} else {
		logger.Warn("RABBITMQ_URL not set, catalog events disabled")
	}

	// --- Services ---
	authService, err := services.NewAuthService(userRepo, googleauth.NewClientVerifier(cfg.GoogleClientID), cfg.JWTSecret)
	if err != nil {
		logger.Fatal("failed to initialize auth service", zap.Error(err))
	}
	userService := services.NewUserService(userRepo)
	productService := services.NewProductService(productRepo, publisher)
	entryService := services.NewEntryService(entryRepo)

	// --- Storage backends ---
	localStore := storage.NewLocal(cfg.UploadDir, "/uploads")
	var cloudStore storage.Uploader
	if cfg.CloudinaryURL != "" {
		cloudStore, err = storage.NewCloudinary(cfg.CloudinaryURL, "products")
		if err != nil {
			logger.Fatal("failed to initialize cloudinary", zap.Error(err))
		}
	} else {
		logger.Warn("CLOUDINARY_URL not set, public uploads fall back to local disk")
		cloudStore = localStore
	}

	// --- Handlers ---
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	productHandler := handlers.NewProductHandler(productService)
	adminHandler := handlers.NewAdminHandler(entryService, localStore)
	uploadHandler := handlers.NewUploadHandler(cloudStore)

	// --- Fiber app ---
	// The error handler is the process-wide fallback: anything a handler did
	// not map itself becomes one JSON error response.
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"success": false,
				"message": err.Error(),
			})
		},
	})

	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.ClientURL,
		AllowCredentials: cfg.ClientURL != "*",
	}))
	app.Static("/uploads", cfg.UploadDir)

	// --- API Routes ---
	api := app.Group("/api")
	authHandler.RegisterRoutes(api)
	userHandler.RegisterRoutes(api, authService)
	productHandler.RegisterRoutes(api, authService)
	adminHandler.RegisterRoutes(api, authService)
	uploadHandler.RegisterRoutes(api)

	// --- Start HTTP server with graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.Info("starting server", zap.String("port", cfg.AppPort))
		if err := app.Listen(cfg.AppPort); err != nil {
			logger.Fatal("server failed to start", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("shutting down server")

	if err := app.Shutdown(); err != nil {
		logger.Error("error during shutdown", zap.Error(err))
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}

	logger.Info("server gracefully stopped")
}
