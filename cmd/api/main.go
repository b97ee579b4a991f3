package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/freshkart/grocery-pos/internal/application/service"
	"github.com/freshkart/grocery-pos/internal/config"
	"github.com/freshkart/grocery-pos/internal/infrastructure/database"
	"github.com/freshkart/grocery-pos/internal/infrastructure/repository"
	"github.com/freshkart/grocery-pos/internal/presentation/http/handler"
	"github.com/freshkart/grocery-pos/internal/presentation/http/routes"
	"github.com/freshkart/grocery-pos/pkg/utils"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Structured logger
	var logger *zap.Logger
	var err error
	if cfg.App.Env == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed bootstrap admin
	if err := database.SeedDefaultData(db, &cfg.Admin); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.ExpiryHours)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	itemRepo := repository.NewItemRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)
	txManager := repository.NewTxManager(db)

	// Hourly sweep of expired idempotency keys
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			if err := idempotencyRepo.DeleteExpired(context.Background()); err != nil {
				logger.Warn("idempotency key cleanup failed", zap.Error(err))
			}
		}
	}()

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager, logger)
	catalogService := service.NewCatalogService(itemRepo)
	orderService := service.NewOrderService(orderRepo, itemRepo, customerRepo, catalogService, txManager, logger)
	invoiceService := service.NewInvoiceService(orderRepo, invoiceRepo, logger)
	paymentService := service.NewPaymentService(orderRepo, paymentRepo, itemRepo, invoiceService, txManager, logger)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:  handler.NewAuthHandler(authService),
		Item:  handler.NewItemHandler(catalogService),
		Order: handler.NewOrderHandler(orderService, paymentService, invoiceService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
		Logger:          logger,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
