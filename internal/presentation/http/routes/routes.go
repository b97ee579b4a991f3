package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/freshkart/grocery-pos/internal/config"
	"github.com/freshkart/grocery-pos/internal/domain/enum"
	domainRepo "github.com/freshkart/grocery-pos/internal/domain/repository"
	"github.com/freshkart/grocery-pos/internal/presentation/http/handler"
	"github.com/freshkart/grocery-pos/internal/presentation/http/middleware"
	"github.com/freshkart/grocery-pos/pkg/utils"
	"go.uber.org/zap"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth  *handler.AuthHandler
	Item  *handler.ItemHandler
	Order *handler.OrderHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
	Logger          *zap.Logger
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware(deps.Logger))
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		auth := v1.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
		}

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-caller rate limiter
		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerItemRoutes(protected, h)
		registerOrderRoutes(protected, h, deps)
	}

	return router
}

func registerItemRoutes(protected *gin.RouterGroup, h *Handlers) {
	items := protected.Group("/items")
	items.Use(middleware.RequireRole(enum.RoleViewer))
	{
		items.GET("", h.Item.List)
		items.GET("/:id", h.Item.Get)
		items.POST("", middleware.RequireRole(enum.RoleGroceryKeeper), h.Item.Create)
	}
}

func registerOrderRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	orders := protected.Group("/orders")
	orders.Use(middleware.RequireRole(enum.RoleGroceryKeeper))
	{
		// Order creation replays duplicate submissions via Idempotency-Key
		orders.POST("", middleware.Idempotency(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.Order.Create)
		orders.GET("/:id", h.Order.Get)
		orders.POST("/:id/pay", h.Order.Pay)
		orders.POST("/:id/invoice", h.Order.Invoice)
		orders.POST("/:id/cancel", middleware.RequireRole(enum.RoleAdmin), h.Order.Cancel)
	}
}
