package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/auditdesk/backoffice-api/internal/application/service"
	"github.com/auditdesk/backoffice-api/internal/config"
	domainRepo "github.com/auditdesk/backoffice-api/internal/domain/repository"
	"github.com/auditdesk/backoffice-api/internal/presentation/http/handler"
	"github.com/auditdesk/backoffice-api/internal/presentation/http/middleware"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth     *handler.AuthHandler
	Customer *handler.CustomerHandler
	Expense  *handler.ExpenseHandler
	Receipt  *handler.ReceiptHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	Cfg             *config.Config
	Sessions        *service.SessionService
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	v1 := router.Group("/api/v1")
	{
		registerAuthRoutes(v1, h, deps)

		protected := v1.Group("")
		protected.Use(middleware.SessionMiddleware(deps.Sessions, deps.Cfg.Session.CookieName))
		protected.Use(middleware.Idempotency(middleware.IdempotencyConfig{Repo: deps.IdempotencyRepo}))

		registerProtectedRoutes(protected, h)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers, deps *Deps) {
	loginLimiter := middleware.NewLoginRateLimiter(middleware.RateLimiterConfig{
		RequestsPerSecond: deps.Cfg.RateLimit.RequestsPerSecond,
		BurstSize:         deps.Cfg.RateLimit.Burst,
		CleanupInterval:   5 * time.Minute,
		EntryTTL:          10 * time.Minute,
	})

	auth := v1.Group("/auth")
	{
		auth.POST("/register", loginLimiter.Middleware(), h.Auth.Register)
		auth.POST("/login", loginLimiter.Middleware(), h.Auth.Login)
		auth.POST("/logout", h.Auth.Logout)
	}
}

func registerProtectedRoutes(g *gin.RouterGroup, h *Handlers) {
	customers := g.Group("/customers")
	{
		customers.GET("", h.Customer.List)
		customers.GET("/export", h.Customer.Export)
		customers.GET("/codes", h.Customer.Codes)
		customers.GET("/:id", h.Customer.Get)
		customers.POST("", h.Customer.Create)
		customers.PUT("/:id", h.Customer.Update)
		customers.DELETE("/:id", h.Customer.Delete)
	}

	expenses := g.Group("/expenses")
	{
		expenses.GET("", h.Expense.List)
		expenses.GET("/export", h.Expense.Export)
		expenses.GET("/:id", h.Expense.Get)
		expenses.POST("", h.Expense.Create)
		expenses.PUT("/:id", h.Expense.Update)
		expenses.DELETE("/:id", h.Expense.Delete)
	}

	receipts := g.Group("/receipts")
	{
		receipts.GET("", h.Receipt.List)
		receipts.GET("/export", h.Receipt.Export)
		receipts.GET("/:id", h.Receipt.Get)
		receipts.POST("", h.Receipt.Create)
		receipts.PUT("/:id", h.Receipt.Update)
		receipts.DELETE("/:id", h.Receipt.Delete)
	}
}
