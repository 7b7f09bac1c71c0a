package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/auditdesk/backoffice-api/internal/application/service"
	"github.com/auditdesk/backoffice-api/internal/config"
	"github.com/auditdesk/backoffice-api/internal/infrastructure/store"
	"github.com/auditdesk/backoffice-api/internal/infrastructure/upstream"
	"github.com/auditdesk/backoffice-api/internal/presentation/http/handler"
	"github.com/auditdesk/backoffice-api/internal/presentation/http/routes"
	"github.com/auditdesk/backoffice-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Open the session store
	db, err := store.Open(cfg.Session.DBPath)
	if err != nil {
		log.Fatalf("Failed to open session store: %v", err)
	}
	defer db.Close()

	// Initialize the backend client
	client := upstream.NewClient(cfg.Upstream.BaseURL, cfg.Upstream.Timeout)

	// Initialize repositories
	sessionRepo := store.NewSessionRepository(db)
	idempotencyRepo := store.NewIdempotencyRepository(db)

	// Initialize services
	jwtManager := utils.NewJWTManager(cfg.Session.Secret, cfg.Session.TTL)
	sessionService := service.NewSessionService(client, sessionRepo, jwtManager)
	customerService := service.NewCustomerService(client.Customers(), cfg.Pages.Customers)
	expenseService := service.NewExpenseService(client.Expenses(), cfg.Pages.Expenses)
	receiptService := service.NewReceiptService(client.Receipts(), client.Customers(), cfg.Pages.Receipts)

	// Initialize handlers
	guard := &handler.Guard{Sessions: sessionService, CookieName: cfg.Session.CookieName}
	handlers := &routes.Handlers{
		Auth:     handler.NewAuthHandler(sessionService, cfg.Session.CookieName, int(cfg.Session.TTL.Seconds())),
		Customer: handler.NewCustomerHandler(guard, customerService),
		Expense:  handler.NewExpenseHandler(guard, expenseService),
		Receipt:  handler.NewReceiptHandler(guard, receiptService),
	}

	router := routes.Setup(handlers, &routes.Deps{
		Cfg:             cfg,
		Sessions:        sessionService,
		IdempotencyRepo: idempotencyRepo,
	})

	log.Printf("%s listening on :%s (backend %s)", cfg.App.Name, cfg.App.Port, cfg.Upstream.BaseURL)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
