package main

import (
	"fmt"
	"log"

	"aravalli/internal/auth/google"
	"aravalli/internal/config"
	"aravalli/internal/email/noop"
	"aravalli/internal/email/ses"
	"aravalli/internal/handler"
	"aravalli/internal/port"
	"aravalli/internal/recommender"
	_ "aravalli/internal/recommender/claude"
	_ "aravalli/internal/recommender/openai"
	"aravalli/internal/repository/postgres"
	"aravalli/internal/router"
	"aravalli/internal/service"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	userRepo := postgres.NewUserRepo(db)
	partyRepo := postgres.NewPartyRepo(db)
	invoiceRepo := postgres.NewInvoiceRepo(db)
	catalogRepo := postgres.NewCatalogRepo(db)

	// Outbound email, SES in production and a log-only sender elsewhere
	var emailSender port.EmailSender
	switch cfg.Email.Provider {
	case "ses":
		emailSender, err = ses.NewSESSender(cfg.Email.Region, cfg.Email.FromAddress, cfg.Email.FromName)
		if err != nil {
			return fmt.Errorf("failed to initialize SES sender: %w", err)
		}
	default:
		emailSender = noop.NewNoopSender()
	}

	// Recommendation provider from the registry
	rec, err := recommender.New(&cfg.Recommender)
	if err != nil {
		return fmt.Errorf("failed to initialize recommender: %w", err)
	}

	verifier := google.NewVerifier(cfg.Google.ClientID)

	// Initialize services
	authSvc := service.NewAuthService(userRepo, verifier, cfg.JWT)
	partySvc := service.NewPartyService(partyRepo)
	invoiceSvc := service.NewInvoiceService(invoiceRepo, partyRepo, emailSender, cfg.Share)
	recommendationSvc := service.NewRecommendationService(rec)
	catalogSvc := service.NewCatalogService(catalogRepo)

	// Initialize handlers
	authH := handler.NewAuthHandler(authSvc)
	partyH := handler.NewPartyHandler(partySvc)
	invoiceH := handler.NewInvoiceHandler(invoiceSvc)
	recommendationH := handler.NewRecommendationHandler(recommendationSvc)
	shareH := handler.NewShareHandler(invoiceSvc)
	catalogH := handler.NewCatalogHandler(catalogSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(authSvc, cfg.CORS.AllowedOrigins, authH, partyH, invoiceH, recommendationH, shareH, catalogH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
