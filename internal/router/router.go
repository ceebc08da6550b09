package router

import (
	"github.com/gin-gonic/gin"

	"aravalli/internal/handler"
	"aravalli/internal/middleware"
	"aravalli/internal/service"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	authSvc service.AuthService,
	allowedOrigins []string,
	authH *handler.AuthHandler,
	partyH *handler.PartyHandler,
	invoiceH *handler.InvoiceHandler,
	recommendationH *handler.RecommendationHandler,
	shareH *handler.ShareHandler,
	catalogH *handler.CatalogHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(allowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	// Public share link, no session required
	r.GET("/share/invoice", shareH.View)

	v1 := r.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/register", authH.Register)
	auth.POST("/login", authH.Login)
	auth.POST("/google", authH.GoogleSignIn)
	auth.POST("/refresh", authH.RefreshToken)

	// Public catalog
	v1.GET("/catalog", catalogH.List)

	// Protected routes - require valid JWT
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))

	// Party routes
	parties := protected.Group("/parties")
	parties.POST("", partyH.Create)
	parties.GET("", partyH.List)
	parties.GET("/:id", partyH.GetByID)
	parties.DELETE("/:id", partyH.Delete)
	parties.GET("/:id/invoices", invoiceH.ListForParty)

	// Invoice routes
	invoices := protected.Group("/invoices")
	invoices.POST("", invoiceH.Create)
	invoices.GET("", invoiceH.List)
	invoices.GET("/:id", invoiceH.GetByID)
	invoices.GET("/:id/view", invoiceH.RenderView)
	invoices.POST("/:id/share", invoiceH.Share)

	// Recommendation gateway
	protected.POST("/recommendations", recommendationH.Recommend)

	return r
}
