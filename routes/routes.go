package routes

import (
	"net/http"
	"time"

	"albarkah/handlers"
	"albarkah/middleware"
	"albarkah/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterCatalogRoutes registers the public package catalog.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/packages")
	{
		api.GET("", hb.ListPackages)
		api.GET("/:id", hb.GetPackage)
	}
}

// RegisterCheckoutRoutes sets up the endpoints for the checkout flow.
func RegisterCheckoutRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/checkout")
	{
		api.POST("/session", hb.InitiateCheckout)
		api.PUT("/session/:sessionID", hb.SubmitStep)
		api.PUT("/session/:sessionID/back", hb.StepBack)
		api.POST("/session/:sessionID/confirm", hb.ConfirmBooking)
	}
}

// RegisterStatusRoute registers the public booking status checker.
func RegisterStatusRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/status/:code", hb.CheckStatus)
}

// RegisterAuthRoutes registers admin sign-in and sign-out.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/login", hb.Login)
		api.POST("/logout", middleware.AdminAuthMiddleware(hb.AuthService), hb.Logout)
	}
}

// RegisterAdminRoutes sets up the dashboard endpoints. Everything here
// requires a valid admin token.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.AdminAuthMiddleware(hb.AuthService))
		adminGroup.GET("/leads", hb.ListLeads)
		adminGroup.GET("/leads/export", hb.ExportLeads)
		adminGroup.GET("/leads/summary", hb.GetSummary)
		adminGroup.GET("/leads/:id", hb.GetLead)
		adminGroup.PUT("/leads/:id", hb.UpdateLead)
		adminGroup.DELETE("/leads/:id", hb.DeleteLead)
		adminGroup.GET("/stats", hb.GetStats)
	}
}

// RegisterAIRoutes registers the Mutawwif assistant endpoints.
func RegisterAIRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/ai")
	{
		api.POST("/chat", hb.Chat)
		api.DELETE("/chat/:clientID", hb.ResetChat)
		// Marketing copy is a dashboard tool.
		api.POST("/marketing", middleware.AdminAuthMiddleware(hb.AuthService), hb.MarketingCopy)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":       "ok",
			"message":      "Hi, I'm Al-Barkah",
			"dependencies": utils.GetHealthStatus(),
		})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterCatalogRoutes(r, hb)
	RegisterCheckoutRoutes(r, hb)
	RegisterStatusRoute(r, hb)
	RegisterAuthRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterAIRoutes(r, hb)
	RegisterHealthRoute(r)
}
