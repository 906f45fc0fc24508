package routes

import (
	"net/http"
	"time"

	"skillswap/handlers"
	"skillswap/middleware"
	"skillswap/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers account and inbox endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.RegisterUser)
		api.POST("/login", hb.AuthenticateUser)

		// Protected routes (require authentication)
		api.Use(middleware.JWTAuthUserMiddleware())
		api.POST("/logout", hb.SignOutUser)
		api.GET("/me", hb.GetProfile)
		api.PUT("/me", hb.UpdateProfile)
		api.DELETE("/me", hb.DeleteAccount)
		api.GET("/id/:id", hb.GetUserProfile)
		api.GET("/messages", hb.GetMessages)
		api.PUT("/messages/:id/read", hb.MarkMessageRead)
	}
}

// RegisterAvailabilityRoutes registers calendar management endpoints.
func RegisterAvailabilityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/availability")
	{
		api.Use(middleware.JWTAuthUserMiddleware())
		api.GET("", hb.GetAvailability)
		api.PUT("", hb.SetAvailability)
		api.POST("/slots", hb.AddSlots)
		api.DELETE("/slots", hb.RemoveSlot)
		api.GET("/booked", hb.GetBookedSlots)
		api.PUT("/recurring", hb.SetRecurring)
		api.POST("/recurring/generate", hb.GenerateFromRecurring)
		api.POST("/bulk-generate", hb.BulkGenerate)
		api.GET("/users/:id/slots", hb.GetUserSlots)
		api.GET("/users/:id/check", hb.CheckSlot)
		api.GET("/users/:id/common", hb.GetCommonAvailability)
	}
}

// RegisterConnectionRoutes registers connection and session endpoints.
func RegisterConnectionRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/connections")
	{
		api.Use(middleware.JWTAuthUserMiddleware())
		api.POST("", hb.CreateConnection)
		api.GET("", hb.ListConnections)
		api.GET("/pending", hb.ListPendingRequests)
		api.GET("/sent", hb.ListSentRequests)
		api.PUT("/:id/accept", hb.AcceptConnection)
		api.PUT("/:id/decline", hb.DeclineConnection)
		api.PUT("/:id/cancel", hb.CancelConnection)
		api.POST("/:id/sessions", hb.ScheduleSession)
		api.PUT("/:id/sessions/:index/cancel", hb.CancelSession)
		api.PUT("/:id/sessions/:index/complete", hb.CompleteSession)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.JWTAuthUserMiddleware(), middleware.AdminOnlyMiddleware())
		adminGroup.GET("/users", hb.AdminListUsers)
		adminGroup.DELETE("/users/:id", hb.AdminDeleteUser)
		adminGroup.GET("/connections", hb.AdminListConnections)
		adminGroup.POST("/broadcast", hb.AdminBroadcast)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterUserRoutes(r, hb)
	RegisterAvailabilityRoutes(r, hb)
	RegisterConnectionRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
