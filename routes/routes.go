package routes

import (
	"net/http"
	"time"

	"alpsconnect/handlers"
	"alpsconnect/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterTripRoutes registers the trip catalog, booking and calendar
// endpoints.
func RegisterTripRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/trips")
	{
		api.GET("", hb.ListTripsHandler)
		api.POST("", hb.PublishTripHandler)
		api.POST("/draft", hb.GenerateDraftHandler)
		api.GET("/:id", hb.GetTripHandler)
		api.GET("/:id/calendar", hb.CalendarMonthHandler)
		api.POST("/:id/requests", hb.RequestBookingHandler)
		api.POST("/:id/approvals", hb.ApproveRequestHandler)
	}
}

// RegisterGuideRoutes registers guide-facing endpoints.
func RegisterGuideRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/guides")
	{
		api.GET("/:id/dashboard", hb.GuideDashboardHandler)
	}
}

// RegisterFeedbackRoutes registers feedback submission endpoints.
func RegisterFeedbackRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/feedback")
	{
		api.POST("", hb.SubmitFeedbackHandler)
		api.GET("", hb.ListFeedbackHandler)
	}
}

// RegisterStatsRoutes registers visit counter endpoints.
func RegisterStatsRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/stats")
	{
		api.POST("/session", hb.RecordSessionHandler)
		api.GET("", hb.StatsSnapshotHandler)
	}
}

// RegisterChatRoutes registers conversation endpoints.
func RegisterChatRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/chats")
	{
		api.GET("", hb.ListConversationsHandler)
		api.POST("", hb.StartConversationHandler)
		api.GET("/:id", hb.GetConversationHandler)
		api.POST("/:id/messages", hb.SendMessageHandler)
		api.POST("/:id/read", hb.MarkReadHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
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

	RegisterTripRoutes(r, hb)
	RegisterGuideRoutes(r, hb)
	RegisterFeedbackRoutes(r, hb)
	RegisterStatsRoutes(r, hb)
	RegisterChatRoutes(r, hb)
	RegisterHealthRoute(r)
}
