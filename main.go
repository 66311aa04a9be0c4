package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"alpsconnect/config"
	"alpsconnect/database"
	chatRepoPkg "alpsconnect/database/repository/chat"
	feedbackRepoPkg "alpsconnect/database/repository/feedback"
	tripRepoPkg "alpsconnect/database/repository/trip"
	"alpsconnect/handlers"
	"alpsconnect/middleware"
	"alpsconnect/routes"
	"alpsconnect/services/booking"
	"alpsconnect/services/catalog"
	"alpsconnect/services/chat"
	"alpsconnect/services/feedback"
	ai "alpsconnect/services/intelligence"
	"alpsconnect/services/stats"
	"alpsconnect/services/weather"
	"alpsconnect/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitStatsCache()
	utils.StartHealthMonitor(utils.GetCacheClient(), utils.GetStatsCacheClient(), database.MongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	tripRepo := tripRepoPkg.NewMongoTripRepo()
	feedbackRepo := feedbackRepoPkg.NewMongoFeedbackRepo()
	chatRepo := chatRepoPkg.NewMongoChatRepo()

	// services.
	catalogService := catalog.NewService(tripRepo)
	bookingService := booking.NewService(tripRepo)

	forecastCache := weather.NewRedisForecastCache(utils.GetCacheClient(), 6*time.Hour)
	annotator := weather.NewAnnotator(weather.NewClient(), forecastCache)

	statsService := stats.NewService(stats.NewRedisStore(utils.GetStatsCacheClient()))

	var forwarder feedback.Forwarder
	if config.AppConfig.FeedbackFormURL != "" {
		forwarder = feedback.NewFormForwarder(config.AppConfig.FeedbackFormURL)
	}
	feedbackService := feedback.NewService(feedbackRepo, forwarder)

	chatService := chat.NewService(chatRepo)
	draftService := ai.NewDefaultDraftService(config.AppConfig.GeminiAPIKey)

	// handlers.
	tripHandler := handlers.NewTripHandler(catalogService, draftService)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	calendarHandler := handlers.NewCalendarHandler(catalogService, annotator)
	feedbackHandler := handlers.NewFeedbackHandler(feedbackService)
	statsHandler := handlers.NewStatsHandler(statsService)
	chatHandler := handlers.NewChatHandler(chatService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Trip catalog endpoints.
		ListTripsHandler:      tripHandler.ListTripsHandler,
		PublishTripHandler:    tripHandler.PublishTripHandler,
		GetTripHandler:        tripHandler.GetTripHandler,
		GuideDashboardHandler: tripHandler.GuideDashboardHandler,
		GenerateDraftHandler:  tripHandler.GenerateDraftHandler,

		// Booking endpoints.
		RequestBookingHandler: bookingHandler.RequestBookingHandler,
		ApproveRequestHandler: bookingHandler.ApproveRequestHandler,

		// Calendar endpoints.
		CalendarMonthHandler: calendarHandler.CalendarMonthHandler,

		// Feedback endpoints.
		SubmitFeedbackHandler: feedbackHandler.SubmitFeedbackHandler,
		ListFeedbackHandler:   feedbackHandler.ListFeedbackHandler,

		// Stats endpoints.
		RecordSessionHandler: statsHandler.RecordSessionHandler,
		StatsSnapshotHandler: statsHandler.StatsSnapshotHandler,

		// Chat endpoints.
		StartConversationHandler: chatHandler.StartConversationHandler,
		ListConversationsHandler: chatHandler.ListConversationsHandler,
		GetConversationHandler:   chatHandler.GetConversationHandler,
		SendMessageHandler:       chatHandler.SendMessageHandler,
		MarkReadHandler:          chatHandler.MarkReadHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
