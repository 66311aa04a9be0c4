package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Trip catalog endpoints
	ListTripsHandler      gin.HandlerFunc
	PublishTripHandler    gin.HandlerFunc
	GetTripHandler        gin.HandlerFunc
	GuideDashboardHandler gin.HandlerFunc
	GenerateDraftHandler  gin.HandlerFunc

	// Booking endpoints
	RequestBookingHandler gin.HandlerFunc
	ApproveRequestHandler gin.HandlerFunc

	// Calendar endpoints
	CalendarMonthHandler gin.HandlerFunc

	// Feedback endpoints
	SubmitFeedbackHandler gin.HandlerFunc
	ListFeedbackHandler   gin.HandlerFunc

	// Stats endpoints
	RecordSessionHandler gin.HandlerFunc
	StatsSnapshotHandler gin.HandlerFunc

	// Chat endpoints
	StartConversationHandler gin.HandlerFunc
	ListConversationsHandler gin.HandlerFunc
	GetConversationHandler   gin.HandlerFunc
	SendMessageHandler       gin.HandlerFunc
	MarkReadHandler          gin.HandlerFunc
}
