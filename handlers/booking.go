package handlers

import (
	"net/http"

	"alpsconnect/models"
	"alpsconnect/services/booking"
	"alpsconnect/utils"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	Booking *booking.Service
}

func NewBookingHandler(bookingSvc *booking.Service) *BookingHandler {
	return &BookingHandler{Booking: bookingSvc}
}

type bookingRequest struct {
	Requester  models.Client   `json:"requester" binding:"required"`
	Date       string          `json:"date" binding:"required"`
	Companions []models.Client `json:"companions"`
}

// RequestBookingHandler places a pending booking request for a trip date,
// covering the requester plus any companions.
func (h *BookingHandler) RequestBookingHandler(c *gin.Context) {
	var req bookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	trip, err := h.Booking.RequestBooking(c.Request.Context(), c.Param("id"), req.Requester, req.Date, req.Companions)
	if err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, trip)
}

type approveRequest struct {
	ParticipantID string `json:"participantId" binding:"required"`
}

// ApproveRequestHandler promotes a pending participant to enrolled.
func (h *BookingHandler) ApproveRequestHandler(c *gin.Context) {
	var req approveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	trip, err := h.Booking.ApproveRequest(c.Request.Context(), c.Param("id"), req.ParticipantID)
	if err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, trip)
}

func writeBookingError(c *gin.Context, err error) {
	switch {
	case booking.HasCode(err, booking.CodeTripNotFound):
		utils.JSONError(c, http.StatusNotFound, "trip not found", err.Error())
	case booking.HasCode(err, booking.CodeInvalidBookingDate):
		utils.JSONError(c, http.StatusBadRequest, "date not bookable", err.Error())
	case booking.HasCode(err, booking.CodeDuplicateParticipant):
		utils.JSONError(c, http.StatusConflict, "already participating", err.Error())
	case booking.HasCode(err, booking.CodeCapacityExceeded):
		utils.JSONError(c, http.StatusConflict, "trip is full", err.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, "booking operation failed", err.Error())
	}
}
