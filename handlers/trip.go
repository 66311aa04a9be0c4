package handlers

import (
	"errors"
	"net/http"
	"time"

	tripRepo "alpsconnect/database/repository/trip"
	"alpsconnect/models"
	"alpsconnect/services/catalog"
	ai "alpsconnect/services/intelligence"
	"alpsconnect/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

type TripHandler struct {
	Catalog *catalog.Service
	Drafts  ai.DraftService
}

func NewTripHandler(catalogSvc *catalog.Service, drafts ai.DraftService) *TripHandler {
	return &TripHandler{Catalog: catalogSvc, Drafts: drafts}
}

// ListTripsHandler serves the marketplace listing with optional filters:
// activity, from/to (season date bounds) and q (location/title search).
func (h *TripHandler) ListTripsHandler(c *gin.Context) {
	filter := tripRepo.TripFilter{
		Activity:      models.ActivityType(c.Query("activity")),
		SeasonFrom:    c.Query("from"),
		SeasonTo:      c.Query("to"),
		LocationQuery: c.Query("q"),
	}

	trips, err := h.Catalog.List(c.Request.Context(), filter)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list trips", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"trips": trips})
}

type publishTripRequest struct {
	Title            string             `json:"title" binding:"required"`
	Location         string             `json:"location" binding:"required"`
	Coordinates      models.Coordinates `json:"coordinates"`
	Description      string             `json:"description"`
	Equipment        []string           `json:"equipment"`
	Image            string             `json:"image"`
	Price            float64            `json:"price"`
	Difficulty       string             `json:"difficulty" binding:"required"`
	Activity         string             `json:"activityType" binding:"required"`
	AvailableFrom    string             `json:"availableFrom" binding:"required"`
	AvailableTo      string             `json:"availableTo" binding:"required"`
	DurationDays     int                `json:"durationDays"`
	MaxParticipants  int                `json:"maxParticipants" binding:"required"`
	BlackoutWeekdays []int              `json:"blackoutWeekdays"`
	GuideID          string             `json:"guideId" binding:"required"`
	GuideName        string             `json:"guideName"`
	GuideAvatar      string             `json:"guideAvatar"`
	GuideRating      float64            `json:"guideRating"`
}

// PublishTripHandler creates a new trip listing.
func (h *TripHandler) PublishTripHandler(c *gin.Context) {
	var req publishTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	in := catalog.PublishInput{
		Title:           req.Title,
		Location:        req.Location,
		Coordinates:     req.Coordinates,
		Description:     req.Description,
		Equipment:       req.Equipment,
		Image:           req.Image,
		Price:           req.Price,
		Difficulty:      models.Difficulty(req.Difficulty),
		Activity:        models.ActivityType(req.Activity),
		AvailableFrom:   req.AvailableFrom,
		AvailableTo:     req.AvailableTo,
		DurationDays:    req.DurationDays,
		MaxParticipants: req.MaxParticipants,
		GuideID:         req.GuideID,
		GuideName:       req.GuideName,
		GuideAvatar:     req.GuideAvatar,
		GuideRating:     req.GuideRating,
	}
	if req.BlackoutWeekdays != nil {
		in.BlackoutWeekdays = toWeekdays(req.BlackoutWeekdays)
	}

	trip, err := h.Catalog.Publish(c.Request.Context(), in)
	if err != nil {
		var ve *catalog.ValidationError
		if errors.As(err, &ve) {
			utils.JSONError(c, http.StatusBadRequest, "invalid trip", ve.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to publish trip", err.Error())
		return
	}
	c.JSON(http.StatusCreated, trip)
}

// GetTripHandler returns a single trip by ID.
func (h *TripHandler) GetTripHandler(c *gin.Context) {
	trip, err := h.Catalog.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.JSONError(c, http.StatusNotFound, "trip not found", c.Param("id"))
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch trip", err.Error())
		return
	}
	c.JSON(http.StatusOK, trip)
}

// GuideDashboardHandler aggregates a guide's trips with headline stats.
func (h *TripHandler) GuideDashboardHandler(c *gin.Context) {
	dash, err := h.Catalog.GuideDashboard(c.Request.Context(), c.Param("id"))
	if err != nil {
		var ve *catalog.ValidationError
		if errors.As(err, &ve) {
			utils.JSONError(c, http.StatusBadRequest, "invalid request", ve.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to build dashboard", err.Error())
		return
	}
	c.JSON(http.StatusOK, dash)
}

type draftRequest struct {
	Location   string `json:"location" binding:"required"`
	Activity   string `json:"activityType" binding:"required"`
	Difficulty string `json:"difficulty" binding:"required"`
}

// GenerateDraftHandler produces an AI draft description and equipment list
// for a new trip listing.
func (h *TripHandler) GenerateDraftHandler(c *gin.Context) {
	var req draftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	draft, err := h.Drafts.GenerateTripDraft(c.Request.Context(),
		req.Location, models.ActivityType(req.Activity), models.Difficulty(req.Difficulty))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to generate draft", err.Error())
		return
	}
	c.JSON(http.StatusOK, draft)
}

func toWeekdays(values []int) []time.Weekday {
	out := make([]time.Weekday, 0, len(values))
	for _, v := range values {
		out = append(out, time.Weekday(v))
	}
	return out
}
