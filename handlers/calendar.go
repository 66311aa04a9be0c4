package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"alpsconnect/services/catalog"
	"alpsconnect/services/weather"
	"alpsconnect/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

type CalendarHandler struct {
	Catalog   *catalog.Service
	Annotator *weather.Annotator
}

func NewCalendarHandler(catalogSvc *catalog.Service, annotator *weather.Annotator) *CalendarHandler {
	return &CalendarHandler{Catalog: catalogSvc, Annotator: annotator}
}

// CalendarHandler serves the month grid for a trip. Query params year and
// month default to the current month.
func (h *CalendarHandler) CalendarMonthHandler(c *gin.Context) {
	now := time.Now().UTC()
	year := now.Year()
	month := now.Month()

	if raw := c.Query("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid year", raw)
			return
		}
		year = parsed
	}
	if raw := c.Query("month"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 12 {
			utils.JSONError(c, http.StatusBadRequest, "invalid month", raw)
			return
		}
		month = time.Month(parsed)
	}

	trip, err := h.Catalog.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.JSONError(c, http.StatusNotFound, "trip not found", c.Param("id"))
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch trip", err.Error())
		return
	}

	days, err := h.Annotator.AnnotateMonth(c.Request.Context(), trip, year, month)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to build calendar", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"year":  year,
		"month": int(month),
		"days":  days,
	})
}
