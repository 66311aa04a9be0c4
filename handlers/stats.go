package handlers

import (
	"net/http"

	"alpsconnect/services/stats"
	"alpsconnect/utils"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	Stats *stats.Service
}

func NewStatsHandler(statsSvc *stats.Service) *StatsHandler {
	return &StatsHandler{Stats: statsSvc}
}

// RecordSessionHandler registers a landing-page visit and returns the
// updated counters.
func (h *StatsHandler) RecordSessionHandler(c *gin.Context) {
	snapshot, err := h.Stats.RecordSession(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to record session", err.Error())
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// StatsSnapshotHandler returns the current counters without recording a
// visit.
func (h *StatsHandler) StatsSnapshotHandler(c *gin.Context) {
	snapshot, err := h.Stats.Snapshot(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to read stats", err.Error())
		return
	}
	c.JSON(http.StatusOK, snapshot)
}
