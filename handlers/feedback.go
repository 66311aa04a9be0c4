package handlers

import (
	"errors"
	"net/http"

	"alpsconnect/models"
	"alpsconnect/services/feedback"
	"alpsconnect/utils"

	"github.com/gin-gonic/gin"
)

type FeedbackHandler struct {
	Feedback *feedback.Service
}

func NewFeedbackHandler(feedbackSvc *feedback.Service) *FeedbackHandler {
	return &FeedbackHandler{Feedback: feedbackSvc}
}

// SubmitFeedbackHandler stores a feedback record and forwards it to the
// external form endpoint. When forwarding fails the local copy still
// exists, so the client gets the stored record alongside the error.
func (h *FeedbackHandler) SubmitFeedbackHandler(c *gin.Context) {
	var record models.FeedbackRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	stored, err := h.Feedback.Submit(c.Request.Context(), record)
	if err != nil {
		var ve *feedback.ValidationError
		if errors.As(err, &ve) {
			utils.JSONError(c, http.StatusBadRequest, "invalid feedback", ve.Error())
			return
		}
		if feedback.IsDeliveryError(err) {
			c.JSON(http.StatusAccepted, gin.H{
				"record":  stored,
				"warning": "feedback saved locally but could not be delivered, please retry later",
			})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to submit feedback", err.Error())
		return
	}
	c.JSON(http.StatusCreated, stored)
}

// ListFeedbackHandler returns the stored submission history, newest first.
func (h *FeedbackHandler) ListFeedbackHandler(c *gin.Context) {
	records, err := h.Feedback.List(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list feedback", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"feedback": records})
}
