package handlers

import (
	"errors"
	"net/http"

	"alpsconnect/models"
	"alpsconnect/services/chat"
	"alpsconnect/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

type ChatHandler struct {
	Chat *chat.Service
}

func NewChatHandler(chatSvc *chat.Service) *ChatHandler {
	return &ChatHandler{Chat: chatSvc}
}

// ownerID identifies whose mailbox we operate on. There is no auth layer
// yet, so the owner travels as a query parameter.
func ownerID(c *gin.Context) string {
	return c.Query("owner")
}

type startConversationRequest struct {
	ParticipantID   string `json:"participantId" binding:"required"`
	ParticipantName string `json:"participantName"`
	ParticipantRole string `json:"participantRole"`
}

// StartConversationHandler opens a new thread with a participant.
func (h *ChatHandler) StartConversationHandler(c *gin.Context) {
	var req startConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	conv, err := h.Chat.StartConversation(c.Request.Context(), ownerID(c), req.ParticipantID,
		req.ParticipantName, models.ReviewerRole(req.ParticipantRole))
	if err != nil {
		writeChatError(c, err)
		return
	}
	c.JSON(http.StatusCreated, conv)
}

// ListConversationsHandler returns every conversation in the owner's inbox.
func (h *ChatHandler) ListConversationsHandler(c *gin.Context) {
	convs, err := h.Chat.ListConversations(c.Request.Context(), ownerID(c))
	if err != nil {
		writeChatError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"conversations": convs})
}

// GetConversationHandler returns a single conversation with its messages.
func (h *ChatHandler) GetConversationHandler(c *gin.Context) {
	conv, err := h.Chat.GetConversation(c.Request.Context(), ownerID(c), c.Param("id"))
	if err != nil {
		writeChatError(c, err)
		return
	}
	c.JSON(http.StatusOK, conv)
}

type sendMessageRequest struct {
	SenderID string `json:"senderId" binding:"required"`
	Text     string `json:"text" binding:"required"`
}

// SendMessageHandler appends a message to a conversation.
func (h *ChatHandler) SendMessageHandler(c *gin.Context) {
	var req sendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	conv, err := h.Chat.SendMessage(c.Request.Context(), ownerID(c), c.Param("id"), req.SenderID, req.Text)
	if err != nil {
		writeChatError(c, err)
		return
	}
	c.JSON(http.StatusOK, conv)
}

// MarkReadHandler clears the unread counter for a conversation.
func (h *ChatHandler) MarkReadHandler(c *gin.Context) {
	conv, err := h.Chat.MarkRead(c.Request.Context(), ownerID(c), c.Param("id"))
	if err != nil {
		writeChatError(c, err)
		return
	}
	c.JSON(http.StatusOK, conv)
}

func writeChatError(c *gin.Context, err error) {
	var ve *chat.ValidationError
	switch {
	case errors.As(err, &ve):
		utils.JSONError(c, http.StatusBadRequest, "invalid request", ve.Error())
	case errors.Is(err, mongo.ErrNoDocuments):
		utils.JSONError(c, http.StatusNotFound, "conversation not found", err.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, "chat operation failed", err.Error())
	}
}
