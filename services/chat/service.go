package chat

import (
	"context"
	"strings"
	"time"

	chatRepo "alpsconnect/database/repository/chat"
	"alpsconnect/models"

	"github.com/google/uuid"
)

type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func validationError(msg string) error {
	return &ValidationError{msg: msg}
}

// Service manages guide-client conversations. Unread counts track messages
// from the peer the owner has not opened yet.
type Service struct {
	Repo chatRepo.ChatRepository

	now func() time.Time
}

func NewService(repo chatRepo.ChatRepository) *Service {
	return &Service{Repo: repo, now: time.Now}
}

// StartConversation opens an empty thread between the owner and a
// marketplace participant.
func (s *Service) StartConversation(ctx context.Context, ownerID, participantID, participantName string, role models.ReviewerRole) (*models.ChatConversation, error) {
	if ownerID == "" {
		return nil, validationError("owner_id is required")
	}
	if participantID == "" {
		return nil, validationError("participant_id is required")
	}

	conv := models.ChatConversation{
		ID:              uuid.New().String(),
		OwnerID:         ownerID,
		ParticipantID:   participantID,
		ParticipantName: participantName,
		ParticipantRole: role,
		Messages:        []models.ChatMessage{},
	}
	if _, err := s.Repo.Create(ctx, conv); err != nil {
		return nil, err
	}
	return &conv, nil
}

func (s *Service) ListConversations(ctx context.Context, ownerID string) ([]models.ChatConversation, error) {
	if ownerID == "" {
		return nil, validationError("owner_id is required")
	}
	return s.Repo.ListByOwner(ctx, ownerID)
}

func (s *Service) GetConversation(ctx context.Context, ownerID, conversationID string) (*models.ChatConversation, error) {
	if ownerID == "" {
		return nil, validationError("owner_id is required")
	}
	return s.Repo.GetByID(ctx, ownerID, conversationID)
}

// SendMessage appends a message and refreshes the conversation preview. A
// message from the peer bumps the owner's unread count; the owner's own
// messages are born read.
func (s *Service) SendMessage(ctx context.Context, ownerID, conversationID, senderID, text string) (*models.ChatConversation, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, validationError("message text is required")
	}

	conv, err := s.Repo.GetByID(ctx, ownerID, conversationID)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	msg := models.ChatMessage{
		ID:        uuid.New().String(),
		SenderID:  senderID,
		Text:      text,
		Timestamp: now,
		Read:      senderID == ownerID,
	}
	conv.Messages = append(conv.Messages, msg)
	conv.LastMessage = text
	conv.LastMessageTime = now
	if senderID != ownerID {
		conv.UnreadCount++
	}

	if err := s.Repo.Replace(ctx, *conv); err != nil {
		return nil, err
	}
	return conv, nil
}

// MarkRead clears the owner's unread count and flags every message read.
func (s *Service) MarkRead(ctx context.Context, ownerID, conversationID string) (*models.ChatConversation, error) {
	conv, err := s.Repo.GetByID(ctx, ownerID, conversationID)
	if err != nil {
		return nil, err
	}

	conv.UnreadCount = 0
	for i := range conv.Messages {
		conv.Messages[i].Read = true
	}

	if err := s.Repo.Replace(ctx, *conv); err != nil {
		return nil, err
	}
	return conv, nil
}
