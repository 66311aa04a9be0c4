package models

import "time"

// ChatMessage is a single message within a conversation.
type ChatMessage struct {
	ID        string    `bson:"id" json:"id"`
	SenderID  string    `bson:"sender_id" json:"senderId"`
	Text      string    `bson:"text" json:"text"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
	Read      bool      `bson:"read" json:"read"`
}

// ChatConversation is a guide-client message thread with a denormalized
// preview of the latest message.
type ChatConversation struct {
	ID                 string        `bson:"id" json:"id"`
	OwnerID            string        `bson:"owner_id" json:"ownerId"`
	ParticipantID      string        `bson:"participant_id" json:"participantId"`
	ParticipantName    string        `bson:"participant_name" json:"participantName"`
	ParticipantAvatar  string        `bson:"participant_avatar,omitempty" json:"participantAvatar,omitempty"`
	ParticipantRole    ReviewerRole  `bson:"participant_role" json:"participantRole"`
	LastMessage        string        `bson:"last_message" json:"lastMessage"`
	LastMessageTime    time.Time     `bson:"last_message_time" json:"lastMessageTime"`
	UnreadCount        int           `bson:"unread_count" json:"unreadCount"`
	Messages           []ChatMessage `bson:"messages" json:"messages"`
}
