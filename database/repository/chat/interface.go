package chatRepo

import (
	"context"

	"alpsconnect/database"
	"alpsconnect/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type ChatRepository interface {
	ListByOwner(ctx context.Context, ownerID string) ([]models.ChatConversation, error)
	GetByID(ctx context.Context, ownerID, conversationID string) (*models.ChatConversation, error)
	Create(ctx context.Context, conv models.ChatConversation) (string, error)
	// Replace swaps the whole conversation document.
	Replace(ctx context.Context, conv models.ChatConversation) error
}

type mongoChatRepo struct {
	coll *mongo.Collection
}

// NewMongoChatRepo constructs a new MongoDB ChatRepository.
func NewMongoChatRepo() ChatRepository {
	db := database.MongoClient.Database("alpsconnect")
	return &mongoChatRepo{
		coll: db.Collection("conversations"),
	}
}
