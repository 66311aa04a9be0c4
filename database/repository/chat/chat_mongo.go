package chatRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"alpsconnect/models"
)

func (r *mongoChatRepo) ListByOwner(ctx context.Context, ownerID string) ([]models.ChatConversation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "last_message_time", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"owner_id": ownerID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var convs []models.ChatConversation
	if err := cursor.All(ctx, &convs); err != nil {
		return nil, err
	}
	return convs, nil
}

func (r *mongoChatRepo) GetByID(ctx context.Context, ownerID, conversationID string) (*models.ChatConversation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var conv models.ChatConversation
	err := r.coll.FindOne(ctx, bson.M{"id": conversationID, "owner_id": ownerID}).Decode(&conv)
	if err != nil {
		return nil, err
	}
	return &conv, nil
}

func (r *mongoChatRepo) Create(ctx context.Context, conv models.ChatConversation) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if conv.ID == "" {
		conv.ID = uuid.New().String()
	}
	if _, err := r.coll.InsertOne(ctx, conv); err != nil {
		return "", err
	}
	return conv.ID, nil
}

func (r *mongoChatRepo) Replace(ctx context.Context, conv models.ChatConversation) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": conv.ID, "owner_id": conv.OwnerID}, conv)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
