package feedbackRepo

import (
	"context"

	"alpsconnect/database"
	"alpsconnect/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type FeedbackRepository interface {
	Create(ctx context.Context, record models.FeedbackRecord) (string, error)
	List(ctx context.Context) ([]models.FeedbackRecord, error)
	MarkDelivered(ctx context.Context, id string) error
}

type mongoFeedbackRepo struct {
	coll *mongo.Collection
}

// NewMongoFeedbackRepo returns a new FeedbackRepository instance using MongoDB.
func NewMongoFeedbackRepo() FeedbackRepository {
	db := database.MongoClient.Database("alpsconnect")
	return &mongoFeedbackRepo{
		coll: db.Collection("feedback"),
	}
}
