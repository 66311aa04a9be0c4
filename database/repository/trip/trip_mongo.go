package tripRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"alpsconnect/models"
)

func (r *mongoTripRepo) Create(ctx context.Context, trip models.Trip) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if trip.ID == "" {
		trip.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	trip.CreatedAt = now
	trip.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, trip); err != nil {
		return "", err
	}
	return trip.ID, nil
}

func (r *mongoTripRepo) GetByID(ctx context.Context, id string) (*models.Trip, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var trip models.Trip
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&trip)
	if err != nil {
		return nil, err
	}
	return &trip, nil
}

func (r *mongoTripRepo) ListByGuide(ctx context.Context, guideID string) ([]models.Trip, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "season_start", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"guide_id": guideID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var trips []models.Trip
	if err := cursor.All(ctx, &trips); err != nil {
		return nil, err
	}
	return trips, nil
}

func (r *mongoTripRepo) Replace(ctx context.Context, trip models.Trip) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	trip.UpdatedAt = time.Now().UTC()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": trip.ID}, trip)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
