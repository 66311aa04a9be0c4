package tripRepo

import (
	"context"

	"alpsconnect/database"
	"alpsconnect/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// TripFilter narrows marketplace listings. Zero values mean "no constraint".
type TripFilter struct {
	Activity      models.ActivityType
	SeasonFrom    string // inclusive lower bound on the display date
	SeasonTo      string // inclusive upper bound on the display date
	LocationQuery string // matched against location and title, case-insensitive
}

type TripRepository interface {
	Create(ctx context.Context, trip models.Trip) (string, error)
	GetByID(ctx context.Context, id string) (*models.Trip, error)
	List(ctx context.Context, filter TripFilter) ([]models.Trip, error)
	ListByGuide(ctx context.Context, guideID string) ([]models.Trip, error)
	// Replace swaps the whole trip document, preserving the snapshot-read
	// semantics of whole-collection replacement.
	Replace(ctx context.Context, trip models.Trip) error
}

type mongoTripRepo struct {
	coll *mongo.Collection
}

// NewMongoTripRepo constructs a new MongoDB TripRepository.
func NewMongoTripRepo() TripRepository {
	db := database.MongoClient.Database("alpsconnect")
	return &mongoTripRepo{
		coll: db.Collection("trips"),
	}
}
