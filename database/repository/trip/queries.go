package tripRepo

import (
	"context"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"alpsconnect/models"
)

// List returns marketplace trips matching the filter. Cancelled trips are
// always excluded.
func (r *mongoTripRepo) List(ctx context.Context, filter TripFilter) ([]models.Trip, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	query := bson.M{
		"status": bson.M{"$ne": string(models.TripCancelled)},
	}
	if filter.Activity != "" {
		query["activity"] = filter.Activity
	}
	if filter.SeasonFrom != "" {
		query["season_start"] = bson.M{"$gte": filter.SeasonFrom}
	}
	if filter.SeasonTo != "" {
		if existing, ok := query["season_start"].(bson.M); ok {
			existing["$lte"] = filter.SeasonTo
		} else {
			query["season_start"] = bson.M{"$lte": filter.SeasonTo}
		}
	}
	if filter.LocationQuery != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(filter.LocationQuery), Options: "i"}
		query["$or"] = bson.A{
			bson.M{"location": pattern},
			bson.M{"title": pattern},
		}
	}

	opts := options.Find().SetSort(bson.D{{Key: "season_start", Value: 1}})
	cursor, err := r.coll.Find(ctx, query, opts)
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
