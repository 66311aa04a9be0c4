package catalog

import (
	"context"

	"alpsconnect/models"
)

// Dashboard aggregates a guide's trips for the management view.
type Dashboard struct {
	Trips           []models.Trip `json:"trips"`
	TotalEarnings   float64       `json:"totalEarnings"`
	PendingRequests int           `json:"pendingRequests"`
	UpcomingCount   int           `json:"upcomingCount"`
}

// GuideDashboard computes the guide's headline numbers: earnings are price
// times confirmed participants per trip, and a trip counts as upcoming only
// once somebody is enrolled.
func (s *Service) GuideDashboard(ctx context.Context, guideID string) (*Dashboard, error) {
	if guideID == "" {
		return nil, validationError("guide_id is required")
	}

	trips, err := s.Repo.ListByGuide(ctx, guideID)
	if err != nil {
		return nil, err
	}

	dash := &Dashboard{Trips: trips}
	for _, trip := range trips {
		dash.TotalEarnings += trip.Price * float64(len(trip.EnrolledClients))
		dash.PendingRequests += len(trip.PendingRequests)
		if trip.Status == models.TripUpcoming && len(trip.EnrolledClients) > 0 {
			dash.UpcomingCount++
		}
	}
	return dash, nil
}
