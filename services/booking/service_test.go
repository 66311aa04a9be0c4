package booking

import (
	"context"
	"testing"
	"time"

	tripRepo "alpsconnect/database/repository/trip"
	"alpsconnect/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// fakeTripRepo keeps trips in memory, keyed by ID.
type fakeTripRepo struct {
	trips    map[string]models.Trip
	replaces int
}

func newFakeTripRepo(trips ...models.Trip) *fakeTripRepo {
	repo := &fakeTripRepo{trips: make(map[string]models.Trip)}
	for _, trip := range trips {
		repo.trips[trip.ID] = trip
	}
	return repo
}

func (r *fakeTripRepo) Create(ctx context.Context, trip models.Trip) (string, error) {
	r.trips[trip.ID] = trip
	return trip.ID, nil
}

func (r *fakeTripRepo) GetByID(ctx context.Context, id string) (*models.Trip, error) {
	trip, ok := r.trips[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &trip, nil
}

func (r *fakeTripRepo) List(ctx context.Context, filter tripRepo.TripFilter) ([]models.Trip, error) {
	out := make([]models.Trip, 0, len(r.trips))
	for _, trip := range r.trips {
		out = append(out, trip)
	}
	return out, nil
}

func (r *fakeTripRepo) ListByGuide(ctx context.Context, guideID string) ([]models.Trip, error) {
	var out []models.Trip
	for _, trip := range r.trips {
		if trip.GuideID == guideID {
			out = append(out, trip)
		}
	}
	return out, nil
}

func (r *fakeTripRepo) Replace(ctx context.Context, trip models.Trip) error {
	r.replaces++
	r.trips[trip.ID] = trip
	return nil
}

func fixedNow(day string) func() time.Time {
	t, _ := time.Parse("2006-01-02", day)
	return func() time.Time { return t }
}

func testTrip() models.Trip {
	return models.Trip{
		ID:               "trip-1",
		Title:            "Monte Rosa",
		AvailableFrom:    "2026-02-01",
		AvailableTo:      "2026-03-31",
		BlackoutWeekdays: []time.Weekday{time.Wednesday},
		MaxParticipants:  3,
	}
}

func TestRequestBooking(t *testing.T) {
	repo := newFakeTripRepo(testTrip())
	svc := NewService(repo)
	svc.now = fixedNow("2026-02-01")

	requester := models.Client{ID: "c-1", Name: "Laura"}
	companions := []models.Client{{ID: "c-2"}, {ID: "c-3", Name: "Marco"}}

	trip, err := svc.RequestBooking(context.Background(), "trip-1", requester, "2026-02-10", companions)
	if err != nil {
		t.Fatalf("RequestBooking: %v", err)
	}

	if len(trip.PendingRequests) != 3 {
		t.Fatalf("pending requests = %d, want 3", len(trip.PendingRequests))
	}
	for _, p := range trip.PendingRequests {
		if p.RequestedDate != "2026-02-10" {
			t.Errorf("participant %s requested date = %q, want 2026-02-10", p.ID, p.RequestedDate)
		}
	}
	// Unnamed companions get a placeholder name; named ones keep theirs.
	if got := trip.PendingRequests[1].Name; got != "Amico 1" {
		t.Errorf("unnamed companion name = %q, want %q", got, "Amico 1")
	}
	if got := trip.PendingRequests[2].Name; got != "Marco" {
		t.Errorf("named companion name = %q, want %q", got, "Marco")
	}
	if repo.replaces != 1 {
		t.Errorf("replace calls = %d, want 1", repo.replaces)
	}
}

func TestRequestBookingErrors(t *testing.T) {
	base := testTrip()
	enrolled := testTrip()
	enrolled.EnrolledClients = []models.Client{{ID: "c-9"}}
	pending := testTrip()
	pending.PendingRequests = []models.Client{{ID: "c-8"}}

	tests := []struct {
		name       string
		trip       models.Trip
		tripID     string
		requester  models.Client
		date       string
		companions []models.Client
		wantCode   string
	}{
		{"unknown trip", base, "missing", models.Client{ID: "c-1"}, "2026-02-10", nil, CodeTripNotFound},
		{"malformed date", base, "trip-1", models.Client{ID: "c-1"}, "10/02/2026", nil, CodeInvalidBookingDate},
		{"missing requester id", base, "trip-1", models.Client{}, "2026-02-10", nil, CodeInvalidBookingDate},
		{"blackout day", base, "trip-1", models.Client{ID: "c-1"}, "2026-02-04", nil, CodeInvalidBookingDate},
		{"past day", base, "trip-1", models.Client{ID: "c-1"}, "2026-01-20", nil, CodeInvalidBookingDate},
		{"requester already enrolled", enrolled, "trip-1", models.Client{ID: "c-9"}, "2026-02-10", nil, CodeDuplicateParticipant},
		{"requester already pending", pending, "trip-1", models.Client{ID: "c-8"}, "2026-02-10", nil, CodeDuplicateParticipant},
		{"companion already enrolled", enrolled, "trip-1", models.Client{ID: "c-1"}, "2026-02-10", []models.Client{{ID: "c-9"}}, CodeDuplicateParticipant},
		{"companion repeats requester", base, "trip-1", models.Client{ID: "c-1"}, "2026-02-10", []models.Client{{ID: "c-1"}}, CodeDuplicateParticipant},
		{"companion repeated in request", base, "trip-1", models.Client{ID: "c-1"}, "2026-02-10", []models.Client{{ID: "c-2"}, {ID: "c-2"}}, CodeDuplicateParticipant},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeTripRepo(tt.trip)
			svc := NewService(repo)
			svc.now = fixedNow("2026-02-01")

			_, err := svc.RequestBooking(context.Background(), tt.tripID, tt.requester, tt.date, tt.companions)
			if !HasCode(err, tt.wantCode) {
				t.Fatalf("RequestBooking error = %v, want code %s", err, tt.wantCode)
			}
			if repo.replaces != 0 {
				t.Errorf("failed request must not write, got %d replaces", repo.replaces)
			}
		})
	}
}

func TestRequestBookingAnonymousCompanions(t *testing.T) {
	repo := newFakeTripRepo(testTrip())
	svc := NewService(repo)
	svc.now = fixedNow("2026-02-01")

	// Companions without a local profile carry no ID; several of them in
	// one request are not duplicates of each other.
	companions := []models.Client{{}, {}}
	trip, err := svc.RequestBooking(context.Background(), "trip-1", models.Client{ID: "c-1"}, "2026-02-10", companions)
	if err != nil {
		t.Fatalf("RequestBooking: %v", err)
	}
	if len(trip.PendingRequests) != 3 {
		t.Fatalf("pending requests = %d, want 3", len(trip.PendingRequests))
	}
}

func TestRequestThenApproveKeepsListsDisjoint(t *testing.T) {
	repo := newFakeTripRepo(testTrip())
	svc := NewService(repo)
	svc.now = fixedNow("2026-02-01")

	_, err := svc.RequestBooking(context.Background(), "trip-1", models.Client{ID: "c-1"}, "2026-02-10",
		[]models.Client{{ID: "c-1"}, {ID: "c-2"}, {ID: "c-2"}})
	if !HasCode(err, CodeDuplicateParticipant) {
		t.Fatalf("RequestBooking error = %v, want code %s", err, CodeDuplicateParticipant)
	}

	_, err = svc.RequestBooking(context.Background(), "trip-1", models.Client{ID: "c-1"}, "2026-02-10",
		[]models.Client{{ID: "c-2"}})
	if err != nil {
		t.Fatalf("RequestBooking: %v", err)
	}
	trip, err := svc.ApproveRequest(context.Background(), "trip-1", "c-1")
	if err != nil {
		t.Fatalf("ApproveRequest: %v", err)
	}

	pending := make(map[string]int)
	for _, p := range trip.PendingRequests {
		pending[p.ID]++
	}
	for _, e := range trip.EnrolledClients {
		if pending[e.ID] > 0 {
			t.Errorf("participant %s is simultaneously pending and enrolled", e.ID)
		}
	}
	for id, n := range pending {
		if n > 1 {
			t.Errorf("participant %s appears %d times in the pending list", id, n)
		}
	}
}

func TestApproveRequest(t *testing.T) {
	trip := testTrip()
	trip.PendingRequests = []models.Client{
		{ID: "c-1", Name: "Laura", RequestedDate: "2026-02-10"},
		{ID: "c-2", Name: "Marco", RequestedDate: "2026-02-12"},
	}
	repo := newFakeTripRepo(trip)
	svc := NewService(repo)

	got, err := svc.ApproveRequest(context.Background(), "trip-1", "c-2")
	if err != nil {
		t.Fatalf("ApproveRequest: %v", err)
	}

	if len(got.EnrolledClients) != 1 || got.EnrolledClients[0].ID != "c-2" {
		t.Fatalf("enrolled = %+v, want only c-2", got.EnrolledClients)
	}
	if got.EnrolledClients[0].RequestedDate != "2026-02-12" {
		t.Errorf("approved requested date = %q, want 2026-02-12", got.EnrolledClients[0].RequestedDate)
	}
	if len(got.PendingRequests) != 1 || got.PendingRequests[0].ID != "c-1" {
		t.Errorf("pending after approval = %+v, want only c-1", got.PendingRequests)
	}
}

func TestApproveRequestUnknownParticipantIsNoOp(t *testing.T) {
	trip := testTrip()
	trip.PendingRequests = []models.Client{{ID: "c-1", RequestedDate: "2026-02-10"}}
	repo := newFakeTripRepo(trip)
	svc := NewService(repo)

	got, err := svc.ApproveRequest(context.Background(), "trip-1", "nobody")
	if err != nil {
		t.Fatalf("ApproveRequest: %v", err)
	}
	if len(got.PendingRequests) != 1 || len(got.EnrolledClients) != 0 {
		t.Errorf("unknown participant must leave the trip untouched, got %+v", got)
	}
	if repo.replaces != 0 {
		t.Errorf("no-op approval must not write, got %d replaces", repo.replaces)
	}
}

func TestApproveRequestCapacity(t *testing.T) {
	trip := testTrip()
	trip.MaxParticipants = 1
	trip.EnrolledClients = []models.Client{{ID: "c-1"}}
	trip.PendingRequests = []models.Client{{ID: "c-2", RequestedDate: "2026-02-10"}}
	repo := newFakeTripRepo(trip)
	svc := NewService(repo)

	_, err := svc.ApproveRequest(context.Background(), "trip-1", "c-2")
	if !HasCode(err, CodeCapacityExceeded) {
		t.Fatalf("ApproveRequest error = %v, want code %s", err, CodeCapacityExceeded)
	}
	if repo.replaces != 0 {
		t.Errorf("rejected approval must not write, got %d replaces", repo.replaces)
	}
}
