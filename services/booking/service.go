package booking

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	tripRepo "alpsconnect/database/repository/trip"
	"alpsconnect/models"
	"alpsconnect/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Service records booking interest on trips and lets guides approve it.
type Service struct {
	Repo tripRepo.TripRepository

	now func() time.Time

	// Per-trip locks serialize the read-modify-write pair on a trip so
	// request and approve never interleave on the same document.
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewService(repo tripRepo.TripRepository) *Service {
	return &Service{
		Repo:  repo,
		now:   time.Now,
		locks: make(map[string]*sync.Mutex),
	}
}

func (s *Service) tripLock(tripID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, exists := s.locks[tripID]
	if !exists {
		lock = &sync.Mutex{}
		s.locks[tripID] = lock
	}
	return lock
}

func (s *Service) getTrip(ctx context.Context, tripID string) (*models.Trip, error) {
	trip, err := s.Repo.GetByID(ctx, tripID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, NewBookingError(CodeTripNotFound, fmt.Sprintf("trip %s not found", tripID))
		}
		return nil, err
	}
	return trip, nil
}

// RequestBooking appends a pending request for the requester and one per
// companion, all for the same start day. The date is validated against the
// trip's availability before anything is recorded. Pending entries are
// interest, not reservations, so capacity is not checked here.
func (s *Service) RequestBooking(ctx context.Context, tripID string, requester models.Client, date string, companions []models.Client) (*models.Trip, error) {
	day, err := ParseDay(date)
	if err != nil {
		return nil, NewBookingError(CodeInvalidBookingDate, fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", date))
	}
	if requester.ID == "" {
		return nil, NewBookingError(CodeInvalidBookingDate, "requester id is required")
	}

	lock := s.tripLock(tripID)
	lock.Lock()
	defer lock.Unlock()

	trip, err := s.getTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}

	if !IsDateAvailable(trip, day, s.now().UTC()) {
		return nil, NewBookingError(CodeInvalidBookingDate, fmt.Sprintf("%s is not bookable for trip %s", date, tripID))
	}

	known := make(map[string]struct{}, len(trip.PendingRequests)+len(trip.EnrolledClients))
	for _, existing := range trip.PendingRequests {
		known[existing.ID] = struct{}{}
	}
	for _, existing := range trip.EnrolledClients {
		known[existing.ID] = struct{}{}
	}
	if _, dup := known[requester.ID]; dup {
		return nil, NewBookingError(CodeDuplicateParticipant, fmt.Sprintf("participant %s already pending or enrolled", requester.ID))
	}
	known[requester.ID] = struct{}{}
	for _, companion := range companions {
		// Anonymous companions have no identity to collide on.
		if companion.ID == "" {
			continue
		}
		if _, dup := known[companion.ID]; dup {
			return nil, NewBookingError(CodeDuplicateParticipant, fmt.Sprintf("participant %s already pending or enrolled", companion.ID))
		}
		known[companion.ID] = struct{}{}
	}

	requester.RequestedDate = date
	trip.PendingRequests = append(trip.PendingRequests, requester)
	for i, companion := range companions {
		if companion.Name == "" {
			// Companion profiles are not always known locally.
			companion.Name = fmt.Sprintf("Amico %d", i+1)
		}
		companion.RequestedDate = date
		trip.PendingRequests = append(trip.PendingRequests, companion)
	}

	if err := s.Repo.Replace(ctx, *trip); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("booking requested",
		zap.String("tripID", tripID),
		zap.String("requesterID", requester.ID),
		zap.String("date", date),
		zap.Int("companions", len(companions)))
	return trip, nil
}

// ApproveRequest moves the first pending entry matching participantID to the
// confirmed list, preserving its requested date. An unknown participant is a
// no-op. The confirmed list is hard-capped at the trip's capacity.
func (s *Service) ApproveRequest(ctx context.Context, tripID, participantID string) (*models.Trip, error) {
	lock := s.tripLock(tripID)
	lock.Lock()
	defer lock.Unlock()

	trip, err := s.getTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i, pending := range trip.PendingRequests {
		if pending.ID == participantID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return trip, nil
	}

	if len(trip.EnrolledClients) >= trip.MaxParticipants {
		return nil, NewBookingError(CodeCapacityExceeded, fmt.Sprintf("trip %s is full (%d participants)", tripID, trip.MaxParticipants))
	}

	approved := trip.PendingRequests[idx]
	trip.PendingRequests = append(trip.PendingRequests[:idx], trip.PendingRequests[idx+1:]...)
	trip.EnrolledClients = append(trip.EnrolledClients, approved)

	if err := s.Repo.Replace(ctx, *trip); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("booking approved",
		zap.String("tripID", tripID),
		zap.String("participantID", participantID),
		zap.Int("enrolled", len(trip.EnrolledClients)),
		zap.Int("freeSpots", trip.FreeSpots()))
	return trip, nil
}
