package catalog

import (
	"context"
	"strings"
	"time"

	tripRepo "alpsconnect/database/repository/trip"
	"alpsconnect/models"
	"alpsconnect/services/booking"
)

type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func validationError(msg string) error {
	return &ValidationError{msg: msg}
}

// Service publishes trips and serves marketplace and dashboard views.
type Service struct {
	Repo tripRepo.TripRepository
}

func NewService(repo tripRepo.TripRepository) *Service {
	return &Service{Repo: repo}
}

type PublishInput struct {
	Title            string
	Location         string
	Coordinates      models.Coordinates
	Description      string
	Equipment        []string
	Image            string
	Price            float64
	Difficulty       models.Difficulty
	Activity         models.ActivityType
	AvailableFrom    string
	AvailableTo      string
	DurationDays     int
	MaxParticipants  int
	BlackoutWeekdays []time.Weekday
	GuideID          string
	GuideName        string
	GuideAvatar      string
	GuideRating      float64
}

// Publish validates and stores a new trip. Guides historically never run
// trips on Wednesdays, so that stays the default blackout when none is given.
func (s *Service) Publish(ctx context.Context, in PublishInput) (*models.Trip, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, validationError("title is required")
	}
	if strings.TrimSpace(in.Location) == "" {
		return nil, validationError("location is required")
	}
	if in.GuideID == "" {
		return nil, validationError("guide_id is required")
	}
	if in.Price < 0 {
		return nil, validationError("price must not be negative")
	}
	if in.MaxParticipants < 1 {
		return nil, validationError("max_participants must be at least 1")
	}
	if in.DurationDays < 1 {
		in.DurationDays = 1
	}

	if !knownActivity(in.Activity) {
		return nil, validationError("unknown activity type")
	}
	if !knownDifficulty(in.Difficulty) {
		return nil, validationError("unknown difficulty")
	}

	from, err := booking.ParseDay(in.AvailableFrom)
	if err != nil {
		return nil, validationError("available_from must be a YYYY-MM-DD date")
	}
	to, err := booking.ParseDay(in.AvailableTo)
	if err != nil {
		return nil, validationError("available_to must be a YYYY-MM-DD date")
	}
	if to.Before(from) {
		return nil, validationError("available_to must not precede available_from")
	}

	blackout := in.BlackoutWeekdays
	if blackout == nil {
		blackout = []time.Weekday{time.Wednesday}
	}
	for _, wd := range blackout {
		if wd < time.Sunday || wd > time.Saturday {
			return nil, validationError("invalid blackout weekday")
		}
	}

	trip := models.Trip{
		Title:            title,
		Location:         strings.TrimSpace(in.Location),
		Coordinates:      in.Coordinates,
		Description:      in.Description,
		Equipment:        in.Equipment,
		Image:            in.Image,
		Price:            in.Price,
		Difficulty:       in.Difficulty,
		Activity:         in.Activity,
		AvailableFrom:    in.AvailableFrom,
		AvailableTo:      in.AvailableTo,
		DurationDays:     in.DurationDays,
		SeasonStart:      in.AvailableFrom,
		BlackoutWeekdays: blackout,
		GuideID:          in.GuideID,
		GuideName:        in.GuideName,
		GuideAvatar:      in.GuideAvatar,
		GuideRating:      in.GuideRating,
		MaxParticipants:  in.MaxParticipants,
		EnrolledClients:  []models.Client{},
		PendingRequests:  []models.Client{},
		Status:           models.TripUpcoming,
	}

	id, err := s.Repo.Create(ctx, trip)
	if err != nil {
		return nil, err
	}
	trip.ID = id
	return &trip, nil
}

// List returns marketplace trips matching the filter; cancelled trips are
// excluded by the repository.
func (s *Service) List(ctx context.Context, filter tripRepo.TripFilter) ([]models.Trip, error) {
	return s.Repo.List(ctx, filter)
}

func (s *Service) Get(ctx context.Context, id string) (*models.Trip, error) {
	return s.Repo.GetByID(ctx, id)
}

func knownActivity(a models.ActivityType) bool {
	for _, known := range models.ActivityTypes {
		if a == known {
			return true
		}
	}
	return false
}

func knownDifficulty(d models.Difficulty) bool {
	for _, known := range models.Difficulties {
		if d == known {
			return true
		}
	}
	return false
}
