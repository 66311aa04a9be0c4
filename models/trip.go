package models

import "time"

// ActivityType enumerates the guided activities offered on the marketplace.
type ActivityType string

const (
	ActivitySkiTouring     ActivityType = "Sci Alpinismo"
	ActivityClimbing       ActivityType = "Arrampicata"
	ActivityHiking         ActivityType = "Trekking"
	ActivityMountaineering ActivityType = "Alpinismo"
	ActivityFreeride       ActivityType = "Freeride"
	ActivityIceClimbing    ActivityType = "Cascate di Ghiaccio"
	ActivityCanyoning      ActivityType = "Canyoning"
)

// ActivityTypes lists every known activity, in display order.
var ActivityTypes = []ActivityType{
	ActivitySkiTouring,
	ActivityClimbing,
	ActivityHiking,
	ActivityMountaineering,
	ActivityFreeride,
	ActivityIceClimbing,
	ActivityCanyoning,
}

// Difficulty grades a trip.
type Difficulty string

const (
	DifficultyEasy     Difficulty = "Facile"
	DifficultyModerate Difficulty = "Intermedio"
	DifficultyHard     Difficulty = "Difficile"
	DifficultyExpert   Difficulty = "Estremo"
)

var Difficulties = []Difficulty{
	DifficultyEasy,
	DifficultyModerate,
	DifficultyHard,
	DifficultyExpert,
}

// TripStatus tracks a trip's lifecycle on the guide dashboard.
type TripStatus string

const (
	TripUpcoming  TripStatus = "upcoming"
	TripCompleted TripStatus = "completed"
	TripCancelled TripStatus = "cancelled"
)

// Coordinates is a WGS84 point used for map pins and forecast lookups.
type Coordinates struct {
	Lat float64 `bson:"lat" json:"lat"`
	Lng float64 `bson:"lng" json:"lng"`
}

// Trip is a bookable guided activity published by a guide.
// Dates are calendar days in "YYYY-MM-DD" format.
type Trip struct {
	ID          string       `bson:"id" json:"id"`
	Title       string       `bson:"title" json:"title"`
	Location    string       `bson:"location" json:"location"`
	Coordinates Coordinates  `bson:"coordinates" json:"coordinates"`
	Description string       `bson:"description" json:"description"`
	Equipment   []string     `bson:"equipment" json:"equipment"`
	Image       string       `bson:"image,omitempty" json:"image,omitempty"`
	Price       float64      `bson:"price" json:"price"`
	Difficulty  Difficulty   `bson:"difficulty" json:"difficulty"`
	Activity    ActivityType `bson:"activity" json:"activityType"`

	// Availability window, inclusive on both ends.
	AvailableFrom string `bson:"available_from" json:"availableFrom"`
	AvailableTo   string `bson:"available_to" json:"availableTo"`
	DurationDays  int    `bson:"duration_days" json:"durationDays"`
	// SeasonStart is the legacy display date used by marketplace date filters.
	SeasonStart string `bson:"season_start" json:"date"`

	// BlackoutWeekdays are recurring weekdays on which the guide never runs
	// the trip. time.Weekday values (0 = Sunday).
	BlackoutWeekdays []time.Weekday `bson:"blackout_weekdays" json:"blackoutWeekdays"`

	// Denormalized guide info for marketplace cards.
	GuideID     string  `bson:"guide_id" json:"guideId"`
	GuideName   string  `bson:"guide_name" json:"guideName"`
	GuideAvatar string  `bson:"guide_avatar,omitempty" json:"guideAvatar,omitempty"`
	GuideRating float64 `bson:"guide_rating,omitempty" json:"guideRating,omitempty"`

	MaxParticipants int      `bson:"max_participants" json:"maxParticipants"`
	EnrolledClients []Client `bson:"enrolled_clients" json:"enrolledClients"`
	PendingRequests []Client `bson:"pending_requests" json:"pendingRequests"`

	Status        TripStatus `bson:"status" json:"status"`
	PaymentStatus string     `bson:"payment_status,omitempty" json:"paymentStatus,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// FreeSpots reports remaining capacity, never negative.
func (t *Trip) FreeSpots() int {
	free := t.MaxParticipants - len(t.EnrolledClients)
	if free < 0 {
		return 0
	}
	return free
}
