package models

import "time"

// FeedbackRole is the closed set of self-identified roles on the feedback form.
type FeedbackRole string

const (
	RoleGuide      FeedbackRole = "Guida Alpina"
	RoleEnthusiast FeedbackRole = "Appassionato"
	RoleInvestor   FeedbackRole = "Investitore"
	RoleOther      FeedbackRole = "Altro"
)

// FeedbackRoles lists every accepted role.
var FeedbackRoles = []FeedbackRole{RoleGuide, RoleEnthusiast, RoleInvestor, RoleOther}

// GuideInterview holds the answers required when the submitter is a guide.
type GuideInterview struct {
	IntroAndZone  string `bson:"intro_and_zone" json:"introAndZone"`
	PainPoints    string `bson:"pain_points" json:"painPoints"`
	IdealSolution string `bson:"ideal_solution" json:"idealSolution"`
}

// EnthusiastInterview holds the answers required when the submitter is an enthusiast.
type EnthusiastInterview struct {
	Email          string `bson:"email" json:"email"`
	Age            string `bson:"age" json:"age"`
	Nationality    string `bson:"nationality" json:"nationality"`
	Level          string `bson:"level" json:"level"`
	PrevExperience string `bson:"prev_experience" json:"prevExperience"`
	WouldUseApp    string `bson:"would_use_app" json:"wouldUseApp"`
}

// FeedbackRecord is a submitted feedback entry. Exactly one of the
// role-specific sections is populated, matching Role.
type FeedbackRecord struct {
	ID     string       `bson:"id" json:"id"`
	Role   FeedbackRole `bson:"role" json:"role"`
	Rating int          `bson:"rating" json:"rating"` // 1 to 5

	Guide      *GuideInterview      `bson:"guide,omitempty" json:"guide,omitempty"`
	Enthusiast *EnthusiastInterview `bson:"enthusiast,omitempty" json:"enthusiast,omitempty"`
	Comment    string               `bson:"comment,omitempty" json:"comment,omitempty"`

	Language  string    `bson:"language,omitempty" json:"language,omitempty"`
	Delivered bool      `bson:"delivered" json:"delivered"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}
