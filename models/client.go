package models

// ReviewerRole identifies which side of the marketplace wrote a review.
type ReviewerRole string

const (
	ReviewerGuide  ReviewerRole = "Guide"
	ReviewerClient ReviewerRole = "Client"
)

// Review is a rating left on a client or guide profile.
type Review struct {
	ID           string       `bson:"id" json:"id"`
	AuthorName   string       `bson:"author_name" json:"authorName"`
	AuthorAvatar string       `bson:"author_avatar,omitempty" json:"authorAvatar,omitempty"`
	Rating       int          `bson:"rating" json:"rating"` // 1 to 5
	Comment      string       `bson:"comment" json:"comment"`
	Date         string       `bson:"date" json:"date"`
	Role         ReviewerRole `bson:"role" json:"role"`
}

// SportsPassport summarizes a client's verified mountain experience.
type SportsPassport struct {
	Level           string   `bson:"level" json:"level"`
	Verified        bool     `bson:"verified" json:"verified"`
	YearsExperience int      `bson:"years_experience" json:"yearsExperience"`
	LastAscents     []string `bson:"last_ascents" json:"lastAscents"`
	FitnessScore    int      `bson:"fitness_score" json:"fitnessScore"`     // 0-100
	TechnicalScore  int      `bson:"technical_score" json:"technicalScore"` // 0-100
}

// BillingInfo carries the client's invoicing details.
type BillingInfo struct {
	Address   string `bson:"address" json:"address"`
	City      string `bson:"city" json:"city"`
	ZipCode   string `bson:"zip_code" json:"zipCode"`
	Country   string `bson:"country" json:"country"`
	TaxID     string `bson:"tax_id" json:"taxId"`
	VATNumber string `bson:"vat_number,omitempty" json:"vatNumber,omitempty"`
	SDICode   string `bson:"sdi_code,omitempty" json:"sdiCode,omitempty"`
	PEC       string `bson:"pec,omitempty" json:"pec,omitempty"`
}

// PaymentTransaction is a static payment record shown on a client profile.
// There is no payment state machine behind these.
type PaymentTransaction struct {
	ID          string  `bson:"id" json:"id"`
	Date        string  `bson:"date" json:"date"`
	Description string  `bson:"description" json:"description"`
	Amount      float64 `bson:"amount" json:"amount"`
	Type        string  `bson:"type" json:"type"`     // deposit, full_payment, refund, balance
	Status      string  `bson:"status" json:"status"` // completed, pending, failed
	GuideName   string  `bson:"guide_name" json:"guideName"`
	TripTitle   string  `bson:"trip_title" json:"tripTitle"`
	Method      string  `bson:"method,omitempty" json:"method,omitempty"`
}

// Client is a marketplace participant. On a trip's pending or enrolled list
// RequestedDate carries the calendar day the client asked for.
type Client struct {
	ID            string               `bson:"id" json:"id"`
	Name          string               `bson:"name" json:"name"`
	Email         string               `bson:"email,omitempty" json:"email,omitempty"`
	Avatar        string               `bson:"avatar,omitempty" json:"avatar,omitempty"`
	Passport      *SportsPassport      `bson:"passport,omitempty" json:"passport,omitempty"`
	BillingInfo   *BillingInfo         `bson:"billing_info,omitempty" json:"billingInfo,omitempty"`
	Reviews       []Review             `bson:"reviews,omitempty" json:"reviews,omitempty"`
	RequestedDate string               `bson:"requested_date,omitempty" json:"requestedDate,omitempty"`
	Transactions  []PaymentTransaction `bson:"transactions,omitempty" json:"transactions,omitempty"`
}
