package models

import "time"

// Offering tiers. Consultation offerings are discounted, fixed-length
// sessions that precede a full project quote.
const (
	TierStandard     = "STANDARD"
	TierConsultation = "CONSULTATION"
)

// Service categories known to the platform.
const (
	CategoryCleaning       = "cleaning"
	CategoryPlumbing       = "plumbing"
	CategoryElectrical     = "electrical"
	CategoryInteriorDesign = "interior_design"
)

// Categories lists every service category in display order.
func Categories() []string {
	return []string{CategoryCleaning, CategoryPlumbing, CategoryElectrical, CategoryInteriorDesign}
}

// ServiceOffering is a priced variant of a service a provider sells.
// Tier is normalized on write: an offering whose description mentions
// "consultation" is promoted to TierConsultation when no tier is given.
type ServiceOffering struct {
	Category    string  `bson:"category" json:"category" binding:"required"`
	HourlyPrice float64 `bson:"hourlyPrice" json:"hourlyPrice" binding:"required,gt=0"`
	Description string  `bson:"description" json:"description"`
	Tier        string  `bson:"tier" json:"tier,omitempty"`
}

type ProviderProfile struct {
	Name        string  `bson:"name" json:"name,omitempty"`
	Email       string  `bson:"email" json:"email,omitempty"`
	PhoneNumber string  `bson:"phoneNumber" json:"phoneNumber,omitempty"`
	Address     string  `bson:"address" json:"address,omitempty"`
	Rating      float64 `bson:"rating" json:"rating,omitempty"`
	RatingCount int     `bson:"ratingCount" json:"ratingCount,omitempty"`
	Verified    bool    `bson:"verified" json:"verified"`
}

type Security struct {
	Password     string `bson:"-" json:"password,omitempty"`
	PasswordHash string `bson:"passwordHash" json:"-"`
	Token        string `bson:"-" json:"token,omitempty"`
	TokenHash    string `bson:"tokenHash" json:"-"`
}

// Document verification statuses.
const (
	DocumentPending  = "PENDING"
	DocumentApproved = "APPROVED"
	DocumentRejected = "REJECTED"
)

// VerificationDocument is a reference to an externally stored document
// submitted by a provider for identity or license verification.
type VerificationDocument struct {
	Name        string    `bson:"name" json:"name" binding:"required"`
	Reference   string    `bson:"reference" json:"reference" binding:"required"`
	Status      string    `bson:"status" json:"status"`
	Note        string    `bson:"note,omitempty" json:"note,omitempty"`
	SubmittedAt time.Time `bson:"submittedAt" json:"submittedAt"`
}

type Provider struct {
	ID        string                 `bson:"id" json:"id,omitempty"`
	Profile   ProviderProfile        `bson:"profile" json:"profile"`
	Security  Security               `bson:"security" json:"security,omitzero"`
	Offerings []ServiceOffering      `bson:"offerings" json:"offerings,omitempty"`
	Documents []VerificationDocument `bson:"documents" json:"documents,omitempty"`
	CreatedAt time.Time              `bson:"createdAt" json:"createdAt,omitzero"`
	UpdatedAt time.Time              `bson:"updatedAt" json:"updatedAt,omitzero"`
}

// ProviderDTO is the public shape returned to customers browsing the
// marketplace; security and document fields are stripped.
type ProviderDTO struct {
	ID        string            `json:"id"`
	Profile   ProviderProfile   `json:"profile"`
	Offerings []ServiceOffering `json:"offerings"`
}

func (p *Provider) ToDTO() ProviderDTO {
	return ProviderDTO{
		ID:        p.ID,
		Profile:   p.Profile,
		Offerings: p.Offerings,
	}
}
