package models

import "time"

// Booking statuses. A booking is created REQUESTED; later transitions
// happen only through provider or customer lifecycle actions.
const (
	BookingRequested  = "REQUESTED"
	BookingAccepted   = "ACCEPTED"
	BookingInProgress = "IN_PROGRESS"
	BookingCompleted  = "COMPLETED"
	BookingCancelled  = "CANCELLED"
)

// Booking types.
const (
	BookingTypeStandard     = "STANDARD"
	BookingTypeConsultation = "CONSULTATION"
)

// HourlySlots are the bookable start times, on the hour from 08:00
// through 20:00.
var HourlySlots = []string{
	"08:00", "09:00", "10:00", "11:00", "12:00", "13:00", "14:00",
	"15:00", "16:00", "17:00", "18:00", "19:00", "20:00",
}

// IsValidSlot reports whether slot is one of the bookable start times.
func IsValidSlot(slot string) bool {
	for _, s := range HourlySlots {
		if s == slot {
			return true
		}
	}
	return false
}

// Review is a customer rating left on a completed booking.
type Review struct {
	Rating    float64   `bson:"rating" json:"rating" binding:"required,min=1,max=5"`
	Comment   string    `bson:"comment" json:"comment"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// Booking is the persisted record produced when a session is confirmed.
// Spec carries the category-shaped job details verbatim from the draft.
type Booking struct {
	ID            string            `bson:"id" json:"id"`
	CustomerID    string            `bson:"customerId" json:"customerId"`
	ProviderID    string            `bson:"providerId" json:"providerId"`
	ProviderName  string            `bson:"providerName" json:"providerName"`
	Category      string            `bson:"category" json:"category"`
	BookingType   string            `bson:"bookingType" json:"bookingType"`
	Date          string            `bson:"date" json:"date"` // "YYYY-MM-DD"
	TimeSlot      string            `bson:"timeSlot" json:"timeSlot"`
	DurationHours int               `bson:"durationHours" json:"durationHours"`
	Spec          map[string]string `bson:"spec" json:"spec"`
	TotalPrice    float64           `bson:"totalPrice" json:"totalPrice"`
	Status        string            `bson:"status" json:"status"`
	Review        *Review           `bson:"review,omitempty" json:"review,omitempty"`
	ReminderSent  bool              `bson:"reminderSent" json:"reminderSent,omitempty"`
	CreatedAt     time.Time         `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time         `bson:"updatedAt" json:"updatedAt"`
}
