package models

import "time"

// Booking session steps. A session walks details -> payment -> success;
// success is terminal and the session is deleted once reached.
const (
	StepDetails = "details"
	StepPayment = "payment"
	StepSuccess = "success"
)

// Quote holds the computed pricing figures for the current draft.
// Values are unrounded; rounding happens only at the response boundary.
type Quote struct {
	BasePrice  float64 `json:"basePrice"`
	ServiceFee float64 `json:"serviceFee"`
	Total      float64 `json:"total"`
}

// BookingSession is the ephemeral draft held in Redis between session
// initiation and confirmation. Each session belongs to one customer and
// one provider offering.
type BookingSession struct {
	SessionID     string            `json:"sessionId"`
	CustomerID    string            `json:"customerId"`
	ProviderID    string            `json:"providerId"`
	ProviderName  string            `json:"providerName"`
	OfferingIndex int               `json:"offeringIndex"`
	Offering      ServiceOffering   `json:"offering"`
	BookingType   string            `json:"bookingType"`
	Step          string            `json:"step"`
	Date          string            `json:"date,omitempty"` // "YYYY-MM-DD"
	TimeSlot      string            `json:"timeSlot,omitempty"`
	DurationHours int               `json:"durationHours"`
	Spec          map[string]string `json:"spec"`
	Multiplier    float64           `json:"multiplier"`
	// PricingVerified is false while the surge lookup for the current
	// time slot has not succeeded; confirmation stays blocked until it
	// flips back to true.
	PricingVerified bool      `json:"pricingVerified"`
	Quote           Quote     `json:"quote"`
	CreatedAt       time.Time `json:"createdAt"`
}

// SessionPatch carries a partial details-step update. Nil fields are
// left untouched; Spec entries are merged into the existing mapping.
type SessionPatch struct {
	Date          *string           `json:"date,omitempty"`
	TimeSlot      *string           `json:"timeSlot,omitempty"`
	DurationHours *int              `json:"durationHours,omitempty"`
	Spec          map[string]string `json:"spec,omitempty"`
}

// BookingConfirmation is returned once a booking has been created.
type BookingConfirmation struct {
	BookingID    string    `json:"bookingId"`
	ProviderID   string    `json:"providerId"`
	Date         string    `json:"date"`
	TimeSlot     string    `json:"timeSlot"`
	TotalPrice   float64   `json:"totalPrice"`
	InvoiceID    string    `json:"invoiceId,omitempty"`
	Confirmation string    `json:"confirmation"`
	CreatedAt    time.Time `json:"createdAt"`
}
