package models

import "time"

// PaymentRequest is handed to the payment handler when a session is
// confirmed. Processing is simulated; no real gateway is involved.
type PaymentRequest struct {
	CustomerID  string
	Amount      float64
	Currency    string
	Method      string // "card" or "cash"
	Description string
}

type Invoice struct {
	InvoiceID  string
	CustomerID string
	Amount     float64
	Currency   string
	Status     string
	Method     string
	PaymentID  string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
