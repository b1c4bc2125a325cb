package models

import "time"

// Ticket origins determine which admin support role may see a ticket.
const (
	TicketFromCustomer = "customer"
	TicketFromProvider = "provider"
)

// Ticket statuses.
const (
	TicketOpen       = "OPEN"
	TicketInProgress = "IN_PROGRESS"
	TicketResolved   = "RESOLVED"
	TicketClosed     = "CLOSED"
)

// SupportTicket is an escalation raised by a customer or a provider.
type SupportTicket struct {
	ID          string    `bson:"id" json:"id"`
	Origin      string    `bson:"origin" json:"origin"`
	RequesterID string    `bson:"requesterId" json:"requesterId"`
	Subject     string    `bson:"subject" json:"subject" binding:"required"`
	Body        string    `bson:"body" json:"body" binding:"required"`
	Status      string    `bson:"status" json:"status"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}
