// File: services/ticket/ticket.go
package ticket

import (
	"fmt"
	"time"

	ticketRepo "homeserve/database/repository/ticket"
	"homeserve/models"
	"homeserve/services/admin"

	"github.com/google/uuid"
)

// TicketService manages support tickets and their role-gated routing.
type TicketService interface {
	CreateTicket(origin, requesterID, subject, body string) (*models.SupportTicket, error)
	ListForRequester(requesterID string) ([]models.SupportTicket, error)
	ListForRole(role string) ([]models.SupportTicket, error)
	UpdateStatus(role, ticketID, status string) (*models.SupportTicket, error)
}

// DefaultTicketService implements TicketService.
type DefaultTicketService struct {
	Repo ticketRepo.TicketRepository
}

var validStatuses = map[string]bool{
	models.TicketOpen:       true,
	models.TicketInProgress: true,
	models.TicketResolved:   true,
	models.TicketClosed:     true,
}

// CreateTicket opens a new ticket from a customer or provider.
func (s *DefaultTicketService) CreateTicket(origin, requesterID, subject, body string) (*models.SupportTicket, error) {
	if origin != models.TicketFromCustomer && origin != models.TicketFromProvider {
		return nil, fmt.Errorf("unknown ticket origin %q", origin)
	}
	if subject == "" || body == "" {
		return nil, fmt.Errorf("ticket subject and body are required")
	}

	now := time.Now()
	ticket := models.SupportTicket{
		ID:          uuid.New().String(),
		Origin:      origin,
		RequesterID: requesterID,
		Subject:     subject,
		Body:        body,
		Status:      models.TicketOpen,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Repo.Create(&ticket); err != nil {
		return nil, err
	}
	return &ticket, nil
}

// ListForRequester returns the tickets a customer or provider raised.
func (s *DefaultTicketService) ListForRequester(requesterID string) ([]models.SupportTicket, error) {
	return s.Repo.ListByRequester(requesterID)
}

// ListForRole returns the tickets visible to an admin role per the
// routing rule; roles outside support see nothing.
func (s *DefaultTicketService) ListForRole(role string) ([]models.SupportTicket, error) {
	return s.Repo.ListByOrigins(admin.TicketOriginsFor(role))
}

// UpdateStatus moves a ticket to a new status, provided the acting role
// is allowed to see tickets of that origin.
func (s *DefaultTicketService) UpdateStatus(role, ticketID, status string) (*models.SupportTicket, error) {
	if !validStatuses[status] {
		return nil, fmt.Errorf("unknown ticket status %q", status)
	}

	ticket, err := s.Repo.GetByID(ticketID)
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, fmt.Errorf("ticket %s not found", ticketID)
	}

	visible := false
	for _, origin := range admin.TicketOriginsFor(role) {
		if origin == ticket.Origin {
			visible = true
			break
		}
	}
	if !visible {
		return nil, fmt.Errorf("role %s may not manage %s tickets", role, ticket.Origin)
	}

	if err := s.Repo.UpdateStatus(ticketID, status); err != nil {
		return nil, err
	}
	ticket.Status = status
	return ticket, nil
}
