package handlers

import (
	"net/http"

	"homeserve/models"
	"homeserve/services/ticket"

	"github.com/gin-gonic/gin"
)

// TicketHandler lets customers and providers raise and track support
// tickets. Admin-side ticket management lives on AdminHandler.
type TicketHandler struct {
	Service ticket.TicketService
}

func NewTicketHandler(service ticket.TicketService) *TicketHandler {
	return &TicketHandler{Service: service}
}

type ticketInput struct {
	Subject string `json:"subject" binding:"required"`
	Body    string `json:"body" binding:"required"`
}

func (h *TicketHandler) create(c *gin.Context, origin, requesterID string) {
	var input ticketInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	created, err := h.Service.CreateTicket(origin, requesterID, input.Subject, input.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ticket": created})
}

func (h *TicketHandler) list(c *gin.Context, requesterID string) {
	tickets, err := h.Service.ListForRequester(requesterID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tickets": tickets})
}

// CustomerCreate opens a ticket from the authenticated customer.
func (h *TicketHandler) CustomerCreate(c *gin.Context) {
	h.create(c, models.TicketFromCustomer, c.GetString("customerID"))
}

// CustomerList returns the authenticated customer's tickets.
func (h *TicketHandler) CustomerList(c *gin.Context) {
	h.list(c, c.GetString("customerID"))
}

// ProviderCreate opens a ticket from the authenticated provider.
func (h *TicketHandler) ProviderCreate(c *gin.Context) {
	h.create(c, models.TicketFromProvider, c.GetString("providerID"))
}

// ProviderList returns the authenticated provider's tickets.
func (h *TicketHandler) ProviderList(c *gin.Context) {
	h.list(c, c.GetString("providerID"))
}
