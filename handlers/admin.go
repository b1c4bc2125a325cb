package handlers

import (
	"net/http"

	"homeserve/models"
	"homeserve/services/admin"
	"homeserve/services/booking"
	"homeserve/services/provider"
	"homeserve/services/ticket"

	"github.com/gin-gonic/gin"
)

// AdminHandler exposes the admin console: dashboard sections, provider
// verification, review moderation, category oversight, and ticket
// management. Every endpoint is gated on the sub-role's section.
type AdminHandler struct {
	Providers provider.ProviderService
	Lifecycle booking.LifecycleService
	Tickets   ticket.TicketService
}

func NewAdminHandler(providers provider.ProviderService, lifecycle booking.LifecycleService, tickets ticket.TicketService) *AdminHandler {
	return &AdminHandler{Providers: providers, Lifecycle: lifecycle, Tickets: tickets}
}

// requireSection aborts with 403 unless the resolved admin role may view
// the given dashboard section.
func requireSection(c *gin.Context, section string) bool {
	role := c.GetString("adminRole")
	if !admin.CanView(role, section) {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "section not available for role " + role})
		return false
	}
	return true
}

// Sections returns the dashboard sections visible to the caller's role.
func (h *AdminHandler) Sections(c *gin.Context) {
	role := c.GetString("adminRole")
	c.JSON(http.StatusOK, gin.H{"role": role, "sections": admin.SectionsFor(role)})
}

// PendingVerifications lists providers with documents awaiting review.
func (h *AdminHandler) PendingVerifications(c *gin.Context) {
	if !requireSection(c, models.SectionVerification) {
		return
	}

	providers, err := h.Providers.ListPendingVerification()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"providers": providers})
}

// DecideVerification approves or rejects a provider document.
func (h *AdminHandler) DecideVerification(c *gin.Context) {
	if !requireSection(c, models.SectionVerification) {
		return
	}

	var input struct {
		DocumentName string `json:"documentName" binding:"required"`
		Decision     string `json:"decision" binding:"required"`
		Note         string `json:"note"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	prov, err := h.Providers.DecideVerification(c.Param("id"), input.DocumentName, input.Decision, input.Note)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"provider": prov})
}

// RemoveReview deletes a review and backs it out of the provider rating.
func (h *AdminHandler) RemoveReview(c *gin.Context) {
	if !requireSection(c, models.SectionRatings) {
		return
	}

	if err := h.Lifecycle.RemoveReview(c.Param("bookingID")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "review removed"})
}

// Categories lists every service category with its spec field schema.
func (h *AdminHandler) Categories(c *gin.Context) {
	if !requireSection(c, models.SectionCategories) {
		return
	}

	out := make([]gin.H, 0, len(models.Categories()))
	for _, category := range models.Categories() {
		out = append(out, gin.H{"category": category, "fields": booking.SpecFields(category)})
	}
	c.JSON(http.StatusOK, gin.H{"categories": out})
}

// ListTickets returns the tickets routed to the caller's role.
func (h *AdminHandler) ListTickets(c *gin.Context) {
	if !requireSection(c, models.SectionTickets) {
		return
	}

	tickets, err := h.Tickets.ListForRole(c.GetString("adminRole"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tickets": tickets})
}

// UpdateTicketStatus moves a ticket the caller's role may manage.
func (h *AdminHandler) UpdateTicketStatus(c *gin.Context) {
	if !requireSection(c, models.SectionTickets) {
		return
	}

	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	updated, err := h.Tickets.UpdateStatus(c.GetString("adminRole"), c.Param("ticketID"), input.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ticket": updated})
}
