package handlers

import (
	"net/http"

	bookingRepo "homeserve/database/repository/booking"
	"homeserve/models"
	"homeserve/services/booking"
	"homeserve/services/provider"

	"github.com/gin-gonic/gin"
)

// ProviderHandler exposes provider account, offering, and job endpoints.
type ProviderHandler struct {
	Service   provider.ProviderService
	Lifecycle booking.LifecycleService
	Bookings  bookingRepo.BookingRepository
}

func NewProviderHandler(service provider.ProviderService, lifecycle booking.LifecycleService, bookings bookingRepo.BookingRepository) *ProviderHandler {
	return &ProviderHandler{Service: service, Lifecycle: lifecycle, Bookings: bookings}
}

// Register creates a provider account.
func (h *ProviderHandler) Register(c *gin.Context) {
	var input models.Provider
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	resp, err := h.Service.RegisterProvider(input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Login authenticates a provider.
func (h *ProviderHandler) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	resp, err := h.Service.AuthenticateProvider(input.Email, input.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Get returns a provider's public profile.
func (h *ProviderHandler) Get(c *gin.Context) {
	prov, err := h.Service.GetProviderByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"provider": prov.ToDTO()})
}

// List returns providers, optionally filtered by category.
func (h *ProviderHandler) List(c *gin.Context) {
	providers, err := h.Service.ListProviders(c.Query("category"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"providers": providers})
}

// UpdateProfile replaces the authenticated provider's profile fields.
func (h *ProviderHandler) UpdateProfile(c *gin.Context) {
	var input models.ProviderProfile
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	providerID := c.GetString("providerID")
	prov, err := h.Service.UpdateProfile(providerID, input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"provider": prov.ToDTO()})
}

// UpdateOfferings replaces the authenticated provider's offerings.
func (h *ProviderHandler) UpdateOfferings(c *gin.Context) {
	var input struct {
		Offerings []models.ServiceOffering `json:"offerings" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	providerID := c.GetString("providerID")
	prov, err := h.Service.UpdateOfferings(providerID, input.Offerings)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"provider": prov.ToDTO()})
}

// SubmitDocument attaches a verification document to the provider.
func (h *ProviderHandler) SubmitDocument(c *gin.Context) {
	var input models.VerificationDocument
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	providerID := c.GetString("providerID")
	prov, err := h.Service.SubmitDocument(providerID, input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"provider": prov.ToDTO()})
}

// MyBookings lists the provider's bookings, newest first.
func (h *ProviderHandler) MyBookings(c *gin.Context) {
	providerID := c.GetString("providerID")
	bookings, err := h.Bookings.ListByProvider(providerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// UpdateBookingStatus moves one of the provider's bookings through its
// lifecycle (accept, start, complete, cancel).
func (h *ProviderHandler) UpdateBookingStatus(c *gin.Context) {
	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	providerID := c.GetString("providerID")
	bookingRecord, err := h.Lifecycle.ProviderUpdateStatus(providerID, c.Param("bookingID"), input.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": bookingRecord})
}
