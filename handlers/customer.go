package handlers

import (
	"net/http"

	bookingRepo "homeserve/database/repository/booking"
	"homeserve/models"
	"homeserve/services/customer"

	"github.com/gin-gonic/gin"
)

// CustomerHandler exposes customer account endpoints.
type CustomerHandler struct {
	Service  customer.CustomerService
	Bookings bookingRepo.BookingRepository
}

func NewCustomerHandler(service customer.CustomerService, bookings bookingRepo.BookingRepository) *CustomerHandler {
	return &CustomerHandler{Service: service, Bookings: bookings}
}

// Register creates a customer account.
func (h *CustomerHandler) Register(c *gin.Context) {
	var input models.Customer
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	resp, err := h.Service.RegisterCustomer(input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Login authenticates a customer.
func (h *CustomerHandler) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	resp, err := h.Service.AuthenticateCustomer(input.Email, input.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Me returns the authenticated customer's profile.
func (h *CustomerHandler) Me(c *gin.Context) {
	cust, err := h.Service.GetCustomerByID(c.GetString("customerID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"customer": cust.ToDTO()})
}

// Update changes the authenticated customer's profile fields.
func (h *CustomerHandler) Update(c *gin.Context) {
	var input models.Customer
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	input.ID = c.GetString("customerID")
	cust, err := h.Service.UpdateCustomer(input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"customer": cust.ToDTO()})
}

// Delete removes the authenticated customer's account.
func (h *CustomerHandler) Delete(c *gin.Context) {
	if err := h.Service.DeleteCustomer(c.GetString("customerID")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// MyBookings lists the customer's bookings, newest first.
func (h *CustomerHandler) MyBookings(c *gin.Context) {
	bookings, err := h.Bookings.ListByCustomer(c.GetString("customerID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}
