package handlers

import (
	"errors"
	"net/http"

	"homeserve/models"
	"homeserve/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking session workflow.
type BookingHandler struct {
	Sessions  booking.SessionService
	Lifecycle booking.LifecycleService
	logger    *zap.Logger
}

func NewBookingHandler(sessions booking.SessionService, lifecycle booking.LifecycleService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Sessions: sessions, Lifecycle: lifecycle, logger: logger}
}

// flowErrorStatus maps booking engine error codes onto HTTP statuses.
func flowErrorStatus(err error) int {
	var flowErr *booking.FlowError
	if !errors.As(err, &flowErr) {
		return http.StatusInternalServerError
	}
	switch flowErr.Code {
	case booking.CodeSessionNotFound:
		return http.StatusNotFound
	case booking.CodeValidation, booking.CodeInvalidStep, booking.CodePricingPending:
		return http.StatusBadRequest
	case booking.CodeConfirmInFlight:
		return http.StatusConflict
	case booking.CodePayment:
		return http.StatusPaymentRequired
	default:
		return http.StatusInternalServerError
	}
}

// sessionResponse rounds pricing figures for display before the session
// leaves the API boundary.
func sessionResponse(session *models.BookingSession) gin.H {
	display := *session
	display.Quote = booking.RoundQuote(session.Quote)
	return gin.H{"session": display}
}

// InitiateSession starts a new draft for the authenticated customer.
func (h *BookingHandler) InitiateSession(c *gin.Context) {
	var input struct {
		ProviderID    string `json:"providerId" binding:"required"`
		OfferingIndex *int   `json:"offeringIndex" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	customerID := c.GetString("customerID")
	session, err := h.Sessions.InitiateSession(customerID, input.ProviderID, *input.OfferingIndex)
	if err != nil {
		c.JSON(flowErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sessionResponse(session))
}

// GetSession returns the current draft.
func (h *BookingHandler) GetSession(c *gin.Context) {
	session, err := h.Sessions.GetSession(c.Param("sessionID"))
	if err != nil {
		c.JSON(flowErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sessionResponse(session))
}

// UpdateSession applies a details-step patch.
func (h *BookingHandler) UpdateSession(c *gin.Context) {
	var patch models.SessionPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.Sessions.UpdateDetails(c.Param("sessionID"), patch)
	if err != nil {
		c.JSON(flowErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sessionResponse(session))
}

// ProceedToPayment advances the draft to the payment step.
func (h *BookingHandler) ProceedToPayment(c *gin.Context) {
	session, err := h.Sessions.ProceedToPayment(c.Param("sessionID"))
	if err != nil {
		c.JSON(flowErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sessionResponse(session))
}

// BackToDetails returns the draft to the details step.
func (h *BookingHandler) BackToDetails(c *gin.Context) {
	session, err := h.Sessions.BackToDetails(c.Param("sessionID"))
	if err != nil {
		c.JSON(flowErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sessionResponse(session))
}

// ConfirmBooking finalizes the draft into a booking record.
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	confirmation, err := h.Sessions.ConfirmBooking(c.Param("sessionID"))
	if err != nil {
		h.logger.Warn("booking confirmation failed", zap.String("sessionId", c.Param("sessionID")), zap.Error(err))
		c.JSON(flowErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": confirmation})
}

// CancelSession abandons the draft.
func (h *BookingHandler) CancelSession(c *gin.Context) {
	if err := h.Sessions.CancelSession(c.Param("sessionID")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

// CancelBooking cancels a submitted booking on behalf of the customer.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	customerID := c.GetString("customerID")
	bookingRecord, err := h.Lifecycle.CustomerCancel(customerID, c.Param("bookingID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": bookingRecord})
}

// RateBooking records a review on a completed booking.
func (h *BookingHandler) RateBooking(c *gin.Context) {
	var input struct {
		Rating  float64 `json:"rating" binding:"required,min=1,max=5"`
		Comment string  `json:"comment"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	customerID := c.GetString("customerID")
	bookingRecord, err := h.Lifecycle.RateBooking(customerID, c.Param("bookingID"), input.Rating, input.Comment)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": bookingRecord})
}
