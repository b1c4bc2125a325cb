package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"homeserve/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PaymentHandler charges the customer for a confirmed booking.
type PaymentHandler interface {
	ProcessPayment(ctx context.Context, req models.PaymentRequest) (*models.Invoice, error)
}

// SimulatedPaymentHandler stands in for a real gateway: it validates the
// request, pretends to charge the card, and issues an invoice. Real
// payment processing is out of scope for the platform.
type SimulatedPaymentHandler struct {
	logger *zap.Logger
}

func NewSimulatedPaymentHandler(logger *zap.Logger) *SimulatedPaymentHandler {
	return &SimulatedPaymentHandler{logger: logger}
}

func (h *SimulatedPaymentHandler) ProcessPayment(ctx context.Context, req models.PaymentRequest) (*models.Invoice, error) {
	if err := validatePaymentRequest(req); err != nil {
		return nil, fmt.Errorf("invalid payment request: %w", err)
	}

	inv := &models.Invoice{
		InvoiceID:  uuid.New().String(),
		CustomerID: req.CustomerID,
		Amount:     req.Amount,
		Currency:   req.Currency,
		Method:     req.Method,
		Status:     "pending",
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	// Simulated processing delay; honors cancellation.
	select {
	case <-time.After(500 * time.Millisecond):
	case <-ctx.Done():
		return nil, fmt.Errorf("payment interrupted: %w", ctx.Err())
	}

	inv.PaymentID = "pi_" + uuid.New().String()
	inv.Status = "paid"
	inv.UpdatedAt = time.Now()

	h.logger.Info("Payment successful",
		zap.String("invoice", inv.InvoiceID),
		zap.Float64("amount", inv.Amount),
	)
	return inv, nil
}

func validatePaymentRequest(req models.PaymentRequest) error {
	if req.Amount <= 0 {
		return errors.New("invalid payment amount")
	}
	if req.CustomerID == "" {
		return errors.New("missing customer ID")
	}
	if req.Method != "card" && req.Method != "cash" {
		return errors.New("unsupported method")
	}
	return nil
}
