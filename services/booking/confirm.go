// File: services/booking/confirm.go
package booking

import (
	"context"
	"fmt"
	"time"

	"homeserve/models"
	"homeserve/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ConfirmBooking finalizes the draft: it takes the per-session confirm
// lock so rapid duplicate requests issue exactly one booking, runs the
// payment handler, persists the booking as REQUESTED, and deletes the
// session. On any failure the draft survives at the payment step for a
// retry; no partial booking is ever written.
func (s *DefaultSessionService) ConfirmBooking(sessionID string) (*models.BookingConfirmation, error) {
	ctx := context.Background()

	won, err := s.Store.AcquireConfirmLock(ctx, sessionID, confirmLockTTL)
	if err != nil {
		return nil, err
	}
	if !won {
		return nil, NewConfirmInFlightError()
	}

	confirmation, err := s.confirmLocked(ctx, sessionID)
	if err != nil {
		// Release so the customer can retry with the same draft. On
		// success the lock is left to expire: the session is gone and a
		// late duplicate should not start a second submission.
		if relErr := s.Store.ReleaseConfirmLock(ctx, sessionID); relErr != nil {
			utils.GetLogger().Warn("failed to release confirm lock", zap.String("sessionId", sessionID), zap.Error(relErr))
		}
		return nil, err
	}
	return confirmation, nil
}

func (s *DefaultSessionService) confirmLocked(ctx context.Context, sessionID string) (*models.BookingConfirmation, error) {
	// Re-read under the lock; a session cancelled or already confirmed
	// while this request was queued is discarded here.
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, NewSessionNotFoundError()
	}
	if session.Step != models.StepPayment {
		return nil, NewInvalidStepError(session.Step, models.StepPayment)
	}

	invoice, err := s.Payments.ProcessPayment(ctx, models.PaymentRequest{
		CustomerID:  session.CustomerID,
		Amount:      session.Quote.Total,
		Currency:    "USD",
		Method:      "card",
		Description: fmt.Sprintf("%s booking with %s", session.Offering.Category, session.ProviderName),
	})
	if err != nil {
		return nil, NewPaymentError(err.Error())
	}

	spec := make(map[string]string, len(session.Spec))
	for k, v := range session.Spec {
		spec[k] = v
	}

	now := time.Now()
	record := models.Booking{
		ID:            uuid.New().String(),
		CustomerID:    session.CustomerID,
		ProviderID:    session.ProviderID,
		ProviderName:  session.ProviderName,
		Category:      session.Offering.Category,
		BookingType:   session.BookingType,
		Date:          session.Date,
		TimeSlot:      session.TimeSlot,
		DurationHours: session.DurationHours,
		Spec:          spec,
		TotalPrice:    session.Quote.Total,
		Status:        models.BookingRequested,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.BookingRepo.Create(&record); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	if err := s.Store.Delete(ctx, sessionID); err != nil {
		utils.GetLogger().Warn("failed to delete confirmed session", zap.String("sessionId", sessionID), zap.Error(err))
	}

	if s.Reminders != nil {
		if err := s.Reminders.ScheduleBookingReminder(record); err != nil {
			utils.GetLogger().Warn("failed to schedule booking reminder", zap.String("bookingId", record.ID), zap.Error(err))
		}
	}

	return &models.BookingConfirmation{
		BookingID:    record.ID,
		ProviderID:   record.ProviderID,
		Date:         record.Date,
		TimeSlot:     record.TimeSlot,
		TotalPrice:   Round2(record.TotalPrice),
		InvoiceID:    invoice.InvoiceID,
		Confirmation: "Booking requested",
		CreatedAt:    record.CreatedAt,
	}, nil
}
