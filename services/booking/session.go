// File: services/booking/session.go
package booking

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"homeserve/models"
	"homeserve/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// InitiateSession snapshots the provider's selected offering into a new
// draft at the details step and stores it under a fresh session ID.
func (s *DefaultSessionService) InitiateSession(customerID, providerID string, offeringIndex int) (*models.BookingSession, error) {
	provider, err := s.ProviderRepo.GetByID(providerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch provider: %w", err)
	}
	if provider == nil {
		return nil, NewValidationError(fmt.Sprintf("provider %s not found", providerID))
	}
	if offeringIndex < 0 || offeringIndex >= len(provider.Offerings) {
		return nil, NewValidationError(fmt.Sprintf("offering index %d out of range for provider %s", offeringIndex, providerID))
	}
	offering := provider.Offerings[offeringIndex]

	bookingType := models.BookingTypeStandard
	durationHours := 1
	if offering.Tier == models.TierConsultation {
		// Consultations are fixed one-hour sessions; duration edits are
		// ignored for the life of the draft.
		bookingType = models.BookingTypeConsultation
	}

	session := models.BookingSession{
		SessionID:       uuid.New().String(),
		CustomerID:      customerID,
		ProviderID:      provider.ID,
		ProviderName:    provider.Profile.Name,
		OfferingIndex:   offeringIndex,
		Offering:        offering,
		BookingType:     bookingType,
		Step:            models.StepDetails,
		DurationHours:   durationHours,
		Spec:            map[string]string{},
		Multiplier:      1.0,
		PricingVerified: true,
		CreatedAt:       time.Now(),
	}
	if offering.Category == models.CategoryCleaning {
		session.Spec[SpecHoursRequiredKey] = strconv.Itoa(durationHours)
	}
	session.Quote = ComputeQuote(offering.HourlyPrice, session.DurationHours, session.Multiplier, s.CommissionRate)

	ctx := context.Background()
	if err := s.Store.Save(ctx, &session, s.SessionTTL); err != nil {
		return nil, err
	}
	return &session, nil
}

// GetSession returns the current draft.
func (s *DefaultSessionService) GetSession(sessionID string) (*models.BookingSession, error) {
	session, err := s.Store.Get(context.Background(), sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, NewSessionNotFoundError()
	}
	return session, nil
}

// UpdateDetails applies a partial update to the draft. Legal only at the
// details step; the quote is recomputed after every change, and a time
// slot change triggers a surge lookup.
func (s *DefaultSessionService) UpdateDetails(sessionID string, patch models.SessionPatch) (*models.BookingSession, error) {
	ctx := context.Background()
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, NewSessionNotFoundError()
	}
	if session.Step != models.StepDetails {
		return nil, NewInvalidStepError(session.Step, models.StepDetails)
	}

	if patch.Date != nil {
		session.Date = *patch.Date
	}
	if patch.DurationHours != nil {
		s.applyDuration(session, *patch.DurationHours)
	}
	for key, value := range patch.Spec {
		s.applySpecField(session, key, value)
	}
	if patch.TimeSlot != nil && *patch.TimeSlot != session.TimeSlot {
		session.TimeSlot = *patch.TimeSlot
		s.refreshMultiplier(ctx, session)
	}

	session.Quote = ComputeQuote(session.Offering.HourlyPrice, session.DurationHours, session.Multiplier, s.CommissionRate)

	if err := s.Store.Save(ctx, session, s.SessionTTL); err != nil {
		return nil, err
	}
	return session, nil
}

// applyDuration sets the draft duration, keeping the Cleaning
// hoursRequired spec field identical and pinning consultations to one
// hour.
func (s *DefaultSessionService) applyDuration(session *models.BookingSession, hours int) {
	if session.BookingType == models.BookingTypeConsultation {
		return
	}
	if hours < 1 {
		hours = 1
	}
	session.DurationHours = hours
	if session.Offering.Category == models.CategoryCleaning {
		session.Spec[SpecHoursRequiredKey] = strconv.Itoa(hours)
	}
}

// applySpecField upserts one specification entry. For Cleaning, writing
// hoursRequired also writes the top-level duration; the two are a single
// quantity presented twice.
func (s *DefaultSessionService) applySpecField(session *models.BookingSession, key, value string) {
	if session.Offering.Category == models.CategoryCleaning && key == SpecHoursRequiredKey {
		if hours, err := strconv.Atoi(value); err == nil && hours >= 1 {
			s.applyDuration(session, hours)
			return
		}
		// Unparseable hours leave both values as they were.
		return
	}
	session.Spec[key] = value
}

// refreshMultiplier runs the surge lookup for the current slot. On
// failure the draft falls back to 1.0 and is flagged unverified, which
// blocks the details -> payment transition until a lookup succeeds.
func (s *DefaultSessionService) refreshMultiplier(ctx context.Context, session *models.BookingSession) {
	lookupCtx, cancel := context.WithTimeout(ctx, surgeLookupTimeout)
	defer cancel()

	multiplier, err := s.Surge.Multiplier(lookupCtx, session.Offering.Category, session.TimeSlot)
	if err != nil {
		utils.GetLogger().Warn("surge lookup failed; quoting base rate until verified",
			zap.String("sessionId", session.SessionID),
			zap.String("timeSlot", session.TimeSlot),
			zap.Error(err),
		)
		session.Multiplier = 1.0
		session.PricingVerified = false
		return
	}
	session.Multiplier = multiplier
	session.PricingVerified = true
}

// ProceedToPayment validates the details step and advances the draft.
// Inputs are re-validated on every attempt; nothing is persisted on
// failure.
func (s *DefaultSessionService) ProceedToPayment(sessionID string) (*models.BookingSession, error) {
	ctx := context.Background()
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, NewSessionNotFoundError()
	}
	if session.Step != models.StepDetails {
		return nil, NewInvalidStepError(session.Step, models.StepDetails)
	}
	if err := validateDetails(session); err != nil {
		return nil, err
	}
	if !session.PricingVerified {
		return nil, NewPricingPendingError()
	}

	session.Step = models.StepPayment
	if err := s.Store.Save(ctx, session, s.SessionTTL); err != nil {
		return nil, err
	}
	return session, nil
}

// BackToDetails returns the draft to the details step. Every entered
// value, including the specification mapping, is preserved.
func (s *DefaultSessionService) BackToDetails(sessionID string) (*models.BookingSession, error) {
	ctx := context.Background()
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

	session.Step = models.StepDetails
	if err := s.Store.Save(ctx, session, s.SessionTTL); err != nil {
		return nil, err
	}
	return session, nil
}

// CancelSession abandons the flow; the caller returns to provider
// selection and no record is created.
func (s *DefaultSessionService) CancelSession(sessionID string) error {
	return s.Store.Delete(context.Background(), sessionID)
}

// validateDetails checks the details-step invariants: a calendar date
// not in the past, a recognized hourly slot, and a positive duration.
func validateDetails(session *models.BookingSession) error {
	if session.Date == "" {
		return NewValidationError("date is required")
	}
	date, err := time.Parse("2006-01-02", session.Date)
	if err != nil {
		return NewValidationError(fmt.Sprintf("invalid date %q: expected YYYY-MM-DD", session.Date))
	}
	today := time.Now().Truncate(24 * time.Hour)
	if date.Before(today) {
		return NewValidationError("date must be today or later")
	}
	if !models.IsValidSlot(session.TimeSlot) {
		return NewValidationError(fmt.Sprintf("time slot %q is not bookable", session.TimeSlot))
	}
	if session.DurationHours < 1 {
		return NewValidationError("duration must be at least one hour")
	}
	return nil
}
