package booking

import (
	"time"

	bookingRepo "homeserve/database/repository/booking"
	providerRepo "homeserve/database/repository/provider"
	"homeserve/models"
)

// SessionService drives the booking workflow: a draft moves through
// details -> payment -> success, with pricing recomputed as the draft
// changes and a single confirmation allowed per session.
type SessionService interface {
	InitiateSession(customerID, providerID string, offeringIndex int) (*models.BookingSession, error)
	GetSession(sessionID string) (*models.BookingSession, error)
	UpdateDetails(sessionID string, patch models.SessionPatch) (*models.BookingSession, error)
	ProceedToPayment(sessionID string) (*models.BookingSession, error)
	BackToDetails(sessionID string) (*models.BookingSession, error)
	ConfirmBooking(sessionID string) (*models.BookingConfirmation, error)
	CancelSession(sessionID string) error
}

// ReminderScheduler enqueues an appointment reminder for a confirmed
// booking. Optional; a nil scheduler disables reminders.
type ReminderScheduler interface {
	ScheduleBookingReminder(booking models.Booking) error
}

// DefaultSessionService implements SessionService.
type DefaultSessionService struct {
	Store          SessionStore
	ProviderRepo   providerRepo.ProviderRepository
	BookingRepo    bookingRepo.BookingRepository
	Surge          SurgeService
	Payments       PaymentHandler
	Reminders      ReminderScheduler
	CommissionRate float64
	SessionTTL     time.Duration
}

// surgeLookupTimeout bounds a single surge-multiplier lookup.
const surgeLookupTimeout = 3 * time.Second

// confirmLockTTL bounds how long a confirmation may hold the per-session
// lock before it expires on its own.
const confirmLockTTL = 30 * time.Second
