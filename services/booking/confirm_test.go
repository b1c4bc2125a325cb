package booking

import (
	"context"
	"errors"
	"testing"

	"homeserve/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubReminders records scheduled reminders and can be forced to fail.
type stubReminders struct {
	scheduled []models.Booking
	err       error
}

func (r *stubReminders) ScheduleBookingReminder(booking models.Booking) error {
	if r.err != nil {
		return r.err
	}
	r.scheduled = append(r.scheduled, booking)
	return nil
}

func TestConfirmBookingCreatesRecord(t *testing.T) {
	env := newTestEnv(cleaningProvider())
	session := sessionAtPayment(t, env)

	confirmation, err := env.svc.ConfirmBooking(session.SessionID)
	require.NoError(t, err)

	assert.Equal(t, session.ProviderID, confirmation.ProviderID)
	assert.Equal(t, session.Date, confirmation.Date)
	assert.Equal(t, session.TimeSlot, confirmation.TimeSlot)
	assert.Equal(t, Round2(session.Quote.Total), confirmation.TotalPrice)
	assert.Equal(t, "Booking requested", confirmation.Confirmation)
	assert.NotEmpty(t, confirmation.InvoiceID)

	require.Equal(t, 1, env.bookings.count())
	record := env.bookings.created[0]
	assert.Equal(t, models.BookingRequested, record.Status)
	assert.Equal(t, models.BookingTypeStandard, record.BookingType)
	assert.Equal(t, session.CustomerID, record.CustomerID)
	assert.Equal(t, "House", record.Spec["areaType"])
	assert.Equal(t, "3", record.Spec[SpecHoursRequiredKey])
	assert.Equal(t, session.Quote.Total, record.TotalPrice)

	// The draft is gone once confirmed.
	_, err = env.svc.GetSession(session.SessionID)
	assert.Equal(t, CodeSessionNotFound, flowCode(t, err))
}

func TestConfirmBookingRequiresPaymentStep(t *testing.T) {
	env := newTestEnv(cleaningProvider())
	session, _ := env.svc.InitiateSession("cust-1", "prov-1", 0)

	_, err := env.svc.ConfirmBooking(session.SessionID)
	assert.Equal(t, CodeInvalidStep, flowCode(t, err))
	assert.Zero(t, env.bookings.count())
	assert.Zero(t, env.payments.calls)
}

func TestConfirmBookingWhileLockHeld(t *testing.T) {
	env := newTestEnv(cleaningProvider())
	session := sessionAtPayment(t, env)

	won, err := env.store.AcquireConfirmLock(context.Background(), session.SessionID, confirmLockTTL)
	require.NoError(t, err)
	require.True(t, won)

	_, err = env.svc.ConfirmBooking(session.SessionID)
	assert.Equal(t, CodeConfirmInFlight, flowCode(t, err))
	assert.Zero(t, env.bookings.count())
}

func TestConfirmBookingSecondAttemptAfterSuccess(t *testing.T) {
	env := newTestEnv(cleaningProvider())
	session := sessionAtPayment(t, env)

	_, err := env.svc.ConfirmBooking(session.SessionID)
	require.NoError(t, err)

	// The lock is left in place after success, so a late duplicate is
	// rejected without touching payment again.
	_, err = env.svc.ConfirmBooking(session.SessionID)
	assert.Equal(t, CodeConfirmInFlight, flowCode(t, err))

	assert.Equal(t, 1, env.bookings.count())
	assert.Equal(t, 1, env.payments.calls)
}

func TestConfirmBookingAfterCancelIsDiscarded(t *testing.T) {
	env := newTestEnv(cleaningProvider())
	session := sessionAtPayment(t, env)

	require.NoError(t, env.svc.CancelSession(session.SessionID))

	_, err := env.svc.ConfirmBooking(session.SessionID)
	assert.Equal(t, CodeSessionNotFound, flowCode(t, err))
	assert.Zero(t, env.bookings.count())
	assert.Zero(t, env.payments.calls)
}

func TestConfirmBookingPaymentFailureKeepsDraft(t *testing.T) {
	env := newTestEnv(cleaningProvider())
	session := sessionAtPayment(t, env)

	env.payments.err = errors.New("card declined")
	_, err := env.svc.ConfirmBooking(session.SessionID)
	assert.Equal(t, CodePayment, flowCode(t, err))
	assert.Zero(t, env.bookings.count())

	// The draft survives at the payment step and the lock was released,
	// so a retry can succeed.
	kept, err := env.svc.GetSession(session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, models.StepPayment, kept.Step)

	env.payments.err = nil
	_, err = env.svc.ConfirmBooking(session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, 1, env.bookings.count())
}

func TestConfirmBookingRepoFailureKeepsDraft(t *testing.T) {
	env := newTestEnv(cleaningProvider())
	session := sessionAtPayment(t, env)

	env.bookings.createErr = errors.New("write concern timeout")
	_, err := env.svc.ConfirmBooking(session.SessionID)
	require.Error(t, err)

	kept, err := env.svc.GetSession(session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, models.StepPayment, kept.Step)
}

func TestConfirmBookingSchedulesReminder(t *testing.T) {
	env := newTestEnv(cleaningProvider())
	reminders := &stubReminders{}
	env.svc.Reminders = reminders
	session := sessionAtPayment(t, env)

	confirmation, err := env.svc.ConfirmBooking(session.SessionID)
	require.NoError(t, err)

	require.Len(t, reminders.scheduled, 1)
	assert.Equal(t, confirmation.BookingID, reminders.scheduled[0].ID)
	assert.Equal(t, session.TimeSlot, reminders.scheduled[0].TimeSlot)
}

func TestConfirmBookingReminderFailureIsNotFatal(t *testing.T) {
	env := newTestEnv(cleaningProvider())
	env.svc.Reminders = &stubReminders{err: errors.New("queue unavailable")}
	session := sessionAtPayment(t, env)

	_, err := env.svc.ConfirmBooking(session.SessionID)
	assert.NoError(t, err)
	assert.Equal(t, 1, env.bookings.count())
}
