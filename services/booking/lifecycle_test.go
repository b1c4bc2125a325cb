package booking

import (
	"testing"

	"homeserve/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

// ratingProviderRepo records $set documents so rating math can be checked.
type ratingProviderRepo struct {
	*stubProviderRepo
	sets []bson.M
}

func (r *ratingProviderRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	r.sets = append(r.sets, updateDoc)
	return nil
}

func newLifecycleEnv(prov *models.Provider, bookings ...models.Booking) (*DefaultLifecycleService, *stubBookingRepo, *ratingProviderRepo) {
	bookingStore := &stubBookingRepo{created: bookings}
	provRepo := &ratingProviderRepo{
		stubProviderRepo: &stubProviderRepo{providers: map[string]*models.Provider{prov.ID: prov}},
	}
	svc := &DefaultLifecycleService{BookingRepo: bookingStore, ProviderRepo: provRepo}
	return svc, bookingStore, provRepo
}

func requestedBooking() models.Booking {
	return models.Booking{
		ID:         "bk-1",
		CustomerID: "cust-1",
		ProviderID: "prov-1",
		Category:   models.CategoryCleaning,
		Status:     models.BookingRequested,
	}
}

func TestProviderUpdateStatusHappyPath(t *testing.T) {
	svc, _, _ := newLifecycleEnv(cleaningProvider(), requestedBooking())

	for _, status := range []string{models.BookingAccepted, models.BookingInProgress, models.BookingCompleted} {
		updated, err := svc.ProviderUpdateStatus("prov-1", "bk-1", status)
		require.NoError(t, err, "to %s", status)
		assert.Equal(t, status, updated.Status)
	}
}

func TestProviderUpdateStatusIllegalTransitions(t *testing.T) {
	cases := []struct {
		from string
		to   string
	}{
		{models.BookingRequested, models.BookingCompleted},
		{models.BookingRequested, models.BookingInProgress},
		{models.BookingInProgress, models.BookingCancelled},
		{models.BookingCompleted, models.BookingAccepted},
		{models.BookingCancelled, models.BookingAccepted},
	}
	for _, tc := range cases {
		booking := requestedBooking()
		booking.Status = tc.from
		svc, _, _ := newLifecycleEnv(cleaningProvider(), booking)

		_, err := svc.ProviderUpdateStatus("prov-1", "bk-1", tc.to)
		assert.Error(t, err, "%s -> %s", tc.from, tc.to)
	}
}

func TestProviderUpdateStatusWrongProvider(t *testing.T) {
	svc, _, _ := newLifecycleEnv(cleaningProvider(), requestedBooking())

	_, err := svc.ProviderUpdateStatus("prov-other", "bk-1", models.BookingAccepted)
	assert.Error(t, err)
}

func TestCustomerCancel(t *testing.T) {
	svc, _, _ := newLifecycleEnv(cleaningProvider(), requestedBooking())

	updated, err := svc.CustomerCancel("cust-1", "bk-1")
	require.NoError(t, err)
	assert.Equal(t, models.BookingCancelled, updated.Status)
}

func TestCustomerCancelAfterStartRejected(t *testing.T) {
	booking := requestedBooking()
	booking.Status = models.BookingInProgress
	svc, _, _ := newLifecycleEnv(cleaningProvider(), booking)

	_, err := svc.CustomerCancel("cust-1", "bk-1")
	assert.Error(t, err)
}

func TestCustomerCancelWrongCustomer(t *testing.T) {
	svc, _, _ := newLifecycleEnv(cleaningProvider(), requestedBooking())

	_, err := svc.CustomerCancel("cust-other", "bk-1")
	assert.Error(t, err)
}

func TestRateBookingFoldsIntoProviderAverage(t *testing.T) {
	prov := cleaningProvider()
	prov.Profile.Rating = 4.0
	prov.Profile.RatingCount = 2

	booking := requestedBooking()
	booking.Status = models.BookingCompleted
	svc, _, provRepo := newLifecycleEnv(prov, booking)

	updated, err := svc.RateBooking("cust-1", "bk-1", 5, "spotless")
	require.NoError(t, err)
	require.NotNil(t, updated.Review)
	assert.Equal(t, 5.0, updated.Review.Rating)
	assert.Equal(t, "spotless", updated.Review.Comment)

	require.Len(t, provRepo.sets, 1)
	assert.InDelta(t, 13.0/3.0, provRepo.sets[0]["profile.rating"], 1e-9)
	assert.Equal(t, 3, provRepo.sets[0]["profile.ratingCount"])
}

func TestRateBookingGuards(t *testing.T) {
	t.Run("out of range", func(t *testing.T) {
		booking := requestedBooking()
		booking.Status = models.BookingCompleted
		svc, _, _ := newLifecycleEnv(cleaningProvider(), booking)

		_, err := svc.RateBooking("cust-1", "bk-1", 0, "")
		assert.Error(t, err)
		_, err = svc.RateBooking("cust-1", "bk-1", 6, "")
		assert.Error(t, err)
	})

	t.Run("not completed", func(t *testing.T) {
		svc, _, _ := newLifecycleEnv(cleaningProvider(), requestedBooking())
		_, err := svc.RateBooking("cust-1", "bk-1", 4, "")
		assert.Error(t, err)
	})

	t.Run("already reviewed", func(t *testing.T) {
		booking := requestedBooking()
		booking.Status = models.BookingCompleted
		booking.Review = &models.Review{Rating: 4}
		svc, _, _ := newLifecycleEnv(cleaningProvider(), booking)

		_, err := svc.RateBooking("cust-1", "bk-1", 5, "")
		assert.Error(t, err)
	})

	t.Run("wrong customer", func(t *testing.T) {
		booking := requestedBooking()
		booking.Status = models.BookingCompleted
		svc, _, _ := newLifecycleEnv(cleaningProvider(), booking)

		_, err := svc.RateBooking("cust-other", "bk-1", 5, "")
		assert.Error(t, err)
	})
}

func TestRemoveReviewBacksRatingOut(t *testing.T) {
	prov := cleaningProvider()
	prov.Profile.Rating = 4.5
	prov.Profile.RatingCount = 2

	booking := requestedBooking()
	booking.Status = models.BookingCompleted
	booking.Review = &models.Review{Rating: 5}
	svc, bookingStore, provRepo := newLifecycleEnv(prov, booking)

	require.NoError(t, svc.RemoveReview("bk-1"))

	stored, err := bookingStore.GetByID("bk-1")
	require.NoError(t, err)
	assert.Nil(t, stored.Review)

	require.Len(t, provRepo.sets, 1)
	// (4.5*2 - 5) / 1 = 4.0
	assert.InDelta(t, 4.0, provRepo.sets[0]["profile.rating"], 1e-9)
	assert.Equal(t, 1, provRepo.sets[0]["profile.ratingCount"])
}

func TestRemoveReviewWithoutReview(t *testing.T) {
	booking := requestedBooking()
	booking.Status = models.BookingCompleted
	svc, _, _ := newLifecycleEnv(cleaningProvider(), booking)

	assert.Error(t, svc.RemoveReview("bk-1"))
}
