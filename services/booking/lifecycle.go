// File: services/booking/lifecycle.go
package booking

import (
	"fmt"
	"time"

	bookingRepo "homeserve/database/repository/booking"
	providerRepo "homeserve/database/repository/provider"
	"homeserve/models"

	"go.mongodb.org/mongo-driver/bson"
)

// LifecycleService handles what happens to a booking after submission:
// provider accept/start/complete, cancellation, and customer reviews.
type LifecycleService interface {
	ProviderUpdateStatus(providerID, bookingID, status string) (*models.Booking, error)
	CustomerCancel(customerID, bookingID string) (*models.Booking, error)
	RateBooking(customerID, bookingID string, rating float64, comment string) (*models.Booking, error)
	RemoveReview(bookingID string) error
}

type DefaultLifecycleService struct {
	BookingRepo  bookingRepo.BookingRepository
	ProviderRepo providerRepo.ProviderRepository
}

// legalTransitions maps a status to the statuses it may move to.
var legalTransitions = map[string][]string{
	models.BookingRequested:  {models.BookingAccepted, models.BookingCancelled},
	models.BookingAccepted:   {models.BookingInProgress, models.BookingCancelled},
	models.BookingInProgress: {models.BookingCompleted},
	models.BookingCompleted:  {},
	models.BookingCancelled:  {},
}

func transitionAllowed(from, to string) bool {
	for _, next := range legalTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ProviderUpdateStatus advances a booking through its lifecycle on
// behalf of the assigned provider.
func (s *DefaultLifecycleService) ProviderUpdateStatus(providerID, bookingID, status string) (*models.Booking, error) {
	booking, err := s.BookingRepo.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s not found", bookingID)
	}
	if booking.ProviderID != providerID {
		return nil, fmt.Errorf("booking %s does not belong to provider %s", bookingID, providerID)
	}
	if !transitionAllowed(booking.Status, status) {
		return nil, fmt.Errorf("cannot move booking from %s to %s", booking.Status, status)
	}

	booking.Status = status
	if err := s.BookingRepo.Update(booking); err != nil {
		return nil, err
	}
	return booking, nil
}

// CustomerCancel cancels a booking that has not started yet.
func (s *DefaultLifecycleService) CustomerCancel(customerID, bookingID string) (*models.Booking, error) {
	booking, err := s.BookingRepo.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s not found", bookingID)
	}
	if booking.CustomerID != customerID {
		return nil, fmt.Errorf("booking %s does not belong to customer %s", bookingID, customerID)
	}
	if !transitionAllowed(booking.Status, models.BookingCancelled) {
		return nil, fmt.Errorf("cannot cancel booking in status %s", booking.Status)
	}

	booking.Status = models.BookingCancelled
	if err := s.BookingRepo.Update(booking); err != nil {
		return nil, err
	}
	return booking, nil
}

// RateBooking records a customer review on a completed booking and
// folds the rating into the provider's aggregate.
func (s *DefaultLifecycleService) RateBooking(customerID, bookingID string, rating float64, comment string) (*models.Booking, error) {
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("rating must be between 1 and 5")
	}

	booking, err := s.BookingRepo.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s not found", bookingID)
	}
	if booking.CustomerID != customerID {
		return nil, fmt.Errorf("booking %s does not belong to customer %s", bookingID, customerID)
	}
	if booking.Status != models.BookingCompleted {
		return nil, fmt.Errorf("only completed bookings can be rated")
	}
	if booking.Review != nil {
		return nil, fmt.Errorf("booking %s already has a review", bookingID)
	}

	booking.Review = &models.Review{Rating: rating, Comment: comment, CreatedAt: time.Now()}
	if err := s.BookingRepo.Update(booking); err != nil {
		return nil, err
	}

	if err := s.recomputeProviderRating(booking.ProviderID, rating, +1); err != nil {
		return nil, err
	}
	return booking, nil
}

// RemoveReview deletes a review from a booking and backs its rating out
// of the provider aggregate. Admin-only (RATINGS_ADMIN).
func (s *DefaultLifecycleService) RemoveReview(bookingID string) error {
	booking, err := s.BookingRepo.GetByID(bookingID)
	if err != nil {
		return err
	}
	if booking == nil {
		return fmt.Errorf("booking %s not found", bookingID)
	}
	if booking.Review == nil {
		return fmt.Errorf("booking %s has no review", bookingID)
	}

	removed := booking.Review.Rating
	booking.Review = nil
	if err := s.BookingRepo.Update(booking); err != nil {
		return err
	}
	return s.recomputeProviderRating(booking.ProviderID, removed, -1)
}

// recomputeProviderRating adjusts the provider's running average by
// adding (delta=+1) or removing (delta=-1) a single rating.
func (s *DefaultLifecycleService) recomputeProviderRating(providerID string, rating float64, delta int) error {
	provider, err := s.ProviderRepo.GetByID(providerID)
	if err != nil {
		return err
	}
	if provider == nil {
		return fmt.Errorf("provider %s not found", providerID)
	}

	count := provider.Profile.RatingCount + delta
	var avg float64
	if count > 0 {
		total := provider.Profile.Rating*float64(provider.Profile.RatingCount) + float64(delta)*rating
		avg = total / float64(count)
	}

	return s.ProviderRepo.UpdateSetDocument(providerID, bson.M{
		"profile.rating":      avg,
		"profile.ratingCount": count,
		"updatedAt":           time.Now(),
	})
}
