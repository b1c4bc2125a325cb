package models

// ReminderPayload is the task body enqueued when a booking is confirmed
// and processed by the reminder worker ahead of the appointment.
type ReminderPayload struct {
	BookingID  string `json:"bookingId"`
	CustomerID string `json:"customerId"`
	ProviderID string `json:"providerId"`
	Date       string `json:"date"`
	TimeSlot   string `json:"timeSlot"`
	Title      string `json:"title"`
	Body       string `json:"body"`
}
