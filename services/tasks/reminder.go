package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"homeserve/config"
	"homeserve/models"

	"github.com/hibiken/asynq"
)

const TypeSendReminder = "reminder:send"

// NewReminderTask builds an asynq task carrying the reminder payload,
// scheduled to fire at the given time.
func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// AsynqReminderScheduler enqueues appointment reminders one hour before
// a booking's start time. Bookings too close to their start time get no
// reminder.
type AsynqReminderScheduler struct {
	client *asynq.Client
}

func NewAsynqReminderScheduler() *AsynqReminderScheduler {
	return &AsynqReminderScheduler{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisReminderDB,
		}),
	}
}

func (s *AsynqReminderScheduler) ScheduleBookingReminder(booking models.Booking) error {
	start, err := time.ParseInLocation("2006-01-02 15:04", booking.Date+" "+booking.TimeSlot, time.Local)
	if err != nil {
		return fmt.Errorf("failed to parse booking start time: %w", err)
	}
	fireAt := start.Add(-1 * time.Hour)
	if fireAt.Before(time.Now()) {
		return nil
	}

	payload := models.ReminderPayload{
		BookingID:  booking.ID,
		CustomerID: booking.CustomerID,
		ProviderID: booking.ProviderID,
		Date:       booking.Date,
		TimeSlot:   booking.TimeSlot,
		Title:      "Upcoming appointment",
		Body:       fmt.Sprintf("Your %s booking with %s starts at %s.", booking.Category, booking.ProviderName, booking.TimeSlot),
	}
	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		return err
	}
	if _, err := s.client.Enqueue(task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}
	return nil
}
