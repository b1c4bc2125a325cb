package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"homeserve/config"
	bookingRepo "homeserve/database/repository/booking"
	"homeserve/models"
	"homeserve/services/tasks"
	"homeserve/utils"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// InitReminderWorker runs the async reminder worker in the background.
func InitReminderWorker(bookings bookingRepo.BookingRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeSendReminder, handleReminderTask(bookings))

	// Start async worker with retry logic.
	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleReminderTask(bookings bookingRepo.BookingRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			utils.GetLogger().Error("invalid reminder payload", zap.Error(err))
			return err
		}

		booking, err := bookings.GetByID(p.BookingID)
		if err != nil {
			return err
		}
		// Cancelled or vanished bookings need no reminder.
		if booking == nil || booking.Status == models.BookingCancelled {
			return nil
		}

		utils.GetLogger().Info("booking reminder due",
			zap.String("bookingId", p.BookingID),
			zap.String("customerId", p.CustomerID),
			zap.String("providerId", p.ProviderID),
			zap.String("date", p.Date),
			zap.String("timeSlot", p.TimeSlot),
		)

		return bookings.UpdateSetDocument(p.BookingID, bson.M{
			"reminderSent": true,
			"updatedAt":    time.Now(),
		})
	}
}
