// File: homeserve/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"homeserve/config"
	"homeserve/cron"
	"homeserve/database"
	bookingRepoPkg "homeserve/database/repository/booking"
	customerRepoPkg "homeserve/database/repository/customer"
	providerRepoPkg "homeserve/database/repository/provider"
	ticketRepoPkg "homeserve/database/repository/ticket"
	"homeserve/handlers"
	"homeserve/middleware"
	"homeserve/routes"
	"homeserve/services/booking"
	"homeserve/services/customer"
	"homeserve/services/provider"
	"homeserve/services/tasks"
	"homeserve/services/ticket"
	"homeserve/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	provRepo := providerRepoPkg.NewMongoProviderRepo()
	custRepo := customerRepoPkg.NewMongoCustomerRepo()
	bookRepo := bookingRepoPkg.NewMongoBookingRepo()
	tickRepo := ticketRepoPkg.NewMongoTicketRepo()

	// services.
	providerService := &provider.DefaultProviderService{Repo: provRepo}
	customerService := &customer.DefaultCustomerService{Repo: custRepo}
	ticketService := &ticket.DefaultTicketService{Repo: tickRepo}

	surgeService := booking.NewDefaultSurgeService(
		utils.GetPricingCacheClient(),
		config.AppConfig.SurgeStartHour,
		config.AppConfig.SurgeEndHour,
		config.AppConfig.SurgeMultiplier,
	)
	paymentHandler := booking.NewSimulatedPaymentHandler(logger)
	reminderScheduler := tasks.NewAsynqReminderScheduler()

	sessionService := &booking.DefaultSessionService{
		Store:          booking.NewRedisSessionStore(utils.GetSessionCacheClient()),
		ProviderRepo:   provRepo,
		BookingRepo:    bookRepo,
		Surge:          surgeService,
		Payments:       paymentHandler,
		Reminders:      reminderScheduler,
		CommissionRate: config.AppConfig.CommissionRate,
		SessionTTL:     time.Duration(config.AppConfig.SessionTTLMinutes) * time.Minute,
	}

	lifecycleService := &booking.DefaultLifecycleService{
		BookingRepo:  bookRepo,
		ProviderRepo: provRepo,
	}

	// Background worker for appointment reminders.
	cron.InitReminderWorker(bookRepo)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		ProviderRepo: provRepo,
		CustomerRepo: custRepo,

		Booking:  handlers.NewBookingHandler(sessionService, lifecycleService, logger),
		Provider: handlers.NewProviderHandler(providerService, lifecycleService, bookRepo),
		Customer: handlers.NewCustomerHandler(customerService, bookRepo),
		Admin:    handlers.NewAdminHandler(providerService, lifecycleService, ticketService),
		Ticket:   handlers.NewTicketHandler(ticketService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetSessionCacheClient(), utils.GetAuthCacheClient(), utils.GetPricingCacheClient()},
		database.MongoClient,
	)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
