package routes

import (
	"net/http"
	"time"

	"homeserve/handlers"
	"homeserve/middleware"
	"homeserve/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterCustomerRoutes registers customer account endpoints.
func RegisterCustomerRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/customers")
	{
		api.POST("/register", hb.Customer.Register)
		api.POST("/login", hb.Customer.Login)

		// Protected routes (Require Authentication)
		api.Use(middleware.CustomerAuthMiddleware(hb.CustomerRepo))
		api.GET("/me", hb.Customer.Me)
		api.PUT("/me", hb.Customer.Update)
		api.DELETE("/me", hb.Customer.Delete)
		api.GET("/me/bookings", hb.Customer.MyBookings)
		api.POST("/me/tickets", hb.Ticket.CustomerCreate)
		api.GET("/me/tickets", hb.Ticket.CustomerList)
	}
}

// RegisterProviderRoutes registers provider management endpoints.
func RegisterProviderRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/providers")
	{
		// Public provider endpoints (registration, login, discovery)
		api.POST("/register", hb.Provider.Register)
		api.POST("/login", hb.Provider.Login)
		api.GET("", hb.Provider.List)
		api.GET("/id/:id", hb.Provider.Get)

		// Endpoints that modify provider data require authentication.
		protected := api.Group("")
		protected.Use(middleware.ProviderAuthMiddleware(hb.ProviderRepo))
		protected.PUT("/me/profile", hb.Provider.UpdateProfile)
		protected.PUT("/me/offerings", hb.Provider.UpdateOfferings)
		protected.POST("/me/documents", hb.Provider.SubmitDocument)
		protected.GET("/me/bookings", hb.Provider.MyBookings)
		protected.PUT("/me/bookings/:bookingID/status", hb.Provider.UpdateBookingStatus)
		protected.POST("/me/tickets", hb.Ticket.ProviderCreate)
		protected.GET("/me/tickets", hb.Ticket.ProviderList)
	}
}

// RegisterCatalogRoutes registers public catalog endpoints consumed by
// the booking details step.
func RegisterCatalogRoutes(r *gin.Engine) {
	api := r.Group("/api/catalog")
	{
		api.GET("/categories", handlers.GetCategoriesHandler)
		api.GET("/categories/:category/fields", handlers.GetCategoryFieldsHandler)
		api.GET("/timeslots", handlers.GetTimeSlotsHandler)
	}
}

// RegisterBookingRoutes sets up the endpoints for the booking engine.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/booking")
	{
		bookingGroup.Use(middleware.CustomerAuthMiddleware(hb.CustomerRepo))
		bookingGroup.POST("/session", hb.Booking.InitiateSession)
		bookingGroup.GET("/session/:sessionID", hb.Booking.GetSession)
		bookingGroup.PUT("/session/:sessionID", hb.Booking.UpdateSession)
		bookingGroup.POST("/session/:sessionID/proceed", hb.Booking.ProceedToPayment)
		bookingGroup.POST("/session/:sessionID/back", hb.Booking.BackToDetails)
		bookingGroup.POST("/session/:sessionID/confirm", hb.Booking.ConfirmBooking)
		bookingGroup.DELETE("/session/:sessionID", hb.Booking.CancelSession)

		bookingGroup.POST("/bookings/:bookingID/cancel", hb.Booking.CancelBooking)
		bookingGroup.POST("/bookings/:bookingID/review", hb.Booking.RateBooking)
	}
}

// RegisterAdminRoutes sets up endpoints for the admin console.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.AdminAuthMiddleware())
		adminGroup.GET("/sections", hb.Admin.Sections)
		adminGroup.GET("/verification/pending", hb.Admin.PendingVerifications)
		adminGroup.PUT("/verification/:id", hb.Admin.DecideVerification)
		adminGroup.DELETE("/reviews/:bookingID", hb.Admin.RemoveReview)
		adminGroup.GET("/categories", hb.Admin.Categories)
		adminGroup.GET("/tickets", hb.Admin.ListTickets)
		adminGroup.PUT("/tickets/:ticketID/status", hb.Admin.UpdateTicketStatus)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "dependencies": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterCustomerRoutes(r, hb)
	RegisterProviderRoutes(r, hb)
	RegisterCatalogRoutes(r)
	RegisterHealthRoute(r)
	RegisterBookingRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
