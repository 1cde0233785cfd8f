package routes

import (
	"net/http"
	"time"

	"motorent/handlers"
	"motorent/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the handlers the router wires up.
type HandlerBundle struct {
	Auth    *handlers.AuthHandler
	Car     *handlers.CarHandler
	Booking *handlers.BookingHandler
	Payment *handlers.PaymentHandler
	Admin   *handlers.AdminHandler
}

// RegisterAuthRoutes registers registration/login endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.Auth.RegisterHandler)
		api.POST("/login", hb.Auth.LoginHandler)

		api.POST("/logout", middleware.JWTAuthMiddleware(), hb.Auth.LogoutHandler)
	}
}

// RegisterCarRoutes registers the listing endpoints. Browsing is public;
// submitting a listing requires authentication.
func RegisterCarRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/cars")
	{
		api.GET("", hb.Car.ListCarsHandler)
		api.GET("/:id", hb.Car.GetCarByIDHandler)

		api.POST("", middleware.JWTAuthMiddleware(), hb.Car.SubmitCarHandler)
	}
}

// RegisterBookingRoutes registers the renter-facing booking reads.
func RegisterBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("", hb.Booking.GetMyBookingsHandler)
		api.GET("/:id", hb.Booking.GetBookingByIDHandler)
	}
}

// RegisterPaymentRoutes registers the checkout flow. Verification is the
// only write path into the booking ledger.
func RegisterPaymentRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/payment")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("/order", hb.Payment.CreateOrderHandler)
		api.POST("/verify", hb.Payment.VerifyPaymentHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.JWTAuthMiddleware(), middleware.AdminOnlyMiddleware())
		adminGroup.GET("/stats", hb.Admin.StatsHandler)
		adminGroup.GET("/bookings", hb.Admin.GetAllBookingsHandler)
		adminGroup.GET("/cars", hb.Admin.GetAllCarsHandler)
		adminGroup.POST("/cars/:id/approve", hb.Admin.ApproveCarHandler)
		adminGroup.POST("/cars/:id/reject", hb.Admin.RejectCarHandler)
		adminGroup.DELETE("/cars/:id", hb.Admin.DeleteCarHandler)
		adminGroup.GET("/users", hb.Admin.GetAllUsersHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Motorent"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterCarRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
