// File: motorent/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"motorent/config"
	"motorent/database"
	bookingRepoPkg "motorent/database/repository/booking"
	carRepoPkg "motorent/database/repository/car"
	userRepoPkg "motorent/database/repository/user"
	"motorent/handlers"
	"motorent/middleware"
	"motorent/routes"
	"motorent/services/booking"
	"motorent/services/car"
	"motorent/services/payment"
	"motorent/services/reconciler"
	"motorent/services/stats"
	"motorent/services/storage"
	"motorent/services/user"
	"motorent/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAuthCache()

	storageService, err := storage.NewCloudinaryStorageService(
		config.AppConfig.CloudinaryCloudName,
		config.AppConfig.CloudinaryAPIKey,
		config.AppConfig.CloudinaryAPISecret,
	)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	carRepo := carRepoPkg.NewMongoCarRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()

	// services.
	userService := &user.DefaultUserService{Repo: userRepo}
	carService := &car.DefaultCarService{Repo: carRepo}
	bookingService := &booking.DefaultBookingService{
		Repo:    bookingRepo,
		CarRepo: carRepo,
	}
	statsService := &stats.DefaultStatsService{
		Users:    userRepo,
		Cars:     carRepo,
		Bookings: bookingRepo,
	}
	gateway := payment.NewRazorpayGateway(
		config.AppConfig.PaymentKeyID,
		config.AppConfig.PaymentKeySecret,
	)

	// Availability reconciler: one pass at boot, then on the configured
	// schedule.
	recon := &reconciler.Reconciler{
		Bookings: bookingRepo,
		Cars:     carRepo,
	}
	reconCron, err := recon.Start(config.AppConfig.ReconcileSchedule)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to schedule reconciler: %v", err)
	}

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		Auth:    handlers.NewAuthHandler(userService),
		Car:     handlers.NewCarHandler(carService, storageService),
		Booking: handlers.NewBookingHandler(bookingService),
		Payment: handlers.NewPaymentHandler(gateway, bookingService),
		Admin:   handlers.NewAdminHandler(carService, bookingService, userService, statsService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

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

	reconCron.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
