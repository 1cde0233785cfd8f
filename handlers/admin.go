// File: motorent/handlers/admin.go
package handlers

import (
	"net/http"

	"motorent/services/booking"
	"motorent/services/car"
	"motorent/services/stats"
	"motorent/services/user"
	"motorent/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler encapsulates elevated admin-level operations.
type AdminHandler struct {
	CarService     car.CarService
	BookingService booking.BookingService
	UserService    user.UserService
	StatsService   stats.StatsService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(cs car.CarService, bs booking.BookingService, us user.UserService, ss stats.StatsService) *AdminHandler {
	return &AdminHandler{
		CarService:     cs,
		BookingService: bs,
		UserService:    us,
		StatsService:   ss,
	}
}

// StatsHandler returns the dashboard counters.
func (ah *AdminHandler) StatsHandler(c *gin.Context) {
	collected, err := ah.StatsService.Collect()
	if err != nil {
		zap.L().Error("Failed to collect stats", zap.Error(err))
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, collected)
}

// GetAllBookingsHandler returns every booking with car details joined.
func (ah *AdminHandler) GetAllBookingsHandler(c *gin.Context) {
	bookings, err := ah.BookingService.GetAllBookings()
	if err != nil {
		zap.L().Error("Failed to fetch all bookings", zap.Error(err))
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetAllCarsHandler returns every listing regardless of status.
func (ah *AdminHandler) GetAllCarsHandler(c *gin.Context) {
	cars, err := ah.CarService.GetAllCars()
	if err != nil {
		zap.L().Error("Failed to fetch all cars", zap.Error(err))
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cars)
}

// ApproveCarHandler handles POST /api/admin/cars/:id/approve.
func (ah *AdminHandler) ApproveCarHandler(c *gin.Context) {
	ah.moderate(c, car.DecisionApprove, "Car approved")
}

// RejectCarHandler handles POST /api/admin/cars/:id/reject.
func (ah *AdminHandler) RejectCarHandler(c *gin.Context) {
	ah.moderate(c, car.DecisionReject, "Car rejected")
}

func (ah *AdminHandler) moderate(c *gin.Context, decision car.ModerationDecision, message string) {
	updated, err := ah.CarService.Moderate(c.Param("id"), decision)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": message, "car": updated})
}

// DeleteCarHandler handles DELETE /api/admin/cars/:id.
func (ah *AdminHandler) DeleteCarHandler(c *gin.Context) {
	if err := ah.CarService.Remove(c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Car deleted"})
}

// GetAllUsersHandler returns all users (password hashes excluded).
func (ah *AdminHandler) GetAllUsersHandler(c *gin.Context) {
	users, err := ah.UserService.GetAllUsers()
	if err != nil {
		zap.L().Error("Failed to fetch all users", zap.Error(err))
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}
