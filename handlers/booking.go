package handlers

import (
	"net/http"

	"motorent/models"
	"motorent/services/booking"
	"motorent/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler exposes the renter-facing booking reads. All writes go
// through the payment verification path.
type BookingHandler struct {
	BookingService booking.BookingService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(bs booking.BookingService) *BookingHandler {
	return &BookingHandler{BookingService: bs}
}

// GetMyBookingsHandler handles GET /api/bookings.
func (h *BookingHandler) GetMyBookingsHandler(c *gin.Context) {
	userID := c.GetString("userID")

	bookings, err := h.BookingService.GetBookingsByUser(userID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// GetBookingByIDHandler handles GET /api/bookings/:id. A booking is visible
// only to its renter and to admins.
func (h *BookingHandler) GetBookingByIDHandler(c *gin.Context) {
	found, err := h.BookingService.GetBookingByID(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	if found.UserID != c.GetString("userID") && c.GetString("role") != models.RoleAdmin {
		utils.RespondError(c, utils.NewForbidden("not your booking"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": found})
}
