package bookingRepo

import (
	"time"

	"motorent/models"
)

// BookingRepository defines methods for booking data access. Bookings are
// insert-only; the ledger never updates or deletes a record.
type BookingRepository interface {
	// Create inserts a new booking record.
	Create(booking *models.Booking) error
	// GetByID retrieves a booking by its unique ID.
	GetByID(id string) (*models.Booking, error)
	// GetByUser retrieves all bookings made by a user, newest first.
	GetByUser(userID string) ([]models.Booking, error)
	// GetAll retrieves all bookings, newest first.
	GetAll() ([]models.Booking, error)
	// CountOverlapping counts Paid bookings for a car whose [startDate,
	// endDate) range intersects the given range.
	CountOverlapping(carID string, start, end time.Time) (int64, error)
	// FindExpired retrieves Paid bookings whose endDate is before today.
	FindExpired(today time.Time) ([]models.Booking, error)
	// CountActiveForCar counts Paid bookings for a car with endDate on or
	// after today.
	CountActiveForCar(carID string, today time.Time) (int64, error)
	// CountActive counts Paid bookings with endDate on or after now.
	CountActive(now time.Time) (int64, error)
	// TotalRevenue sums the total amount across all bookings.
	TotalRevenue() (float64, error)
}
