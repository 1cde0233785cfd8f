package booking

import (
	"motorent/models"
)

// BookingService is the ledger of confirmed, paid reservations. It is the
// single write path for reservation facts: a booking is only ever created
// from a verified payment, and is immutable afterwards.
type BookingService interface {
	// CreateFromPayment records a paid reservation and takes the car off
	// the market. Callers must have verified the payment proof first.
	CreateFromPayment(proof models.PaymentProof, intent models.BookingIntent, userID string) (*models.Booking, error)
	// GetBookingsByUser returns a user's bookings with car details joined.
	GetBookingsByUser(userID string) ([]models.BookingWithCar, error)
	// GetBookingByID fetches a single booking.
	GetBookingByID(id string) (*models.Booking, error)
	// GetAllBookings returns every booking with car details joined (admin view).
	GetAllBookings() ([]models.BookingWithCar, error)
	// Quote computes the total amount for a car and date range without
	// writing anything.
	Quote(carID string, intent models.BookingIntent) (float64, error)
}
