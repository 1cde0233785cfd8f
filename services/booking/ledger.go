package booking

import (
	"time"

	bookingRepo "motorent/database/repository/booking"
	carRepo "motorent/database/repository/car"
	"motorent/models"
	"motorent/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultBookingService is the production BookingService.
type DefaultBookingService struct {
	Repo    bookingRepo.BookingRepository
	CarRepo carRepo.CarRepository
}

// CreateFromPayment validates the intent against the listing, computes the
// amount server-side, rejects overlapping reservations, then persists the
// booking and flips the car to unavailable.
//
// The insert and the availability flip are two separate writes. If the flip
// fails the booking stands, the failure is surfaced, and the reconciler is
// the backstop that eventually corrects the drift.
func (s *DefaultBookingService) CreateFromPayment(proof models.PaymentProof, intent models.BookingIntent, userID string) (*models.Booking, error) {
	logger := utils.GetLogger()

	car, err := s.validateIntent(intent)
	if err != nil {
		return nil, err
	}

	overlapping, err := s.Repo.CountOverlapping(intent.CarID, intent.StartDate, intent.EndDate)
	if err != nil {
		return nil, utils.NewDependencyError("failed to check existing reservations", err)
	}
	if overlapping > 0 {
		return nil, utils.NewConflict("car is already reserved for part of the requested dates")
	}

	booking := models.Booking{
		ID:             uuid.New().String(),
		UserID:         userID,
		CarID:          intent.CarID,
		StartDate:      intent.StartDate,
		EndDate:        intent.EndDate,
		PickupLocation: intent.PickupLocation,
		ReturnLocation: intent.ReturnLocation,
		TotalAmount:    TotalAmount(intent.StartDate, intent.EndDate, car.Price),
		TransactionID:  proof.PaymentID,
		PaymentStatus:  models.PaymentStatusPaid,
		CreatedAt:      time.Now(),
	}

	if err := s.Repo.Create(&booking); err != nil {
		logger.Error("CreateFromPayment: failed to persist booking",
			zap.String("carId", intent.CarID), zap.Error(err))
		return nil, utils.NewDependencyError("failed to record booking", err)
	}

	if err := s.CarRepo.MarkUnavailable(intent.CarID); err != nil {
		// The booking is already recorded; surface the drift instead of
		// pretending the pair was atomic. The next reconciler pass will
		// not undo the booking, so the flag stays wrong until repaired
		// out of band.
		logger.Error("CreateFromPayment: booking recorded but availability update failed",
			zap.String("bookingId", booking.ID),
			zap.String("carId", intent.CarID),
			zap.Error(err))
		return &booking, utils.NewDependencyError("booking recorded but car availability update failed", err)
	}

	logger.Info("booking created",
		zap.String("bookingId", booking.ID),
		zap.String("carId", booking.CarID),
		zap.Float64("amount", booking.TotalAmount))
	return &booking, nil
}

// validateIntent checks the date range and the listing the intent targets.
func (s *DefaultBookingService) validateIntent(intent models.BookingIntent) (*models.Car, error) {
	if intent.CarID == "" {
		return nil, utils.NewValidationError("missing required field: carId")
	}
	if intent.StartDate.IsZero() || intent.EndDate.IsZero() {
		return nil, utils.NewValidationError("startDate and endDate are required")
	}
	if !intent.EndDate.After(intent.StartDate) {
		return nil, utils.NewValidationError("endDate must be after startDate")
	}
	if intent.PickupLocation == "" || intent.ReturnLocation == "" {
		return nil, utils.NewValidationError("pickupLocation and returnLocation are required")
	}

	car, err := s.CarRepo.GetByID(intent.CarID)
	if err != nil {
		return nil, utils.NewDependencyError("failed to fetch car", err)
	}
	if car == nil {
		return nil, utils.NewNotFound("car %s not found", intent.CarID)
	}
	if car.Status != models.CarStatusApproved {
		return nil, utils.NewValidationError("car is not approved for rental")
	}
	return car, nil
}

// Quote computes the total amount for a car and date range without writing
// anything. Used to create the gateway order before checkout.
func (s *DefaultBookingService) Quote(carID string, intent models.BookingIntent) (float64, error) {
	intent.CarID = carID
	car, err := s.validateIntent(intent)
	if err != nil {
		return 0, err
	}
	return TotalAmount(intent.StartDate, intent.EndDate, car.Price), nil
}

// GetBookingsByUser returns a user's bookings, newest first, with car
// details joined at read time. A booking whose car was deleted keeps a nil
// car rather than disappearing.
func (s *DefaultBookingService) GetBookingsByUser(userID string) ([]models.BookingWithCar, error) {
	bookings, err := s.Repo.GetByUser(userID)
	if err != nil {
		return nil, utils.NewDependencyError("failed to fetch bookings", err)
	}
	return s.joinCars(bookings), nil
}

// GetAllBookings returns every booking with car details joined.
func (s *DefaultBookingService) GetAllBookings() ([]models.BookingWithCar, error) {
	bookings, err := s.Repo.GetAll()
	if err != nil {
		return nil, utils.NewDependencyError("failed to fetch bookings", err)
	}
	return s.joinCars(bookings), nil
}

func (s *DefaultBookingService) joinCars(bookings []models.Booking) []models.BookingWithCar {
	logger := utils.GetLogger()
	cache := make(map[string]*models.Car)

	joined := make([]models.BookingWithCar, 0, len(bookings))
	for _, b := range bookings {
		car, seen := cache[b.CarID]
		if !seen {
			var err error
			car, err = s.CarRepo.GetByID(b.CarID)
			if err != nil {
				logger.Warn("joinCars: car lookup failed",
					zap.String("carId", b.CarID), zap.Error(err))
			}
			cache[b.CarID] = car
		}
		joined = append(joined, models.BookingWithCar{Booking: b, Car: car})
	}
	return joined
}

// GetBookingByID fetches a single booking.
func (s *DefaultBookingService) GetBookingByID(id string) (*models.Booking, error) {
	booking, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, utils.NewDependencyError("failed to fetch booking", err)
	}
	if booking == nil {
		return nil, utils.NewNotFound("booking %s not found", id)
	}
	return booking, nil
}
