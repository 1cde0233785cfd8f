package reconciler

import (
	"time"

	bookingRepo "motorent/database/repository/booking"
	carRepo "motorent/database/repository/car"
	"motorent/models"
	"motorent/utils"

	"go.uber.org/zap"
)

// Reconciler derives each car's availability from the booking ledger. Once a
// car's last paid booking has ended it is put back on the market at the
// booking's return location. The booking ledger and this pass are the only
// writers of the available flag.
type Reconciler struct {
	Bookings bookingRepo.BookingRepository
	Cars     carRepo.CarRepository
}

// Run executes one reconciliation pass relative to now. Failures on a single
// car are logged and skipped; the pass continues and the next scheduled run
// retries. The pass is idempotent.
func (r *Reconciler) Run(now time.Time) {
	logger := utils.GetLogger()
	today := Midnight(now)

	expired, err := r.Bookings.FindExpired(today)
	if err != nil {
		logger.Error("reconciler: failed to load expired bookings", zap.Error(err))
		return
	}
	logger.Info("reconciler pass started",
		zap.Time("today", today),
		zap.Int("expiredBookings", len(expired)))

	// Process each car once, keeping the expired booking with the latest
	// end date so its return location wins.
	latest := make(map[string]models.Booking)
	for _, b := range expired {
		if cur, ok := latest[b.CarID]; !ok || b.EndDate.After(cur.EndDate) {
			latest[b.CarID] = b
		}
	}

	released := 0
	for carID, b := range latest {
		stillActive, err := r.Bookings.CountActiveForCar(carID, today)
		if err != nil {
			logger.Warn("reconciler: skipping car, active-booking check failed",
				zap.String("carId", carID), zap.Error(err))
			continue
		}
		if stillActive > 0 {
			// Another reservation still holds the car.
			continue
		}

		if err := r.Cars.MarkAvailableAt(carID, b.ReturnLocation); err != nil {
			logger.Warn("reconciler: skipping car, availability update failed",
				zap.String("carId", carID), zap.Error(err))
			continue
		}
		released++
		logger.Info("car released",
			zap.String("carId", carID),
			zap.String("location", b.ReturnLocation))
	}

	logger.Info("reconciler pass finished", zap.Int("released", released))
}

// Midnight truncates t to the start of its day in local time.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
