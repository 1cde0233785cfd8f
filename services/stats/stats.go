package stats

import (
	"time"

	bookingRepo "motorent/database/repository/booking"
	carRepo "motorent/database/repository/car"
	userRepo "motorent/database/repository/user"
	"motorent/models"
	"motorent/utils"
)

// StatsService aggregates the admin dashboard counters.
type StatsService interface {
	Collect() (*models.AdminStats, error)
}

// DefaultStatsService reads counters straight from the repositories; nothing
// here is cached.
type DefaultStatsService struct {
	Users    userRepo.UserRepository
	Cars     carRepo.CarRepository
	Bookings bookingRepo.BookingRepository
}

// Collect gathers total users, cars currently on the market, bookings whose
// end date is still in the future, and the revenue sum over all bookings.
func (s *DefaultStatsService) Collect() (*models.AdminStats, error) {
	users, err := s.Users.Count()
	if err != nil {
		return nil, utils.NewDependencyError("failed to count users", err)
	}
	cars, err := s.Cars.CountAvailable()
	if err != nil {
		return nil, utils.NewDependencyError("failed to count available cars", err)
	}
	active, err := s.Bookings.CountActive(time.Now())
	if err != nil {
		return nil, utils.NewDependencyError("failed to count active bookings", err)
	}
	revenue, err := s.Bookings.TotalRevenue()
	if err != nil {
		return nil, utils.NewDependencyError("failed to sum revenue", err)
	}

	return &models.AdminStats{
		TotalUsers:     users,
		AvailableCars:  cars,
		ActiveBookings: active,
		TotalRevenue:   revenue,
	}, nil
}
