package car

import (
	"strings"
	"time"

	carRepo "motorent/database/repository/car"
	"motorent/models"
	"motorent/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Seating and year bounds for listing submissions.
const (
	minYear    = 1900
	minSeating = 1
	maxSeating = 20
)

// DefaultCarService is the production CarService backed by a car repository.
type DefaultCarService struct {
	Repo carRepo.CarRepository
}

// Submit validates the owner-supplied fields and stores the listing as
// pending and unavailable until an admin approves it.
func (s *DefaultCarService) Submit(sub models.CarSubmission, ownerID string) (*models.Car, error) {
	if err := validateSubmission(sub); err != nil {
		return nil, err
	}

	now := time.Now()
	car := models.Car{
		ID:           uuid.New().String(),
		Brand:        strings.TrimSpace(sub.Brand),
		Model:        strings.TrimSpace(sub.Model),
		Year:         sub.Year,
		Price:        sub.Price,
		Category:     sub.Category,
		Transmission: sub.Transmission,
		FuelType:     sub.FuelType,
		Seating:      sub.Seating,
		Location:     sub.Location,
		Description:  sub.Description,
		ImageURL:     sub.ImageURL,
		OwnerID:      ownerID,
		Status:       models.CarStatusPending,
		Available:    false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.Repo.Create(&car); err != nil {
		utils.GetLogger().Error("Submit: failed to create car", zap.Error(err))
		return nil, utils.NewDependencyError("failed to store listing", err)
	}
	return &car, nil
}

func validateSubmission(sub models.CarSubmission) error {
	required := map[string]string{
		"brand":        sub.Brand,
		"model":        sub.Model,
		"category":     sub.Category,
		"transmission": sub.Transmission,
		"fuelType":     sub.FuelType,
		"location":     sub.Location,
	}
	for field, value := range required {
		if strings.TrimSpace(value) == "" {
			return utils.NewValidationError("missing required field: %s", field)
		}
	}
	if sub.ImageURL == "" {
		return utils.NewValidationError("missing required field: image")
	}
	if maxYear := time.Now().Year() + 1; sub.Year < minYear || sub.Year > maxYear {
		return utils.NewValidationError("year must be between %d and %d", minYear, maxYear)
	}
	if sub.Price <= 0 {
		return utils.NewValidationError("price must be positive")
	}
	if sub.Seating < minSeating || sub.Seating > maxSeating {
		return utils.NewValidationError("seating must be between %d and %d", minSeating, maxSeating)
	}
	return nil
}

// GetCarByID fetches a single listing.
func (s *DefaultCarService) GetCarByID(id string) (*models.Car, error) {
	car, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, utils.NewDependencyError("failed to fetch listing", err)
	}
	if car == nil {
		return nil, utils.NewNotFound("car %s not found", id)
	}
	return car, nil
}

// SearchApproved returns one page of approved listings. Only approved cars
// are ever offered to renters.
func (s *DefaultCarService) SearchApproved(search string, page, pageSize int) (*SearchResult, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 12
	}
	skip := int64(page-1) * int64(pageSize)

	cars, total, err := s.Repo.SearchApproved(strings.TrimSpace(search), skip, int64(pageSize))
	if err != nil {
		return nil, utils.NewDependencyError("failed to search listings", err)
	}

	totalPages := (total + int64(pageSize) - 1) / int64(pageSize)
	return &SearchResult{Cars: cars, Total: total, TotalPages: totalPages}, nil
}

// Moderate applies an admin decision. Approval makes the car rentable;
// rejection takes it off the market.
func (s *DefaultCarService) Moderate(id string, decision ModerationDecision) (*models.Car, error) {
	var status string
	var available bool
	switch decision {
	case DecisionApprove:
		status, available = models.CarStatusApproved, true
	case DecisionReject:
		status, available = models.CarStatusRejected, false
	default:
		return nil, utils.NewValidationError("unknown moderation decision: %s", decision)
	}

	car, err := s.Repo.SetStatus(id, status, available)
	if err != nil {
		utils.GetLogger().Error("Moderate: status update failed", zap.String("id", id), zap.Error(err))
		return nil, utils.NewDependencyError("failed to update listing", err)
	}
	if car == nil {
		return nil, utils.NewNotFound("car %s not found", id)
	}
	return car, nil
}

// Remove hard-deletes a listing. Bookings referencing it are kept; the
// renter-facing join tolerates the orphan.
func (s *DefaultCarService) Remove(id string) error {
	car, err := s.Repo.GetByID(id)
	if err != nil {
		return utils.NewDependencyError("failed to fetch listing", err)
	}
	if car == nil {
		return utils.NewNotFound("car %s not found", id)
	}
	if err := s.Repo.Delete(id); err != nil {
		utils.GetLogger().Error("Remove: delete failed", zap.String("id", id), zap.Error(err))
		return utils.NewDependencyError("failed to delete listing", err)
	}
	return nil
}

// GetAllCars returns every listing regardless of status.
func (s *DefaultCarService) GetAllCars() ([]models.Car, error) {
	cars, err := s.Repo.GetAll()
	if err != nil {
		return nil, utils.NewDependencyError("failed to fetch listings", err)
	}
	return cars, nil
}
