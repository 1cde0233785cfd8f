package carRepo

import (
	"motorent/models"
)

// CarRepository defines methods for car listing data access.
type CarRepository interface {
	// Create inserts a new car listing.
	Create(car *models.Car) error
	// GetByID retrieves a car by its unique ID.
	GetByID(id string) (*models.Car, error)
	// GetAll retrieves all cars regardless of status.
	GetAll() ([]models.Car, error)
	// SearchApproved retrieves approved cars matching a case-insensitive
	// substring over brand/model, newest first, with the total match count.
	SearchApproved(search string, skip, limit int64) ([]models.Car, int64, error)
	// SetStatus updates the moderation status and availability flag and
	// returns the updated car.
	SetStatus(id, status string, available bool) (*models.Car, error)
	// MarkUnavailable clears the availability flag.
	MarkUnavailable(id string) error
	// MarkAvailableAt sets the availability flag and relocates the car.
	MarkAvailableAt(id, location string) error
	// Delete removes a car listing by its ID.
	Delete(id string) error
	// CountAvailable counts approved cars currently marked available.
	CountAvailable() (int64, error)
}
