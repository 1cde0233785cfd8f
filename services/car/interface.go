package car

import (
	"motorent/models"
)

// ModerationDecision is an admin verdict on a pending listing.
type ModerationDecision string

const (
	DecisionApprove ModerationDecision = "approve"
	DecisionReject  ModerationDecision = "reject"
)

// SearchResult is one page of approved listings.
type SearchResult struct {
	Cars       []models.Car `json:"cars"`
	Total      int64        `json:"total"`
	TotalPages int64        `json:"totalPages"`
}

// CarService owns car listings and their moderation status.
type CarService interface {
	// Submit validates and stores a new listing as pending and unavailable.
	Submit(sub models.CarSubmission, ownerID string) (*models.Car, error)
	// GetCarByID fetches a single listing.
	GetCarByID(id string) (*models.Car, error)
	// SearchApproved returns the renter-facing page of approved listings.
	SearchApproved(search string, page, pageSize int) (*SearchResult, error)
	// Moderate applies an admin approve/reject decision.
	Moderate(id string, decision ModerationDecision) (*models.Car, error)
	// Remove hard-deletes a listing. Existing bookings keep their reference.
	Remove(id string) error
	// GetAllCars returns every listing regardless of status (admin view).
	GetAllCars() ([]models.Car, error)
}
