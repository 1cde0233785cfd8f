package models

import "time"

// Moderation statuses for a car listing.
const (
	CarStatusPending  = "pending"
	CarStatusApproved = "approved"
	CarStatusRejected = "rejected"
)

// Car represents a rentable car listing.
type Car struct {
	ID           string    `bson:"id" json:"id"`
	Brand        string    `bson:"brand" json:"brand"`
	Model        string    `bson:"model" json:"model"`
	Year         int       `bson:"year" json:"year"`
	Price        float64   `bson:"price" json:"price"` // daily rate
	Category     string    `bson:"category" json:"category"`
	Transmission string    `bson:"transmission" json:"transmission"`
	FuelType     string    `bson:"fuelType" json:"fuelType"`
	Seating      int       `bson:"seating" json:"seating"`
	Location     string    `bson:"location" json:"location"`
	Description  string    `bson:"description,omitempty" json:"description,omitempty"`
	ImageURL     string    `bson:"imageUrl" json:"imageUrl"`
	OwnerID      string    `bson:"ownerId" json:"ownerId"`
	Status       string    `bson:"status" json:"status"`
	Available    bool      `bson:"available" json:"available"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// CarSubmission carries the owner-supplied fields of a new listing.
// The image is uploaded separately and arrives here as a URL.
type CarSubmission struct {
	Brand        string  `form:"brand" json:"brand"`
	Model        string  `form:"model" json:"model"`
	Year         int     `form:"year" json:"year"`
	Price        float64 `form:"price" json:"price"`
	Category     string  `form:"category" json:"category"`
	Transmission string  `form:"transmission" json:"transmission"`
	FuelType     string  `form:"fuelType" json:"fuelType"`
	Seating      int     `form:"seating" json:"seating"`
	Location     string  `form:"location" json:"location"`
	Description  string  `form:"description" json:"description"`
	ImageURL     string  `form:"-" json:"-"`
}
