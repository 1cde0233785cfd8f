package user

import (
	"motorent/models"
)

// AuthResponse is returned on successful registration or login.
type AuthResponse struct {
	ID    string `json:"id"`
	Token string `json:"token"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// UserService owns user identity: registration, login and token revocation.
type UserService interface {
	// Register creates a user account and issues a token.
	Register(name, email, password string) (*AuthResponse, error)
	// Authenticate verifies credentials and issues a token.
	Authenticate(email, password string) (*AuthResponse, error)
	// RevokeToken drops the cached token hash so the bearer token stops
	// working before its expiry.
	RevokeToken(userID string) error
	// GetUserByID fetches a single user.
	GetUserByID(id string) (*models.User, error)
	// GetAllUsers returns all users (admin view).
	GetAllUsers() ([]models.User, error)
}
