package user

import (
	"context"
	"strings"
	"time"

	userRepo "motorent/database/repository/user"
	"motorent/models"
	"motorent/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// tokenTTL matches the JWT expiry; cached token hashes live as long as the
// token itself.
const tokenTTL = 7 * 24 * time.Hour

// DefaultUserService is the production UserService.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

// Register creates a user account with a bcrypt-hashed password and issues
// a token. The role always starts as "user"; admins are provisioned out of
// band.
func (s *DefaultUserService) Register(name, email, password string) (*AuthResponse, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" || email == "" || password == "" {
		return nil, utils.NewValidationError("name, email and password are required")
	}

	existing, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("Register: failed to check for existing user", zap.Error(err))
		return nil, utils.NewDependencyError("registration failed, please try again", err)
	}
	if existing != nil {
		return nil, utils.NewConflict("email already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("Register: failed to hash password", zap.Error(err))
		return nil, utils.NewDependencyError("registration failed, please try again", err)
	}

	usr := models.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hashed),
		Role:         models.RoleUser,
	}
	if err := s.Repo.Create(&usr); err != nil {
		utils.GetLogger().Error("Register: failed to create user", zap.Error(err))
		return nil, utils.NewDependencyError("registration failed, please try again", err)
	}

	return s.issueToken(&usr)
}

// Authenticate verifies credentials and issues a token.
func (s *DefaultUserService) Authenticate(email, password string) (*AuthResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	usr, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("Authenticate: failed to fetch user", zap.Error(err))
		return nil, utils.NewDependencyError("authentication failed, please try again", err)
	}
	if usr == nil {
		return nil, utils.NewUnauthorized("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(password)); err != nil {
		return nil, utils.NewUnauthorized("invalid email or password")
	}

	return s.issueToken(usr)
}

// issueToken signs a JWT carrying the role claim and caches its hash so
// revocation works before expiry.
func (s *DefaultUserService) issueToken(usr *models.User) (*AuthResponse, error) {
	token, err := utils.GenerateToken(usr.ID, usr.Email, usr.Role, tokenTTL)
	if err != nil {
		utils.GetLogger().Error("issueToken: failed to generate token", zap.Error(err))
		return nil, utils.NewDependencyError("failed to issue token", err)
	}

	cacheKey := utils.AuthCachePrefix + usr.ID
	if err := utils.GetAuthCacheClient().Set(context.Background(), cacheKey, utils.HashToken(token), tokenTTL).Err(); err != nil {
		utils.GetLogger().Warn("issueToken: failed to cache token hash", zap.Error(err))
	}

	return &AuthResponse{
		ID:    usr.ID,
		Token: token,
		Name:  usr.Name,
		Email: usr.Email,
		Role:  usr.Role,
	}, nil
}

// RevokeToken invalidates the user's current token by overwriting the cached
// hash. Any previously issued token stops matching.
func (s *DefaultUserService) RevokeToken(userID string) error {
	cacheKey := utils.AuthCachePrefix + userID
	if err := utils.GetAuthCacheClient().Set(context.Background(), cacheKey, "revoked", tokenTTL).Err(); err != nil {
		return utils.NewDependencyError("failed to revoke token", err)
	}
	return nil
}

// GetUserByID fetches a single user.
func (s *DefaultUserService) GetUserByID(id string) (*models.User, error) {
	usr, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, utils.NewDependencyError("failed to fetch user", err)
	}
	if usr == nil {
		return nil, utils.NewNotFound("user %s not found", id)
	}
	return usr, nil
}

// GetAllUsers returns all users. Password hashes never serialize (json:"-").
func (s *DefaultUserService) GetAllUsers() ([]models.User, error) {
	users, err := s.Repo.GetAll()
	if err != nil {
		return nil, utils.NewDependencyError("failed to fetch users", err)
	}
	return users, nil
}
