package user

import (
	"context"
	"time"

	sessionRepo "slotbook/database/repository/session"
	userRepo "slotbook/database/repository/user"
	"slotbook/models"
)

type UserService interface {
	// Registration
	Register(ctx context.Context, username, password string) error

	// Authentication
	Login(ctx context.Context, username, password string) (*AuthResponse, error)
	VerifyToken(ctx context.Context, token string) (*models.Principal, error)

	// Housekeeping
	SweepExpiredSessions(ctx context.Context) (int, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo     userRepo.UserRepository
	Sessions sessionRepo.SessionRepository

	// TokenTTL is the maximum age of a session token.
	TokenTTL time.Duration
	// AdminUsernames receive models.RoleAdmin.
	AdminUsernames []string
	// BcryptCost of zero means bcrypt.DefaultCost.
	BcryptCost int
	// Now defaults to time.Now.
	Now func() time.Time
}

// AuthResponse is returned by a successful login.
type AuthResponse struct {
	Username string `json:"username"`
	Token    string `json:"token"`
}
