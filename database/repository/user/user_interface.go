package userRepo

import (
	"context"
	"errors"

	"slotbook/models"
)

var (
	ErrUserExists   = errors.New("user already exists")
	ErrUserNotFound = errors.New("user not found")
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// Create inserts a new user record; ErrUserExists if the username is taken.
	Create(ctx context.Context, user *models.User) error
	// GetByUsername retrieves a user by username; ErrUserNotFound if absent.
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}
