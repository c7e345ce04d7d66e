package user

import (
	"context"
	"errors"
	"fmt"

	userRepo "slotbook/database/repository/user"
	"slotbook/models"
	"slotbook/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Register validates the credentials and stores a new user with a bcrypt password hash.
func (s *DefaultUserService) Register(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return ErrMissingCredentials
	}

	if _, err := s.Repo.GetByUsername(ctx, username); err == nil {
		return ErrUsernameTaken
	} else if !errors.Is(err, userRepo.ErrUserNotFound) {
		return fmt.Errorf("failed to check username: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost())
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return ErrPasswordTooLong
		}
		utils.GetLogger().Error("Register: Failed to hash password", zap.Error(err))
		return fmt.Errorf("failed to hash password: %w", err)
	}

	userObj := &models.User{
		Username:     username,
		PasswordHash: string(hashedPassword),
		CreatedAt:    s.now(),
	}

	// Create re-checks uniqueness under its own lock; a concurrent register of
	// the same name lands here.
	if err := s.Repo.Create(ctx, userObj); err != nil {
		if errors.Is(err, userRepo.ErrUserExists) {
			return ErrUsernameTaken
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	utils.GetLogger().Info("User registered", zap.String("username", username), zap.String("role", s.roleFor(username)))
	return nil
}
