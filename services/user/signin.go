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

// Login checks the password and opens a new session. Every call mints a fresh
// token; earlier tokens of the same user stay valid until they expire.
func (s *DefaultUserService) Login(ctx context.Context, username, password string) (*AuthResponse, error) {
	if username == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	userRec, err := s.Repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userRec.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken()
	if err != nil {
		utils.GetLogger().Error("Login: Failed to generate token", zap.Error(err))
		return nil, err
	}

	session := models.AuthSession{
		TokenHash: utils.HashToken(token),
		Username:  userRec.Username,
		CreatedAt: s.now(),
	}
	if err := s.Sessions.Save(ctx, session, s.TokenTTL); err != nil {
		return nil, fmt.Errorf("failed to create auth session: %w", err)
	}

	return &AuthResponse{Username: userRec.Username, Token: token}, nil
}
