package user

import (
	"context"
	"errors"
	"fmt"

	sessionRepo "slotbook/database/repository/session"
	"slotbook/models"
	"slotbook/utils"

	"go.uber.org/zap"
)

// VerifyToken resolves token to its principal. Expired sessions are deleted
// on the way out.
func (s *DefaultUserService) VerifyToken(ctx context.Context, token string) (*models.Principal, error) {
	if token == "" {
		return nil, ErrTokenNotFound
	}

	hash := utils.HashToken(token)
	session, err := s.Sessions.Get(ctx, hash)
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrTokenNotFound
		}
		return nil, fmt.Errorf("failed to load auth session: %w", err)
	}

	if session.Expired(s.now(), s.TokenTTL) {
		if err := s.Sessions.Delete(ctx, hash); err != nil {
			utils.GetLogger().Warn("VerifyToken: Failed to delete expired session", zap.Error(err))
		}
		return nil, ErrTokenExpired
	}

	return &models.Principal{
		Username: session.Username,
		Role:     s.roleFor(session.Username),
	}, nil
}

// SweepExpiredSessions removes every expired session from the store.
func (s *DefaultUserService) SweepExpiredSessions(ctx context.Context) (int, error) {
	removed, err := s.Sessions.DeleteExpired(ctx, s.now(), s.TokenTTL)
	if err != nil {
		return removed, fmt.Errorf("failed to sweep sessions: %w", err)
	}
	return removed, nil
}
