package user

import (
	"slices"
	"time"

	"slotbook/models"

	"golang.org/x/crypto/bcrypt"
)

func (s *DefaultUserService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultUserService) bcryptCost() int {
	if s.BcryptCost == 0 {
		return bcrypt.DefaultCost
	}
	return s.BcryptCost
}

// roleFor resolves the role from configuration, so promoting or demoting an
// admin takes effect on the next request.
func (s *DefaultUserService) roleFor(username string) string {
	if slices.Contains(s.AdminUsernames, username) {
		return models.RoleAdmin
	}
	return models.RoleUser
}
