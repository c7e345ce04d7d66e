package user

import "errors"

var (
	// Validation.
	ErrMissingCredentials = errors.New("username and password are required")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrPasswordTooLong    = errors.New("password is too long")

	// Authentication.
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrTokenNotFound      = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
)
