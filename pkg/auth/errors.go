package auth

import "errors"

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidResetToken  = errors.New("invalid or expired reset token")
)

var (
	ErrMissingSecret   = errors.New("session signing secret is required")
	ErrInvalidCost     = errors.New("bcrypt cost out of range")
	ErrNilStorage      = errors.New("storage is required")
	ErrNilSessionCodec = errors.New("session codec is required")
)
