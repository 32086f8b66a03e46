package token

import "errors"

var (
	ErrInvalidLength = errors.New("token length must be positive")
	ErrRandomSource  = errors.New("failed to read random bytes")
)
