package service

import "errors"

var (
	// ErrValidation marks input rejected before any mutation took place.
	ErrValidation = errors.New("invalid input")

	// ErrInvalidCredentials is deliberately generic: it does not distinguish
	// an unknown email from a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
