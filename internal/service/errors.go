package service

import "errors"

// Service-level error kinds, mapped to status codes at the handler
// boundary.
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrValidation   = errors.New("validation failed")
)
