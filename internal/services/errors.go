package services

import "errors"

// Sentinel errors the handlers translate into HTTP responses. Everything
// else that comes out of a service is a store failure and maps to 500.
var (
	ErrDuplicateEmail  = errors.New("email already registered")
	ErrUserNotFound    = errors.New("user not found")
	ErrNotConfirmed    = errors.New("account not confirmed")
	ErrInvalidPassword = errors.New("invalid password")
	ErrUtilityNotFound = errors.New("utility not found")
	ErrDelivery        = errors.New("mail delivery failed")
)
