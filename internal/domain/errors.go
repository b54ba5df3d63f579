package domain

import "errors"

// Domain errors (no external dependencies). Store operations report expected
// failures through these sentinels; nothing in the core panics.
var (
	ErrNotFound               = errors.New("resource not found")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrPendingApproval        = errors.New("vendor application pending admin approval")
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidInput           = errors.New("invalid input")
	ErrUnauthorized           = errors.New("not authenticated")
	ErrForbidden              = errors.New("access denied")
	ErrEmptyCart              = errors.New("cart is empty")
	ErrConflict               = errors.New("conflict with current state")
)
