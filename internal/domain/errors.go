package domain

import "errors"

var (
	// ErrInvalidProfile marks a profile that violates the engine's preconditions.
	ErrInvalidProfile = errors.New("invalid profile")

	// ErrInvalidCatalog marks a malformed vehicle catalog entry.
	ErrInvalidCatalog = errors.New("invalid vehicle catalog")

	// ErrProfileNotFound is returned when no profile is stored for a user.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrInvalidInput is returned for empty identifiers and similar caller mistakes.
	ErrInvalidInput = errors.New("invalid input")
)
