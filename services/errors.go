package services

import "errors"

// Command failure taxonomy. Unknown ids are deliberately NOT errors:
// commands that receive a reference that does not resolve no-op
// silently, keeping UI interactions non-blocking.
var (
	// ErrValidation marks an empty or invalid required input.
	ErrValidation = errors.New("validation failed")

	// ErrUnauthorized marks an admin command invoked by a non-staff actor.
	ErrUnauthorized = errors.New("unauthorized")
)
