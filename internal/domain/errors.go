package domain

import "errors"

var (
	// ErrNotFound is returned when a referenced idea or user does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidCursor is returned for pagination tokens that fail to decode.
	ErrInvalidCursor = errors.New("invalid cursor")

	// ErrForbidden is returned when the viewer may not act on an idea.
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidInput is returned for request payloads failing validation.
	ErrInvalidInput = errors.New("invalid input")
)
