package service

import "errors"

var (
	// ErrInvalidInput marks missing, non-finite, zero or negative calculator fields.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidTargetTime marks a serving time that could not be parsed.
	ErrInvalidTargetTime = errors.New("invalid target time")
	// ErrPersistenceUnavailable marks a settings slot read/write failure.
	ErrPersistenceUnavailable = errors.New("settings storage unavailable")
)
