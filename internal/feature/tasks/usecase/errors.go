// Package usecase implements the business logic for the tasks feature.
package usecase

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the base error for rejected task input.
// The specific sentinels below wrap it, so callers can match either the
// broad category or the exact cause with errors.Is.
var ErrInvalidInput = errors.New("invalid input")

var (
	// ErrEmptyContent is returned when the task content is empty or whitespace-only.
	ErrEmptyContent = fmt.Errorf("%w: content must not be empty", ErrInvalidInput)

	// ErrMalformedDate is returned when the date is not a valid zero-padded YYYY-MM-DD string.
	ErrMalformedDate = fmt.Errorf("%w: date must be a valid YYYY-MM-DD string", ErrInvalidInput)

	// ErrUnknownUser is returned when the owning user does not exist.
	ErrUnknownUser = fmt.Errorf("%w: user does not exist", ErrInvalidInput)
)
