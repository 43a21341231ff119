package errors

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrLoginFailed  = errors.New("login failed")

	// ErrInvalidStay is returned when check-out is not after check-in.
	ErrInvalidStay = fmt.Errorf("check-out must be after check-in: %w", ErrInvalidInput)
	// ErrUnavailable is returned when a property is unknown or already booked.
	ErrUnavailable = fmt.Errorf("property unavailable: %w", ErrNotFound)
)
