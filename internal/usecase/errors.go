package usecase

import (
	"errors"

	"campus-parking/pkg/utils"
)

var (
	ErrNotFound                = errors.New("not found")
	ErrAlreadyBooked           = errors.New("already booked")
	ErrInvalidRequest          = errors.New("invalid request")
	ErrConflict                = errors.New("conflict")
	ErrPaymentInitiationFailed = errors.New("payment initiation failed")
)

// ValidationError carries per-field messages and matches ErrInvalidRequest.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + utils.FormatValidationErrors(e.Fields)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidRequest
}

// isDomainError reports whether err is an expected business outcome rather than a store failure.
func isDomainError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrAlreadyBooked) ||
		errors.Is(err, ErrInvalidRequest) ||
		errors.Is(err, ErrConflict)
}
