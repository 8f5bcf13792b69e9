package domain

import "errors"

var (
	// ErrInvalidInput is returned when a numeric precondition is violated.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidBatchSize is returned when a comparison batch is outside [MinOffers, MaxOffers].
	ErrInvalidBatchSize = errors.New("invalid batch size")

	// ErrExternalServiceUnavailable marks a failed or timed out text-generation call.
	// It is absorbed by the advisory layer and never returned to HTTP clients.
	ErrExternalServiceUnavailable = errors.New("external service unavailable")
)
