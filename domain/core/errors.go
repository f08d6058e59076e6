package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Not found errors
	ErrNotFound         = errors.New("resource not found")
	ErrAnalysisNotFound = fmt.Errorf("%w: analysis", ErrNotFound)

	// Validation errors
	ErrInvalidInput         = errors.New("invalid input")
	ErrNegativeCount        = fmt.Errorf("%w: counts must be non-negative", ErrInvalidInput)
	ErrSuccessExceedsTrials = fmt.Errorf("%w: successes exceed trials", ErrInvalidInput)
	ErrNonPositivePrior     = fmt.Errorf("%w: prior hyperparameters must be positive", ErrInvalidInput)
	ErrBadTableShape        = fmt.Errorf("%w: contingency table must be 2x2", ErrInvalidInput)

	// Estimation errors
	ErrInsufficientSamples = errors.New("insufficient posterior samples")
	ErrNumericDegenerate   = errors.New("degenerate draw produced non-finite value")
)

// Error constructors with context
func NewValidationError(field string, reason string) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidInput, field, reason)
}

func NewAnalysisNotFoundError(id AnalysisID) error {
	return fmt.Errorf("%w with id %s", ErrAnalysisNotFound, id)
}

func NewInsufficientSamplesError(got, want int) error {
	return fmt.Errorf("%w: got %d, need at least %d", ErrInsufficientSamples, got, want)
}

// Error checking helpers
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsInsufficientSamples(err error) bool {
	return errors.Is(err, ErrInsufficientSamples)
}
