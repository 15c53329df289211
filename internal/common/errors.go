// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Validation errors.
	ErrValidation = errors.New("invalid request")

	// Extraction errors.
	ErrExtractionAmbiguous = errors.New("no parsable amount found in description")

	// Classification errors.
	ErrNoTaxableAmount = errors.New("no taxable amount in description")
	ErrNoRuleMatched   = errors.New("no withholding tax rule matched")
	ErrAmbiguousRule   = errors.New("multiple withholding tax rules matched")

	// Computation errors. These indicate a catalog or configuration defect
	// rather than bad user input.
	ErrInvalidRate    = errors.New("effective rate outside (0, 100)")
	ErrInvalidGrossUp = errors.New("gross-up undefined for rate >= 100")

	// Configuration errors.
	ErrMissingConfig = errors.New("missing configuration")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// UserError represents an error that should be shown to the user.
// The user message is safe to surface; the wrapped error carries internal
// detail for structured logging only.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}

// UserMessage returns the user-facing message for an error, falling back to
// a generic message so internal detail never leaks to the caller.
func UserMessage(err error, fallback string) string {
	var userErr *UserError
	if errors.As(err, &userErr) {
		return userErr.UserMessage
	}
	switch {
	case errors.Is(err, ErrValidation):
		return err.Error()
	case errors.Is(err, ErrExtractionAmbiguous):
		return "could not find an amount in the description; please state the service and the amount paid"
	case errors.Is(err, ErrNoTaxableAmount),
		errors.Is(err, ErrNoRuleMatched),
		errors.Is(err, ErrAmbiguousRule):
		return "could not determine the applicable withholding tax for this transaction"
	case errors.Is(err, ErrInvalidRate), errors.Is(err, ErrInvalidGrossUp):
		return "tax computation failed; please try again later"
	}
	return fallback
}

// IsValidation reports whether the error is caused by bad request input, as
// opposed to an engine-internal failure. Callers use this to pick an HTTP
// status.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}
