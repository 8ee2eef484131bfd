package domain

import "errors"

// FailureReason is the machine-readable classification of a rental
// service failure.
type FailureReason string

const (
	// FailureInvalidInput marks caller-supplied data that fails a
	// structural or range constraint. Recoverable by resubmitting
	// corrected input.
	FailureInvalidInput FailureReason = "INVALID_INPUT"
	// FailureToolNotFound marks a tool code that does not resolve in
	// the catalog.
	FailureToolNotFound FailureReason = "TOOL_NOT_FOUND"
	// FailureInternal marks a catalog data-integrity violation. Not a
	// caller error and not retryable.
	FailureInternal FailureReason = "INTERNAL_ERROR"
)

// RentalError is the typed failure surfaced by the rental service. It
// always carries exactly one reason; validation short-circuits on the
// first violation.
type RentalError struct {
	Reason  FailureReason
	Message string
}

func (e *RentalError) Error() string {
	return e.Message
}

// NewRentalError builds a RentalError with the given reason and
// human-readable message.
func NewRentalError(reason FailureReason, message string) *RentalError {
	return &RentalError{Reason: reason, Message: message}
}

// ErrNotSupported marks operations that are part of the service surface
// but intentionally have no implementation yet. Distinct from the
// business failure reasons above.
var ErrNotSupported = errors.New("operation not supported")
