package internal

import (
	"context"
	"errors"
)

var (
	// ErrSubmitFailed indicates the submitter could not deliver the record.
	ErrSubmitFailed = errors.New("failed to submit contact form")

	// ErrSubmitTimeout indicates the submitter gave up waiting on its
	// transport. It wraps ErrSubmitFailed so callers can match either.
	ErrSubmitTimeout = errors.New("contact form submission timed out")

	// ErrSubmitCancelled indicates the caller's context was cancelled
	// while the submission was in flight.
	ErrSubmitCancelled = errors.New("contact form submission cancelled")
)

// User-facing messages for submission failures. They travel through the same
// summary-error display path as validation messages.
const (
	TransportErrorMessage = "Something went wrong while sending your message. Please try again."
	TimeoutErrorMessage   = "Sending your message took too long. Please try again."
)

// submitFailureMessage maps a submitter error to its user-facing summary
// message. The underlying error is never exposed to the user.
func submitFailureMessage(err error) string {
	if errors.Is(err, ErrSubmitTimeout) || errors.Is(err, context.DeadlineExceeded) {
		return TimeoutErrorMessage
	}
	return TransportErrorMessage
}
