package internal

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/launchpadhq/contactform/pkg/logger"
)

// Submission defaults.
const (
	// DefaultSubmitDelay is how long the stub submitter waits before
	// reporting success, standing in for network latency.
	DefaultSubmitDelay = 1500 * time.Millisecond

	// DefaultSuccessHideAfter is how long the success message stays
	// visible before hiding itself.
	DefaultSuccessHideAfter = 5 * time.Second

	// DefaultSuccessMessage is shown after a successful submission.
	DefaultSuccessMessage = "Your message has been launched. We'll get back to you soon!"
)

// Result describes a completed submission.
type Result struct {
	// ID uniquely identifies the submission attempt.
	ID string

	// Message is the user-facing success text.
	Message string
}

// Submitter delivers a validated record. Implementations must honor context
// cancellation and return an error that wraps ErrSubmitFailed (or
// ErrSubmitTimeout) when delivery fails, so the controller can surface the
// failure through the summary-error path.
type Submitter interface {
	Submit(ctx context.Context, rec Record) (*Result, error)
}

// StubSubmitter simulates an asynchronous round trip: it waits a fixed delay,
// logs the record, and reports success. It is the integration point to swap
// in a real transport such as MailSubmitter; the controller's success-path
// sequence is identical either way.
type StubSubmitter struct {
	logger *slog.Logger
	delay  time.Duration
}

// NewStubSubmitter creates a stub submitter. A zero or negative delay falls
// back to DefaultSubmitDelay; a nil logger disables logging.
func NewStubSubmitter(delay time.Duration, log *slog.Logger) *StubSubmitter {
	if delay <= 0 {
		delay = DefaultSubmitDelay
	}
	if log == nil {
		log = logger.NewNope()
	}
	return &StubSubmitter{delay: delay, logger: log}
}

// Submit waits the configured delay, then logs the record and returns a
// success result. Cancelling the context aborts the wait.
func (s *StubSubmitter) Submit(ctx context.Context, rec Record) (*Result, error) {
	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return nil, errors.Join(ErrSubmitCancelled, ctx.Err())
	case <-timer.C:
	}

	id := uuid.NewString()
	s.logger.InfoContext(ctx, "contact form submitted",
		slog.String("submission_id", id),
		slog.String("name", rec.Name),
		slog.String("email", rec.Email),
		slog.String("subject", rec.Subject),
		slog.Int("message_length", len(rec.Message)),
	)

	return &Result{ID: id, Message: DefaultSuccessMessage}, nil
}
