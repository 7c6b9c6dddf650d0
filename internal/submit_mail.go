package internal

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/launchpadhq/contactform/pkg/logger"
	"github.com/launchpadhq/contactform/pkg/mailer"
)

// DefaultMailTimeout bounds a single delivery attempt of MailSubmitter.
const DefaultMailTimeout = 10 * time.Second

// MailSubmitter delivers the record as an email notification. It is the
// real-transport replacement for StubSubmitter: same contract, same
// success-path sequence, plus explicit timeout and failure handling.
type MailSubmitter struct {
	mailer   *mailer.Mailer
	logger   *slog.Logger
	to       string
	template string
	timeout  time.Duration
}

// MailOption configures a MailSubmitter.
type MailOption func(*MailSubmitter)

// WithMailTimeout bounds each delivery attempt.
// Defaults to DefaultMailTimeout.
func WithMailTimeout(d time.Duration) MailOption {
	return func(s *MailSubmitter) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// WithMailTemplate sets the notification template filename.
// Defaults to "contact.md".
func WithMailTemplate(name string) MailOption {
	return func(s *MailSubmitter) {
		if name != "" {
			s.template = name
		}
	}
}

// WithMailLogger sets the submitter logger. Defaults to a no-op logger.
func WithMailLogger(log *slog.Logger) MailOption {
	return func(s *MailSubmitter) {
		if log != nil {
			s.logger = log
		}
	}
}

// NewMailSubmitter creates a submitter that emails each submission to the
// given recipient.
func NewMailSubmitter(m *mailer.Mailer, to string, opts ...MailOption) *MailSubmitter {
	s := &MailSubmitter{
		mailer:   m,
		logger:   logger.NewNope(),
		to:       to,
		template: "contact.md",
		timeout:  DefaultMailTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit renders and sends the notification email. The visitor's address
// becomes the Reply-To so the recipient can answer directly. Errors are
// mapped into the submit-failure taxonomy; timeouts are distinguishable
// via ErrSubmitTimeout.
func (s *MailSubmitter) Submit(ctx context.Context, rec Record) (*Result, error) {
	sendCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	id := uuid.NewString()

	err := s.mailer.Send(sendCtx, mailer.SendParams{
		To:       s.to,
		ReplyTo:  rec.Email,
		Template: s.template,
		Data: map[string]any{
			"ID":      id,
			"Name":    rec.Name,
			"Email":   rec.Email,
			"Subject": rec.Subject,
			"Message": rec.Message,
		},
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "contact form delivery failed",
			slog.String("submission_id", id),
			slog.Any("error", err),
		)
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, errors.Join(ErrSubmitTimeout, ErrSubmitFailed, err)
		}
		if errors.Is(err, context.Canceled) {
			return nil, errors.Join(ErrSubmitCancelled, err)
		}
		return nil, errors.Join(ErrSubmitFailed, err)
	}

	s.logger.InfoContext(ctx, "contact form delivered",
		slog.String("submission_id", id),
		slog.String("email", rec.Email),
		slog.String("subject", rec.Subject),
	)

	return &Result{ID: id, Message: DefaultSuccessMessage}, nil
}
