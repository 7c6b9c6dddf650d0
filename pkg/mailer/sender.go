package mailer

import (
	"context"
	"log/slog"
)

// Sender defines the minimal interface that email providers must implement.
// It accepts a fully-prepared Email and handles the actual delivery.
type Sender interface {
	// Send delivers an email message.
	// The Email must have To, Subject, and HTML already set.
	// Returns an error if delivery fails.
	Send(ctx context.Context, email *Email) error
}

// LogSender logs emails instead of delivering them. Use in development and
// tests where no provider credentials are available.
type LogSender struct {
	logger *slog.Logger
}

// NewLogSender creates a sender that writes email metadata to the logger.
func NewLogSender(log *slog.Logger) *LogSender {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &LogSender{logger: log}
}

// Send implements Sender by logging the email instead of delivering it.
func (s *LogSender) Send(ctx context.Context, email *Email) error {
	s.logger.InfoContext(ctx, "email (not sent, log sender)",
		slog.Any("to", email.To),
		slog.String("subject", email.Subject),
		slog.String("reply_to", email.ReplyTo),
		slog.Int("html_length", len(email.HTML)),
	)
	return nil
}
