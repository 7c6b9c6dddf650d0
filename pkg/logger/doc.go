// Package logger provides structured logging with context extraction and
// optional Sentry forwarding.
//
// It extends log/slog with two capabilities: attributes extracted from the
// request context on every log call, and fan-out of warnings and errors to
// Sentry with graceful fallback when no DSN is configured.
//
// # Basic usage
//
//	log := logger.New().With("app", "contactform")
//	log.InfoContext(ctx, "contact form submitted", slog.String("submission_id", id))
//
// # Context extractors
//
// A ContextExtractor pulls a request-scoped attribute out of context:
//
//	requestID := func(ctx context.Context) (slog.Attr, bool) {
//		if id, ok := ctx.Value(ctxKeyRequestID{}).(string); ok && id != "" {
//			return slog.String("request_id", id), true
//		}
//		return slog.Attr{}, false
//	}
//
//	log := logger.New(requestID)
//
// # Sentry
//
//	log := logger.NewWithSentry(logger.SentryConfig{
//		DSN:         cfg.SentryDSN,
//		Environment: cfg.Environment,
//	})
//
// With an empty DSN the logger silently stays stdout-only, so development
// and production share one code path.
package logger
