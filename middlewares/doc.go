// Package middlewares provides HTTP middleware for the contact form service.
//
// # Request ID
//
// RequestID assigns a unique ID to each request for tracing. It checks
// incoming headers for an existing ID or generates a new one. Pair it with
// RequestIDExtractor so every request-scoped log entry carries request_id:
//
//	log := logger.New(middlewares.RequestIDExtractor())
//	r.Use(middlewares.RequestID())
//
// # Recover
//
// Recover catches handler panics, logs them, and responds 500:
//
//	r.Use(middlewares.Recover(middlewares.WithRecoverLogger(log)))
//
// # Timeout
//
// Timeout bounds each request's context. The submit path surfaces the
// deadline to the user as a timeout failure message:
//
//	r.Use(middlewares.Timeout(30 * time.Second))
//
// # Recommended Order
//
//	r.Use(
//	    middlewares.RequestID(),
//	    middlewares.Recover(middlewares.WithRecoverLogger(log)),
//	    middlewares.Timeout(30*time.Second),
//	)
package middlewares
