package main

import (
	"context"
	"embed"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/go-chi/chi/v5"

	"github.com/launchpadhq/contactform"
	"github.com/launchpadhq/contactform/config"
	"github.com/launchpadhq/contactform/middlewares"
	"github.com/launchpadhq/contactform/pkg/health"
	"github.com/launchpadhq/contactform/pkg/logger"
	"github.com/launchpadhq/contactform/pkg/mailer"
	"github.com/launchpadhq/contactform/pkg/mailer/resend"
	"github.com/launchpadhq/contactform/web"
)

//go:embed templates
var templates embed.FS

func main() {
	cfg, err := config.Load(getEnv("CONFIG_FILE", "config.yaml"))
	if err != nil {
		slog.Error("config load failed", slog.Any("error", err))
		os.Exit(1)
	}

	log := logger.NewWithSentry(logger.SentryConfig{
		DSN:         cfg.Sentry.DSN,
		Environment: cfg.Sentry.Environment,
	}, middlewares.RequestIDExtractor())

	sub, err := fs.Sub(templates, "templates")
	if err != nil {
		log.Error("templates missing", slog.Any("error", err))
		os.Exit(1)
	}
	renderer := mailer.NewRenderer(sub)

	handler := web.NewHandler(
		web.WithLogger(log),
		web.WithTitle(cfg.Form.Title),
		web.WithForm(
			contactform.WithLogger(log),
			contactform.WithRules(cfg.Form.ValidationRules()),
			contactform.WithSubmitter(newSubmitter(cfg, renderer, log)),
			contactform.WithSuccessHideAfter(cfg.Form.SuccessHideAfter),
		),
	)

	r := chi.NewRouter()
	r.Use(
		middlewares.RequestID(),
		middlewares.Recover(middlewares.WithRecoverLogger(log)),
		middlewares.Timeout(30*time.Second),
	)
	handler.Routes(r)

	r.Get("/health/live", health.LivenessHandler())
	r.Get("/health/ready", health.ReadinessHandler(health.Checks{
		"templates": templatesCheck(renderer),
	}, health.WithLogger(log)))

	err = contactform.Run(r,
		contactform.Address(cfg.Server.Addr),
		contactform.Logger(log),
		contactform.ShutdownTimeout(cfg.Server.ShutdownTimeout),
		contactform.ShutdownHook(func(ctx context.Context) error {
			sentry.Flush(2 * time.Second)
			return nil
		}),
	)
	if err != nil {
		log.Error("server error", slog.Any("error", err))
		os.Exit(1)
	}
}

// newSubmitter picks the transport: real email delivery when an API key is
// configured, otherwise the development stub.
func newSubmitter(cfg *config.Config, renderer *mailer.Renderer, log *slog.Logger) contactform.Submitter {
	if !cfg.Mail.Enabled() {
		return contactform.NewStubSubmitter(cfg.Form.SubmitDelay, log)
	}

	m := mailer.New(
		resend.New(resend.Config{
			APIKey:      cfg.Mail.APIKey,
			SenderEmail: cfg.Mail.From,
			SenderName:  cfg.Mail.FromName,
		}),
		renderer,
		mailer.Config{FallbackSubject: "New contact form message"},
	)

	return contactform.NewMailSubmitter(m, cfg.Mail.To,
		contactform.WithMailTimeout(cfg.Mail.Timeout),
		contactform.WithMailLogger(log),
	)
}

// templatesCheck verifies the notification templates still render.
func templatesCheck(renderer *mailer.Renderer) health.CheckFunc {
	sample := map[string]any{
		"ID":      "healthcheck",
		"Name":    "Health Check",
		"Email":   "health@check.local",
		"Subject": "Readiness probe",
		"Message": "Rendering check.",
	}
	return func(ctx context.Context) error {
		_, err := renderer.Render("base.html", "contact.md", sample)
		return err
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
