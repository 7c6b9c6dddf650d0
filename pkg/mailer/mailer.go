package mailer

import (
	"bytes"
	"context"
	"errors"
	texttemplate "text/template"
)

// Config holds mailer configuration.
type Config struct {
	FallbackSubject string
	DefaultLayout   string
}

// Mailer provides high-level email sending with template rendering.
type Mailer struct {
	sender   Sender
	renderer *Renderer
	config   Config
}

// New creates a new Mailer with the given sender and renderer.
func New(sender Sender, renderer *Renderer, cfg Config) *Mailer {
	if cfg.FallbackSubject == "" {
		cfg.FallbackSubject = "Notification"
	}
	if cfg.DefaultLayout == "" {
		cfg.DefaultLayout = "base.html"
	}
	return &Mailer{
		sender:   sender,
		renderer: renderer,
		config:   cfg,
	}
}

// SendParams contains parameters for sending a templated email.
type SendParams struct {
	To       string // Single recipient
	Template string // Template filename (e.g., "contact.md")
	Data     any    // Template data

	// Optional overrides
	Subject string // Override template subject
	Layout  string // Override default layout
	From    string // Override default sender
	ReplyTo string // Reply-to address
}

// Send renders a template and sends an email.
// Subject resolution: params.Subject > template metadata > config fallback.
// The subject itself is processed as a template, so it may reference Data.
func (m *Mailer) Send(ctx context.Context, params SendParams) error {
	if params.To == "" {
		return ErrNoRecipient
	}

	layout := params.Layout
	if layout == "" {
		layout = m.config.DefaultLayout
	}

	result, err := m.renderer.Render(layout, params.Template, params.Data)
	if err != nil {
		return errors.Join(ErrRenderFailed, err)
	}

	subject := params.Subject
	if subject == "" {
		if fromMeta, ok := result.Metadata["Subject"].(string); ok {
			subject = fromMeta
		} else {
			subject = m.config.FallbackSubject
		}
	}

	subject, err = m.processSubject(subject, params.Data)
	if err != nil {
		return errors.Join(ErrRenderFailed, err)
	}

	email := &Email{
		To:      []string{params.To},
		Subject: subject,
		HTML:    result.HTML,
		Text:    result.Text,
		From:    params.From,
		ReplyTo: params.ReplyTo,
	}

	if err := m.sender.Send(ctx, email); err != nil {
		return errors.Join(ErrSendFailed, err)
	}

	return nil
}

func (m *Mailer) processSubject(subject string, data any) (string, error) {
	tmpl, err := texttemplate.New("subject").Parse(subject)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}
