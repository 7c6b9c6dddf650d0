package contactform

import (
	"log/slog"
	"time"

	"github.com/launchpadhq/contactform/internal"
	"github.com/launchpadhq/contactform/pkg/logger"
	"github.com/launchpadhq/contactform/pkg/mailer"
	"github.com/launchpadhq/contactform/pkg/validator"
)

// Type aliases - public API
type (
	// Form orchestrates the contact-form lifecycle: validation, the
	// submit button state machine, and the success-path display sequence.
	Form = internal.Form

	// Field identifies one of the four contact-form fields.
	Field = internal.Field

	// Record is the trimmed input snapshot taken at submit time.
	Record = internal.Record

	// FormValues is the raw user input for a single submit attempt.
	FormValues = internal.FormValues

	// ValidationError is a single field validation failure.
	ValidationError = validator.ValidationError

	// ValidationErrors is a collection of validation errors.
	ValidationErrors = internal.ValidationErrors

	// Rules maps fields to their validation rules.
	Rules = validator.Rules

	// Validator validates records against a rule set.
	Validator = validator.Validator

	// Presenter is the presentation port: it receives every user-visible
	// state change the form makes.
	Presenter = internal.Presenter

	// NopPresenter discards all presentation calls.
	NopPresenter = internal.NopPresenter

	// ButtonState is the submit button lifecycle state.
	ButtonState = internal.ButtonState

	// Submitter delivers a validated record.
	Submitter = internal.Submitter

	// Result describes a completed submission.
	Result = internal.Result

	// Option configures a Form.
	Option = internal.Option

	// MailOption configures a MailSubmitter.
	MailOption = internal.MailOption

	// ContextExtractor extracts a slog attribute from context.
	// Used with NewLogger to add request-scoped values to logs.
	ContextExtractor = logger.ContextExtractor
)

// Field identifiers in display order.
const (
	FieldName    = internal.FieldName
	FieldEmail   = internal.FieldEmail
	FieldSubject = internal.FieldSubject
	FieldMessage = internal.FieldMessage
)

// Button states and labels.
const (
	ButtonIdle    = internal.ButtonIdle
	ButtonLoading = internal.ButtonLoading

	IdleLabel    = internal.IdleLabel
	LoadingLabel = internal.LoadingLabel
)

// Behavior defaults.
const (
	DefaultSubmitDelay      = internal.DefaultSubmitDelay
	DefaultSuccessHideAfter = internal.DefaultSuccessHideAfter
	DefaultSuccessMessage   = internal.DefaultSuccessMessage
	DefaultMailTimeout      = internal.DefaultMailTimeout
)

// Submission failure taxonomy.
var (
	ErrSubmitFailed    = internal.ErrSubmitFailed
	ErrSubmitTimeout   = internal.ErrSubmitTimeout
	ErrSubmitCancelled = internal.ErrSubmitCancelled
)

// Constructors

// New creates a form controller with the given options.
//
// Example:
//
//	form := contactform.New(
//	    contactform.WithPresenter(ui),
//	    contactform.WithSubmitter(contactform.NewMailSubmitter(m, "owner@example.com")),
//	    contactform.WithLogger(log),
//	)
func New(opts ...Option) *Form {
	return internal.NewForm(opts...)
}

// NewValidator creates a validator. Nil rules means the standard rule set.
func NewValidator(rules Rules) *Validator {
	return validator.New(rules)
}

// DefaultRules returns a fresh copy of the standard validation rules.
func DefaultRules() Rules {
	return validator.DefaultRules()
}

// NewStubSubmitter creates a submitter that waits the given delay, logs the
// record, and reports success. It stands in for a real transport during
// development.
func NewStubSubmitter(delay time.Duration, log *slog.Logger) Submitter {
	return internal.NewStubSubmitter(delay, log)
}

// NewMailSubmitter creates a submitter that emails each submission to the
// given recipient.
func NewMailSubmitter(m *mailer.Mailer, to string, opts ...MailOption) Submitter {
	return internal.NewMailSubmitter(m, to, opts...)
}

// Form options

// WithValidator sets the validator. Nil is ignored.
func WithValidator(v *Validator) Option {
	return internal.WithValidator(v)
}

// WithRules replaces the validation rule set.
func WithRules(rules Rules) Option {
	return internal.WithRules(rules)
}

// WithPresenter sets the presentation port. Nil is ignored.
func WithPresenter(p Presenter) Option {
	return internal.WithPresenter(p)
}

// WithSubmitter sets the submission transport. Nil is ignored.
func WithSubmitter(s Submitter) Option {
	return internal.WithSubmitter(s)
}

// WithLogger sets the form logger. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return internal.WithLogger(l)
}

// WithSuccessHideAfter sets how long the success message stays visible.
// Zero means it never hides.
func WithSuccessHideAfter(d time.Duration) Option {
	return internal.WithSuccessHideAfter(d)
}

// MailSubmitter options

// WithMailTimeout bounds each delivery attempt.
func WithMailTimeout(d time.Duration) MailOption {
	return internal.WithMailTimeout(d)
}

// WithMailTemplate sets the notification template filename.
func WithMailTemplate(name string) MailOption {
	return internal.WithMailTemplate(name)
}

// WithMailLogger sets the mail submitter logger.
func WithMailLogger(log *slog.Logger) MailOption {
	return internal.WithMailLogger(log)
}

// Logging

// NewLogger creates a structured logger with optional context extractors.
func NewLogger(extractors ...ContextExtractor) *slog.Logger {
	return logger.New(extractors...)
}
