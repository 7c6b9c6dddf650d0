package internal

import (
	"log/slog"
	"time"

	"github.com/launchpadhq/contactform/pkg/validator"
)

// Option configures the form controller.
type Option func(*Form)

// WithValidator sets a custom validator.
// If nil, the default rule set is used.
func WithValidator(v *validator.Validator) Option {
	return func(f *Form) {
		if v != nil {
			f.validator = v
		}
	}
}

// WithRules builds the validator from the given rule set.
// Convenience for WithValidator(validator.New(rules)).
func WithRules(rules validator.Rules) Option {
	return func(f *Form) {
		if rules != nil {
			f.validator = validator.New(rules)
		}
	}
}

// WithPresenter sets the presentation port.
// If nil, all presentation calls are discarded.
func WithPresenter(p Presenter) Option {
	return func(f *Form) {
		if p != nil {
			f.presenter = p
		}
	}
}

// WithSubmitter sets the submission transport.
// Defaults to a stub submitter with DefaultSubmitDelay.
func WithSubmitter(s Submitter) Option {
	return func(f *Form) {
		if s != nil {
			f.submitter = s
		}
	}
}

// WithLogger sets the controller logger.
// If nil, logging is disabled.
func WithLogger(l *slog.Logger) Option {
	return func(f *Form) {
		if l != nil {
			f.logger = l
		}
	}
}

// WithSuccessHideAfter sets how long the success message stays visible.
// Defaults to DefaultSuccessHideAfter; zero or negative keeps it visible.
func WithSuccessHideAfter(d time.Duration) Option {
	return func(f *Form) {
		f.successHideAfter = d
	}
}
