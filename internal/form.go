package internal

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/launchpadhq/contactform/pkg/logger"
	"github.com/launchpadhq/contactform/pkg/validator"
)

// Form orchestrates a contact-form lifecycle: submit-time validation, the
// Idle/Loading button state machine, and the success-path display sequence.
// All user-visible effects go through the Presenter port.
//
// A Form is cheap to construct; the web layer builds one per request around
// a request-scoped presenter, while embedded UIs can keep a single long-lived
// instance.
type Form struct {
	validator        *validator.Validator
	presenter        Presenter
	submitter        Submitter
	logger           *slog.Logger
	successHideAfter time.Duration

	mu      sync.Mutex
	state   ButtonState
	invalid map[Field]bool
}

// NewForm creates a form controller with the given options. Defaults:
// standard validation rules, no-op presenter, stub submitter, no-op logger,
// DefaultSuccessHideAfter auto-hide.
func NewForm(opts ...Option) *Form {
	f := &Form{
		validator:        validator.New(nil),
		presenter:        NopPresenter{},
		logger:           logger.NewNope(),
		successHideAfter: DefaultSuccessHideAfter,
		invalid:          make(map[Field]bool),
	}

	for _, opt := range opts {
		opt(f)
	}

	if f.submitter == nil {
		f.submitter = NewStubSubmitter(DefaultSubmitDelay, f.logger)
	}

	return f
}

// State returns the current button state.
func (f *Form) State() ButtonState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// IsFieldInvalid reports whether the field is currently marked invalid.
func (f *Form) IsFieldInvalid(field Field) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.invalid[field]
}

// Submit runs one submit attempt: prior error display is cleared, a trimmed
// record is built from the raw values, and validation runs over all fields.
//
// On validation failure the errors are rendered (summary plus per-field
// state) and returned; the loading state is never entered and the submitter
// is never called. Otherwise the button switches to Loading, the submitter
// runs, and on success the form resets, the success message is shown, and
// the button returns to Idle. A submitter failure surfaces through the same
// summary-error path and also returns the button to Idle.
func (f *Form) Submit(ctx context.Context, values FormValues) (*Result, ValidationErrors, error) {
	f.clearAllErrors()

	rec := NewRecord(values)

	if errs := f.validator.Validate(rec); !errs.IsEmpty() {
		f.presentValidationErrors(errs)
		return nil, errs, nil
	}

	f.setState(ButtonLoading)

	res, err := f.submitter.Submit(ctx, rec)
	if err != nil {
		f.setState(ButtonIdle)
		f.presenter.ShowSummaryErrors([]string{submitFailureMessage(err)})
		f.logger.ErrorContext(ctx, "contact form submission failed", slog.Any("error", err))
		return nil, nil, err
	}

	f.finishSubmit(ctx, res)
	return res, nil, nil
}

// finishSubmit runs the success-path display sequence. The order is part of
// the submitter contract and must hold for any transport: reset the fields,
// show the success message, return the button to Idle.
func (f *Form) finishSubmit(ctx context.Context, res *Result) {
	f.logger.InfoContext(ctx, "contact form accepted", slog.String("submission_id", res.ID))

	f.presenter.ResetFields()
	f.presenter.ShowSuccess(res.Message, f.successHideAfter)
	f.setState(ButtonIdle)
}

// FieldBlur validates a single field and synchronizes its visual state.
// Returns the validation error, if any.
func (f *Form) FieldBlur(field Field, value string) *validator.ValidationError {
	if !validator.IsValidField(field) {
		return nil
	}

	if err := f.validator.ValidateField(field, value); err != nil {
		f.markInvalid(field)
		f.presenter.SetFieldInvalid(field, err.Message)
		return err
	}

	f.unmarkInvalid(field)
	f.presenter.ClearFieldInvalid(field)
	return nil
}

// FieldInput handles the typing transition: editing a field currently marked
// invalid clears its invalid state immediately, without re-validating. The
// error text is only recomputed on the next blur or submit. Returns true if
// the state was cleared.
func (f *Form) FieldInput(field Field) bool {
	f.mu.Lock()
	marked := f.invalid[field]
	if marked {
		delete(f.invalid, field)
	}
	f.mu.Unlock()

	if marked {
		f.presenter.ClearFieldInvalid(field)
	}
	return marked
}

// presentValidationErrors renders the summary list and per-field state.
func (f *Form) presentValidationErrors(errs ValidationErrors) {
	messages := make([]string, len(errs))
	for i, e := range errs {
		messages[i] = e.Message
		f.markInvalid(e.Field)
		f.presenter.SetFieldInvalid(e.Field, e.Message)
	}
	f.presenter.ShowSummaryErrors(messages)
}

// clearAllErrors resets the error display and the invalid-field markers at
// the start of a submit attempt.
func (f *Form) clearAllErrors() {
	f.mu.Lock()
	clear(f.invalid)
	f.mu.Unlock()

	f.presenter.ClearErrors()
}

func (f *Form) setState(s ButtonState) {
	f.mu.Lock()
	f.state = s
	f.mu.Unlock()

	f.presenter.SetButtonState(s)
}

func (f *Form) markInvalid(field Field) {
	f.mu.Lock()
	f.invalid[field] = true
	f.mu.Unlock()
}

func (f *Form) unmarkInvalid(field Field) {
	f.mu.Lock()
	delete(f.invalid, field)
	f.mu.Unlock()
}
