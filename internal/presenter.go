package internal

import "time"

// ButtonState is the state of the submit button lifecycle.
type ButtonState int

const (
	// ButtonIdle is the resting state: the button is enabled and invites
	// the user to submit.
	ButtonIdle ButtonState = iota

	// ButtonLoading is active while a submission is in flight: the button
	// is disabled and shows a progress label.
	ButtonLoading
)

// Submit button labels for each state.
const (
	IdleLabel    = "Launch Message"
	LoadingLabel = "Sending…"
)

// Label returns the user-visible button label for the state.
func (s ButtonState) Label() string {
	if s == ButtonLoading {
		return LoadingLabel
	}
	return IdleLabel
}

// Disabled reports whether the button is disabled in this state.
// The button is disabled exactly while a submission is in flight.
func (s ButtonState) Disabled() bool {
	return s == ButtonLoading
}

func (s ButtonState) String() string {
	if s == ButtonLoading {
		return "loading"
	}
	return "idle"
}

// Presenter is the presentation port of the form controller. It receives
// every user-visible state change, keeping the controller free of rendering
// concerns so it can be exercised without a browser or an HTTP stack.
//
// Implementations decide what "visible" means: the web presenter renders
// HTMX out-of-band swaps, tests use a recording fake, and NopPresenter
// discards everything.
type Presenter interface {
	// ClearErrors removes all prior error display, both the summary box
	// and any per-field invalid state. Called at the start of every
	// submit attempt.
	ClearErrors()

	// SetFieldInvalid marks a single field as invalid and shows its
	// inline error message.
	SetFieldInvalid(field Field, message string)

	// ClearFieldInvalid removes the invalid state from a single field.
	// The inline message is hidden; nothing is re-validated.
	ClearFieldInvalid(field Field)

	// ShowSummaryErrors displays the given messages in the summary error
	// box, scrolled into view. Validation failures and transport failures
	// share this path.
	ShowSummaryErrors(messages []string)

	// SetButtonState swaps the submit button between Idle and Loading.
	SetButtonState(state ButtonState)

	// ResetFields clears all form inputs after a successful submission.
	ResetFields()

	// ShowSuccess displays the success message, scrolled into view.
	// The message hides itself after hideAfter; zero means never.
	ShowSuccess(message string, hideAfter time.Duration)
}

// NopPresenter discards all presentation calls. It is the default when no
// presenter is configured, mirroring the no-op logger default.
type NopPresenter struct{}

func (NopPresenter) ClearErrors()                            {}
func (NopPresenter) SetFieldInvalid(Field, string)           {}
func (NopPresenter) ClearFieldInvalid(Field)                 {}
func (NopPresenter) ShowSummaryErrors([]string)              {}
func (NopPresenter) SetButtonState(ButtonState)              {}
func (NopPresenter) ResetFields()                            {}
func (NopPresenter) ShowSuccess(string, time.Duration)       {}
