package web

import (
	"time"

	"github.com/launchpadhq/contactform/internal"
)

// htmxPresenter is the server-rendered implementation of the presentation
// port. It lives for one request: the form controller reports state changes
// through the interface, the presenter folds them into a FormState, and the
// handler renders that state as the response. Intermediate states (Loading
// while the submitter runs) are absorbed; only the final state reaches the
// wire, since the browser shows the in-flight state on its own.
type htmxPresenter struct {
	state FormState
	reset bool
}

var _ internal.Presenter = (*htmxPresenter)(nil)

func newPresenter(values internal.FormValues) *htmxPresenter {
	return &htmxPresenter{
		state: FormState{
			Values:      values,
			FieldErrors: make(map[internal.Field]string),
		},
	}
}

func (p *htmxPresenter) ClearErrors() {
	clear(p.state.FieldErrors)
	p.state.Summary = nil
}

func (p *htmxPresenter) SetFieldInvalid(field internal.Field, message string) {
	p.state.FieldErrors[field] = message
}

func (p *htmxPresenter) ClearFieldInvalid(field internal.Field) {
	delete(p.state.FieldErrors, field)
}

func (p *htmxPresenter) ShowSummaryErrors(messages []string) {
	p.state.Summary = messages
}

func (p *htmxPresenter) SetButtonState(state internal.ButtonState) {
	p.state.Button = state
}

func (p *htmxPresenter) ResetFields() {
	p.state.Values = internal.FormValues{}
	p.reset = true
}

func (p *htmxPresenter) ShowSuccess(message string, hideAfter time.Duration) {
	p.state.Success = message
	p.state.SuccessHideAfter = hideAfter
}

// FormState returns the accumulated render state.
func (p *htmxPresenter) FormState() FormState {
	return p.state
}
