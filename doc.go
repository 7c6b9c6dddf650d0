// Package contactform implements a server-rendered contact form with
// client-side feel: per-field validation on blur, lazy error clearing while
// typing, a submit button state machine, and a success sequence that resets
// the form and auto-hides its confirmation.
//
// The core is transport-agnostic. A [Form] validates a four-field record
// (name, email, subject, message) and reports every user-visible state
// change through the [Presenter] port; the web package renders those changes
// as htmx partial swaps, while tests drive the same port with fakes.
//
// # Quick Start
//
//	log := contactform.NewLogger()
//	handler := web.NewHandler(
//	    web.WithLogger(log),
//	    web.WithForm(contactform.WithSubmitter(
//	        contactform.NewStubSubmitter(contactform.DefaultSubmitDelay, log),
//	    )),
//	)
//
//	err := contactform.Run(handler.Router(),
//	    contactform.Address(":8080"),
//	    contactform.Logger(log),
//	)
//
// # Validation
//
// Each field carries one rule set; the first failing check wins, and
// required always beats length or format. Errors surface twice: a summary
// list above the form and an inline message next to the field. The standard
// rules live in [DefaultRules] and can be replaced per form with
// [WithRules].
//
// # Submission
//
// A [Submitter] delivers the validated record. [NewStubSubmitter] simulates
// a network round trip for development; [NewMailSubmitter] emails the
// record via the mailer package. Both preserve the same success sequence:
// reset the fields, show the confirmation, return the button to idle.
package contactform
