// Package internal contains the contact-form controller core.
//
// The public API in the root contactform package is a thin layer of type
// aliases and constructors over this package; import the root package
// instead of this one.
//
// # Architecture
//
// Form is the orchestrator. It owns the submit lifecycle:
//
//	Submit → clear errors → build Record → validate
//	       → errors: render summary + field state, stop
//	       → valid:  button Loading → Submitter → success sequence → Idle
//
// Three ports keep the controller testable without a rendering environment
// or a network:
//
//   - Presenter receives every user-visible state change (field invalid
//     state, summary errors, button state, success message). The web layer
//     implements it with HTMX out-of-band swaps; tests use a recording fake.
//   - Submitter delivers a validated record. StubSubmitter simulates the
//     round trip with a fixed delay; MailSubmitter is the real transport,
//     emailing each submission with a bounded timeout.
//   - validator.Validator maps records to validation errors and is a pure
//     dependency constructed from an immutable rule set.
//
// Real-time validation is split into two operations with different
// semantics: FieldBlur re-validates a single field, while FieldInput only
// clears an existing invalid marker without re-validating (the error text is
// recomputed on the next blur or submit).
package internal
