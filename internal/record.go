package internal

import (
	"github.com/launchpadhq/contactform/pkg/sanitizer"
	"github.com/launchpadhq/contactform/pkg/validator"
)

// Type aliases shared with the public API.
type (
	// Field identifies one of the four contact-form fields.
	Field = validator.Field

	// Record is the trimmed four-field input snapshot taken at submit time.
	Record = validator.Record

	// ValidationErrors is a collection of validation errors.
	ValidationErrors = validator.ValidationErrors
)

// Field identifiers, re-exported for the public API and the web layer.
const (
	FieldName    = validator.FieldName
	FieldEmail   = validator.FieldEmail
	FieldSubject = validator.FieldSubject
	FieldMessage = validator.FieldMessage
)

// FormValues is the raw user input for a single submit attempt, exactly as
// received from the form fields.
type FormValues struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// NewRecord builds a Record from raw form values: every value is stripped of
// HTML markup and trimmed of surrounding whitespace. The record is ephemeral;
// it lives for one submit attempt only.
func NewRecord(v FormValues) Record {
	return Record{
		Name:    sanitizer.Plain(v.Name),
		Email:   sanitizer.Plain(v.Email),
		Subject: sanitizer.Plain(v.Subject),
		Message: sanitizer.Plain(v.Message),
	}
}
