package validator

// Field identifies one of the four contact-form fields.
type Field string

const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldSubject Field = "subject"
	FieldMessage Field = "message"
)

// FieldOrder is the declaration order of the form fields. Validation errors
// are always reported in this order.
var FieldOrder = []Field{FieldName, FieldEmail, FieldSubject, FieldMessage}

// IsValidField reports whether f names a known form field.
func IsValidField(f Field) bool {
	switch f {
	case FieldName, FieldEmail, FieldSubject, FieldMessage:
		return true
	}
	return false
}

// Record is a snapshot of user input taken at submit time. Values are
// expected to be trimmed of surrounding whitespace before validation;
// construction helpers in the form controller take care of that.
// A Record is ephemeral: built per submit attempt, discarded after use.
type Record struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// ValueOf returns the record value for the given field.
func (r Record) ValueOf(f Field) string {
	switch f {
	case FieldName:
		return r.Name
	case FieldEmail:
		return r.Email
	case FieldSubject:
		return r.Subject
	case FieldMessage:
		return r.Message
	}
	return ""
}
