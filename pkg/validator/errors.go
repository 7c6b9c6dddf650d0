package validator

import "strings"

// ValidationError describes why a single field failed validation.
type ValidationError struct {
	Field   Field
	Message string
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return string(e.Field) + ": " + e.Message
}

// ValidationErrors is a collection of validation errors, at most one per
// field, ordered by field declaration order.
type ValidationErrors []ValidationError

// Error implements the error interface by joining all messages.
func (ve ValidationErrors) Error() string {
	msgs := make([]string, len(ve))
	for i, e := range ve {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}

// IsEmpty returns true if there are no validation errors.
func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Fields returns the fields that failed, in error order.
func (ve ValidationErrors) Fields() []Field {
	fields := make([]Field, len(ve))
	for i, e := range ve {
		fields[i] = e.Field
	}
	return fields
}

// ByField returns the error for the given field, or nil if the field passed.
func (ve ValidationErrors) ByField(f Field) *ValidationError {
	for i := range ve {
		if ve[i].Field == f {
			return &ve[i]
		}
	}
	return nil
}
