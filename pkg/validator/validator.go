package validator

import (
	"strings"
	"unicode/utf8"
)

// Validator checks contact-form records against an immutable rule set.
// The zero value is not usable; construct with New.
type Validator struct {
	rules Rules
}

// New creates a Validator from the given rules. Passing nil uses
// DefaultRules. The rules are copied, so later mutation of the argument has
// no effect on the validator.
func New(rules Rules) *Validator {
	if rules == nil {
		rules = DefaultRules()
	}
	return &Validator{rules: rules.clone()}
}

// Validate checks all fields of the record and returns the errors in field
// declaration order. An empty result means the record is valid.
func (v *Validator) Validate(rec Record) ValidationErrors {
	var errs ValidationErrors
	for _, f := range FieldOrder {
		if e := v.ValidateField(f, rec.ValueOf(f)); e != nil {
			errs = append(errs, *e)
		}
	}
	return errs
}

// ValidateField checks a single field value and returns at most one error.
// The required check takes precedence over the length and pattern checks;
// a whitespace-only value counts as missing. Unknown fields pass.
func (v *Validator) ValidateField(f Field, value string) *ValidationError {
	rule, ok := v.rules[f]
	if !ok {
		return nil
	}

	value = strings.TrimSpace(value)

	if value == "" {
		if rule.Required {
			return &ValidationError{Field: f, Message: rule.RequiredMessage}
		}
		return nil
	}

	if rule.MinLength > 0 && utf8.RuneCountInString(value) < rule.MinLength {
		return &ValidationError{Field: f, Message: rule.InvalidMessage}
	}

	if rule.Pattern != nil && !rule.Pattern.MatchString(value) {
		return &ValidationError{Field: f, Message: rule.InvalidMessage}
	}

	return nil
}
