package validator

import "regexp"

// EmailPattern matches a plausible email address: no whitespace or extra "@"
// on either side, and at least one dot in the domain part.
const EmailPattern = `^[^\s@]+@[^\s@]+\.[^\s@]+$`

var emailRegexp = regexp.MustCompile(EmailPattern)

// Rule is the static validation configuration for a single field.
// The required check always runs first; the length and pattern checks only
// apply to non-empty values, so a field yields at most one error.
type Rule struct {
	// Pattern, when non-nil, must match the trimmed value.
	Pattern *regexp.Regexp

	// RequiredMessage is reported when the trimmed value is empty.
	RequiredMessage string

	// InvalidMessage is reported when the length or pattern check fails.
	InvalidMessage string

	// MinLength, when positive, is the minimum rune count of the value.
	MinLength int

	// Required marks the field as mandatory.
	Required bool
}

// Rules maps each field to its validation rule. A Rules value is treated as
// immutable configuration: the Validator copies it at construction and never
// mutates it afterwards.
type Rules map[Field]Rule

// DefaultRules returns the standard contact-form rule set.
func DefaultRules() Rules {
	return Rules{
		FieldName: {
			Required:        true,
			MinLength:       2,
			RequiredMessage: "Name is required",
			InvalidMessage:  "Name must be at least 2 characters",
		},
		FieldEmail: {
			Required:        true,
			Pattern:         emailRegexp,
			RequiredMessage: "Email is required",
			InvalidMessage:  "Please enter a valid email address",
		},
		FieldSubject: {
			Required:        true,
			MinLength:       3,
			RequiredMessage: "Subject is required",
			InvalidMessage:  "Subject must be at least 3 characters",
		},
		FieldMessage: {
			Required:        true,
			MinLength:       10,
			RequiredMessage: "Message is required",
			InvalidMessage:  "Message must be at least 10 characters",
		},
	}
}

// clone returns a defensive copy so callers cannot mutate the validator's
// configuration after construction.
func (r Rules) clone() Rules {
	out := make(Rules, len(r))
	for f, rule := range r {
		out[f] = rule
	}
	return out
}
