package validator

import (
	"fmt"
	"strings"
)

// RequiredString validates that a string is not empty after trimming whitespace.
func RequiredString(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:   field,
			Message: "field is required",
			Cause:   ErrFieldRequired,
		},
	}
}

// Required validates that a string is not empty. Whitespace counts as
// content, which is what secrets such as passwords need.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return value != ""
		},
		Error: ValidationError{
			Field:   field,
			Message: "field is required",
			Cause:   ErrFieldRequired,
		},
	}
}

// MaxBytes limits the encoded length of value.
func MaxBytes(field, value string, limit int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) <= limit
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at most %d bytes long", limit),
			Cause:   ErrInvalidLength,
		},
	}
}

