package waitlist

import (
	"errors"
	"fmt"
)

// ValidationKind is the category of a local validation failure
type ValidationKind int

const (
	// Missing indicates a required field was empty after trimming
	Missing ValidationKind = iota
	// InvalidFormat indicates a field had a value of the wrong shape
	InvalidFormat
)

// String returns a human-readable name for the validation kind
func (k ValidationKind) String() string {
	switch k {
	case Missing:
		return "Missing"
	case InvalidFormat:
		return "InvalidFormat"
	default:
		return fmt.Sprintf("ValidationKind(%d)", k)
	}
}

// ValidationError reports a single field that failed local validation.
// Validation errors are detected before any network call and are never retried.
type ValidationError struct {
	Kind  ValidationKind
	Field Field
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s(%s)", e.Kind, e.Field)
}

// UserMessage returns the text shown to the visitor for this failure
func (e *ValidationError) UserMessage() string {
	if e.Kind == Missing {
		switch e.Field {
		case FieldPSIRAGrade, FieldArmedStatus:
			return fmt.Sprintf("Please select your %s", e.Field.Label())
		default:
			return fmt.Sprintf("Please enter your %s", e.Field.Label())
		}
	}

	switch e.Field {
	case FieldEmail:
		return "Please enter a valid email address"
	case FieldYearsExperience:
		return "Please enter a valid number for years of experience"
	case FieldPSIRAGrade:
		return "Please choose a valid PSIRA grade (A to E)"
	case FieldArmedStatus:
		return "Please choose armed or unarmed"
	default:
		return fmt.Sprintf("Please check your %s", e.Field.Label())
	}
}

// NewMissingError creates a Missing validation error for field f
func NewMissingError(f Field) *ValidationError {
	return &ValidationError{Kind: Missing, Field: f}
}

// NewInvalidFormatError creates an InvalidFormat validation error for field f
func NewInvalidFormatError(f Field) *ValidationError {
	return &ValidationError{Kind: InvalidFormat, Field: f}
}

// IsMissing reports whether err is a Missing validation error, and for which field
func IsMissing(err error) (Field, bool) {
	var vErr *ValidationError
	if errors.As(err, &vErr) && vErr.Kind == Missing {
		return vErr.Field, true
	}
	return "", false
}

// IsInvalidFormat reports whether err is an InvalidFormat validation error, and for which field
func IsInvalidFormat(err error) (Field, bool) {
	var vErr *ValidationError
	if errors.As(err, &vErr) && vErr.Kind == InvalidFormat {
		return vErr.Field, true
	}
	return "", false
}

// UserMessage returns the visitor-facing text for a validation error.
// Errors that are not validation errors yield their Error() text.
func UserMessage(err error) string {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr.UserMessage()
	}
	return err.Error()
}
