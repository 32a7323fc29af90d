package domain

import (
	"errors"
	"fmt"
)

// Failure is one reason a form cannot be exported.
type Failure struct {
	Kind    FailureKind
	Field   FieldKey // empty for the aggregate hours failure
	Message string
}

// Err returns the failure as an error wrapping its sentinel.
func (f Failure) Err() error {
	switch f.Kind {
	case FailureRequiredFieldMissing:
		return fmt.Errorf("%s: %w", f.Field, ErrRequiredFieldMissing)
	case FailureNoWorkingHoursEntered:
		return ErrNoWorkingHoursEntered
	default:
		return errors.New(f.Message)
	}
}

// ValidationResult is the outcome of a single validation pass.
type ValidationResult struct {
	IsValid  bool
	Messages []string
	Failures []Failure
}

// Err joins all failures into one error, or returns nil when valid.
func (r ValidationResult) Err() error {
	if r.IsValid {
		return nil
	}
	errs := make([]error, 0, len(r.Failures))
	for _, f := range r.Failures {
		errs = append(errs, f.Err())
	}
	return errors.Join(errs...)
}

// FieldMessage returns the failure message for a required field, if any.
func (r ValidationResult) FieldMessage(key FieldKey) string {
	for _, f := range r.Failures {
		if f.Kind == FailureRequiredFieldMissing && f.Field == key {
			return f.Message
		}
	}
	return ""
}
