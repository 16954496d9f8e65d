// ABOUTME: Error taxonomy for synthetic data generation.
// ABOUTME: Separates fatal validation/orchestration failures from accumulated persistence failures.

package errors

import (
	stderrors "errors"
	"fmt"
)

// ValidationError reports malformed generator input: a distribution whose weights
// do not sum above zero, a negative weight, an inverted range, or a bad batch size.
// It is raised before any record is built and is fatal to that generation call.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "validation failed: " + e.Reason
	}
	return fmt.Sprintf("validation failed: %s: %s", e.Field, e.Reason)
}

// Invalid is shorthand for constructing a ValidationError.
func Invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// PersistenceError reports a failed storage call for one batch of one table.
// It never propagates past the batch coordinator; its message is accumulated instead.
type PersistenceError struct {
	Table string
	Batch int
	Err   error
}

func (e *PersistenceError) Error() string {
	if e.Batch < 0 {
		return fmt.Sprintf("%s: %v", e.Table, e.Err)
	}
	return fmt.Sprintf("%s batch %d: %v", e.Table, e.Batch, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// OrchestrationError reports a run that cannot start: an unknown module name
// or a dependency cycle between modules.
type OrchestrationError struct {
	Module string
	Valid  []string
	Reason string
}

func (e *OrchestrationError) Error() string {
	return fmt.Sprintf("orchestration: %s: %s", e.Module, e.Reason)
}

// IsValidation reports whether err is or wraps a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return stderrors.As(err, &v)
}

// IsOrchestration reports whether err is or wraps an OrchestrationError.
func IsOrchestration(err error) bool {
	var o *OrchestrationError
	return stderrors.As(err, &o)
}
