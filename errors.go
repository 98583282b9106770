package figurine

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingRequiredField is returned (wrapped in a *MissingFieldError) when a
// Character lacks a field the pipeline cannot default. It is the only way a
// render pass fails.
var ErrMissingRequiredField = errors.New("missing required field")

// MissingFieldError lists every required Character field that was absent.
type MissingFieldError struct {
	Fields []string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("figurine: %s: %s", ErrMissingRequiredField, strings.Join(e.Fields, ", "))
}

// Unwrap lets errors.Is match ErrMissingRequiredField.
func (e *MissingFieldError) Unwrap() error {
	return ErrMissingRequiredField
}

// DiagnosticKind classifies a recoverable data-quality problem.
type DiagnosticKind uint8

const (
	// InvalidTraitValue means a categorical value was outside its enumeration
	// and the family default was substituted.
	InvalidTraitValue DiagnosticKind = iota
	// OutOfRangeNumericTrait means a numeric value was clamped to its range.
	OutOfRangeNumericTrait
)

func (k DiagnosticKind) String() string {
	switch k {
	case InvalidTraitValue:
		return "InvalidTraitValue"
	case OutOfRangeNumericTrait:
		return "OutOfRangeNumericTrait"
	default:
		return fmt.Sprintf("DiagnosticKind(%d)", uint8(k))
	}
}

// Diagnostic records one fallback taken while rendering. Diagnostics never
// stop a render; they are attached to the Scene in pipeline order.
type Diagnostic struct {
	Kind     DiagnosticKind
	Field    string
	Value    string
	Fallback string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s=%q, using %q", d.Kind, d.Field, d.Value, d.Fallback)
}
