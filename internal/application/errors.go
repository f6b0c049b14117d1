package application

import (
	"errors"
	"fmt"
)

// ErrNotFound reports a year or month folder that does not exist
var ErrNotFound = errors.New("not found")

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// SkipError records a month folder that could not be read. Year index
// generation reports skips and continues with the remaining months.
type SkipError struct {
	Folder string
	Reason error
}

func (e *SkipError) Error() string {
	return fmt.Sprintf("skipped %s: %v", e.Folder, e.Reason)
}

func (e *SkipError) Unwrap() error {
	return e.Reason
}
