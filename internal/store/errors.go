package store

import (
	"errors"
	"fmt"
)

// Sentinel errors for structurally invalid records and protected
// mutations. Callers match them with errors.Is.
var (
	ErrInvalidColor       = errors.New("invalid color")
	ErrInvalidProbability = errors.New("invalid probability")
	ErrInvalidDeadline    = errors.New("invalid deadline")
	ErrProtectedCategory  = errors.New("category Unclassified is protected")
)

// ParseError carries the line number of a structurally invalid record.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
