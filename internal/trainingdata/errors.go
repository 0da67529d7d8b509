package trainingdata

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrMissingTopology = errors.New("missing topology line")
	ErrInvalidTopology = errors.New("invalid topology")
	ErrCaseCount       = errors.New("input and target counts differ")
	ErrUnknownFunction = errors.New("unknown boolean function")
)

// LineError reports a line of a training file that could not be parsed.
type LineError struct {
	Line int    // 1-based line number
	Msg  string // What was wrong with the line
	Err  error  // Underlying parse error, if any
}

// Error implements the error interface.
func (e *LineError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("line %d: %s: %v", e.Line, e.Msg, e.Err)
	}
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

// Unwrap returns the underlying parse error.
func (e *LineError) Unwrap() error {
	return e.Err
}

// CaseError reports a case whose vector width does not match the topology.
type CaseError struct {
	Case  int    // 0-based case index
	Field string // "input" or "target"
	Want  int    // Width required by the topology
	Got   int    // Width of the vector
}

// Error implements the error interface.
func (e *CaseError) Error() string {
	return fmt.Sprintf("case %d: %s has %d values, want %d", e.Case, e.Field, e.Got, e.Want)
}
