package urlhandler

import "fmt"

// InvalidTargetError indicates that a user-supplied target string cannot
// be turned into a scannable base URL. It is the only error that aborts
// a scan run.
type InvalidTargetError struct {
	Input  string
	Reason string
}

func (e *InvalidTargetError) Error() string {
	if e.Input == "" {
		return fmt.Sprintf("invalid target: %s", e.Reason)
	}
	return fmt.Sprintf("invalid target %q: %s", e.Input, e.Reason)
}

// NewInvalidTargetError creates a new InvalidTargetError.
func NewInvalidTargetError(input, reason string) error {
	return &InvalidTargetError{Input: input, Reason: reason}
}
