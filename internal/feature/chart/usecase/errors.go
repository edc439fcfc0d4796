package usecase

import "fmt"

// RenderError wraps a failure from the injected charting engine. It is
// caught at the manager boundary and converted into a state transition;
// it never propagates to the manager's caller.
type RenderError struct {
	Op  string // the capability call that failed
	Err error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render %s: %v", e.Op, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }
