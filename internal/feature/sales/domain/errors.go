// Package domain defines domain-level errors for the sales feature.
package domain

import (
	"errors"
	"fmt"
)

// ErrUnsuccessful marks a well-formed upstream payload whose success flag
// is false. This includes the synthesized offline response; callers must
// treat it like any other unsuccessful payload, not a transport failure.
var ErrUnsuccessful = errors.New("upstream reported failure")

// DataShapeError reports a payload that does not match the expected shape:
// undecodable JSON or a missing required field. It propagates to the
// caller but must never crash the transform pipeline.
type DataShapeError struct {
	Endpoint string
	Reason   string
}

func (e *DataShapeError) Error() string {
	return fmt.Sprintf("malformed %s payload: %s", e.Endpoint, e.Reason)
}
