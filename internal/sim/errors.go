package sim

import (
	"errors"
	"fmt"
)

var (
	// ErrNoViewport is the cause of a tick run before any viewport was set.
	ErrNoViewport = errors.New("sim: no viewport")

	// ErrMoverCount is the cause when the number of moving nodes does
	// not match the moving flag.
	ErrMoverCount = errors.New("sim: unexpected number of moving nodes")
)

// InvariantError is the panic value raised when the engine detects a
// broken precondition. These are programmer errors: continuing would
// corrupt the node/edge incidence, so the engine aborts instead.
type InvariantError struct {
	Op  string
	Err error
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("invariant violated in %s: %v", e.Op, e.Err)
}

func (e *InvariantError) Unwrap() error {
	return e.Err
}
