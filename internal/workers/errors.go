package workers

import "errors"

var (
	// ErrPoolStopped is returned by Pool.Do once Stop has been called.
	ErrPoolStopped = errors.New("worker pool is stopped")
	// ErrJobPanicked is returned by Pool.Do when the submitted job panics.
	ErrJobPanicked = errors.New("worker job panicked")
)
