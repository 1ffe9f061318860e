package threadpool

import "errors"

// ErrPoolClosed is returned by Submit once shutdown has been initiated.
// Late submissions are rejected rather than queued, so no task can sit in
// the queue waiting for workers that will never run it.
var ErrPoolClosed = errors.New("threadpool: pool is shut down")

// ErrNilAction is returned when a nil action or closure is submitted.
var ErrNilAction = errors.New("threadpool: nil action")
