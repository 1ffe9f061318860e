package threadpool

// Action is the body of a task. It receives the pool-owned snapshot of the
// argument passed to Submit, or nil when the task was submitted without one.
// Whatever the action does — block, spawn, fail — is its own concern; the
// pool observes no result.
type Action func(arg []byte)

// task is a single unit of work: an action plus its argument snapshot.
// It is owned by the queue from Submit until a worker detaches it, then by
// that worker until the action returns.
type task struct {
	action Action
	arg    []byte
}

// newTask builds a task, deep-copying arg so the caller's buffer is never
// referenced after Submit returns.
func newTask(action Action, arg []byte) *task {
	t := &task{action: action}
	if arg != nil {
		t.arg = make([]byte, len(arg))
		copy(t.arg, arg)
	}
	return t
}
