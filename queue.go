package threadpool

import "github.com/eapache/queue"

// taskQueue is an unbounded FIFO of pending tasks. It is not synchronized;
// callers must hold the pool mutex around every operation.
type taskQueue struct {
	q *queue.Queue
}

func newTaskQueue() *taskQueue {
	return &taskQueue{q: queue.New()}
}

func (tq *taskQueue) push(t *task) {
	tq.q.Add(t)
}

// pop removes and returns the oldest task. Callers must check empty first;
// popping an empty queue panics.
func (tq *taskQueue) pop() *task {
	//nolint:forcetypeassert // only *task is ever pushed
	return tq.q.Remove().(*task)
}

func (tq *taskQueue) empty() bool {
	return tq.q.Length() == 0
}

func (tq *taskQueue) len() int {
	return tq.q.Length()
}

// reset discards all pending tasks and reports how many were dropped.
func (tq *taskQueue) reset() int {
	n := tq.q.Length()
	for range n {
		tq.q.Remove()
	}
	return n
}
