// Package threadpool provides a fixed-size worker pool: a bounded set of
// long-lived workers pulling tasks from a shared unbounded FIFO queue, with
// a blocking drain/shutdown protocol.
//
// Tasks are submitted as an Action plus an optional argument buffer; the
// buffer is snapshotted at submission time, so the caller may reuse or
// mutate it immediately. Tasks start in strict submission order, and every
// task accepted before Shutdown is guaranteed to run to completion before
// Shutdown returns.
package threadpool

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"
)

// Pool is a fixed-size worker pool. The worker count is set at construction
// and never changes; the queue is unbounded, so Submit never blocks on
// capacity.
type Pool struct {
	mu      sync.Mutex
	gate    *sync.Cond // signalled when the queue gains a task or shutdown begins
	tasks   *taskQueue
	running bool // one-way true -> false, guarded by mu

	workers int
	wg      sync.WaitGroup
	stop    sync.Once

	busy      atomic.Int64
	submitted atomic.Uint64
	completed atomic.Uint64

	log     zerolog.Logger
	metrics *poolMetrics
	pinned  bool
}

// New creates a pool with the given number of workers, all started
// immediately and idle until the first Submit. A workers value <= 0
// defaults to runtime.NumCPU().
func New(workers int, opts ...Option) *Pool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	cfg := &config{
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	p := &Pool{
		tasks:   newTaskQueue(),
		running: true,
		workers: workers,
		log:     cfg.logger,
		pinned:  cfg.pinned,
	}
	p.gate = sync.NewCond(&p.mu)

	if cfg.metrics != nil {
		p.metrics = newPoolMetrics(cfg.metrics)
		p.metrics.workers.Set(float64(workers))
	}

	p.wg.Add(workers)
	for i := range workers {
		go p.worker(i)
	}

	p.log.Debug().Int("workers", workers).Msg("pool started")
	return p
}

// Submit snapshots arg into a new task, appends it to the queue, and wakes
// one idle worker. It never blocks: the queue is unbounded. A nil arg is
// valid and results in the action being invoked with nil.
//
// Once Shutdown or Close has been initiated Submit returns ErrPoolClosed
// and the task is not queued.
func (p *Pool) Submit(action Action, arg []byte) error {
	if action == nil {
		return ErrNilAction
	}
	t := newTask(action, arg)

	p.mu.Lock()
	if !p.running {
		p.mu.Unlock()
		return ErrPoolClosed
	}
	p.tasks.push(t)
	depth := p.tasks.len()
	p.mu.Unlock()

	// Wake exactly one idle worker; a broadcast here would stampede every
	// sleeper for a single task.
	p.gate.Signal()

	p.submitted.Add(1)
	if p.metrics != nil {
		p.metrics.tasksSubmitted.Inc()
		p.metrics.queueDepth.Set(float64(depth))
	}
	return nil
}

// SubmitFunc submits a plain closure as a task with no argument buffer.
func (p *Pool) SubmitFunc(fn func()) error {
	if fn == nil {
		return ErrNilAction
	}
	return p.Submit(func([]byte) { fn() }, nil)
}

// Shutdown initiates shutdown and blocks until every already-queued task
// has completed and every worker has exited. It is safe to call multiple
// times; every call blocks until the drain is finished.
func (p *Pool) Shutdown() {
	p.stop.Do(func() {
		p.mu.Lock()
		p.running = false
		p.mu.Unlock()

		// Every sleeping worker must re-evaluate its exit predicate.
		p.gate.Broadcast()
		p.log.Debug().Msg("pool shutting down")
	})
	p.wg.Wait()
}

// Close shuts the pool down (if not already done) and discards anything
// still queued. It must be the last operation on the pool. Since Submit
// rejects tasks once shutdown begins and Shutdown drains the queue, the
// discard normally finds nothing.
func (p *Pool) Close() {
	p.Shutdown()

	p.mu.Lock()
	dropped := p.tasks.reset()
	p.mu.Unlock()

	if dropped > 0 {
		p.log.Warn().Int("dropped", dropped).Msg("discarded queued tasks at close")
		if p.metrics != nil {
			p.metrics.tasksDropped.Add(float64(dropped))
		}
	}
	if p.metrics != nil {
		p.metrics.queueDepth.Set(0)
	}
	p.log.Debug().Msg("pool closed")
}
