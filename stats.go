package threadpool

// Stats is a point-in-time snapshot of pool activity.
type Stats struct {
	Workers   int    // fixed worker count
	Busy      int    // workers currently executing a task
	Queued    int    // tasks waiting in the queue
	Submitted uint64 // tasks accepted since construction
	Completed uint64 // tasks run to completion
	Running   bool   // false once shutdown has been initiated
}

// Stats returns a snapshot of the pool's current activity. The counters are
// sampled independently of the queue, so a snapshot taken while tasks are
// in flight is only approximately consistent.
func (p *Pool) Stats() Stats {
	p.mu.Lock()
	queued := p.tasks.len()
	running := p.running
	p.mu.Unlock()

	return Stats{
		Workers:   p.workers,
		Busy:      int(p.busy.Load()),
		Queued:    queued,
		Submitted: p.submitted.Load(),
		Completed: p.completed.Load(),
		Running:   running,
	}
}
