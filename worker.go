package threadpool

import "time"

// worker is the fetch-execute loop. Each worker repeatedly detaches one
// task from the queue head and runs it to completion. Once shutdown has
// been initiated a worker keeps draining until the queue is empty, then
// exits; that is the only exit path.
func (p *Pool) worker(id int) {
	defer p.wg.Done()

	if p.pinned {
		p.pin(id)
	}
	log := p.log.With().Int("worker", id).Logger()
	log.Trace().Msg("worker started")

	for {
		p.mu.Lock()
		for p.tasks.empty() && p.running {
			// Atomic unlock-and-wait; the lock is held again on return.
			p.gate.Wait()
		}
		if p.tasks.empty() && !p.running {
			p.mu.Unlock()
			log.Trace().Msg("worker stopped")
			return
		}
		t := p.tasks.pop()
		depth := p.tasks.len()
		p.mu.Unlock()

		p.busy.Add(1)
		if p.metrics != nil {
			p.metrics.workersBusy.Inc()
			p.metrics.queueDepth.Set(float64(depth))
		}

		start := time.Now()
		// The pool does not recover panics, time tasks out, or observe a
		// result; whatever the action does is its own concern.
		t.action(t.arg)

		p.busy.Add(-1)
		p.completed.Add(1)
		if p.metrics != nil {
			p.metrics.workersBusy.Dec()
			p.metrics.tasksCompleted.Inc()
			p.metrics.taskDuration.Observe(time.Since(start).Seconds())
		}
	}
}
