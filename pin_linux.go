//go:build linux

package threadpool

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// pin locks the calling worker to its OS thread and sets that thread's CPU
// affinity, assigning CPUs round-robin over the worker ids.
func (p *Pool) pin(id int) {
	runtime.LockOSThread()

	var set unix.CPUSet
	set.Set(id % runtime.NumCPU())
	if err := unix.SchedSetaffinity(0, &set); err != nil {
		p.log.Warn().Err(err).Int("worker", id).Msg("failed to set CPU affinity")
	}
}
