//go:build !linux

package threadpool

import "runtime"

// pin locks the calling worker to its OS thread. CPU affinity is only
// supported on linux.
func (p *Pool) pin(int) {
	runtime.LockOSThread()
}
