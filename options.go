package threadpool

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

// Option configures the pool.
type Option func(*config)

type config struct {
	logger  zerolog.Logger
	metrics prometheus.Registerer
	pinned  bool
}

// WithLogger sets the structured logger used for pool life-cycle events.
// Default: a disabled logger.
func WithLogger(l zerolog.Logger) Option {
	return func(cfg *config) {
		cfg.logger = l
	}
}

// WithMetrics registers the pool's Prometheus metric set on reg.
// Default: no instrumentation.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(cfg *config) {
		if reg != nil {
			cfg.metrics = reg
		}
	}
}

// WithPinnedWorkers locks every worker to its own OS thread for the life of
// the pool. On linux each worker's thread is additionally pinned to a CPU,
// assigned round-robin over the available CPUs.
// Default: workers are ordinary goroutines.
func WithPinnedWorkers() Option {
	return func(cfg *config) {
		cfg.pinned = true
	}
}
