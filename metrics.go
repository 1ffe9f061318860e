package threadpool

import "github.com/prometheus/client_golang/prometheus"

// taskDurationBuckets are skewed toward short tasks, since in-process work
// is usually fast.
var taskDurationBuckets = []float64{
	0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 30,
}

// poolMetrics holds the Prometheus instruments registered by WithMetrics.
type poolMetrics struct {
	tasksSubmitted prometheus.Counter
	tasksCompleted prometheus.Counter
	tasksDropped   prometheus.Counter
	queueDepth     prometheus.Gauge
	workersBusy    prometheus.Gauge
	workers        prometheus.Gauge
	taskDuration   prometheus.Histogram
}

// newPoolMetrics creates and registers the pool metric set:
//
//   - threadpool_tasks_submitted_total (counter)
//   - threadpool_tasks_completed_total (counter)
//   - threadpool_tasks_dropped_total   (counter)
//   - threadpool_queue_depth           (gauge)
//   - threadpool_workers_busy          (gauge)
//   - threadpool_workers               (gauge)
//   - threadpool_task_duration_seconds (histogram)
func newPoolMetrics(reg prometheus.Registerer) *poolMetrics {
	m := &poolMetrics{
		tasksSubmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "threadpool",
			Name:      "tasks_submitted_total",
			Help:      "Total number of tasks accepted by Submit.",
		}),
		tasksCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "threadpool",
			Name:      "tasks_completed_total",
			Help:      "Total number of tasks run to completion.",
		}),
		tasksDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "threadpool",
			Name:      "tasks_dropped_total",
			Help:      "Total number of queued tasks discarded at Close.",
		}),
		queueDepth: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "threadpool",
			Name:      "queue_depth",
			Help:      "Current number of tasks waiting in the queue.",
		}),
		workersBusy: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "threadpool",
			Name:      "workers_busy",
			Help:      "Number of workers currently executing a task.",
		}),
		workers: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "threadpool",
			Name:      "workers",
			Help:      "Fixed worker count of the pool.",
		}),
		taskDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "threadpool",
			Name:      "task_duration_seconds",
			Help:      "Wall-clock task execution time.",
			Buckets:   taskDurationBuckets,
		}),
	}

	reg.MustRegister(
		m.tasksSubmitted,
		m.tasksCompleted,
		m.tasksDropped,
		m.queueDepth,
		m.workersBusy,
		m.workers,
		m.taskDuration,
	)
	return m
}
