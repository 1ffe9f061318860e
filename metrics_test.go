package threadpool_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yuanluo2/threadpool"
)

func gatherFamilies(t *testing.T, reg *prometheus.Registry) map[string]*dto.MetricFamily {
	t.Helper()

	families, err := reg.Gather()
	require.NoError(t, err)

	byName := make(map[string]*dto.MetricFamily, len(families))
	for _, f := range families {
		byName[f.GetName()] = f
	}
	return byName
}

func counterValue(t *testing.T, f *dto.MetricFamily) float64 {
	t.Helper()

	require.NotNil(t, f)
	require.Len(t, f.GetMetric(), 1)
	return f.GetMetric()[0].GetCounter().GetValue()
}

func gaugeValue(t *testing.T, f *dto.MetricFamily) float64 {
	t.Helper()

	require.NotNil(t, f)
	require.Len(t, f.GetMetric(), 1)
	return f.GetMetric()[0].GetGauge().GetValue()
}

func TestPoolMetrics_Registered(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	pool := threadpool.New(2, threadpool.WithMetrics(reg))
	defer pool.Close()

	families := gatherFamilies(t, reg)
	for _, name := range []string{
		"threadpool_tasks_submitted_total",
		"threadpool_tasks_completed_total",
		"threadpool_tasks_dropped_total",
		"threadpool_queue_depth",
		"threadpool_workers_busy",
		"threadpool_workers",
		"threadpool_task_duration_seconds",
	} {
		assert.Contains(t, families, name)
	}

	assert.InDelta(t, 2, gaugeValue(t, families["threadpool_workers"]), 0)
}

func TestPoolMetrics_CountsTasks(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	pool := threadpool.New(4, threadpool.WithMetrics(reg))

	const n = 25
	for range n {
		require.NoError(t, pool.SubmitFunc(func() {}))
	}
	pool.Shutdown()

	families := gatherFamilies(t, reg)
	assert.InDelta(t, n, counterValue(t, families["threadpool_tasks_submitted_total"]), 0)
	assert.InDelta(t, n, counterValue(t, families["threadpool_tasks_completed_total"]), 0)
	assert.InDelta(t, 0, counterValue(t, families["threadpool_tasks_dropped_total"]), 0)
	assert.InDelta(t, 0, gaugeValue(t, families["threadpool_workers_busy"]), 0)

	duration := families["threadpool_task_duration_seconds"]
	require.NotNil(t, duration)
	require.Len(t, duration.GetMetric(), 1)
	assert.EqualValues(t, n, duration.GetMetric()[0].GetHistogram().GetSampleCount())

	pool.Close()
}

func TestPoolMetrics_QueueDepthDrainsToZero(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	pool := threadpool.New(1, threadpool.WithMetrics(reg))

	release := make(chan struct{})
	require.NoError(t, pool.SubmitFunc(func() { <-release }))
	for range 5 {
		require.NoError(t, pool.SubmitFunc(func() {}))
	}

	close(release)
	pool.Shutdown()
	pool.Close()

	families := gatherFamilies(t, reg)
	assert.InDelta(t, 0, gaugeValue(t, families["threadpool_queue_depth"]), 0)
}
