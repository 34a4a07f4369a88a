package workerpool

import (
	"context"
	"time"

	"github.com/vnykmshr/recur/pkg/metrics"
)

// metricsPool wraps a Pool and records Prometheus metrics for every
// submission and execution.
type metricsPool struct {
	pool     Pool
	name     string
	registry *metrics.Registry
}

// NewWithMetrics creates a pool that records Prometheus metrics under
// the given name using the default registry.
func NewWithMetrics(workerCount, queueSize int, name string) Pool {
	return NewWithConfigAndMetrics(Config{
		WorkerCount: workerCount,
		QueueSize:   queueSize,
	}, name, metrics.DefaultConfig())
}

// NewWithConfigAndMetrics creates a pool with custom config and metrics.
func NewWithConfigAndMetrics(cfg Config, name string, metricsConfig metrics.Config) Pool {
	base := NewWithConfig(cfg)
	if !metricsConfig.Enabled {
		return base
	}

	registry := metrics.DefaultRegistry
	if metricsConfig.Registry != nil {
		registry = metrics.NewRegistry(metricsConfig.Registry)
	}

	mp := &metricsPool{pool: base, name: name, registry: registry}
	mp.registry.WorkerPoolSize.WithLabelValues(name).Set(float64(base.Size()))
	return mp
}

func (mp *metricsPool) Submit(task Task) error {
	return mp.SubmitWithContext(context.Background(), task)
}

func (mp *metricsPool) SubmitWithContext(ctx context.Context, task Task) error {
	if task != nil {
		task = &metricsTask{original: task, pool: mp}
	}
	err := mp.pool.SubmitWithContext(ctx, task)
	mp.registry.WorkerPoolQueued.WithLabelValues(mp.name).Set(float64(mp.pool.QueueSize()))
	return err
}

func (mp *metricsPool) Results() <-chan Result {
	return mp.pool.Results()
}

func (mp *metricsPool) Shutdown() <-chan struct{} {
	return mp.pool.Shutdown()
}

func (mp *metricsPool) Size() int {
	return mp.pool.Size()
}

func (mp *metricsPool) QueueSize() int {
	return mp.pool.QueueSize()
}

// metricsTask wraps a Task so execution outcome and duration are
// observed on the worker goroutine.
type metricsTask struct {
	original Task
	pool     *metricsPool
}

func (mt *metricsTask) Execute(ctx context.Context) error {
	start := time.Now()
	err := mt.original.Execute(ctx)

	reg, name := mt.pool.registry, mt.pool.name
	reg.TaskDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
	reg.TasksExecuted.WithLabelValues(name).Inc()
	if err != nil {
		reg.TasksFailed.WithLabelValues(name).Inc()
	}
	reg.WorkerPoolQueued.WithLabelValues(name).Set(float64(mt.pool.pool.QueueSize()))
	return err
}
