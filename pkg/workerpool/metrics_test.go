package workerpool

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/vnykmshr/recur/internal/testutil"
	"github.com/vnykmshr/recur/pkg/metrics"
)

func TestMetricsPool_CountsExecutions(t *testing.T) {
	reg := prometheus.NewRegistry()
	pool := NewWithConfigAndMetrics(Config{WorkerCount: 2, QueueSize: 8}, "test", metrics.Config{
		Enabled:  true,
		Registry: reg,
	})
	defer func() { <-pool.Shutdown() }()

	mp := pool.(*metricsPool)
	if got := promtestutil.ToFloat64(mp.registry.WorkerPoolSize.WithLabelValues("test")); got != 2 {
		t.Errorf("worker pool size gauge = %v, want 2", got)
	}

	for i := 0; i < 3; i++ {
		if err := pool.Submit(TaskFunc(func(_ context.Context) error { return nil })); err != nil {
			t.Fatalf("submit failed: %v", err)
		}
	}
	if err := pool.Submit(TaskFunc(func(_ context.Context) error { return errors.New("boom") })); err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	testutil.Eventually(t, func() bool {
		return promtestutil.ToFloat64(mp.registry.TasksExecuted.WithLabelValues("test")) == 4
	}, 2*time.Second, 10*time.Millisecond)

	if got := promtestutil.ToFloat64(mp.registry.TasksFailed.WithLabelValues("test")); got != 1 {
		t.Errorf("tasks_failed = %v, want 1", got)
	}
}

func TestMetricsPool_DisabledReturnsBasePool(t *testing.T) {
	pool := NewWithConfigAndMetrics(Config{WorkerCount: 1, QueueSize: 1}, "off", metrics.Config{Enabled: false})
	defer func() { <-pool.Shutdown() }()

	if _, ok := pool.(*metricsPool); ok {
		t.Error("disabled metrics config should return the base pool")
	}
}
