package scheduler

import (
	"time"

	"github.com/vnykmshr/recur/pkg/metrics"
)

// NewWithMetrics creates a scheduler that records Prometheus metrics
// under the given name using the default registry.
func NewWithMetrics(name string) Scheduler {
	return NewWithConfigAndMetrics(Config{}, name, metrics.DefaultConfig())
}

// NewWithConfigAndMetrics creates a scheduler with custom config and metrics.
func NewWithConfigAndMetrics(cfg Config, name string, metricsConfig metrics.Config) Scheduler {
	s := NewWithConfig(cfg).(*scheduler)
	if !metricsConfig.Enabled {
		return s
	}

	registry := metrics.DefaultRegistry
	if metricsConfig.Registry != nil {
		registry = metrics.NewRegistry(metricsConfig.Registry)
	}

	s.metrics = registry
	if name != "" {
		s.name = name
	}
	return s
}

func (s *scheduler) observeAdd(pending int) {
	if s.metrics == nil {
		return
	}
	s.metrics.JobsRegistered.WithLabelValues(s.name).Inc()
	s.metrics.JobsPending.WithLabelValues(s.name).Set(float64(pending))
}

func (s *scheduler) observeCancel(pending int) {
	if s.metrics == nil {
		return
	}
	s.metrics.JobsCancelled.WithLabelValues(s.name).Inc()
	s.metrics.JobsPending.WithLabelValues(s.name).Set(float64(pending))
}

func (s *scheduler) observeTick(elapsed time.Duration, fired, reaped, pending int) {
	if s.metrics == nil {
		return
	}
	s.metrics.TickDuration.WithLabelValues(s.name).Observe(elapsed.Seconds())
	if fired > 0 {
		s.metrics.JobsFired.WithLabelValues(s.name).Add(float64(fired))
	}
	if reaped > 0 {
		s.metrics.JobsExhausted.WithLabelValues(s.name).Add(float64(reaped))
	}
	s.metrics.JobsPending.WithLabelValues(s.name).Set(float64(pending))
}

func (s *scheduler) observeFailure() {
	if s.metrics == nil {
		return
	}
	s.metrics.ActionFailures.WithLabelValues(s.name).Inc()
}

func (s *scheduler) observeDrop() {
	if s.metrics == nil {
		return
	}
	s.metrics.DispatchDropped.WithLabelValues(s.name).Inc()
}
