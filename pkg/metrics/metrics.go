package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds all metric instances for recur components.
type Registry struct {
	// Scheduler Metrics
	JobsRegistered  *prometheus.CounterVec
	JobsFired       *prometheus.CounterVec
	JobsCancelled   *prometheus.CounterVec
	JobsExhausted   *prometheus.CounterVec
	ActionFailures  *prometheus.CounterVec
	DispatchDropped *prometheus.CounterVec
	JobsPending     *prometheus.GaugeVec
	TickDuration    *prometheus.HistogramVec

	// Worker Pool Metrics
	WorkerPoolSize   *prometheus.GaugeVec
	WorkerPoolQueued *prometheus.GaugeVec
	TasksExecuted    *prometheus.CounterVec
	TasksFailed      *prometheus.CounterVec
	TaskDuration     *prometheus.HistogramVec
}

// DefaultRegistry is the default metrics registry used by recur components.
var DefaultRegistry *Registry

func init() {
	DefaultRegistry = NewRegistry(prometheus.DefaultRegisterer)
}

// NewRegistry creates a new metrics registry with the given Prometheus registerer.
func NewRegistry(reg prometheus.Registerer) *Registry {
	factory := promauto.With(reg)

	return &Registry{
		JobsRegistered: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "recur",
				Subsystem: "scheduler",
				Name:      "jobs_registered_total",
				Help:      "Total number of jobs registered",
			},
			[]string{"scheduler_name"},
		),

		JobsFired: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "recur",
				Subsystem: "scheduler",
				Name:      "jobs_fired_total",
				Help:      "Total number of job firings",
			},
			[]string{"scheduler_name"},
		),

		JobsCancelled: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "recur",
				Subsystem: "scheduler",
				Name:      "jobs_cancelled_total",
				Help:      "Total number of jobs cancelled",
			},
			[]string{"scheduler_name"},
		),

		JobsExhausted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "recur",
				Subsystem: "scheduler",
				Name:      "jobs_exhausted_total",
				Help:      "Total number of once jobs reaped after firing",
			},
			[]string{"scheduler_name"},
		),

		ActionFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "recur",
				Subsystem: "scheduler",
				Name:      "action_failures_total",
				Help:      "Total number of job action failures, including panics",
			},
			[]string{"scheduler_name"},
		),

		DispatchDropped: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "recur",
				Subsystem: "scheduler",
				Name:      "dispatch_dropped_total",
				Help:      "Total number of firings rejected by the dispatch pool",
			},
			[]string{"scheduler_name"},
		),

		JobsPending: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "recur",
				Subsystem: "scheduler",
				Name:      "jobs_pending",
				Help:      "Number of live jobs in the collection",
			},
			[]string{"scheduler_name"},
		),

		TickDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "recur",
				Subsystem: "scheduler",
				Name:      "tick_duration_seconds",
				Help:      "Time spent evaluating and firing due jobs per tick",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"scheduler_name"},
		),

		WorkerPoolSize: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "recur",
				Subsystem: "workerpool",
				Name:      "size",
				Help:      "Current worker pool size",
			},
			[]string{"pool_name"},
		),

		WorkerPoolQueued: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "recur",
				Subsystem: "workerpool",
				Name:      "queued_tasks",
				Help:      "Number of queued tasks",
			},
			[]string{"pool_name"},
		),

		TasksExecuted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "recur",
				Subsystem: "workerpool",
				Name:      "tasks_executed_total",
				Help:      "Total number of tasks executed",
			},
			[]string{"pool_name"},
		),

		TasksFailed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "recur",
				Subsystem: "workerpool",
				Name:      "tasks_failed_total",
				Help:      "Total number of tasks that failed",
			},
			[]string{"pool_name"},
		),

		TaskDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "recur",
				Subsystem: "workerpool",
				Name:      "task_duration_seconds",
				Help:      "Time spent executing tasks",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"pool_name"},
		),
	}
}
