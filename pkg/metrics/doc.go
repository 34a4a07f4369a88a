// Package metrics provides Prometheus instrumentation for recur components.
//
// Enable metrics by using the metrics-enabled constructors:
//
//	s := scheduler.NewWithMetrics("job_scheduler")
//
// Then expose metrics via HTTP:
//
//	http.Handle("/metrics", promhttp.Handler())
//	log.Fatal(http.ListenAndServe(":8080", nil))
//
// # Available Metrics
//
// Scheduler:
//
//   - recur_scheduler_jobs_registered_total
//   - recur_scheduler_jobs_fired_total
//   - recur_scheduler_jobs_cancelled_total
//   - recur_scheduler_jobs_exhausted_total
//   - recur_scheduler_action_failures_total
//   - recur_scheduler_dispatch_dropped_total
//   - recur_scheduler_jobs_pending
//   - recur_scheduler_tick_duration_seconds
//
// Worker pool:
//
//   - recur_workerpool_size
//   - recur_workerpool_queued_tasks
//   - recur_workerpool_tasks_executed_total
//   - recur_workerpool_tasks_failed_total
//   - recur_workerpool_task_duration_seconds
//
// All metrics carry a scheduler_name or pool_name label. Use a custom
// Prometheus registry for isolation:
//
//	registry := prometheus.NewRegistry()
//	s := scheduler.NewWithConfigAndMetrics(cfg, "jobs", metrics.Config{
//		Enabled:  true,
//		Registry: registry,
//	})
//
// Metrics are updated only when operations occur; there are no
// background goroutines or timers.
package metrics
