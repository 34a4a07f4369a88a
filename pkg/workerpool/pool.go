package workerpool

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Task represents a unit of work that can be executed by a worker.
type Task interface {
	// Execute runs the task with the given context. It should respect
	// context cancellation and return any error encountered.
	Execute(ctx context.Context) error
}

// TaskFunc is a function type that implements the Task interface.
type TaskFunc func(ctx context.Context) error

// Execute implements the Task interface for TaskFunc.
func (f TaskFunc) Execute(ctx context.Context) error {
	return f(ctx)
}

// Result represents the outcome of a task execution.
type Result struct {
	// Task is the original task that was executed
	Task Task

	// Error is any error that occurred during task execution, including
	// a recovered panic
	Error error

	// Duration is how long the task took to execute
	Duration time.Duration

	// WorkerID identifies which worker executed the task
	WorkerID int
}

// Pool executes tasks on a fixed set of workers behind a bounded queue.
// Submission never blocks: when the queue is full the task is rejected
// with ErrQueueFull so a slow consumer can only ever delay its own work.
type Pool interface {
	// Submit queues a task for execution. It returns ErrQueueFull when
	// the bounded queue is at capacity and ErrClosed after Shutdown.
	Submit(task Task) error

	// SubmitWithContext queues a task whose Execute receives ctx.
	SubmitWithContext(ctx context.Context, task Task) error

	// Results returns the channel of task results. Delivery is
	// best-effort: results nobody drains are dropped rather than
	// blocking the workers.
	Results() <-chan Result

	// Shutdown stops accepting tasks and closes the returned channel
	// once all workers have exited. In-flight tasks finish; tasks still
	// queued are abandoned.
	Shutdown() <-chan struct{}

	// Size returns the number of workers in the pool.
	Size() int

	// QueueSize returns the current number of queued tasks.
	QueueSize() int
}

// Config holds configuration options for creating a worker pool.
type Config struct {
	// WorkerCount is the number of workers. Defaults to 4.
	WorkerCount int

	// QueueSize bounds the task queue. Defaults to 64.
	QueueSize int

	// TaskTimeout caps individual task execution. Zero means no timeout.
	TaskTimeout time.Duration

	// Logger receives task failure and lifecycle events.
	// Defaults to a no-op logger.
	Logger zerolog.Logger
}

type taskWithContext struct {
	task Task
	ctx  context.Context
}

// workerPool implements the Pool interface.
type workerPool struct {
	cfg Config

	taskQueue   chan taskWithContext
	resultQueue chan Result
	shutdownCh  chan struct{}

	mu           sync.RWMutex
	isShutdown   bool
	shutdownOnce sync.Once
	workerWg     sync.WaitGroup
}

// New creates a pool with the given worker count and queue bound.
func New(workerCount, queueSize int) Pool {
	return NewWithConfig(Config{
		WorkerCount: workerCount,
		QueueSize:   queueSize,
	})
}

// NewWithConfig creates a pool, applying defaults for zero-valued fields.
func NewWithConfig(cfg Config) Pool {
	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 4
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 64
	}

	p := &workerPool{
		cfg:         cfg,
		taskQueue:   make(chan taskWithContext, cfg.QueueSize),
		resultQueue: make(chan Result, cfg.WorkerCount),
		shutdownCh:  make(chan struct{}),
	}

	for i := 0; i < cfg.WorkerCount; i++ {
		p.workerWg.Add(1)
		go p.runWorker(i)
	}

	return p
}
