package workerpool

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	recurerrors "github.com/vnykmshr/recur/pkg/common/errors"
)

// Submit queues a task for execution with context.Background().
func (p *workerPool) Submit(task Task) error {
	return p.SubmitWithContext(context.Background(), task)
}

// SubmitWithContext queues a task for execution with the given context.
// The context is passed to the task's Execute method. Submission itself
// never blocks: a full queue rejects the task with ErrQueueFull.
func (p *workerPool) SubmitWithContext(ctx context.Context, task Task) error {
	if task == nil {
		return fmt.Errorf("task cannot be nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	p.mu.RLock()
	isShutdown := p.isShutdown
	p.mu.RUnlock()
	if isShutdown {
		return fmt.Errorf("submit: %w", recurerrors.ErrClosed)
	}

	select {
	case <-ctx.Done():
		return fmt.Errorf("submit: %w", ctx.Err())
	default:
	}

	select {
	case p.taskQueue <- taskWithContext{task: task, ctx: ctx}:
		return nil
	case <-p.shutdownCh:
		return fmt.Errorf("submit: %w", recurerrors.ErrClosed)
	default:
		return fmt.Errorf("submit: %w", recurerrors.ErrQueueFull)
	}
}

// Results returns the channel of task results.
func (p *workerPool) Results() <-chan Result {
	return p.resultQueue
}

// Shutdown initiates a graceful shutdown of the pool. In-flight tasks
// finish; tasks still queued are abandoned.
func (p *workerPool) Shutdown() <-chan struct{} {
	p.shutdownOnce.Do(func() {
		p.mu.Lock()
		p.isShutdown = true
		p.mu.Unlock()

		close(p.shutdownCh)

		go func() {
			p.workerWg.Wait()
			close(p.resultQueue)
		}()
	})

	done := make(chan struct{})
	go func() {
		p.workerWg.Wait()
		close(done)
	}()
	return done
}

// Size returns the number of workers in the pool.
func (p *workerPool) Size() int {
	return p.cfg.WorkerCount
}

// QueueSize returns the current number of queued tasks.
func (p *workerPool) QueueSize() int {
	return len(p.taskQueue)
}

// runWorker drains the task queue until shutdown.
func (p *workerPool) runWorker(id int) {
	defer p.workerWg.Done()

	for {
		select {
		case <-p.shutdownCh:
			return
		case twc := <-p.taskQueue:
			p.executeTask(id, twc)
		}
	}
}

// executeTask runs a single task, converting panics into errors.
func (p *workerPool) executeTask(id int, twc taskWithContext) {
	start := time.Now()
	var err error

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("task panicked: %v\n%s", r, debug.Stack())
		}
		if err != nil {
			p.cfg.Logger.Error().Err(err).Int("worker_id", id).Msg("task failed")
		}

		result := Result{
			Task:     twc.task,
			Error:    err,
			Duration: time.Since(start),
			WorkerID: id,
		}
		select {
		case p.resultQueue <- result:
		default:
			// Nobody is draining results; drop instead of blocking.
		}
	}()

	ctx := twc.ctx
	if ctx == nil {
		ctx = context.Background()
	}
	if p.cfg.TaskTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.cfg.TaskTimeout)
		defer cancel()
	}

	err = twc.task.Execute(ctx)
}
