package worker

import (
	"context"
	"sync"

	"github.com/osse101/AlterEgo_Go/internal/logger"
)

// Job represents a task to be executed by a worker
type Job interface {
	Process(ctx context.Context) error
}

// JobFunc adapts a function to Job
type JobFunc func(ctx context.Context) error

// Process calls f(ctx)
func (f JobFunc) Process(ctx context.Context) error {
	return f(ctx)
}

// ErrorHandler is called with every error a job returns
type ErrorHandler func(ctx context.Context, err error)

// Option configures a Pool
type Option func(*Pool)

// WithContext sets the context jobs run with, typically one carrying a logger
func WithContext(ctx context.Context) Option {
	return func(p *Pool) { p.ctx = ctx }
}

// WithErrorHandler replaces the default handler, which logs the error
func WithErrorHandler(h ErrorHandler) Option {
	return func(p *Pool) { p.onError = h }
}

// Pool runs queued jobs on a fixed number of workers.
// With one worker, jobs run in the order they were enqueued.
type Pool struct {
	workers int
	jobs    chan Job
	wg      sync.WaitGroup
	ctx     context.Context
	onError ErrorHandler

	mu     sync.RWMutex
	closed bool
}

// NewPool creates a new worker pool
func NewPool(workers int, queueSize int, opts ...Option) *Pool {
	p := &Pool{
		workers: max(workers, 1),
		jobs:    make(chan Job, queueSize),
		ctx:     context.Background(),
	}
	p.onError = func(ctx context.Context, err error) {
		logger.FromContext(ctx).Error(LogMsgWorkerJobFailed, "error", err)
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Start starts the workers
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for job := range p.jobs {
		if err := job.Process(p.ctx); err != nil {
			p.onError(p.ctx, err)
		}
	}
}

// Enqueue adds a job, blocking while the queue is full.
// It returns false once the pool is stopped.
func (p *Pool) Enqueue(job Job) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return false
	}
	p.jobs <- job
	return true
}

// Depth returns the number of jobs waiting for a worker
func (p *Pool) Depth() int {
	return len(p.jobs)
}

// Stop refuses new jobs, lets the workers finish everything already queued and waits for them
func (p *Pool) Stop() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.jobs)
	p.mu.Unlock()
	p.wg.Wait()
}
