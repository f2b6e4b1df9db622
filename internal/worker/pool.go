package worker

import (
	"context"
	"sync"
)

// Job is one unit of work executed by the pool
type Job interface {
	Execute(ctx context.Context) Result
}

// Result is the outcome of a single job
type Result interface {
	GetError() error
}

// Pool fans jobs out to a fixed number of worker goroutines. Submit
// queues work after Start; Close marks the queue complete and Collect
// gathers every outcome in completion order. Both channels are
// bounded, so a caller queueing more work than the buffers hold must
// submit from its own goroutine while Collect drains.
type Pool struct {
	workers     int
	jobs        chan Job
	results     chan Result
	wg          sync.WaitGroup
	ctx         context.Context
	cancel      context.CancelFunc
	jobsOnce    sync.Once
	resultsOnce sync.Once
}

// NewPool creates a pool with the given worker count; values below one
// fall back to a single worker. Cancelling ctx aborts queued and
// in-flight jobs.
func NewPool(ctx context.Context, workers int) *Pool {
	if workers <= 0 {
		workers = 1
	}

	pctx, cancel := context.WithCancel(ctx)

	return &Pool{
		workers: workers,
		jobs:    make(chan Job, workers*2),
		results: make(chan Result, workers*2),
		ctx:     pctx,
		cancel:  cancel,
	}
}

// Start launches the worker goroutines
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.run()
	}
}

func (p *Pool) run() {
	defer p.wg.Done()

	for {
		select {
		case <-p.ctx.Done():
			return
		case job, ok := <-p.jobs:
			if !ok {
				return
			}
			result := job.Execute(p.ctx)
			select {
			case p.results <- result:
			case <-p.ctx.Done():
				return
			}
		}
	}
}

// Submit queues a job. It returns without queueing once the pool has
// been shut down or its context cancelled.
func (p *Pool) Submit(job Job) {
	select {
	case <-p.ctx.Done():
		return
	case p.jobs <- job:
	}
}

// Close marks the job queue complete. Submit must not be called after
// Close.
func (p *Pool) Close() {
	p.jobsOnce.Do(func() {
		close(p.jobs)
	})
}

// Collect waits for the workers to drain the queue and returns every
// outcome in completion order. The queue must be closed, by Close or
// a concurrent Wait, for Collect to return.
func (p *Pool) Collect() []Result {
	go func() {
		p.wg.Wait()
		p.closeResults()
	}()

	var results []Result
	for result := range p.results {
		results = append(results, result)
	}

	return results
}

// Wait closes the queue, waits for the workers to drain it, and
// returns all results. Only safe when every job is already queued;
// submissions still in flight belong with Close and Collect.
func (p *Pool) Wait() []Result {
	p.Close()
	return p.Collect()
}

// Shutdown cancels outstanding work and releases the workers
func (p *Pool) Shutdown() {
	p.cancel()
	p.wg.Wait()
	p.closeResults()
}

func (p *Pool) closeResults() {
	p.resultsOnce.Do(func() {
		close(p.results)
	})
}
