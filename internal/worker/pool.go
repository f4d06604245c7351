// Package worker provides the bounded concurrency behind citation link
// checks and corpus export: a single-use job pool and a per-domain rate
// limiter.
package worker

import (
	"context"
	"sync"
)

// Job is one unit of batch work, such as checking a citation's source
// link or rendering a document to disk
type Job interface {
	Execute(ctx context.Context) Result
}

// Result is the outcome of one job
type Result interface {
	GetError() error
}

// Pool runs submitted jobs across a fixed number of goroutines. It is
// single-use: Start, Submit the batch, then Wait exactly once. Every
// submitted job yields exactly one result, even under a cancelled
// context, so callers can account for the whole batch.
type Pool struct {
	workers int
	jobs    chan Job
	wg      sync.WaitGroup

	mu      sync.Mutex
	results []Result
}

// NewPool creates a pool with the given number of workers
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = 1
	}
	return &Pool{
		workers: workers,
		jobs:    make(chan Job, workers*2),
	}
}

// Start launches the workers. Jobs observe ctx through Execute; a
// cancelled context makes jobs fail fast rather than vanish from the
// result count.
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				result := job.Execute(ctx)
				p.mu.Lock()
				p.results = append(p.results, result)
				p.mu.Unlock()
			}
		}()
	}
}

// Submit queues a job. Blocks when all workers are busy and the queue
// is full.
func (p *Pool) Submit(job Job) {
	p.jobs <- job
}

// Wait signals that no more jobs are coming, waits for the workers to
// drain the queue, and returns every result
func (p *Pool) Wait() []Result {
	close(p.jobs)
	p.wg.Wait()
	return p.results
}
