package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

// probeJob stands in for a citation check: it records that it ran, how
// many jobs were in flight at once, and fails fast under a dead context
type probeJob struct {
	executed *int32
	inFlight *int32
	peak     *int32
	delay    time.Duration
	err      error
}

type probeResult struct {
	err error
}

func (r probeResult) GetError() error { return r.err }

func (j probeJob) Execute(ctx context.Context) Result {
	if j.executed != nil {
		atomic.AddInt32(j.executed, 1)
	}
	if j.inFlight != nil {
		n := atomic.AddInt32(j.inFlight, 1)
		defer atomic.AddInt32(j.inFlight, -1)
		for {
			p := atomic.LoadInt32(j.peak)
			if n <= p || atomic.CompareAndSwapInt32(j.peak, p, n) {
				break
			}
		}
	}
	if j.delay > 0 {
		time.Sleep(j.delay)
	}
	if err := ctx.Err(); err != nil {
		return probeResult{err: err}
	}
	return probeResult{err: j.err}
}

func TestPool_RunsEveryJob(t *testing.T) {
	var executed int32
	pool := NewPool(3)
	pool.Start(context.Background())

	const jobs = 12
	for i := 0; i < jobs; i++ {
		pool.Submit(probeJob{executed: &executed})
	}
	results := pool.Wait()

	if len(results) != jobs {
		t.Errorf("expected %d results, got %d", jobs, len(results))
	}
	if got := atomic.LoadInt32(&executed); got != jobs {
		t.Errorf("expected %d executions, got %d", jobs, got)
	}
}

func TestPool_BoundsConcurrency(t *testing.T) {
	var inFlight, peak int32
	pool := NewPool(2)
	pool.Start(context.Background())

	for i := 0; i < 8; i++ {
		pool.Submit(probeJob{inFlight: &inFlight, peak: &peak, delay: 10 * time.Millisecond})
	}
	pool.Wait()

	if got := atomic.LoadInt32(&peak); got > 2 {
		t.Errorf("expected at most 2 jobs in flight, saw %d", got)
	}
}

func TestPool_ErrorsSurfaceInResults(t *testing.T) {
	pool := NewPool(2)
	pool.Start(context.Background())

	pool.Submit(probeJob{})
	pool.Submit(probeJob{err: errors.New("dead link")})
	results := pool.Wait()

	var failed int
	for _, r := range results {
		if r.GetError() != nil {
			failed++
		}
	}
	if failed != 1 {
		t.Errorf("expected 1 failed result, got %d", failed)
	}
}

func TestPool_CancelledContextYieldsAllResults(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pool := NewPool(2)
	pool.Start(ctx)

	const jobs = 5
	for i := 0; i < jobs; i++ {
		pool.Submit(probeJob{})
	}
	results := pool.Wait()

	// Cancellation must not lose jobs from the accounting; they fail
	// fast instead
	if len(results) != jobs {
		t.Fatalf("expected %d results under a cancelled context, got %d", jobs, len(results))
	}
	for _, r := range results {
		if r.GetError() == nil {
			t.Error("expected jobs under a cancelled context to fail fast")
		}
	}
}

func TestPool_ClampsWorkerCount(t *testing.T) {
	pool := NewPool(0)
	if pool.workers != 1 {
		t.Errorf("expected 1 worker for zero input, got %d", pool.workers)
	}
}
