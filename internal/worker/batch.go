package worker

import (
	"context"

	"github.com/ssxfund/tribune/internal/model"
)

// Checker defines the interface for checking a single citation's source
type Checker interface {
	CheckCitation(ctx context.Context, c model.Citation) model.CheckResult
}

// CheckJob wraps one citation for pool execution
type CheckJob struct {
	Citation model.Citation
	Checker  Checker
}

// Execute runs the citation check
func (j *CheckJob) Execute(ctx context.Context) Result {
	res := j.Checker.CheckCitation(ctx, j.Citation)
	return &CheckJobResult{Key: j.Citation.Key, Result: res}
}

// CheckJobResult is the pool result for one citation check
type CheckJobResult struct {
	Key    string
	Result model.CheckResult
}

// GetError returns nil: a failed link check is a finding, not a job error
func (r *CheckJobResult) GetError() error {
	return nil
}

// BatchChecker checks multiple citations concurrently
type BatchChecker struct {
	checker     Checker
	concurrency int
}

// NewBatchChecker creates a new batch checker
func NewBatchChecker(checker Checker, concurrency int) *BatchChecker {
	return &BatchChecker{
		checker:     checker,
		concurrency: concurrency,
	}
}

// ProcessCitations checks all citations with a URL, in parallel, and
// returns results in citation order. Citations without a URL are skipped.
func (b *BatchChecker) ProcessCitations(ctx context.Context, citations []model.Citation) []model.CheckResult {
	var withURL []model.Citation
	for _, c := range citations {
		if c.URL != "" {
			withURL = append(withURL, c)
		}
	}
	if len(withURL) == 0 {
		return []model.CheckResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start(ctx)

	for _, c := range withURL {
		pool.Submit(&CheckJob{Citation: c, Checker: b.checker})
	}

	results := pool.Wait()

	// Re-order to citation order
	byKey := make(map[string]model.CheckResult, len(results))
	for _, r := range results {
		if cr, ok := r.(*CheckJobResult); ok {
			byKey[cr.Key] = cr.Result
		}
	}

	out := make([]model.CheckResult, 0, len(withURL))
	for _, c := range withURL {
		if res, ok := byKey[c.Key]; ok {
			out = append(out, res)
		}
	}
	return out
}
