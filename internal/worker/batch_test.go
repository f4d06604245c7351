package worker

import (
	"context"
	"testing"

	"github.com/ssxfund/tribune/internal/model"
)

// mockChecker implements Checker
type mockChecker struct {
	dead map[string]bool
}

func (m *mockChecker) CheckCitation(ctx context.Context, c model.Citation) model.CheckResult {
	if m.dead[c.Key] {
		return model.CheckResult{Key: c.Key, URL: c.URL, IsDead: true}
	}
	return model.CheckResult{Key: c.Key, URL: c.URL, IsAccessible: true, StatusCode: 200}
}

func TestBatchChecker_SkipsCitationsWithoutURL(t *testing.T) {
	citations := []model.Citation{
		{Key: "a", URL: "https://example.com/a"},
		{Key: "b"}, // no URL
		{Key: "c", URL: "https://example.com/c"},
	}

	batch := NewBatchChecker(&mockChecker{}, 2)
	results := batch.ProcessCitations(context.Background(), citations)

	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}
	if results[0].Key != "a" || results[1].Key != "c" {
		t.Errorf("Expected results in citation order [a c], got [%s %s]", results[0].Key, results[1].Key)
	}
}

func TestBatchChecker_PreservesOrderUnderConcurrency(t *testing.T) {
	var citations []model.Citation
	keys := []string{"k1", "k2", "k3", "k4", "k5", "k6", "k7", "k8"}
	for _, k := range keys {
		citations = append(citations, model.Citation{Key: k, URL: "https://example.com/" + k})
	}

	batch := NewBatchChecker(&mockChecker{dead: map[string]bool{"k3": true}}, 4)
	results := batch.ProcessCitations(context.Background(), citations)

	if len(results) != len(keys) {
		t.Fatalf("Expected %d results, got %d", len(keys), len(results))
	}
	for i, k := range keys {
		if results[i].Key != k {
			t.Errorf("Result %d: expected key %s, got %s", i, k, results[i].Key)
		}
	}
	if !results[2].IsDead {
		t.Error("Expected k3 to be reported dead")
	}
}

func TestBatchChecker_EmptyInput(t *testing.T) {
	batch := NewBatchChecker(&mockChecker{}, 2)
	results := batch.ProcessCitations(context.Background(), nil)
	if len(results) != 0 {
		t.Errorf("Expected no results, got %d", len(results))
	}
}
