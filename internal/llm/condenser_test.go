package llm

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/ssxfund/tribune/internal/model"
)

// MockProvider implements the Provider interface for testing
type MockProvider struct {
	name      string
	available bool
	response  *CondenseResponse
	err       error
	calls     int
}

func (m *MockProvider) Name() string {
	return m.name
}

func (m *MockProvider) Condense(ctx context.Context, req CondenseRequest) (*CondenseResponse, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.response, nil
}

func (m *MockProvider) IsAvailable(ctx context.Context) bool {
	return m.available
}

// memStore is a trivial in-memory cache.Cache for tests
type memStore struct {
	data map[string][]byte
}

func newMemStore() *memStore { return &memStore{data: make(map[string][]byte)} }

func (s *memStore) Get(key string) ([]byte, bool) {
	v, ok := s.data[key]
	return v, ok
}

func (s *memStore) Set(key string, value []byte, ttl time.Duration) error {
	s.data[key] = value
	return nil
}

func (s *memStore) Delete(key string) error {
	delete(s.data, key)
	return nil
}

func (s *memStore) Clear() error {
	s.data = make(map[string][]byte)
	return nil
}

func TestNewCondenser_DisabledProvider(t *testing.T) {
	condenser, err := NewCondenser(Config{Provider: ""}, nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if condenser.IsEnabled() {
		t.Error("Expected condenser to be disabled")
	}

	if _, err := condenser.Condense(context.Background(), model.Document{Text: "x"}, 100); err == nil {
		t.Error("Expected error when condensing with no provider")
	}
}

func TestNewCondenser_UnknownProvider(t *testing.T) {
	if _, err := NewCondenser(Config{Provider: "carrier-pigeon"}, nil); err == nil {
		t.Error("Expected error for unknown provider")
	}
}

func TestCondenser_CachesResults(t *testing.T) {
	mock := &MockProvider{
		name:     "mock",
		response: &CondenseResponse{Text: "Condensed text here.", Model: "mock-1", TokensUsed: 42},
	}
	condenser := &Condenser{provider: mock, store: newMemStore()}

	doc := model.Document{Format: "2B", Title: "Op-Ed", Text: "Long source text about the proposal."}

	first, err := condenser.Condense(context.Background(), doc, 100)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if first.FromCache {
		t.Error("Expected first call to miss the cache")
	}

	second, err := condenser.Condense(context.Background(), doc, 100)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !second.FromCache {
		t.Error("Expected second call to hit the cache")
	}
	if second.Text != first.Text {
		t.Errorf("Expected identical cached text, got %q vs %q", second.Text, first.Text)
	}
	if mock.calls != 1 {
		t.Errorf("Expected 1 provider call, got %d", mock.calls)
	}
}

func TestCondenser_DifferentBudgetsAreDistinctCacheEntries(t *testing.T) {
	mock := &MockProvider{
		name:     "mock",
		response: &CondenseResponse{Text: "Condensed.", Model: "mock-1"},
	}
	condenser := &Condenser{provider: mock, store: newMemStore()}
	doc := model.Document{Format: "4B", Title: "White Paper", Text: "Source."}

	if _, err := condenser.Condense(context.Background(), doc, 100); err != nil {
		t.Fatal(err)
	}
	if _, err := condenser.Condense(context.Background(), doc, 200); err != nil {
		t.Fatal(err)
	}

	if mock.calls != 2 {
		t.Errorf("Expected 2 provider calls for 2 budgets, got %d", mock.calls)
	}
}

func TestCondenser_ProviderErrorPropagates(t *testing.T) {
	mock := &MockProvider{name: "mock", err: errors.New("boom")}
	condenser := &Condenser{provider: mock, store: newMemStore()}

	_, err := condenser.Condense(context.Background(), model.Document{Format: "1A", Text: "x"}, 50)
	if err == nil || !strings.Contains(err.Error(), "boom") {
		t.Errorf("Expected wrapped provider error, got %v", err)
	}
}

func TestCondenser_RejectsNonPositiveTarget(t *testing.T) {
	condenser := &Condenser{provider: &MockProvider{name: "mock"}}
	if _, err := condenser.Condense(context.Background(), model.Document{Text: "x"}, 0); err == nil {
		t.Error("Expected error for zero target words")
	}
}

func TestCondenser_CheckAvailability(t *testing.T) {
	down := &Condenser{provider: &MockProvider{name: "mock", available: false}}
	if down.CheckAvailability(context.Background()) {
		t.Error("Expected unreachable provider to report unavailable")
	}

	up := &Condenser{provider: &MockProvider{name: "mock", available: true}}
	if !up.CheckAvailability(context.Background()) {
		t.Error("Expected reachable provider to report available")
	}

	disabled := &Condenser{}
	if disabled.CheckAvailability(context.Background()) {
		t.Error("Expected disabled condenser to report unavailable")
	}
}

func TestCheckFigureDrift(t *testing.T) {
	source := "The benefit averages $1,150 a month and poverty falls from 10.2% to 3.8%. Revenue is $184B per year."

	if err := checkFigureDrift(source, "Benefit: $1,150. Poverty drops to 3.8%."); err != nil {
		t.Errorf("Expected no drift for figures copied verbatim, got %v", err)
	}

	if err := checkFigureDrift(source, "The benefit averages $1,200 a month."); err == nil {
		t.Error("Expected drift error for invented $1,200 figure")
	}

	if err := checkFigureDrift(source, "Poverty falls to 4%."); err == nil {
		t.Error("Expected drift error for rounded 4% figure")
	}
}

func TestExtractFigures(t *testing.T) {
	figures := extractFigures("Raises $184B per year; Gini falls from 0.489 to 0.412; 62% of revenue.")

	want := map[string]bool{"$184B": true, "62%": true}
	for f := range want {
		found := false
		for _, got := range figures {
			if got == f {
				found = true
			}
		}
		if !found {
			t.Errorf("Expected figure %q in %v", f, figures)
		}
	}
}
