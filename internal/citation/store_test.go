package citation

import (
	"testing"

	"github.com/ssxfund/tribune/internal/model"
	"github.com/ssxfund/tribune/internal/registry"
)

func testStore() *Store {
	return NewStore([]model.Citation{
		{Key: "trustees-2025", Short: "Trustees Report", Claims: []string{"solvency horizon"}, Verified: true},
		{Key: "poll-2024", Short: "Opinion Poll", Claims: []string{"public support"}, Verified: false},
		{Key: "model-v2", Short: "Projection Model", Claims: []string{"revenue estimate"}, Verified: true},
	})
}

func TestGet(t *testing.T) {
	s := testStore()

	c, err := s.Get("model-v2")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if c.Short != "Projection Model" {
		t.Errorf("wrong citation: %+v", c)
	}
}

func TestGetUnknownKey(t *testing.T) {
	s := testStore()

	_, err := s.Get("missing-key")
	if err == nil {
		t.Fatal("expected error for unknown key")
	}
	if !registry.IsNotFound(err) {
		t.Errorf("expected NotFoundError, got %T: %v", err, err)
	}
}

func TestListUnverified(t *testing.T) {
	s := testStore()

	unverified := s.ListUnverified()
	if len(unverified) != 1 {
		t.Fatalf("expected 1 unverified citation, got %d", len(unverified))
	}
	if unverified[0].Key != "poll-2024" {
		t.Errorf("wrong unverified citation: %s", unverified[0].Key)
	}
}

func TestAllSorted(t *testing.T) {
	s := testStore()

	all := s.All()
	if len(all) != s.Len() {
		t.Fatalf("All returned %d entries, Len reports %d", len(all), s.Len())
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].Key >= all[i].Key {
			t.Errorf("entries out of key order: %s before %s", all[i-1].Key, all[i].Key)
		}
	}
}
