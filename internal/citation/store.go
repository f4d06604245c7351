// Package citation holds the bibliographic store backing the document
// corpus. Entries are keyed by a short identifier and exist for manual
// cross-referencing; the store performs no network validation.
package citation

import (
	"sort"

	"github.com/ssxfund/tribune/internal/model"
	"github.com/ssxfund/tribune/internal/registry"
)

// Store is a read-only citation table, populated once at startup
type Store struct {
	entries map[string]model.Citation
	keys    []string // sorted
}

// NewStore builds a store from static citation records
func NewStore(citations []model.Citation) *Store {
	s := &Store{entries: make(map[string]model.Citation, len(citations))}
	for _, c := range citations {
		s.entries[c.Key] = c
		s.keys = append(s.keys, c.Key)
	}
	sort.Strings(s.keys)
	return s
}

// Get returns the citation for a key.
// Fails with registry.NotFoundError for an absent key.
func (s *Store) Get(key string) (model.Citation, error) {
	c, ok := s.entries[key]
	if !ok {
		return model.Citation{}, &registry.NotFoundError{Kind: "citation", Key: key}
	}
	return c, nil
}

// ListUnverified returns citations whose source has not been confirmed,
// in key order
func (s *Store) ListUnverified() []model.Citation {
	var out []model.Citation
	for _, key := range s.keys {
		if c := s.entries[key]; !c.Verified {
			out = append(out, c)
		}
	}
	return out
}

// All returns every citation in key order
func (s *Store) All() []model.Citation {
	out := make([]model.Citation, 0, len(s.keys))
	for _, key := range s.keys {
		out = append(out, s.entries[key])
	}
	return out
}

// Len returns the number of entries
func (s *Store) Len() int {
	return len(s.entries)
}
