// Package registry implements the document matrix registry: a read-only
// mapping from (format level, political stance) to static documents and
// their metadata. It is populated once at startup and never mutated.
package registry

import (
	"fmt"
	"sort"

	"github.com/ssxfund/tribune/internal/model"
)

// NotFoundError reports an unknown lookup key. It is the only domain error
// the registry produces.
type NotFoundError struct {
	Kind string // "format", "framing", or "document"
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.Key)
}

// IsNotFound reports whether err is a NotFoundError
func IsNotFound(err error) bool {
	_, ok := err.(*NotFoundError)
	return ok
}

type docKey struct {
	level  string
	stance model.Stance
}

// Registry holds the document matrix. All maps are built in New and
// read-only thereafter; lookups are idempotent and side-effect free.
type Registry struct {
	formats   map[string]model.DocumentFormat // keyed by level code AND slug
	levels    []string                        // level codes in matrix order
	framings  map[model.Stance]model.PoliticalFraming
	documents map[docKey]model.Document
}

// New builds a registry from static definitions. Both the level code and
// the slug of every format become lookup keys.
func New(formats []model.DocumentFormat, framings []model.PoliticalFraming, documents []model.Document) *Registry {
	r := &Registry{
		formats:   make(map[string]model.DocumentFormat),
		framings:  make(map[model.Stance]model.PoliticalFraming),
		documents: make(map[docKey]model.Document),
	}

	for _, f := range formats {
		r.formats[f.Level] = f
		if f.Slug != "" {
			r.formats[f.Slug] = f
		}
		r.levels = append(r.levels, f.Level)
	}
	sort.Strings(r.levels)

	for _, fr := range framings {
		r.framings[fr.Stance] = fr
	}

	for _, d := range documents {
		r.documents[docKey{level: d.Format, stance: d.Stance}] = d
	}

	return r
}

// Lookup returns the format for a level code or slug.
// Fails with NotFoundError for an absent key.
func (r *Registry) Lookup(key string) (model.DocumentFormat, error) {
	f, ok := r.formats[key]
	if !ok {
		return model.DocumentFormat{}, &NotFoundError{Kind: "format", Key: key}
	}
	return f, nil
}

// LookupFraming returns the political framing for a stance tag.
// Fails with NotFoundError for an absent stance.
func (r *Registry) LookupFraming(stance string) (model.PoliticalFraming, error) {
	fr, ok := r.framings[model.Stance(stance)]
	if !ok {
		return model.PoliticalFraming{}, &NotFoundError{Kind: "framing", Key: stance}
	}
	return fr, nil
}

// Document returns the document for a format key and stance. Non-political
// formats use model.StanceNone.
func (r *Registry) Document(formatKey string, stance model.Stance) (model.Document, error) {
	f, err := r.Lookup(formatKey)
	if err != nil {
		return model.Document{}, err
	}

	d, ok := r.documents[docKey{level: f.Level, stance: stance}]
	if !ok {
		key := f.Level
		if stance != model.StanceNone {
			key = f.Level + "/" + string(stance)
		}
		return model.Document{}, &NotFoundError{Kind: "document", Key: key}
	}
	return d, nil
}

// Formats returns all formats in level order
func (r *Registry) Formats() []model.DocumentFormat {
	out := make([]model.DocumentFormat, 0, len(r.levels))
	for _, level := range r.levels {
		out = append(out, r.formats[level])
	}
	return out
}

// Framings returns all framings in stance order
func (r *Registry) Framings() []model.PoliticalFraming {
	out := make([]model.PoliticalFraming, 0, len(r.framings))
	for _, fr := range r.framings {
		out = append(out, fr)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Stance < out[j].Stance })
	return out
}

// Documents returns every document in the matrix, ordered by level then stance
func (r *Registry) Documents() []model.Document {
	out := make([]model.Document, 0, len(r.documents))
	for _, d := range r.documents {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Format != out[j].Format {
			return out[i].Format < out[j].Format
		}
		return out[i].Stance < out[j].Stance
	})
	return out
}
