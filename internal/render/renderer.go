// Package render prints documents and computes the corpus's only derived
// values: whitespace word counts, character truncation, and word-budget
// checks.
package render

import (
	"strings"
	"unicode/utf8"

	"github.com/ssxfund/tribune/internal/model"
	"github.com/ssxfund/tribune/internal/registry"
)

// Ellipsis is appended by Truncate when text is shortened
const Ellipsis = "…"

// Renderer renders documents to text and files
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a new renderer
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// Render returns the document's full text. Pure passthrough: the canonical
// text is never altered by rendering.
func (r *Renderer) Render(doc model.Document) string {
	return doc.Text
}

// WordCount counts whitespace-delimited tokens. This is an approximation
// of a word count, and the only computed value in the core system.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// Truncate shortens text to at most n characters (runes, not bytes) and
// appends an ellipsis marker. It never splits a multi-byte character.
// Text at or under the limit is returned unchanged, without a marker.
func Truncate(text string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(text) <= n {
		return text
	}

	count := 0
	for i := range text {
		if count == n {
			return text[:i] + Ellipsis
		}
		count++
	}
	return text
}

// CheckBudget checks every document in the registry against its format's
// word budget. Violations are flagged, never corrected: the budgets are
// aspirational and the corpus is known to break them.
func CheckBudget(reg *registry.Registry) []model.BudgetReport {
	var reports []model.BudgetReport
	for _, doc := range reg.Documents() {
		format, err := reg.Lookup(doc.Format)
		if err != nil {
			// Documents are registered under known formats; an unknown
			// format here is a corpus authoring error worth surfacing.
			reports = append(reports, model.BudgetReport{
				Format: doc.Format,
				Stance: doc.Stance,
				Title:  doc.Title,
				Words:  WordCount(doc.Text),
				Over:   true,
			})
			continue
		}

		words := WordCount(doc.Text)
		reports = append(reports, model.BudgetReport{
			Format:   format.Level,
			Stance:   doc.Stance,
			Title:    doc.Title,
			Words:    words,
			MaxWords: format.MaxWords,
			Over:     words > format.MaxWords,
		})
	}
	return reports
}
