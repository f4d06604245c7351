package model

// DocumentFormat describes one cell axis of the document matrix: a target
// length/depth classification identified by a level code (e.g., "4B")
type DocumentFormat struct {
	Level           string `json:"level" yaml:"level"`                       // Level code, "1A" through "7C"
	Slug            string `json:"slug" yaml:"slug"`                         // Stable lookup alias (e.g., "evening_news")
	Name            string `json:"name" yaml:"name"`                         // Human-readable format name
	MaxWords        int    `json:"max_words" yaml:"max_words"`               // Word budget (aspirational, flagged not enforced)
	Audience        string `json:"audience" yaml:"audience"`                 // Who the document is written for
	Tone            string `json:"tone" yaml:"tone"`                         // Tone descriptor
	Outline         string `json:"outline" yaml:"outline"`                   // Structural outline
	CitationDensity string `json:"citation_density" yaml:"citation_density"` // How heavily sourced
	MathDepth       string `json:"math_depth" yaml:"math_depth"`             // How much quantitative detail appears
}

// Document is a static advocacy text bound to exactly one format and, for
// political outreach letters, one framing stance. Non-political documents
// carry StanceNone. Documents have no lifecycle beyond being printed.
type Document struct {
	Format string `json:"format" yaml:"format"` // Level code of the owning DocumentFormat
	Stance Stance `json:"stance,omitempty" yaml:"stance,omitempty"`
	Title  string `json:"title" yaml:"title"`
	Text   string `json:"text" yaml:"text"`
}

// BudgetReport records the outcome of checking one document against its
// format's word budget
type BudgetReport struct {
	Format   string `json:"format"`    // Level code
	Stance   Stance `json:"stance,omitempty"`
	Title    string `json:"title"`
	Words    int    `json:"words"`     // Whitespace-token count of the text
	MaxWords int    `json:"max_words"` // Budget from the format
	Over     bool   `json:"over"`      // Words > MaxWords
}
