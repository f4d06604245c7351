package model

import "time"

// Citation is a bibliographic record keyed by a short identifier. It exists
// for manual cross-referencing by document authors; the store never
// validates it against external sources at lookup time.
type Citation struct {
	Key      string   `json:"key" yaml:"key"`
	Full     string   `json:"full" yaml:"full"`   // Full bibliographic string
	Short    string   `json:"short" yaml:"short"` // Short form used inline in documents
	URL      string   `json:"url,omitempty" yaml:"url,omitempty"`
	Claims   []string `json:"claims" yaml:"claims"`     // Factual claims this citation supports
	Verified bool     `json:"verified" yaml:"verified"` // Whether an author has confirmed the source
}

// SourceTier represents the classification of a cited source's authority
type SourceTier int

const (
	TierUnknown   SourceTier = 0 // Not yet classified
	TierPrimary   SourceTier = 1 // Statutes, agency reports, academic papers
	TierSecondary SourceTier = 2 // Encyclopedias, major publishers, reputable media
	TierTertiary  SourceTier = 3 // Blogs, personal websites, advocacy pages
)

func (t SourceTier) String() string {
	switch t {
	case TierPrimary:
		return "primary"
	case TierSecondary:
		return "secondary"
	case TierTertiary:
		return "tertiary"
	default:
		return "unknown"
	}
}

// CheckResult contains the result of checking one citation's source link
type CheckResult struct {
	Key          string     `json:"key"`
	URL          string     `json:"url"`
	IsAccessible bool       `json:"is_accessible"`
	StatusCode   int        `json:"status_code,omitempty"`
	LastModified *time.Time `json:"last_modified,omitempty"`
	Age          *int       `json:"age_days,omitempty"`     // Days since last modified
	IsStale      bool       `json:"is_stale"`               // > 1 year old
	IsDead       bool       `json:"is_dead"`                // 404, 410, or timeout
	RedirectURL  string     `json:"redirect_url,omitempty"` // If redirected
	Tier         SourceTier `json:"tier"`
	PageTitle    string     `json:"page_title,omitempty"`   // <title> of the fetched page, if any
	TitleMatch   bool       `json:"title_match"`            // Page title overlaps the citation short form
	Error        string     `json:"error,omitempty"`
}
