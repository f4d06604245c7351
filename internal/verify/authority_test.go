package verify

import (
	"testing"

	"github.com/ssxfund/tribune/internal/model"
)

func TestAuthorityClassifier_Tiers(t *testing.T) {
	config := &model.AuthorityConfig{
		PrimaryDomains:   []string{"ssa.gov", "cbo.gov", "nber.org"},
		SecondaryDomains: []string{"en.wikipedia.org", "brookings.edu"},
	}

	classifier := NewAuthorityClassifier(config)

	tests := []struct {
		url      string
		expected model.SourceTier
		desc     string
	}{
		{"https://www.ssa.gov/oact/tr/2025/", model.TierPrimary, "primary domain with subdomain"},
		{"https://cbo.gov/publication/1234", model.TierPrimary, "primary domain exact match"},
		{"https://en.wikipedia.org/wiki/Social_Security", model.TierSecondary, "secondary domain"},
		{"https://treasury.gov/press", model.TierPrimary, "unlisted .gov falls through to primary"},
		{"https://pages.stern.nyu.edu/~adamodar/", model.TierPrimary, "unlisted .edu falls through to primary"},
		{"https://someblog.example.com/post", model.TierTertiary, "unknown host is tertiary"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			result := classifier.Classify(tt.url)
			if result != tt.expected {
				t.Errorf("Expected %v for %s, got %v", tt.expected, tt.url, result)
			}
		})
	}
}

func TestAuthorityClassifier_DomainMapOverride(t *testing.T) {
	config := &model.AuthorityConfig{
		DomainMap: map[string]string{"someblog.example.com": "secondary"},
	}

	classifier := NewAuthorityClassifier(config)

	if got := classifier.Classify("https://someblog.example.com/post"); got != model.TierSecondary {
		t.Errorf("Expected domain map override to secondary, got %v", got)
	}
}

func TestAuthorityClassifier_NilConfigUsesDefaults(t *testing.T) {
	classifier := NewAuthorityClassifier(nil)

	if got := classifier.Classify("https://www.ssa.gov/oact/"); got != model.TierPrimary {
		t.Errorf("Expected ssa.gov primary under defaults, got %v", got)
	}
}

func TestAuthorityClassifier_InvalidURL(t *testing.T) {
	classifier := NewAuthorityClassifier(nil)

	if got := classifier.Classify("://not-a-url"); got != model.TierTertiary {
		t.Errorf("Expected tertiary for unparseable URL, got %v", got)
	}
}
