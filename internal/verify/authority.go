package verify

import (
	"net/url"
	"strings"

	"github.com/ssxfund/tribune/internal/model"
)

// AuthorityClassifier classifies cited sources into authority tiers
type AuthorityClassifier struct {
	config       *model.AuthorityConfig
	primaryMap   map[string]bool
	secondaryMap map[string]bool
}

// NewAuthorityClassifier creates a new authority classifier
func NewAuthorityClassifier(config *model.AuthorityConfig) *AuthorityClassifier {
	if config == nil {
		config = &model.DefaultConfig().Authority
	}

	classifier := &AuthorityClassifier{
		config:       config,
		primaryMap:   make(map[string]bool),
		secondaryMap: make(map[string]bool),
	}

	for _, domain := range config.PrimaryDomains {
		classifier.primaryMap[domain] = true
	}
	for _, domain := range config.SecondaryDomains {
		classifier.secondaryMap[domain] = true
	}

	return classifier
}

// Classify classifies a URL into a source tier
func (a *AuthorityClassifier) Classify(rawURL string) model.SourceTier {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return model.TierTertiary
	}

	host := parsed.Host
	if idx := strings.Index(host, ":"); idx > 0 {
		host = host[:idx]
	}

	// Explicit overrides win
	if a.config.DomainMap != nil {
		if tierStr, ok := a.config.DomainMap[host]; ok {
			return parseTierString(tierStr)
		}
	}

	if a.matchDomain(a.primaryMap, host) {
		return model.TierPrimary
	}
	if a.matchDomain(a.secondaryMap, host) {
		return model.TierSecondary
	}

	// Government and academic hosts are primary even when unlisted
	if strings.HasSuffix(host, ".gov") || strings.HasSuffix(host, ".edu") ||
		strings.Contains(host, ".gov.") || strings.Contains(host, ".edu.") {
		return model.TierPrimary
	}

	return model.TierTertiary
}

// matchDomain matches a host against a domain set, including subdomains
func (a *AuthorityClassifier) matchDomain(set map[string]bool, host string) bool {
	if set[host] {
		return true
	}
	for domain := range set {
		if strings.HasSuffix(host, "."+domain) {
			return true
		}
	}
	return false
}

func parseTierString(s string) model.SourceTier {
	switch strings.ToLower(s) {
	case "primary":
		return model.TierPrimary
	case "secondary":
		return model.TierSecondary
	case "tertiary":
		return model.TierTertiary
	default:
		return model.TierUnknown
	}
}
