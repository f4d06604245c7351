// Package util holds small HTTP helpers shared by the outbound tooling:
// robots.txt compliance for the citation link checker and proxy
// resolution for its clients.
package util

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/temoto/robotstxt"
)

// RobotsChecker answers whether a URL may be fetched under its host's
// robots.txt, caching one parsed policy per host
type RobotsChecker struct {
	mu        sync.RWMutex
	policies  map[string]*robotstxt.RobotsData
	client    *http.Client
	userAgent string
}

// NewRobotsChecker creates a checker identifying itself as userAgent
func NewRobotsChecker(userAgent string, timeout time.Duration) *RobotsChecker {
	return &RobotsChecker{
		policies:  make(map[string]*robotstxt.RobotsData),
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}
}

// IsAllowed reports whether rawURL may be fetched. A missing or
// unreachable robots.txt allows by default; an unparseable URL does not.
func (r *RobotsChecker) IsAllowed(ctx context.Context, rawURL string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}

	policy := r.policy(ctx, parsed)
	if policy == nil {
		return true
	}
	return policy.TestAgent(parsed.Path, r.userAgent)
}

// policy returns the cached robots.txt policy for the URL's host,
// fetching it on first use. A nil return means no policy could be
// obtained.
func (r *RobotsChecker) policy(ctx context.Context, parsed *url.URL) *robotstxt.RobotsData {
	r.mu.RLock()
	cached, ok := r.policies[parsed.Host]
	r.mu.RUnlock()
	if ok {
		return cached
	}

	robotsURL := fmt.Sprintf("%s://%s/robots.txt", parsed.Scheme, parsed.Host)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, robotsURL, nil)
	if err != nil {
		return nil
	}
	req.Header.Set("User-Agent", r.userAgent)

	resp, err := r.client.Do(req)
	if err != nil {
		return nil
	}
	defer func() { _ = resp.Body.Close() }()

	// FromResponse folds the status code into the policy: a 404 allows
	// everything
	data, err := robotstxt.FromResponse(resp)
	if err != nil {
		return nil
	}

	r.mu.Lock()
	r.policies[parsed.Host] = data
	r.mu.Unlock()

	return data
}
