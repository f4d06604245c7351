// Package verify implements the opt-in citation link checker: it confirms
// that cited sources are reachable, classifies their authority, and
// cross-checks page titles against the citation short form. It never
// mutates the citation store; results are a report for authors.
package verify

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ssxfund/tribune/internal/model"
	"github.com/ssxfund/tribune/internal/util"
	"github.com/ssxfund/tribune/internal/worker"
)

const checkMaxRetries = 3

// checkSleepFunc is the sleep function used between retries (injectable for tests)
var checkSleepFunc = time.Sleep

// Checker checks citation source links. It implements worker.Checker so
// batches run through the shared pool.
type Checker struct {
	httpClient   *http.Client
	authority    *AuthorityClassifier
	robots       *util.RobotsChecker
	limiter      *worker.Limiter
	userAgent    string
	maxBodyBytes int64
}

// NewChecker creates a new citation checker from config
func NewChecker(cfg *model.Config) *Checker {
	proxyFunc := util.NewProxyFunc(cfg.HTTP.HTTPProxy, cfg.HTTP.HTTPSProxy, cfg.HTTP.NoProxy)

	transport := &http.Transport{
		Proxy: proxyFunc,
	}
	if cfg.HTTP.InsecureTLS {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}

	return &Checker{
		httpClient: &http.Client{
			Timeout:   cfg.HTTP.Timeout,
			Transport: transport,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("stopped after 3 redirects")
				}
				return nil
			},
		},
		authority:    NewAuthorityClassifier(&cfg.Authority),
		robots:       util.NewRobotsChecker(cfg.HTTP.UserAgent, cfg.HTTP.Timeout),
		limiter:      worker.NewLimiter(cfg.HTTP.RequestsPerSecond, cfg.HTTP.Burst),
		userAgent:    cfg.HTTP.UserAgent,
		maxBodyBytes: cfg.HTTP.MaxBodyBytes,
	}
}

// CheckCitation checks a single citation's source link, retrying
// transient failures with exponential backoff
func (c *Checker) CheckCitation(ctx context.Context, cit model.Citation) model.CheckResult {
	var result model.CheckResult
	for attempt := 0; attempt < checkMaxRetries; attempt++ {
		result = c.checkSingle(ctx, cit)
		if !isRetryableResult(result) {
			return result
		}
		if attempt < checkMaxRetries-1 {
			backoff := time.Duration(1<<uint(attempt)) * time.Second
			checkSleepFunc(backoff)
		}
	}
	return result
}

// checkSingle performs one check pass: robots, rate limit, HEAD, then an
// optional GET for the page title
func (c *Checker) checkSingle(ctx context.Context, cit model.Citation) model.CheckResult {
	result := model.CheckResult{
		Key:  cit.Key,
		URL:  cit.URL,
		Tier: c.authority.Classify(cit.URL),
	}

	if !c.robots.IsAllowed(ctx, cit.URL) {
		result.Error = "disallowed by robots.txt"
		return result
	}

	if err := c.limiter.Wait(ctx, cit.URL); err != nil {
		result.Error = fmt.Sprintf("rate limit wait: %v", err)
		return result
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, cit.URL, nil)
	if err != nil {
		result.Error = fmt.Sprintf("create request: %v", err)
		result.IsDead = true
		return result
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		result.Error = fmt.Sprintf("request failed: %v", err)
		result.IsDead = true
		return result
	}
	defer func() { _ = resp.Body.Close() }()

	result.StatusCode = resp.StatusCode

	if resp.StatusCode >= 200 && resp.StatusCode < 400 {
		result.IsAccessible = true
	} else if resp.StatusCode == 404 || resp.StatusCode == 410 {
		result.IsDead = true
	}

	if resp.Request.URL.String() != cit.URL {
		result.RedirectURL = resp.Request.URL.String()
	}

	if lastModified := resp.Header.Get("Last-Modified"); lastModified != "" {
		if t, err := time.Parse(time.RFC1123, lastModified); err == nil {
			result.LastModified = &t

			ageDays := int(time.Since(t).Hours() / 24)
			result.Age = &ageDays

			if ageDays > 365 {
				result.IsStale = true
			}
		}
	}

	// Cross-check the page title against the citation short form
	if result.IsAccessible {
		if title := c.fetchTitle(ctx, cit.URL); title != "" {
			result.PageTitle = title
			result.TitleMatch = titleMatches(title, cit.Short)
		}
	}

	return result
}

// fetchTitle GETs the page (body-limited) and extracts its <title>
func (c *Checker) fetchTitle(ctx context.Context, rawURL string) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return ""
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ""
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return ""
	}
	ct := resp.Header.Get("Content-Type")
	if ct != "" && !strings.Contains(ct, "html") {
		return ""
	}

	return extractTitle(io.LimitReader(resp.Body, c.maxBodyBytes))
}

// isRetryableResult returns true for results that indicate transient failures
func isRetryableResult(result model.CheckResult) bool {
	if result.StatusCode >= 500 && result.StatusCode < 600 {
		return true
	}
	if result.StatusCode == 429 {
		return true
	}
	if result.Error != "" && isRetryableNetworkError(result.Error) {
		return true
	}
	return false
}

// isRetryableNetworkError checks error strings for transient network failures
func isRetryableNetworkError(errMsg string) bool {
	s := strings.ToLower(errMsg)
	return strings.Contains(s, "timeout") ||
		strings.Contains(s, "connection refused") ||
		strings.Contains(s, "connection reset")
}
