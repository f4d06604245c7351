package verify

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ssxfund/tribune/internal/model"
)

func init() {
	// Disable retry sleep in all tests for fast execution
	checkSleepFunc = func(d time.Duration) {}
}

func testConfig(t *testing.T) *model.Config {
	t.Helper()
	cfg := model.DefaultConfig()
	cfg.HTTP.Timeout = 5 * time.Second
	cfg.HTTP.RequestsPerSecond = 1000 // don't throttle tests
	cfg.HTTP.Burst = 1000
	return cfg
}

func TestChecker_CheckSingle_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/robots.txt":
			w.WriteHeader(http.StatusNotFound)
		case r.Method == http.MethodHead:
			w.Header().Set("Last-Modified", "Mon, 02 Jan 2023 15:04:05 GMT")
			w.WriteHeader(http.StatusOK)
		default:
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte("<html><head><title>2025 Trustees Report</title></head><body></body></html>"))
		}
	}))
	defer server.Close()

	checker := NewChecker(testConfig(t))
	cit := model.Citation{Key: "ssa-trustees-2025", URL: server.URL, Short: "2025 Trustees Report"}

	result := checker.checkSingle(context.Background(), cit)

	if !result.IsAccessible {
		t.Error("Expected link to be accessible")
	}
	if result.StatusCode != http.StatusOK {
		t.Errorf("Expected status code 200, got %d", result.StatusCode)
	}
	if result.IsDead {
		t.Error("Expected link not to be dead")
	}
	if result.LastModified == nil {
		t.Error("Expected Last-Modified to be parsed")
	}
	if !result.IsStale {
		t.Error("Expected a 2023 Last-Modified to be stale")
	}
	if result.PageTitle != "2025 Trustees Report" {
		t.Errorf("Expected page title to be extracted, got %q", result.PageTitle)
	}
	if !result.TitleMatch {
		t.Error("Expected page title to match the citation short form")
	}
}

func TestChecker_CheckSingle_404(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	checker := NewChecker(testConfig(t))
	result := checker.checkSingle(context.Background(), model.Citation{Key: "x", URL: server.URL})

	if result.IsAccessible {
		t.Error("Expected 404 link not to be accessible")
	}
	if !result.IsDead {
		t.Error("Expected 404 link to be marked as dead")
	}
}

func TestChecker_CheckSingle_TitleMismatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.Method == http.MethodHead {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html><head><title>Completely Unrelated Recipe Blog</title></head></html>"))
	}))
	defer server.Close()

	checker := NewChecker(testConfig(t))
	cit := model.Citation{Key: "cbo-ltbo-2025", URL: server.URL, Short: "CBO Long-Term Outlook 2025"}
	result := checker.checkSingle(context.Background(), cit)

	if !result.IsAccessible {
		t.Fatal("Expected link to be accessible")
	}
	if result.TitleMatch {
		t.Errorf("Expected title mismatch for %q", result.PageTitle)
	}
}

func TestChecker_CheckCitation_RetriesOn500(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.Method == http.MethodHead {
			if atomic.AddInt32(&calls, 1) < 3 {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	checker := NewChecker(testConfig(t))
	result := checker.CheckCitation(context.Background(), model.Citation{Key: "x", URL: server.URL})

	if !result.IsAccessible {
		t.Errorf("Expected success after retries, got status %d error %q", result.StatusCode, result.Error)
	}
	if got := atomic.LoadInt32(&calls); got != 3 {
		t.Errorf("Expected 3 HEAD attempts, got %d", got)
	}
}

func TestChecker_CheckSingle_RobotsDisallowed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			_, _ = w.Write([]byte("User-agent: *\nDisallow: /\n"))
			return
		}
		t.Errorf("Unexpected request to %s past robots.txt", r.URL.Path)
	}))
	defer server.Close()

	checker := NewChecker(testConfig(t))
	result := checker.checkSingle(context.Background(), model.Citation{Key: "x", URL: server.URL + "/report"})

	if result.IsAccessible {
		t.Error("Expected disallowed URL not to be checked")
	}
	if result.Error != "disallowed by robots.txt" {
		t.Errorf("Expected robots error, got %q", result.Error)
	}
}
