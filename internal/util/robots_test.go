package util

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestRobotsChecker_Disallow(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			_, _ = w.Write([]byte("User-agent: *\nDisallow: /private/\n"))
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	checker := NewRobotsChecker("Tribune/0.1", 2*time.Second)

	if checker.IsAllowed(context.Background(), server.URL+"/private/report") {
		t.Error("expected /private/ to be disallowed")
	}
	if !checker.IsAllowed(context.Background(), server.URL+"/public/report") {
		t.Error("expected /public/ to be allowed")
	}
}

func TestRobotsChecker_MissingRobotsAllows(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	checker := NewRobotsChecker("Tribune/0.1", 2*time.Second)
	if !checker.IsAllowed(context.Background(), server.URL+"/report") {
		t.Error("expected a missing robots.txt to allow fetching")
	}
}

func TestRobotsChecker_CachesPolicyPerHost(t *testing.T) {
	var fetches int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			atomic.AddInt32(&fetches, 1)
			_, _ = w.Write([]byte("User-agent: *\nAllow: /\n"))
		}
	}))
	defer server.Close()

	checker := NewRobotsChecker("Tribune/0.1", 2*time.Second)
	for i := 0; i < 4; i++ {
		checker.IsAllowed(context.Background(), server.URL+"/page")
	}

	if got := atomic.LoadInt32(&fetches); got != 1 {
		t.Errorf("expected 1 robots.txt fetch for 4 checks, got %d", got)
	}
}

func TestRobotsChecker_UnparseableURL(t *testing.T) {
	checker := NewRobotsChecker("Tribune/0.1", 2*time.Second)
	if checker.IsAllowed(context.Background(), "://bad") {
		t.Error("expected unparseable URL to be refused")
	}
}
