// Package cache provides the layered store for LLM condensations, so
// repeated renders of the same document at the same budget never re-bill
// the provider.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// Cache defines the interface for caching
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// CondenseKey generates a cache key for a condensation of text to a
// target word budget through a given provider/model pair
func CondenseKey(text string, targetWords int, provider, model string) string {
	hash := sha256.Sum256([]byte(fmt.Sprintf("%s|%d|%s|%s", text, targetWords, provider, model)))
	return "tribune:v1:" + hex.EncodeToString(hash[:])
}
