package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/ssxfund/tribune/internal/cache"
	"github.com/ssxfund/tribune/internal/model"
	"github.com/ssxfund/tribune/internal/render"
)

// Condenser wraps a provider with caching. A nil provider means
// condensation is disabled; callers check IsEnabled first.
type Condenser struct {
	provider Provider
	config   Config
	store    cache.Cache // may be nil (caching disabled)
}

// Condensation is the cached/returned unit of work
type Condensation struct {
	Text       string `json:"text"`
	Provider   string `json:"provider"`
	Model      string `json:"model"`
	Words      int    `json:"words"`
	TokensUsed int    `json:"tokens_used"`
	FromCache  bool   `json:"-"`
}

// NewCondenser creates a condenser from configuration. An empty provider
// name yields a disabled condenser, not an error.
func NewCondenser(config Config, store cache.Cache) (*Condenser, error) {
	provider, err := NewProvider(config)
	if err != nil {
		return nil, err
	}

	return &Condenser{
		provider: provider,
		config:   config,
		store:    store,
	}, nil
}

// IsEnabled reports whether a provider is configured
func (c *Condenser) IsEnabled() bool {
	return c.provider != nil
}

// Condense shortens a document toward targetWords, consulting the cache
// first. The canonical document text is never replaced; the condensation
// is a separate artifact.
func (c *Condenser) Condense(ctx context.Context, doc model.Document, targetWords int) (*Condensation, error) {
	if c.provider == nil {
		return nil, fmt.Errorf("no LLM provider configured")
	}
	if targetWords <= 0 {
		return nil, fmt.Errorf("target word count must be positive, got %d", targetWords)
	}

	key := cache.CondenseKey(doc.Text, targetWords, c.provider.Name(), c.config.Model)

	if c.store != nil {
		if data, found := c.store.Get(key); found {
			var cached Condensation
			if err := json.Unmarshal(data, &cached); err == nil {
				cached.FromCache = true
				return &cached, nil
			}
			// Corrupt entry: drop it and regenerate
			_ = c.store.Delete(key)
		}
	}

	resp, err := c.provider.Condense(ctx, CondenseRequest{
		Title:       doc.Title,
		Text:        doc.Text,
		TargetWords: targetWords,
	})
	if err != nil {
		return nil, fmt.Errorf("condense %s/%s: %w", doc.Format, stanceOf(doc), err)
	}

	result := &Condensation{
		Text:       resp.Text,
		Provider:   c.provider.Name(),
		Model:      resp.Model,
		Words:      render.WordCount(resp.Text),
		TokensUsed: resp.TokensUsed,
	}

	if result.Words > targetWords {
		// Over-budget output is a warning, not a failure: the budget is
		// aspirational for condensations too
		fmt.Fprintf(os.Stderr, "Warning: condensation is %d words against a %d-word target\n", result.Words, targetWords)
	}

	if c.store != nil {
		if data, err := json.Marshal(result); err == nil {
			_ = c.store.Set(key, data, 0) // layer default TTL
		}
	}

	return result, nil
}

// CheckAvailability probes the provider with a short timeout
func (c *Condenser) CheckAvailability(ctx context.Context) bool {
	if c.provider == nil {
		return false
	}
	probeCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return c.provider.IsAvailable(probeCtx)
}
