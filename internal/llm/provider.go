package llm

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/ssxfund/tribune/internal/model"
)

// Provider defines the interface for LLM providers
type Provider interface {
	// Name returns the provider name
	Name() string

	// Condense shortens a document toward a target word budget
	Condense(ctx context.Context, req CondenseRequest) (*CondenseResponse, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}

// CondenseRequest contains the input for document condensation
type CondenseRequest struct {
	// Title and Text of the document to condense
	Title string
	Text  string

	// TargetWords is the word budget the condensation should land under
	TargetWords int

	// Prompt is an optional custom prompt (if empty, use default)
	Prompt string

	// Model is the specific model to use (provider-specific)
	Model string

	// MaxTokens limits the response length
	MaxTokens int
}

// CondenseResponse contains the provider's condensed output
type CondenseResponse struct {
	// Text is the condensed document
	Text string

	// Model is the model that generated the response
	Model string

	// TokensUsed tracks token consumption
	TokensUsed int
}

// Config holds LLM provider configuration
type Config struct {
	// Provider name: "openai", "anthropic", "ollama", ""
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for OpenAI/Anthropic
	APIKey string

	// BaseURL for custom endpoints (e.g., Ollama)
	BaseURL string

	// Timeout for API requests
	Timeout int // seconds

	// StrictFigures rejects condensations that introduce dollar or
	// percentage figures absent from the source text (should always be
	// true: the numbers come from an external model and must not drift)
	StrictFigures bool

	// MaxTokens for response generation
	MaxTokens int

	// Proxy settings
	HTTPProxy  string
	HTTPSProxy string
	NoProxy    string
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Provider:      "", // Disabled by default
		Model:         "",
		Timeout:       30,
		StrictFigures: true,
		MaxTokens:     1000,
	}
}

// BuildPrompt constructs the default condensation prompt
func BuildPrompt(title, text string, targetWords int) string {
	return fmt.Sprintf(`You are condensing a policy-advocacy document to fit a word budget.

CRITICAL RULES:
1. Stay under %d words.
2. Every dollar amount, percentage, and year MUST be copied verbatim from the source. Never round, recompute, or invent a figure.
3. Keep bracketed citation keys (e.g., [ssx-model-v2]) attached to the claims they support.
4. Preserve the document's framing and tone; cut detail, not position.
5. Output only the condensed document, no preamble.

Document title: %s

Source document:
%s`, targetWords, title, text)
}

// figurePattern matches dollar amounts and percentages
var figurePattern = regexp.MustCompile(`\$[\d,.]+[ ]?(?:billion|trillion|million|[BTM]\b)?|\d+(?:\.\d+)?(?: ?%| percent)`)

// extractFigures extracts dollar/percentage figures from text, deduplicated
func extractFigures(text string) []string {
	matches := figurePattern.FindAllString(text, -1)

	seen := make(map[string]bool)
	var unique []string
	for _, m := range matches {
		// The character class admits trailing sentence punctuation
		m = strings.TrimRight(strings.TrimSpace(m), ".,")
		if !seen[m] {
			seen[m] = true
			unique = append(unique, m)
		}
	}
	return unique
}

// checkFigureDrift returns an error when the condensed text contains a
// figure the source never stated
func checkFigureDrift(source, condensed string) error {
	sourceFigures := make(map[string]bool)
	for _, f := range extractFigures(source) {
		sourceFigures[f] = true
	}

	for _, f := range extractFigures(condensed) {
		if !sourceFigures[f] {
			return fmt.Errorf("FIGURE DRIFT: condensation introduced figure not in source: %s", f)
		}
	}
	return nil
}

// systemPrompt is shared by all providers
const systemPrompt = "You are a careful editor who condenses policy documents without altering any quantitative claim."

// stanceOf is a small helper for logging which matrix cell is condensed
func stanceOf(doc model.Document) string {
	if doc.Stance == model.StanceNone {
		return "-"
	}
	return string(doc.Stance)
}
