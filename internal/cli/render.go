package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/ssxfund/tribune/internal/cache"
	"github.com/ssxfund/tribune/internal/corpus"
	"github.com/ssxfund/tribune/internal/llm"
	"github.com/ssxfund/tribune/internal/model"
	"github.com/ssxfund/tribune/internal/render"
)

var (
	stance      string
	maxChars    int
	countOnly   bool
	noFooter    bool
	outPlain    string
	outJSON     string
	outMD       string
	summarize   bool
	targetWords int
	llmProvider string
	llmModel    string
	noCache     bool
)

// renderCmd represents the render command
var renderCmd = &cobra.Command{
	Use:   "render <level|slug>",
	Short: "Render a document to stdout or files",
	Long: `Render one cell of the document matrix: print the document's full text
followed by its computed word count. Political letters (7C) require a
--stance.

Example:
  tribune render evening_news
  tribune render 7C --stance hostile
  tribune render op_ed --max-chars 400
  tribune render white_paper --summarize --llm openai --target-words 300
  tribune render 3B --json brief.json --md brief.md`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringVar(&stance, "stance", "", "political stance for letters (receptive, skeptical, hostile)")
	renderCmd.Flags().IntVar(&maxChars, "max-chars", 0, "truncate stdout output to N characters with ellipsis")
	renderCmd.Flags().BoolVar(&countOnly, "count", false, "print only the word count")
	renderCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in file outputs")

	// Output flags
	renderCmd.Flags().StringVar(&outPlain, "out", "", "output plain-text path (optional)")
	renderCmd.Flags().StringVar(&outJSON, "json", "", "output JSON path (optional)")
	renderCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")

	// LLM flags
	renderCmd.Flags().BoolVar(&summarize, "summarize", false, "condense via LLM instead of printing full text")
	renderCmd.Flags().IntVar(&targetWords, "target-words", 0, "word budget for the condensation (default: format budget)")
	renderCmd.Flags().StringVar(&llmProvider, "llm", "openai", "LLM provider (openai, anthropic, ollama)")
	renderCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name")
	renderCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable condensation cache")
}

func runRender(cmd *cobra.Command, args []string) error {
	reg, _ := corpus.Load()

	// Resolve framing first so a bad stance fails before any output
	if stance != "" {
		if _, err := reg.LookupFraming(stance); err != nil {
			return err
		}
	}

	format, err := reg.Lookup(args[0])
	if err != nil {
		return err
	}

	doc, err := reg.Document(args[0], model.Stance(stance))
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Format: %s (%s), budget %d words\n", format.Level, format.Name, format.MaxWords)
		if doc.Stance != model.StanceNone {
			fmt.Fprintf(os.Stderr, "Stance: %s\n", doc.Stance)
		}
		fmt.Fprintln(os.Stderr)
	}

	renderer := render.NewRenderer(!noFooter)

	if countOnly {
		fmt.Println(render.WordCount(doc.Text))
		return nil
	}

	if summarize {
		// Condensation failure degrades to the canonical text, never to
		// a render failure
		if err := renderCondensed(doc, format); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: condensation unavailable (%v); printing full text\n\n", err)
		} else {
			return nil
		}
	}

	// File outputs
	if outPlain != "" {
		if err := renderer.RenderPlain(doc, outPlain); err != nil {
			return fmt.Errorf("render plain: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote text: %s\n", outPlain)
		}
	}
	if outJSON != "" {
		if err := renderer.RenderJSON(doc, format, outJSON); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote JSON: %s\n", outJSON)
		}
	}
	if outMD != "" {
		if err := renderer.RenderMarkdown(doc, format, outMD); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote Markdown: %s\n", outMD)
		}
	}

	if outPlain != "" || outJSON != "" || outMD != "" {
		return nil
	}

	// Stdout: full text plus word count, optionally truncated
	if maxChars > 0 {
		fmt.Println(render.Truncate(doc.Text, maxChars))
		return nil
	}
	renderer.RenderSummary(os.Stdout, doc)
	return nil
}

// renderCondensed runs the opt-in LLM path. The canonical text is never
// replaced; the condensation prints with an explicit header.
func renderCondensed(doc model.Document, format model.DocumentFormat) error {
	cfg := model.DefaultConfig()
	cfg.LLM.Provider = llmProvider
	cfg.LLM.Model = llmModel

	switch llmProvider {
	case "openai":
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.LLM.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	case "anthropic", "claude":
		cfg.LLM.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		if cfg.LLM.APIKey == "" {
			return fmt.Errorf("ANTHROPIC_API_KEY environment variable not set")
		}
	case "ollama":
		if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
			cfg.LLM.BaseURL = baseURL
		}
	}

	var store cache.Cache
	if cfg.Cache.Enabled && !noCache {
		store = cache.NewLayeredCache(cfg.Cache.MemoryTTL, cacheDir(cfg), cfg.Cache.DiskTTL)
	}

	condenser, err := llm.NewCondenser(llm.ConfigFromModel(cfg.LLM, cfg.HTTP), store)
	if err != nil {
		return fmt.Errorf("init LLM provider: %w", err)
	}

	target := targetWords
	if target <= 0 {
		target = format.MaxWords
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if !condenser.CheckAvailability(ctx) {
		return fmt.Errorf("%s provider is not reachable", llmProvider)
	}

	result, err := condenser.Condense(ctx, doc, target)
	if err != nil {
		return fmt.Errorf("condense: %w", err)
	}

	if verbose {
		source := "generated"
		if result.FromCache {
			source = "cache"
		}
		fmt.Fprintf(os.Stderr, "✓ Condensed via %s/%s (%s), %d words against %d target\n\n",
			result.Provider, result.Model, source, result.Words, target)
	}

	fmt.Printf("[condensed by %s/%s — canonical text unchanged]\n\n", result.Provider, result.Model)
	fmt.Println(result.Text)
	fmt.Printf("\n[word count: %d]\n", result.Words)
	return nil
}

// cacheDir resolves the disk cache directory, defaulting under the home dir
func cacheDir(cfg *model.Config) string {
	if cfg.Cache.Dir != "" {
		return cfg.Cache.Dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".tribune-cache"
	}
	return filepath.Join(home, ".tribune", "cache")
}
