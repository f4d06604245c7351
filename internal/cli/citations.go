package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"github.com/ssxfund/tribune/internal/corpus"
	"github.com/ssxfund/tribune/internal/model"
	"github.com/ssxfund/tribune/internal/render"
	"github.com/ssxfund/tribune/internal/verify"
	"github.com/ssxfund/tribune/internal/worker"
)

var (
	checkTimeout time.Duration
	checkWorkers int
	checkJSON    string
	insecureTLS  bool
)

// citationsCmd lists the citation store
var citationsCmd = &cobra.Command{
	Use:   "citations",
	Short: "List the citation store",
	Long: `List every citation backing the corpus, with its verification status.

Example:
  tribune citations
  tribune citations show ssx-model-v2
  tribune citations unverified
  tribune citations check`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, store := corpus.Load()

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "KEY\tSHORT\tCLAIMS\tVERIFIED")
		for _, c := range store.All() {
			fmt.Fprintf(w, "%s\t%s\t%d\t%v\n", c.Key, c.Short, len(c.Claims), c.Verified)
		}
		return w.Flush()
	},
}

// citationsShowCmd shows one citation in full
var citationsShowCmd = &cobra.Command{
	Use:   "show <key>",
	Short: "Show one citation's full record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, store := corpus.Load()

		c, err := store.Get(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("%s (verified: %v)\n\n", c.Key, c.Verified)
		fmt.Printf("  %s\n", c.Full)
		if c.URL != "" {
			fmt.Printf("  %s\n", c.URL)
		}
		fmt.Println("\nSupports:")
		for _, claim := range c.Claims {
			fmt.Printf("  - %s\n", claim)
		}
		return nil
	},
}

// citationsUnverifiedCmd lists entries pending author confirmation
var citationsUnverifiedCmd = &cobra.Command{
	Use:   "unverified",
	Short: "List citations pending author confirmation",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, store := corpus.Load()

		unverified := store.ListUnverified()
		if len(unverified) == 0 {
			fmt.Println("All citations verified.")
			return nil
		}

		for _, c := range unverified {
			fmt.Printf("%s\t%s\n", c.Key, c.Short)
		}
		fmt.Fprintf(os.Stderr, "\n%d of %d citations unverified\n", len(unverified), store.Len())
		return nil
	},
}

// citationsCheckCmd checks source links over the network
var citationsCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Check citation source links (network)",
	Long: `Check every citation that carries a source URL: reachability, authority
tier, staleness, and whether the page title matches the citation. Checks
respect robots.txt and per-domain rate limits.

This is maintenance tooling for the verified flag; it reports findings
and never rewrites the store.`,
	RunE: runCitationsCheck,
}

func runCitationsCheck(cmd *cobra.Command, args []string) error {
	_, store := corpus.Load()

	ctx, cancel := context.WithTimeout(context.Background(), checkTimeout)
	defer cancel()

	cfg := model.DefaultConfig()
	cfg.HTTP.InsecureTLS = insecureTLS
	if checkWorkers > 0 {
		cfg.Concurrency.CheckWorkers = checkWorkers
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Checking %d citations with %d workers\n\n", store.Len(), cfg.Concurrency.CheckWorkers)
	}

	checker := verify.NewChecker(cfg)
	batch := worker.NewBatchChecker(checker, cfg.Concurrency.CheckWorkers)
	results := batch.ProcessCitations(ctx, store.All())

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "KEY\tSTATUS\tTIER\tTITLE MATCH\tNOTES")
	var dead, stale int
	for _, r := range results {
		status := fmt.Sprintf("%d", r.StatusCode)
		switch {
		case r.IsDead:
			status = "DEAD"
			dead++
		case !r.IsAccessible:
			status = "unreachable"
		}
		if r.IsStale {
			stale++
		}

		notes := r.Error
		if notes == "" && r.IsStale {
			notes = fmt.Sprintf("stale (%d days)", *r.Age)
		}
		if notes == "" && r.RedirectURL != "" {
			notes = "redirected"
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%v\t%s\n", r.Key, status, r.Tier, r.TitleMatch, notes)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	var noURL int
	for _, c := range store.All() {
		if c.URL == "" {
			noURL++
		}
	}
	fmt.Fprintf(os.Stderr, "\n%d checked, %d without URL, %d dead, %d stale\n", len(results), noURL, dead, stale)

	if checkJSON != "" {
		if err := render.WriteJSON(results, checkJSON); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote JSON: %s\n", checkJSON)
		}
	}

	return nil
}

func init() {
	rootCmd.AddCommand(citationsCmd)
	citationsCmd.AddCommand(citationsShowCmd)
	citationsCmd.AddCommand(citationsUnverifiedCmd)
	citationsCmd.AddCommand(citationsCheckCmd)

	citationsCheckCmd.Flags().DurationVar(&checkTimeout, "timeout", 2*time.Minute, "overall check timeout")
	citationsCheckCmd.Flags().IntVar(&checkWorkers, "workers", 0, "concurrent checks (default from config)")
	citationsCheckCmd.Flags().StringVar(&checkJSON, "json", "", "write results to a JSON file")
	citationsCheckCmd.Flags().BoolVar(&insecureTLS, "insecure", false, "skip TLS certificate verification (use for self-signed certs)")
}
