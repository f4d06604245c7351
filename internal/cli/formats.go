package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/ssxfund/tribune/internal/corpus"
	"github.com/ssxfund/tribune/internal/render"
)

// formatsCmd lists the document matrix
var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List the document format matrix",
	Long: `List every format level of the document matrix with its word budget,
audience, and tone.

Example:
  tribune formats
  tribune formats show 4B
  tribune formats show evening_news`,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, _ := corpus.Load()

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "LEVEL\tSLUG\tNAME\tBUDGET\tTONE")
		for _, f := range reg.Formats() {
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n", f.Level, f.Slug, f.Name, f.MaxWords, f.Tone)
		}
		return w.Flush()
	},
}

// formatsShowCmd shows one format in full
var formatsShowCmd = &cobra.Command{
	Use:   "show <level|slug>",
	Short: "Show one format's full specification",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, _ := corpus.Load()

		f, err := reg.Lookup(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("%s — %s (%s)\n\n", f.Level, f.Name, f.Slug)
		fmt.Printf("  Word budget:      %d\n", f.MaxWords)
		fmt.Printf("  Audience:         %s\n", f.Audience)
		fmt.Printf("  Tone:             %s\n", f.Tone)
		fmt.Printf("  Outline:          %s\n", f.Outline)
		fmt.Printf("  Citation density: %s\n", f.CitationDensity)
		fmt.Printf("  Math depth:       %s\n", f.MathDepth)
		return nil
	},
}

// budgetCmd checks every document against its format's word budget
var budgetCmd = &cobra.Command{
	Use:   "budget",
	Short: "Check every document against its format's word budget",
	Long: `Check the whole corpus against the matrix word budgets. Budgets are
aspirational: violations are flagged, never fixed, and the command exits
zero either way.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, _ := corpus.Load()

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "FORMAT\tSTANCE\tWORDS\tBUDGET\tSTATUS")
		for _, rep := range render.CheckBudget(reg) {
			status := "ok"
			if rep.Over {
				status = "OVER BUDGET"
			}
			stance := string(rep.Stance)
			if stance == "" {
				stance = "-"
			}
			fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\n", rep.Format, stance, rep.Words, rep.MaxWords, status)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(formatsCmd)
	formatsCmd.AddCommand(formatsShowCmd)
	rootCmd.AddCommand(budgetCmd)
}
