package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/ssxfund/tribune/internal/corpus"
	"github.com/ssxfund/tribune/internal/render"
)

// framingsCmd lists the political framings
var framingsCmd = &cobra.Command{
	Use:   "framings",
	Short: "List political framings for outreach letters",
	Long: `List the persuasion framings used by the political letters, one per
recipient stance (receptive, skeptical, hostile).

Example:
  tribune framings
  tribune framings show hostile`,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, _ := corpus.Load()

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "STANCE\tFRAMING")
		for _, fr := range reg.Framings() {
			fmt.Fprintf(w, "%s\t%s\n", fr.Stance, fr.Framing)
		}
		return w.Flush()
	},
}

// framingsShowCmd shows one framing in full
var framingsShowCmd = &cobra.Command{
	Use:   "show <stance>",
	Short: "Show one framing's full playbook",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, _ := corpus.Load()

		fr, err := reg.LookupFraming(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("%s — %s\n", fr.Stance, fr.Framing)

		fmt.Println("\nLead with:")
		for _, p := range fr.LeadWith {
			fmt.Printf("  + %s\n", p)
		}

		fmt.Println("\nAvoid:")
		for _, p := range fr.Avoid {
			fmt.Printf("  - %s\n", p)
		}

		fmt.Println("\nKey arguments:")
		for _, p := range fr.Arguments {
			fmt.Printf("  * %s\n", render.Truncate(p, 100))
		}

		fmt.Println("\nTypical recipients:")
		for _, p := range fr.Recipients {
			fmt.Printf("  · %s\n", p)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(framingsCmd)
	framingsCmd.AddCommand(framingsShowCmd)
}
