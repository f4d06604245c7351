package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/ssxfund/tribune/internal/citation"
	"github.com/ssxfund/tribune/internal/corpus"
	"github.com/ssxfund/tribune/internal/model"
	"github.com/ssxfund/tribune/internal/registry"
	"github.com/ssxfund/tribune/internal/render"
	"github.com/ssxfund/tribune/internal/worker"
)

var (
	exportDir    string
	exportFormat string
)

// exportCmd writes the whole corpus to a directory
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the whole corpus to a directory",
	Long: `Export every document as Markdown plus the reference tables (formats,
framings, citations) as JSON or YAML. Documents render concurrently.

Example:
  tribune export --dir out/
  tribune export --dir out/ --format yaml`,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVar(&exportDir, "dir", "", "output directory (required)")
	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "reference table format (json, yaml)")
	_ = exportCmd.MarkFlagRequired("dir")
}

// docExportJob renders one document to a Markdown file
type docExportJob struct {
	doc      model.Document
	format   model.DocumentFormat
	renderer *render.Renderer
	path     string
}

// docExportResult implements worker.Result
type docExportResult struct {
	path string
	err  error
}

func (r docExportResult) GetError() error { return r.err }

func (j docExportJob) Execute(ctx context.Context) worker.Result {
	if err := ctx.Err(); err != nil {
		return docExportResult{path: j.path, err: err}
	}
	if err := j.renderer.RenderMarkdown(j.doc, j.format, j.path); err != nil {
		return docExportResult{path: j.path, err: fmt.Errorf("%s: %w", j.path, err)}
	}
	return docExportResult{path: j.path}
}

func runExport(cmd *cobra.Command, args []string) error {
	reg, store := corpus.Load()

	if err := os.MkdirAll(exportDir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	if err := exportTables(reg, store); err != nil {
		return err
	}

	cfg := model.DefaultConfig()
	renderer := render.NewRenderer(true)

	pool := worker.NewPool(cfg.Concurrency.ExportWorkers)
	pool.Start(context.Background())
	for _, doc := range reg.Documents() {
		format, err := reg.Lookup(doc.Format)
		if err != nil {
			return err
		}
		pool.Submit(docExportJob{
			doc:      doc,
			format:   format,
			renderer: renderer,
			path:     filepath.Join(exportDir, docFilename(doc)),
		})
	}
	results := pool.Wait()

	var failed int
	for _, r := range results {
		if err := r.GetError(); err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "✗ %v\n", err)
		}
	}

	fmt.Fprintf(os.Stderr, "Exported %d documents to %s (%d failed)\n", len(results)-failed, exportDir, failed)
	if failed > 0 {
		return fmt.Errorf("%d documents failed to export", failed)
	}
	return nil
}

// exportTables writes the three reference tables in the chosen format
func exportTables(reg *registry.Registry, store *citation.Store) error {
	tables := []struct {
		name string
		data interface{}
	}{
		{"formats", reg.Formats()},
		{"framings", reg.Framings()},
		{"citations", store.All()},
	}

	for _, t := range tables {
		var path string
		var err error
		switch exportFormat {
		case "yaml", "yml":
			path = filepath.Join(exportDir, t.name+".yaml")
			err = render.WriteYAML(t.data, path)
		case "json":
			path = filepath.Join(exportDir, t.name+".json")
			err = render.WriteJSON(t.data, path)
		default:
			return fmt.Errorf("unknown table format: %s (use json or yaml)", exportFormat)
		}
		if err != nil {
			return fmt.Errorf("export %s: %w", t.name, err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote %s\n", path)
		}
	}
	return nil
}

// docFilename builds a stable file name from the document's matrix cell
func docFilename(doc model.Document) string {
	name := doc.Format
	if doc.Stance != model.StanceNone {
		name += "_" + string(doc.Stance)
	}
	return name + ".md"
}
