package render

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ssxfund/tribune/internal/model"
	"gopkg.in/yaml.v3"
)

// RenderPlain writes the document text to a file
func (r *Renderer) RenderPlain(doc model.Document, path string) error {
	text := r.Render(doc)
	if r.includeFooter {
		text += r.footer(doc)
	}
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return fmt.Errorf("write plain: %w", err)
	}
	return nil
}

// RenderJSON writes the document and its computed word count as JSON
func (r *Renderer) RenderJSON(doc model.Document, format model.DocumentFormat, path string) error {
	payload := struct {
		model.Document
		Words    int `json:"words"`
		MaxWords int `json:"max_words"`
	}{Document: doc, Words: WordCount(doc.Text), MaxWords: format.MaxWords}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal JSON: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write JSON: %w", err)
	}
	return nil
}

// RenderMarkdown writes the document with a metadata header as Markdown
func (r *Renderer) RenderMarkdown(doc model.Document, format model.DocumentFormat, path string) error {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("# %s\n\n", doc.Title))
	b.WriteString(fmt.Sprintf("- Format: %s (%s)\n", format.Level, format.Name))
	if doc.Stance != model.StanceNone {
		b.WriteString(fmt.Sprintf("- Stance: %s\n", doc.Stance))
	}
	b.WriteString(fmt.Sprintf("- Words: %d / budget %d\n", WordCount(doc.Text), format.MaxWords))
	b.WriteString(fmt.Sprintf("- Tone: %s\n", format.Tone))
	b.WriteString(fmt.Sprintf("- Audience: %s\n\n", format.Audience))
	b.WriteString("---\n\n")
	b.WriteString(doc.Text)
	b.WriteString("\n")
	if r.includeFooter {
		b.WriteString(r.footer(doc))
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write markdown: %w", err)
	}
	return nil
}

// RenderSummary prints the document text and its word count to w.
// This is the standalone invocation surface: text, then the count.
func (r *Renderer) RenderSummary(w io.Writer, doc model.Document) {
	fmt.Fprintln(w, r.Render(doc))
	fmt.Fprintf(w, "\n[word count: %d]\n", WordCount(doc.Text))
}

// WriteYAML marshals any reference table (formats, framings, citations)
// to a YAML file for reuse outside this tool
func WriteYAML(v interface{}, path string) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal YAML: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write YAML: %w", err)
	}
	return nil
}

// WriteJSON marshals any reference table to a JSON file
func WriteJSON(v interface{}, path string) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal JSON: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write JSON: %w", err)
	}
	return nil
}

func (r *Renderer) footer(doc model.Document) string {
	return fmt.Sprintf("\n---\nSocial Security Extension Fund · format %s · figures from the external SS Extension V2.0 + Wealth Tax Optimizer model\n", doc.Format)
}
