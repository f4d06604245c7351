package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ssxfund/tribune/internal/model"
	"github.com/ssxfund/tribune/internal/registry"
)

func TestWordCount(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"empty", "", 0},
		{"single word", "solvency", 1},
		{"simple sentence", "the fund stays solvent", 4},
		{"collapsed whitespace", "one  two\t\tthree\n\nfour", 4},
		{"leading and trailing space", "  padded text  ", 2},
		{"hyphenated counts as one", "mark-to-market taxation", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WordCount(tt.text); got != tt.want {
				t.Errorf("WordCount(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		text string
		n    int
		want string
	}{
		{"under limit unchanged", "short", 10, "short"},
		{"at limit unchanged", "exact", 5, "exact"},
		{"over limit gets marker", "truncate me", 8, "truncate" + Ellipsis},
		{"zero limit", "anything", 0, ""},
		{"negative limit", "anything", -3, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.text, tt.n); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.text, tt.n, got, tt.want)
			}
		})
	}
}

func TestTruncateMultibyte(t *testing.T) {
	// Counting runs over runes: a multi-byte character is one unit and is
	// never split mid-sequence
	text := "солвентность фонда"
	got := Truncate(text, 4)
	want := "солв" + Ellipsis
	if got != want {
		t.Errorf("Truncate(%q, 4) = %q, want %q", text, got, want)
	}
}

func TestRenderPassthrough(t *testing.T) {
	doc := model.Document{
		Format: "2B",
		Title:  "An Op-Ed",
		Text:   "The canonical text, exactly as authored.",
	}

	r := NewRenderer(false)
	if got := r.Render(doc); got != doc.Text {
		t.Errorf("Render altered the text: %q", got)
	}
}

func TestRenderSummary(t *testing.T) {
	doc := model.Document{Format: "1A", Title: "Bullets", Text: "three words here"}

	var buf bytes.Buffer
	NewRenderer(false).RenderSummary(&buf, doc)

	out := buf.String()
	if !strings.Contains(out, doc.Text) {
		t.Errorf("output missing document text: %q", out)
	}
	if !strings.Contains(out, "[word count: 3]") {
		t.Errorf("output missing word count line: %q", out)
	}
}

func TestCheckBudget(t *testing.T) {
	formats := []model.DocumentFormat{
		{Level: "1A", Slug: "bulletin", MaxWords: 5},
		{Level: "3B", Slug: "brief", MaxWords: 3},
	}
	documents := []model.Document{
		{Format: "1A", Title: "Within", Text: "four words fit fine"},
		{Format: "3B", Title: "Over", Text: "these five words exceed budget"},
	}
	reg := registry.New(formats, nil, documents)

	reports := CheckBudget(reg)
	if len(reports) != 2 {
		t.Fatalf("expected 2 reports, got %d", len(reports))
	}

	byFormat := make(map[string]model.BudgetReport)
	for _, rep := range reports {
		byFormat[rep.Format] = rep
	}

	if rep := byFormat["1A"]; rep.Over {
		t.Errorf("1A flagged over budget at %d/%d words", rep.Words, rep.MaxWords)
	}
	if rep := byFormat["3B"]; !rep.Over {
		t.Errorf("3B not flagged at %d/%d words", rep.Words, rep.MaxWords)
	} else if rep.Words != 5 {
		t.Errorf("3B word count = %d, want 5", rep.Words)
	}
}
