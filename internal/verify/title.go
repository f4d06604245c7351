package verify

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

// extractTitle parses HTML and returns the first <title> text, trimmed
func extractTitle(r io.Reader) string {
	doc, err := html.Parse(r)
	if err != nil {
		return ""
	}

	var title string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if title != "" {
			return
		}
		if n.Type == html.ElementNode && n.Data == "title" {
			if n.FirstChild != nil && n.FirstChild.Type == html.TextNode {
				title = strings.TrimSpace(n.FirstChild.Data)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return title
}

// titleMatches reports whether the fetched page title plausibly matches
// the citation's short form: at least half of the short form's significant
// tokens appear in the title, case-insensitively.
func titleMatches(pageTitle, short string) bool {
	tokens := significantTokens(short)
	if len(tokens) == 0 {
		return false
	}

	lower := strings.ToLower(pageTitle)
	matched := 0
	for _, tok := range tokens {
		if strings.Contains(lower, tok) {
			matched++
		}
	}
	return matched*2 >= len(tokens)
}

// significantTokens lowercases and drops short/stop words and punctuation
func significantTokens(s string) []string {
	stop := map[string]bool{
		"the": true, "and": true, "of": true, "for": true, "et": true,
		"al": true, "in": true, "on": true, "a": true, "an": true,
	}

	var out []string
	for _, field := range strings.Fields(strings.ToLower(s)) {
		tok := strings.Trim(field, ".,;:()[]\"'&")
		if len(tok) < 3 || stop[tok] {
			continue
		}
		out = append(out, tok)
	}
	return out
}
