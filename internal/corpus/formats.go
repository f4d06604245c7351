package corpus

import "github.com/ssxfund/tribune/internal/model"

// Formats returns the document matrix axis: one entry per format level.
// Level codes run "1A" through "7C"; the slug is a stable lookup alias.
func Formats() []model.DocumentFormat {
	return []model.DocumentFormat{
		{
			Level:           "1A",
			Slug:            "evening_news",
			Name:            "Evening News Bullets",
			MaxWords:        200,
			Audience:        "general television audience, 45 seconds of airtime",
			Tone:            "plain, concrete, no jargon",
			Outline:         "hook; three bullets; one-line kicker",
			CitationDensity: "none on air; sources held by producer",
			MathDepth:       "single headline figure only",
		},
		{
			Level:           "2B",
			Slug:            "op_ed",
			Name:            "Newspaper Op-Ed",
			MaxWords:        800,
			Audience:        "metro daily readership, civically engaged",
			Tone:            "persuasive first person, conversational",
			Outline:         "anecdote lede; problem; proposal; objections; close",
			CitationDensity: "two or three named sources woven into prose",
			MathDepth:       "rounded figures, no derivations",
		},
		{
			Level:           "3B",
			Slug:            "legislative_brief",
			Name:            "Legislative Brief",
			MaxWords:        600,
			Audience:        "congressional staff, two-minute read",
			Tone:            "neutral, declarative, numbered",
			Outline:         "summary box; mechanism; revenue; distribution; timeline",
			CitationDensity: "bracketed keys on every quantitative claim",
			MathDepth:       "point estimates with ranges",
		},
		{
			Level:           "4B",
			Slug:            "white_paper",
			Name:            "Policy White Paper",
			MaxWords:        5000,
			Audience:        "think-tank analysts and agency economists",
			Tone:            "formal, hedged, methodical",
			Outline:         "abstract; background; design; projections; sensitivity; limits",
			CitationDensity: "full bibliography with inline keys",
			MathDepth:       "model outputs reproduced with confidence bands",
		},
		{
			Level:           "5C",
			Slug:            "journal_submission",
			Name:            "Journal Submission",
			MaxWords:        8000,
			Audience:        "peer reviewers in public economics",
			Tone:            "academic, impersonal",
			Outline:         "abstract; literature; model; data; results; robustness",
			CitationDensity: "exhaustive, author-year",
			MathDepth:       "full specification deferred to the external model",
		},
		{
			Level:           "7C",
			Slug:            "persuasion_letter",
			Name:            "Political Persuasion Letter",
			MaxWords:        1000,
			Audience:        "individual legislators, varies by stance",
			Tone:            "tailored per framing: warm, pragmatic, or disarming",
			Outline:         "framing title; district hook; asks; signature",
			CitationDensity: "one or two, stance-dependent",
			MathDepth:       "district-level figures only",
		},
	}
}
