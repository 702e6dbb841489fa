package analyzer

import (
	"context"
	"log/slog"
	"slices"
	"sort"
	"strings"

	"clauselens/internal/extract"
	"clauselens/internal/models"
)

// SummaryUnavailable is the placeholder recorded when the summarization
// model fails for a section. The analysis itself still completes.
const SummaryUnavailable = "Summary unavailable."

// maxBulletsCap bounds how many clauses a category surfaces.
const maxBulletsCap = 7

// excerptLen bounds the truncation fallback used when no summarizer is
// configured.
const excerptLen = 250

// Summarizer produces a short plain-language summary of legal text.
// Implementations may call out to a model; errors are recovered per
// section with a placeholder.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}

// Pipeline runs the full document analysis: scan, score, aggregate,
// summarize, assemble. A nil summarizer falls back to excerpts.
type Pipeline struct {
	summarizer Summarizer
}

// New creates a pipeline. summarizer may be nil when no model is
// configured.
func New(summarizer Summarizer) *Pipeline {
	return &Pipeline{summarizer: summarizer}
}

// Process analyzes one extracted document against a keyword table and
// returns a fresh DocumentAnalysis. Each user action runs exactly one
// synchronous Process call; there is no background work.
func (p *Pipeline) Process(ctx context.Context, doc *extract.Document, table *models.KeywordTable, title, docType string) *models.DocumentAnalysis {
	results := Scan(doc, table)

	analysis := &models.DocumentAnalysis{
		Title:   title,
		DocType: docType,
		Gauge:   Aggregate(results),
		RawText: doc.Text(),
	}

	perCategory := make(map[string][]models.Clause)
	for _, r := range results {
		if len(r.Clause.MatchedPhrases) == 0 {
			continue
		}
		analysis.ClauseCount++
		for _, cat := range r.Categories {
			perCategory[cat] = append(perCategory[cat], r.Clause)
		}
	}

	// Entries saved without a category match under CategoryGeneral, so
	// every counted clause shows up in some section.
	cats := table.Categories()
	if _, ok := perCategory[models.CategoryGeneral]; ok && !slices.Contains(cats, models.CategoryGeneral) {
		cats = append(cats, models.CategoryGeneral)
	}

	var allTopTexts []string
	for _, cat := range cats {
		clauses := topClauses(perCategory[cat])
		if len(clauses) == 0 {
			continue
		}

		joined := joinClauseTexts(clauses)
		allTopTexts = append(allTopTexts, joined)

		analysis.Categories = append(analysis.Categories, models.CategorySummary{
			Category:  cat,
			Summary:   p.summarize(ctx, joined),
			RiskLevel: CategoryRisk(clauses),
			Clauses:   clauses,
		})
	}

	if len(allTopTexts) > 0 {
		analysis.Summary = p.summarize(ctx, strings.Join(allTopTexts, " "))
	}

	return analysis
}

// topClauses orders a category's findings by descending score (ties keep
// document order), deduplicates identical texts, and caps the list. The
// cap grows with the number of findings, up to maxBulletsCap.
func topClauses(clauses []models.Clause) []models.Clause {
	if len(clauses) == 0 {
		return nil
	}

	ordered := make([]models.Clause, len(clauses))
	copy(ordered, clauses)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Score > ordered[j].Score
	})

	max := 2 + len(ordered)/4
	if max > maxBulletsCap {
		max = maxBulletsCap
	}

	seen := make(map[string]bool)
	var top []models.Clause
	for _, c := range ordered {
		if seen[c.Text] {
			continue
		}
		seen[c.Text] = true
		top = append(top, c)
		if len(top) >= max {
			break
		}
	}
	return top
}

// summarize delegates to the model, recovering failures with the
// placeholder. Without a summarizer it falls back to a truncated excerpt
// so the analysis stays useful offline.
func (p *Pipeline) summarize(ctx context.Context, text string) string {
	if p.summarizer == nil {
		return excerpt(text)
	}
	summary, err := p.summarizer.Summarize(ctx, text)
	if err != nil {
		slog.Warn("summarization failed, using placeholder", "error", err)
		return SummaryUnavailable
	}
	summary = strings.TrimSpace(summary)
	if summary == "" {
		return SummaryUnavailable
	}
	return summary
}

func joinClauseTexts(clauses []models.Clause) string {
	texts := make([]string, len(clauses))
	for i, c := range clauses {
		texts[i] = c.Text
	}
	return strings.Join(texts, " ")
}

func excerpt(text string) string {
	runes := []rune(text)
	if len(runes) <= excerptLen {
		return text
	}
	return string(runes[:excerptLen]) + "..."
}
