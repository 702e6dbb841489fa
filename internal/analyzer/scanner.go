// Package analyzer implements the clause scanning, risk scoring, and
// report assembly pipeline.
package analyzer

import (
	"sort"
	"strconv"
	"strings"

	"clauselens/internal/extract"
	"clauselens/internal/models"
)

// Result is one scanned clause together with the keyword categories it
// matched. A clause can belong to several categories.
type Result struct {
	Clause     models.Clause
	Categories []string
}

// Sentences splits cleaned text into sentences, the atomic clause unit.
// A sentence ends at '.', '!' or '?' followed by whitespace, or at a
// paragraph break.
func Sentences(text string) []string {
	var sentences []string
	for _, paragraph := range strings.Split(text, "\n\n") {
		start := 0
		runes := []rune(paragraph)
		for i := 0; i < len(runes); i++ {
			if runes[i] != '.' && runes[i] != '!' && runes[i] != '?' {
				continue
			}
			// Consume a run of terminators ("?!", "...").
			for i+1 < len(runes) && (runes[i+1] == '.' || runes[i+1] == '!' || runes[i+1] == '?') {
				i++
			}
			if i+1 < len(runes) && !isSpace(runes[i+1]) {
				continue
			}
			if s := strings.TrimSpace(string(runes[start : i+1])); s != "" {
				sentences = append(sentences, s)
			}
			start = i + 1
		}
		if s := strings.TrimSpace(string(runes[start:])); s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

// ScanClause matches one clause against the keyword table. The clause's
// risk level is the maximum level among matched entries, Low when nothing
// matches. Score is the sum of matched entry weights and is used only for
// ordering findings. Pure function; identical input yields identical
// output.
func ScanClause(text string, table *models.KeywordTable) Result {
	clause := models.Clause{
		Text:      text,
		RiskLevel: models.RiskLow,
	}

	lower := strings.ToLower(text)
	categories := make(map[string]bool)
	for key, entry := range table.Entries {
		if key == "" || !strings.Contains(lower, key) {
			continue
		}
		clause.MatchedPhrases = append(clause.MatchedPhrases, entry.Phrase)
		clause.RiskLevel = models.MaxRisk(clause.RiskLevel, entry.RiskLevel)
		clause.Score += entry.EffectiveWeight()
		cat := entry.Category
		if cat == "" {
			cat = models.CategoryGeneral
		}
		categories[cat] = true
	}
	sort.Strings(clause.MatchedPhrases)

	result := Result{Clause: clause}
	for cat := range categories {
		result.Categories = append(result.Categories, cat)
	}
	sort.Strings(result.Categories)
	return result
}

// Scan runs the clause scanner over every sentence of every page. The
// returned slice preserves document order; every sentence appears exactly
// once, matched or not.
func Scan(doc *extract.Document, table *models.KeywordTable) []Result {
	var results []Result
	for _, page := range doc.Pages {
		location := pageLocation(page.Number)
		for _, sentence := range Sentences(page.Text) {
			r := ScanClause(sentence, table)
			r.Clause.Location = location
			results = append(results, r)
		}
	}
	return results
}

func pageLocation(n int) string {
	return "Page " + strconv.Itoa(n)
}
