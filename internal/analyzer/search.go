package analyzer

import (
	"regexp"
	"strings"

	"clauselens/internal/models"
)

var pageMarkerRe = regexp.MustCompile(`(?m)^--- Page (\d+) ---$`)

// SearchClauses finds the sentences of a stored document that contain the
// query, case-insensitively, and re-scores each hit against the keyword
// table so search results carry current risk annotations.
func SearchClauses(rawText, query string, table *models.KeywordTable) []models.SearchMatch {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	var matches []models.SearchMatch
	for _, page := range splitPages(rawText) {
		for _, sentence := range Sentences(page.text) {
			if !strings.Contains(strings.ToLower(sentence), query) {
				continue
			}
			r := ScanClause(sentence, table)
			matches = append(matches, models.SearchMatch{
				Text:      sentence,
				Location:  page.location,
				RiskLevel: r.Clause.RiskLevel,
			})
		}
	}
	return matches
}

type pageChunk struct {
	location string
	text     string
}

// splitPages separates stored raw text back into pages using the
// "--- Page N ---" markers written at extraction time. Text before any
// marker is treated as unlocated.
func splitPages(rawText string) []pageChunk {
	markers := pageMarkerRe.FindAllStringSubmatchIndex(rawText, -1)
	if len(markers) == 0 {
		return []pageChunk{{text: rawText}}
	}

	var chunks []pageChunk
	if head := strings.TrimSpace(rawText[:markers[0][0]]); head != "" {
		chunks = append(chunks, pageChunk{text: head})
	}
	for i, m := range markers {
		end := len(rawText)
		if i+1 < len(markers) {
			end = markers[i+1][0]
		}
		chunks = append(chunks, pageChunk{
			location: "Page " + rawText[m[2]:m[3]],
			text:     strings.TrimSpace(rawText[m[1]:end]),
		})
	}
	return chunks
}
