package models

import (
	"time"

	"github.com/google/uuid"
)

// Clause is a segment of the source document treated as an atomic unit for
// risk scoring.
type Clause struct {
	Text           string   `json:"text"`
	Location       string   `json:"location,omitempty"` // e.g. "Page 3"
	MatchedPhrases []string `json:"matched_phrases,omitempty"`
	RiskLevel      string   `json:"risk_level"`
	Score          int      `json:"score"` // sum of matched keyword weights, ordering only
}

// CategorySummary groups the top clauses for one keyword category together
// with the model-generated summary of that category.
type CategorySummary struct {
	Category  string   `json:"category"`
	Summary   string   `json:"summary"`
	RiskLevel string   `json:"risk_level"`
	Clauses   []Clause `json:"clauses"`
}

// DocumentAnalysis is the full result of analyzing one document. Created
// fresh per upload and discarded (or persisted whole) as a unit.
type DocumentAnalysis struct {
	ID          uuid.UUID         `json:"id"`
	Title       string            `json:"title"`
	DocType     string            `json:"doc_type"`
	Summary     string            `json:"summary"` // document-level model summary
	Categories  []CategorySummary `json:"categories"`
	Gauge       string            `json:"gauge"` // Low, Moderate, High
	ClauseCount int               `json:"clause_count"`
	RawText     string            `json:"raw_text,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
}

// AllClauses returns every clause across categories, in category order.
func (a *DocumentAnalysis) AllClauses() []Clause {
	var clauses []Clause
	for _, cat := range a.Categories {
		clauses = append(clauses, cat.Clauses...)
	}
	return clauses
}

// AnalysisListing is the lightweight row shown on the recent-analyses list.
type AnalysisListing struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	DocType     string    `json:"doc_type"`
	Gauge       string    `json:"gauge"`
	ClauseCount int       `json:"clause_count"`
	CreatedAt   time.Time `json:"created_at"`
}
