package models

import "time"

// Jargon lookup outcome constants
const (
	OutcomeGlossary    = "glossary"   // answered from the keyword table / built-in glossary
	OutcomeDictionary  = "dictionary" // answered by the remote dictionary service
	OutcomeUnavailable = "unavailable"
)

// TermLookup represents a per-term jargon-buster hit count by outcome.
type TermLookup struct {
	Term       string
	Outcome    string
	Count      int64
	LastSeenAt time.Time
}
