package models

import (
	"sort"
	"strings"
)

// KeywordEntry maps a trigger phrase to a category, risk level, and
// definition. Weight is the entry's contribution to a clause's ordering
// score; it defaults from the risk level when zero.
type KeywordEntry struct {
	Phrase     string `json:"phrase" yaml:"phrase"`
	Category   string `json:"category" yaml:"category"`
	RiskLevel  string `json:"risk_level" yaml:"risk_level"`
	Weight     int    `json:"weight,omitempty" yaml:"weight,omitempty"`
	Definition string `json:"definition,omitempty" yaml:"definition,omitempty"`
}

// CategoryGeneral buckets matches from entries saved without a category,
// so every flagged clause lands in a report section.
const CategoryGeneral = "General"

// EffectiveWeight returns the entry's weight, defaulting from the risk
// level (Low=1, Medium=2, High=3) when unset.
func (e KeywordEntry) EffectiveWeight() int {
	if e.Weight > 0 {
		return e.Weight
	}
	return RiskRank(e.RiskLevel)
}

// KeywordTable is the editable set of keyword entries used by the clause
// scanner. Entries are keyed by lowercased phrase; phrase matching is
// case-insensitive. The table is session state, never shared across users.
type KeywordTable struct {
	Entries map[string]KeywordEntry `json:"entries"`
}

// NewKeywordTable returns an empty table.
func NewKeywordTable() *KeywordTable {
	return &KeywordTable{Entries: make(map[string]KeywordEntry)}
}

// Set adds or replaces an entry. The phrase is trimmed and stored under its
// lowercased form.
func (t *KeywordTable) Set(entry KeywordEntry) {
	if t.Entries == nil {
		t.Entries = make(map[string]KeywordEntry)
	}
	entry.Phrase = strings.TrimSpace(entry.Phrase)
	t.Entries[strings.ToLower(entry.Phrase)] = entry
}

// Get returns the entry for a phrase, matched case-insensitively.
func (t *KeywordTable) Get(phrase string) (KeywordEntry, bool) {
	e, ok := t.Entries[strings.ToLower(strings.TrimSpace(phrase))]
	return e, ok
}

// Delete removes the entry for a phrase. Returns true if it existed.
func (t *KeywordTable) Delete(phrase string) bool {
	key := strings.ToLower(strings.TrimSpace(phrase))
	if _, ok := t.Entries[key]; !ok {
		return false
	}
	delete(t.Entries, key)
	return true
}

// Len returns the number of entries.
func (t *KeywordTable) Len() int {
	return len(t.Entries)
}

// MaxLevel returns the highest risk level present in the table, or Low for
// an empty table. The scanner never assigns a clause a level above this.
func (t *KeywordTable) MaxLevel() string {
	max := RiskLow
	for _, e := range t.Entries {
		max = MaxRisk(max, e.RiskLevel)
	}
	return max
}

// Sorted returns entries ordered by category, then phrase, for stable
// rendering and export.
func (t *KeywordTable) Sorted() []KeywordEntry {
	entries := make([]KeywordEntry, 0, len(t.Entries))
	for _, e := range t.Entries {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Category != entries[j].Category {
			return entries[i].Category < entries[j].Category
		}
		return entries[i].Phrase < entries[j].Phrase
	})
	return entries
}

// Categories returns the distinct categories in the table, sorted.
func (t *KeywordTable) Categories() []string {
	seen := make(map[string]bool)
	var cats []string
	for _, e := range t.Entries {
		if e.Category != "" && !seen[e.Category] {
			seen[e.Category] = true
			cats = append(cats, e.Category)
		}
	}
	sort.Strings(cats)
	return cats
}

// Clone returns a deep copy so session edits never mutate shared defaults.
func (t *KeywordTable) Clone() *KeywordTable {
	clone := &KeywordTable{Entries: make(map[string]KeywordEntry, len(t.Entries))}
	for k, v := range t.Entries {
		clone.Entries[k] = v
	}
	return clone
}
