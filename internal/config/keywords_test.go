package config

import (
	"os"
	"path/filepath"
	"testing"

	"clauselens/internal/models"
)

func TestDefaultKeywordTable(t *testing.T) {
	table := DefaultKeywordTable()

	if table.Len() == 0 {
		t.Fatal("DefaultKeywordTable() is empty")
	}
	if table.MaxLevel() != models.RiskHigh {
		t.Errorf("MaxLevel() = %q, want %q", table.MaxLevel(), models.RiskHigh)
	}

	e, ok := table.Get("arbitrat")
	if !ok {
		t.Fatal("default table missing arbitrat stem")
	}
	if e.Category != CatDisputes {
		t.Errorf("arbitrat category = %q, want %q", e.Category, CatDisputes)
	}
	if e.Definition == "" {
		t.Error("arbitrat entry should carry a glossary definition")
	}

	for _, entry := range table.Sorted() {
		if !models.ValidRiskLevel(entry.RiskLevel) {
			t.Errorf("entry %q has invalid risk level %q", entry.Phrase, entry.RiskLevel)
		}
	}
}

func TestDefaultKeywordTableIsACopy(t *testing.T) {
	first := DefaultKeywordTable()
	first.Delete("arbitrat")
	first.Set(models.KeywordEntry{Phrase: "injected", RiskLevel: models.RiskHigh})

	second := DefaultKeywordTable()
	if _, ok := second.Get("arbitrat"); !ok {
		t.Error("editing one default table copy leaked into the next")
	}
	if _, ok := second.Get("injected"); ok {
		t.Error("injected entry leaked into a fresh default table")
	}
}

func writeKeywordFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "keywords.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write keyword file: %v", err)
	}
	return path
}

func TestLoadKeywordTableMissingFile(t *testing.T) {
	t.Setenv("KEYWORDS_FILE", filepath.Join(t.TempDir(), "does-not-exist.yaml"))

	table, err := LoadKeywordTable()
	if err != nil {
		t.Fatalf("LoadKeywordTable() error = %v", err)
	}
	if table.Len() != DefaultKeywordTable().Len() {
		t.Errorf("missing file should yield the default table, got %d entries", table.Len())
	}
}

func TestLoadKeywordTableMerges(t *testing.T) {
	path := writeKeywordFile(t, `
keywords:
  - phrase: "security deposit"
    category: "Refunds & Billing"
    risk_level: "Medium"
  - phrase: "arbitrat"
    category: "Dispute Resolution"
    risk_level: "High"
`)
	t.Setenv("KEYWORDS_FILE", path)

	table, err := LoadKeywordTable()
	if err != nil {
		t.Fatalf("LoadKeywordTable() error = %v", err)
	}

	if _, ok := table.Get("security deposit"); !ok {
		t.Error("merged table missing entry from file")
	}
	if e, _ := table.Get("arbitrat"); e.RiskLevel != models.RiskHigh {
		t.Errorf("file override not applied: arbitrat level = %q, want High", e.RiskLevel)
	}
	if _, ok := table.Get("data breach"); !ok {
		t.Error("merge dropped a built-in entry")
	}
}

func TestLoadKeywordTableReplace(t *testing.T) {
	path := writeKeywordFile(t, `
replace: true
keywords:
  - phrase: "only entry"
    category: "Custom"
    risk_level: "Low"
`)
	t.Setenv("KEYWORDS_FILE", path)

	table, err := LoadKeywordTable()
	if err != nil {
		t.Fatalf("LoadKeywordTable() error = %v", err)
	}
	if table.Len() != 1 {
		t.Errorf("replace table has %d entries, want 1", table.Len())
	}
}

func TestLoadKeywordTableInvalidLevel(t *testing.T) {
	path := writeKeywordFile(t, `
keywords:
  - phrase: "bad entry"
    risk_level: "Catastrophic"
`)
	t.Setenv("KEYWORDS_FILE", path)

	if _, err := LoadKeywordTable(); err == nil {
		t.Error("LoadKeywordTable() error = nil, want invalid risk level failure")
	}
}

func TestLoadKeywordTableMalformedYAML(t *testing.T) {
	path := writeKeywordFile(t, "keywords: [not: closed")
	t.Setenv("KEYWORDS_FILE", path)

	if _, err := LoadKeywordTable(); err == nil {
		t.Error("LoadKeywordTable() error = nil, want parse failure")
	}
}
