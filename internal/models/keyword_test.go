package models

import "testing"

func TestKeywordTableSetGet(t *testing.T) {
	table := NewKeywordTable()
	table.Set(KeywordEntry{Phrase: "  Arbitration  ", Category: "Disputes", RiskLevel: RiskHigh})

	e, ok := table.Get("arbitration")
	if !ok {
		t.Fatal("Get() did not find entry set with different case and padding")
	}
	if e.Phrase != "Arbitration" {
		t.Errorf("Get() phrase = %q, want trimmed %q", e.Phrase, "Arbitration")
	}

	if _, ok := table.Get("ARBITRATION "); !ok {
		t.Error("Get() should match case-insensitively")
	}
}

func TestKeywordTableSetReplaces(t *testing.T) {
	table := NewKeywordTable()
	table.Set(KeywordEntry{Phrase: "waiver", RiskLevel: RiskLow})
	table.Set(KeywordEntry{Phrase: "Waiver", RiskLevel: RiskHigh})

	if table.Len() != 1 {
		t.Fatalf("Len() = %d, want 1 after replacing same phrase", table.Len())
	}
	e, _ := table.Get("waiver")
	if e.RiskLevel != RiskHigh {
		t.Errorf("RiskLevel = %q, want %q", e.RiskLevel, RiskHigh)
	}
}

func TestKeywordTableDelete(t *testing.T) {
	table := NewKeywordTable()
	table.Set(KeywordEntry{Phrase: "indemnif", RiskLevel: RiskMedium})

	if !table.Delete("Indemnif") {
		t.Error("Delete() = false for existing entry")
	}
	if table.Delete("indemnif") {
		t.Error("Delete() = true for already-deleted entry")
	}
	if table.Len() != 0 {
		t.Errorf("Len() = %d, want 0", table.Len())
	}
}

func TestKeywordTableMaxLevel(t *testing.T) {
	table := NewKeywordTable()
	if got := table.MaxLevel(); got != RiskLow {
		t.Errorf("empty table MaxLevel() = %q, want %q", got, RiskLow)
	}

	table.Set(KeywordEntry{Phrase: "late fee", RiskLevel: RiskLow})
	table.Set(KeywordEntry{Phrase: "auto-renew", RiskLevel: RiskMedium})
	if got := table.MaxLevel(); got != RiskMedium {
		t.Errorf("MaxLevel() = %q, want %q", got, RiskMedium)
	}

	table.Set(KeywordEntry{Phrase: "sell data", RiskLevel: RiskHigh})
	if got := table.MaxLevel(); got != RiskHigh {
		t.Errorf("MaxLevel() = %q, want %q", got, RiskHigh)
	}
}

func TestKeywordTableSorted(t *testing.T) {
	table := NewKeywordTable()
	table.Set(KeywordEntry{Phrase: "z-phrase", Category: "B", RiskLevel: RiskLow})
	table.Set(KeywordEntry{Phrase: "a-phrase", Category: "B", RiskLevel: RiskLow})
	table.Set(KeywordEntry{Phrase: "m-phrase", Category: "A", RiskLevel: RiskLow})

	entries := table.Sorted()
	if len(entries) != 3 {
		t.Fatalf("Sorted() returned %d entries, want 3", len(entries))
	}
	if entries[0].Phrase != "m-phrase" || entries[1].Phrase != "a-phrase" || entries[2].Phrase != "z-phrase" {
		t.Errorf("Sorted() order = %q, %q, %q; want category then phrase order",
			entries[0].Phrase, entries[1].Phrase, entries[2].Phrase)
	}
}

func TestKeywordTableClone(t *testing.T) {
	table := NewKeywordTable()
	table.Set(KeywordEntry{Phrase: "original", RiskLevel: RiskLow})

	clone := table.Clone()
	clone.Set(KeywordEntry{Phrase: "added", RiskLevel: RiskHigh})
	clone.Delete("original")

	if table.Len() != 1 {
		t.Errorf("original table Len() = %d after editing clone, want 1", table.Len())
	}
	if _, ok := table.Get("original"); !ok {
		t.Error("original table lost entry after clone edit")
	}
}

func TestEffectiveWeight(t *testing.T) {
	tests := []struct {
		name  string
		entry KeywordEntry
		want  int
	}{
		{"explicit weight wins", KeywordEntry{RiskLevel: RiskLow, Weight: 5}, 5},
		{"defaults from low", KeywordEntry{RiskLevel: RiskLow}, 1},
		{"defaults from medium", KeywordEntry{RiskLevel: RiskMedium}, 2},
		{"defaults from high", KeywordEntry{RiskLevel: RiskHigh}, 3},
		{"unknown level defaults to 1", KeywordEntry{RiskLevel: "Nope"}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.entry.EffectiveWeight(); got != tt.want {
				t.Errorf("EffectiveWeight() = %d, want %d", got, tt.want)
			}
		})
	}
}
