package analyzer

import (
	"testing"

	"clauselens/internal/models"
)

const searchRawText = `--- Page 1 ---
The tenant shall pay a late fee of fifty dollars. The landlord may enter with notice.

--- Page 2 ---
All disputes are settled by binding arbitration. Nothing else here.`

func TestSearchClauses(t *testing.T) {
	matches := SearchClauses(searchRawText, "arbitration", testTable())

	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1", len(matches))
	}
	if matches[0].Location != "Page 2" {
		t.Errorf("Location = %q, want %q", matches[0].Location, "Page 2")
	}
	if matches[0].RiskLevel != models.RiskHigh {
		t.Errorf("RiskLevel = %q, want %q (re-scored against table)", matches[0].RiskLevel, models.RiskHigh)
	}
}

func TestSearchClausesCaseInsensitive(t *testing.T) {
	matches := SearchClauses(searchRawText, "LATE FEE", testTable())
	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1", len(matches))
	}
	if matches[0].Location != "Page 1" {
		t.Errorf("Location = %q, want %q", matches[0].Location, "Page 1")
	}
}

func TestSearchClausesEmptyQuery(t *testing.T) {
	if matches := SearchClauses(searchRawText, "   ", testTable()); matches != nil {
		t.Errorf("blank query returned %d matches, want none", len(matches))
	}
}

func TestSearchClausesNoMarkers(t *testing.T) {
	matches := SearchClauses("Pasted text mentions arbitration once.", "arbitration", testTable())
	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1", len(matches))
	}
	if matches[0].Location != "" {
		t.Errorf("Location = %q, want empty for unlocated text", matches[0].Location)
	}
}

func TestSearchClausesUnmatchedKeywordStillLow(t *testing.T) {
	matches := SearchClauses(searchRawText, "landlord", testTable())
	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1", len(matches))
	}
	if matches[0].RiskLevel != models.RiskLow {
		t.Errorf("RiskLevel = %q, want %q for a hit with no keyword matches", matches[0].RiskLevel, models.RiskLow)
	}
}
