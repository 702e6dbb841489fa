package analyzer

import (
	"reflect"
	"testing"

	"clauselens/internal/extract"
	"clauselens/internal/models"
)

func testTable() *models.KeywordTable {
	table := models.NewKeywordTable()
	table.Set(models.KeywordEntry{Phrase: "arbitration", Category: "Disputes", RiskLevel: models.RiskHigh, Weight: 4})
	table.Set(models.KeywordEntry{Phrase: "automatic renewal", Category: "Billing", RiskLevel: models.RiskMedium, Weight: 2})
	table.Set(models.KeywordEntry{Phrase: "late fee", Category: "Billing", RiskLevel: models.RiskLow, Weight: 1})
	return table
}

func TestSentences(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			"simple sentences",
			"First sentence. Second sentence! Third?",
			[]string{"First sentence.", "Second sentence!", "Third?"},
		},
		{
			"decimal point is not a boundary",
			"The fee is 2.5 percent. It applies monthly.",
			[]string{"The fee is 2.5 percent.", "It applies monthly."},
		},
		{
			"abbreviation mid-word survives",
			"See clause 4.2(a) for details.",
			[]string{"See clause 4.2(a) for details."},
		},
		{
			"paragraph break splits without terminator",
			"First paragraph has no period\n\nSecond paragraph.",
			[]string{"First paragraph has no period", "Second paragraph."},
		},
		{
			"terminator run stays attached",
			"Really?! Yes.",
			[]string{"Really?!", "Yes."},
		},
		{
			"trailing text without terminator",
			"Sentence one. Trailing fragment",
			[]string{"Sentence one.", "Trailing fragment"},
		},
		{"empty input", "", nil},
		{"whitespace only", "   \n\n  ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sentences(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Sentences(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestScanClauseNoMatch(t *testing.T) {
	r := ScanClause("This sentence is entirely benign.", testTable())

	if r.Clause.RiskLevel != models.RiskLow {
		t.Errorf("unmatched clause RiskLevel = %q, want %q", r.Clause.RiskLevel, models.RiskLow)
	}
	if len(r.Clause.MatchedPhrases) != 0 {
		t.Errorf("unmatched clause MatchedPhrases = %v, want none", r.Clause.MatchedPhrases)
	}
	if r.Clause.Score != 0 {
		t.Errorf("unmatched clause Score = %d, want 0", r.Clause.Score)
	}
}

func TestScanClauseMaxLevelWins(t *testing.T) {
	text := "This agreement includes automatic renewal and binding arbitration."
	r := ScanClause(text, testTable())

	if r.Clause.RiskLevel != models.RiskHigh {
		t.Errorf("RiskLevel = %q, want %q (highest matched level)", r.Clause.RiskLevel, models.RiskHigh)
	}
	wantPhrases := []string{"arbitration", "automatic renewal"}
	if !reflect.DeepEqual(r.Clause.MatchedPhrases, wantPhrases) {
		t.Errorf("MatchedPhrases = %v, want %v", r.Clause.MatchedPhrases, wantPhrases)
	}
	if r.Clause.Score != 6 {
		t.Errorf("Score = %d, want 6 (4+2)", r.Clause.Score)
	}
	wantCats := []string{"Billing", "Disputes"}
	if !reflect.DeepEqual(r.Categories, wantCats) {
		t.Errorf("Categories = %v, want %v", r.Categories, wantCats)
	}
}

func TestScanClauseCategoryLessEntryBucketsAsGeneral(t *testing.T) {
	table := testTable()
	table.Set(models.KeywordEntry{Phrase: "escheat", RiskLevel: models.RiskMedium})

	r := ScanClause("Unclaimed deposits escheat to the state.", table)
	if !reflect.DeepEqual(r.Categories, []string{models.CategoryGeneral}) {
		t.Errorf("Categories = %v, want [%q]", r.Categories, models.CategoryGeneral)
	}
	if r.Clause.RiskLevel != models.RiskMedium {
		t.Errorf("RiskLevel = %q, want %q", r.Clause.RiskLevel, models.RiskMedium)
	}
}

func TestScanClauseCaseInsensitive(t *testing.T) {
	r := ScanClause("ARBITRATION applies to all disputes.", testTable())
	if r.Clause.RiskLevel != models.RiskHigh {
		t.Errorf("RiskLevel = %q, want %q for uppercase match", r.Clause.RiskLevel, models.RiskHigh)
	}
}

func TestScanClauseDeterministic(t *testing.T) {
	text := "A late fee applies after arbitration and automatic renewal."
	first := ScanClause(text, testTable())
	for i := 0; i < 10; i++ {
		again := ScanClause(text, testTable())
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("ScanClause is not deterministic: run %d differs", i)
		}
	}
}

func TestScanPreservesOrderAndLocation(t *testing.T) {
	doc := &extract.Document{Pages: []extract.Page{
		{Number: 1, Text: "First sentence. Second with arbitration."},
		{Number: 3, Text: "Third sentence on a later page."},
	}}

	results := Scan(doc, testTable())
	if len(results) != 3 {
		t.Fatalf("Scan() returned %d results, want 3 (every sentence appears)", len(results))
	}
	if results[0].Clause.Location != "Page 1" || results[2].Clause.Location != "Page 3" {
		t.Errorf("locations = %q, %q; want Page 1 and Page 3",
			results[0].Clause.Location, results[2].Clause.Location)
	}
	if results[1].Clause.RiskLevel != models.RiskHigh {
		t.Errorf("matched sentence RiskLevel = %q, want %q", results[1].Clause.RiskLevel, models.RiskHigh)
	}
	if results[0].Clause.RiskLevel != models.RiskLow {
		t.Errorf("unmatched sentence RiskLevel = %q, want %q", results[0].Clause.RiskLevel, models.RiskLow)
	}
}
