package config

import (
	"clauselens/internal/models"
)

// Keyword categories used by the default table. A document type selects a
// subset of these for its report sections.
const (
	CatDataCollection = "Data Collection"
	CatDataSharing    = "Data Sharing"
	CatUserRights     = "User Rights"
	CatRestrictions   = "Restrictions"
	CatTermination    = "Termination"
	CatBilling        = "Refunds & Billing"
	CatDisputes       = "Dispute Resolution"
	CatLiability      = "Liability & Warranty"
	CatContent        = "User Content Ownership"
	CatThirdParty     = "Third-party Integration"
	CatSecurity       = "Security & Breach Responsibility"
)

// defaultKeywords is the built-in keyword table. Phrases are matched as
// case-insensitive substrings, so stems like "arbitrat" cover
// "arbitration" and "arbitrate". Weights feed clause ordering; levels feed
// risk scoring.
var defaultKeywords = []models.KeywordEntry{
	// Data Collection
	{Phrase: "collect", Category: CatDataCollection, RiskLevel: models.RiskLow},
	{Phrase: "personal data", Category: CatDataCollection, RiskLevel: models.RiskLow},
	{Phrase: "information we collect", Category: CatDataCollection, RiskLevel: models.RiskLow},
	{Phrase: "cookie", Category: CatDataCollection, RiskLevel: models.RiskLow},
	{Phrase: "monitor", Category: CatDataCollection, RiskLevel: models.RiskMedium, Weight: 3},

	// Data Sharing
	{Phrase: "share", Category: CatDataSharing, RiskLevel: models.RiskLow},
	{Phrase: "sell data", Category: CatDataSharing, RiskLevel: models.RiskHigh, Weight: 5},
	{Phrase: "third party", Category: CatDataSharing, RiskLevel: models.RiskLow},
	{Phrase: "affiliate", Category: CatDataSharing, RiskLevel: models.RiskLow},
	{Phrase: "advertis", Category: CatDataSharing, RiskLevel: models.RiskLow},

	// User Rights
	{Phrase: "opt-out", Category: CatUserRights, RiskLevel: models.RiskLow},
	{Phrase: "rectify", Category: CatUserRights, RiskLevel: models.RiskLow},
	{Phrase: "withdraw consent", Category: CatUserRights, RiskLevel: models.RiskLow},

	// Restrictions
	{Phrase: "you agree not to", Category: CatRestrictions, RiskLevel: models.RiskLow},
	{Phrase: "prohibit", Category: CatRestrictions, RiskLevel: models.RiskLow},
	{Phrase: "reverse engineer", Category: CatRestrictions, RiskLevel: models.RiskLow},

	// Termination
	{Phrase: "terminat", Category: CatTermination, RiskLevel: models.RiskMedium,
		Definition: "Termination is the act of ending a contract or agreement before its natural end."},
	{Phrase: "suspend", Category: CatTermination, RiskLevel: models.RiskMedium, Weight: 3},
	{Phrase: "breach", Category: CatTermination, RiskLevel: models.RiskMedium,
		Definition: "A breach is a violation or failure to perform a duty or obligation in a contract without a legal excuse."},
	{Phrase: "default", Category: CatTermination, RiskLevel: models.RiskMedium,
		Definition: "Default is the failure to fulfill an obligation, especially to repay a loan."},

	// Refunds & Billing
	{Phrase: "no refund", Category: CatBilling, RiskLevel: models.RiskMedium, Weight: 3},
	{Phrase: "auto-renew", Category: CatBilling, RiskLevel: models.RiskMedium, Weight: 3},
	{Phrase: "automatic renewal", Category: CatBilling, RiskLevel: models.RiskMedium, Weight: 3},
	{Phrase: "hidden fee", Category: CatBilling, RiskLevel: models.RiskMedium, Weight: 3},
	{Phrase: "subscription", Category: CatBilling, RiskLevel: models.RiskLow},
	{Phrase: "billing", Category: CatBilling, RiskLevel: models.RiskLow},
	{Phrase: "premium", Category: CatBilling, RiskLevel: models.RiskLow,
		Definition: "A premium is the amount of money an individual or business pays for an insurance policy."},
	{Phrase: "deductible", Category: CatBilling, RiskLevel: models.RiskLow,
		Definition: "A deductible is the amount you must pay out-of-pocket for a covered loss before your insurance company starts to pay."},

	// Dispute Resolution
	{Phrase: "arbitrat", Category: CatDisputes, RiskLevel: models.RiskMedium, Weight: 3,
		Definition: "Arbitration is a method of resolving disputes outside of court. A neutral third party makes a decision that is usually legally binding, meaning you waive your right to sue."},
	{Phrase: "class action", Category: CatDisputes, RiskLevel: models.RiskMedium, Weight: 3},
	{Phrase: "waive", Category: CatDisputes, RiskLevel: models.RiskMedium,
		Definition: "A waiver is the act of intentionally giving up a known right, claim, or privilege. If you waive a right, you can't enforce it later."},
	{Phrase: "governing law", Category: CatDisputes, RiskLevel: models.RiskLow,
		Definition: "A governing-law clause picks the jurisdiction whose law applies, which determines where and under what rules a case is heard."},
	{Phrase: "venue", Category: CatDisputes, RiskLevel: models.RiskLow},

	// Liability & Warranty
	{Phrase: "indemnify", Category: CatLiability, RiskLevel: models.RiskMedium, Weight: 3,
		Definition: "To indemnify is to guarantee against loss or damage: you agree to pay for any costs or losses the other party suffers."},
	{Phrase: "liab", Category: CatLiability, RiskLevel: models.RiskMedium,
		Definition: "Liability is legal responsibility for one's acts or omissions. A 'limitation of liability' clause tries to cap what one party has to pay if something goes wrong."},
	{Phrase: "warrant", Category: CatLiability, RiskLevel: models.RiskLow},
	{Phrase: "disclaim", Category: CatLiability, RiskLevel: models.RiskLow},

	// User Content Ownership
	{Phrase: "your content", Category: CatContent, RiskLevel: models.RiskLow},
	{Phrase: "grant license", Category: CatContent, RiskLevel: models.RiskMedium},
	{Phrase: "intellectual property", Category: CatContent, RiskLevel: models.RiskLow},

	// Third-party Integration
	{Phrase: "third-party", Category: CatThirdParty, RiskLevel: models.RiskLow},
	{Phrase: "external service", Category: CatThirdParty, RiskLevel: models.RiskLow},
	{Phrase: "plugin", Category: CatThirdParty, RiskLevel: models.RiskLow},

	// Security & Breach Responsibility
	{Phrase: "data breach", Category: CatSecurity, RiskLevel: models.RiskHigh, Weight: 4},
	{Phrase: "unauthorized access", Category: CatSecurity, RiskLevel: models.RiskHigh, Weight: 4},
	{Phrase: "encrypt", Category: CatSecurity, RiskLevel: models.RiskLow},

	// Loan / insurance terms that only matter for definitions
	{Phrase: "collateral", Category: CatLiability, RiskLevel: models.RiskLow,
		Definition: "Collateral is property a borrower offers a lender to secure a loan. If the borrower stops paying, the lender can seize it."},
	{Phrase: "exclusion", Category: CatLiability, RiskLevel: models.RiskLow,
		Definition: "An exclusion is a provision in an insurance policy that eliminates coverage for certain risks, people, property, or locations."},
	{Phrase: "jurisdiction", Category: CatDisputes, RiskLevel: models.RiskLow,
		Definition: "Jurisdiction is the territory where legal action can be brought, which determines which court hears a case."},
}

// DefaultKeywordTable returns a fresh copy of the built-in keyword table.
// Callers own the copy; session edits never touch the defaults.
func DefaultKeywordTable() *models.KeywordTable {
	table := models.NewKeywordTable()
	for _, e := range defaultKeywords {
		table.Set(e)
	}
	return table
}
