package models

// DefineResponse contains the result of a jargon-buster lookup.
type DefineResponse struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
	Source     string `json:"source"` // glossary, dictionary, unavailable
}

// AnalyzeAPIRequest is the JSON body accepted by the analyze API endpoint.
type AnalyzeAPIRequest struct {
	Title   string `json:"title,omitempty"`
	DocType string `json:"doc_type,omitempty"`
	Text    string `json:"text"`
}

// SearchMatch is one highlighted clause returned by clause search.
type SearchMatch struct {
	Text      string `json:"text"`
	Location  string `json:"location,omitempty"`
	RiskLevel string `json:"risk_level"`
}
