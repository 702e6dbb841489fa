package validation

import (
	"mime/multipart"
	"regexp"
	"strings"

	"clauselens/internal/models"
)

// TermPattern defines the valid jargon-buster term format: letters,
// hyphens, and apostrophes. Keeps arbitrary input out of outbound
// dictionary URLs.
var TermPattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z'-]*$`)

// controlChars matches characters never valid in a keyword phrase.
var controlChars = regexp.MustCompile(`[\x00-\x1F\x7F]`)

// ValidateTerm checks a dictionary lookup term.
func ValidateTerm(term string) bool {
	term = strings.TrimSpace(term)
	if term == "" || len(term) > 64 {
		return false
	}
	return TermPattern.MatchString(term)
}

// ValidatePhrase checks a keyword table phrase: non-empty, bounded, no
// control characters.
func ValidatePhrase(phrase string) (bool, string) {
	phrase = strings.TrimSpace(phrase)
	if phrase == "" {
		return false, "Phrase is required"
	}
	if len(phrase) > 100 {
		return false, "Phrase must be 100 characters or fewer"
	}
	if controlChars.MatchString(phrase) {
		return false, "Phrase contains invalid characters"
	}
	return true, ""
}

// ValidateRiskLevel checks a risk level value from a form or API body.
func ValidateRiskLevel(level string) (bool, string) {
	if !models.ValidRiskLevel(level) {
		return false, "Risk level must be Low, Medium, or High"
	}
	return true, ""
}

// ValidateUpload checks an uploaded document's size and extension.
func ValidateUpload(header *multipart.FileHeader, maxBytes int64) (bool, string) {
	if header.Size == 0 {
		return false, "Uploaded file is empty"
	}
	if header.Size > maxBytes {
		return false, "Uploaded file is too large"
	}
	name := strings.ToLower(header.Filename)
	if !strings.HasSuffix(name, ".pdf") && !strings.HasSuffix(name, ".txt") {
		return false, "Only PDF and plain text files are supported"
	}
	return true, ""
}

// IsPDFFilename reports whether the upload should go through PDF
// extraction.
func IsPDFFilename(filename string) bool {
	return strings.HasSuffix(strings.ToLower(filename), ".pdf")
}

// ValidateEmail does a minimal shape check on a recipient address.
func ValidateEmail(addr string) bool {
	addr = strings.TrimSpace(addr)
	at := strings.Index(addr, "@")
	return at > 0 && at < len(addr)-1 && !strings.ContainsAny(addr, " \t\r\n")
}
