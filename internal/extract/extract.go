// Package extract turns uploaded documents into cleaned, page-tagged text.
package extract

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ErrEmptyDocument is returned when extraction yields no usable text.
var ErrEmptyDocument = errors.New("document contains no extractable text")

// Page is one page of extracted text. Pasted text becomes a single page 1.
type Page struct {
	Number int    `json:"number"`
	Text   string `json:"text"`
}

// Document is the extraction result handed to the analysis pipeline.
type Document struct {
	Pages []Page `json:"pages"`
}

// Text returns the full document text with page markers, for storage and
// clause search.
func (d *Document) Text() string {
	var b strings.Builder
	for i, p := range d.Pages {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "--- Page %d ---\n%s", p.Number, p.Text)
	}
	return b.String()
}

// FromPDF extracts per-page text from a PDF. Pages with no text are
// skipped; a PDF with no extractable text at all (e.g. scanned images)
// returns ErrEmptyDocument.
func FromPDF(data []byte) (*Document, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to parse PDF: %w", err)
	}

	doc := &Document{}
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// A single unreadable page should not sink the document.
			continue
		}
		text = CleanText(text)
		if text == "" {
			continue
		}
		doc.Pages = append(doc.Pages, Page{Number: i, Text: text})
	}

	if len(doc.Pages) == 0 {
		return nil, ErrEmptyDocument
	}
	return doc, nil
}

// FromText wraps pasted text as a one-page document.
func FromText(text string) (*Document, error) {
	text = CleanText(text)
	if text == "" {
		return nil, ErrEmptyDocument
	}
	return &Document{Pages: []Page{{Number: 1, Text: text}}}, nil
}

var (
	hyphenBreakRe  = regexp.MustCompile(`-[ \t]*\n[ \t]*`)
	paragraphRe    = regexp.MustCompile(`\n[ \t]*\n+`)
	controlCharsRe = regexp.MustCompile(`[\x00-\x09\x0B-\x1F\x7F]`)
	multiSpaceRe   = regexp.MustCompile(`[ \t]{2,}`)
)

// CleanText normalizes extracted text: rejoins words hyphenated across
// line breaks, folds single line breaks into spaces (blank lines survive
// as paragraph boundaries), and strips control characters and runs of
// spaces.
func CleanText(text string) string {
	if text == "" {
		return ""
	}
	text = controlCharsRe.ReplaceAllString(text, "")
	text = hyphenBreakRe.ReplaceAllString(text, "")

	paragraphs := paragraphRe.Split(text, -1)
	cleaned := paragraphs[:0]
	for _, p := range paragraphs {
		p = strings.ReplaceAll(p, "\n", " ")
		p = multiSpaceRe.ReplaceAllString(p, " ")
		p = strings.TrimSpace(p)
		if p != "" {
			cleaned = append(cleaned, p)
		}
	}
	return strings.Join(cleaned, "\n\n")
}
