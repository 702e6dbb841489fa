package handlers

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v3"

	"clauselens/internal/config"
	"clauselens/internal/dictionary"
	"clauselens/internal/metrics"
	"clauselens/internal/models"
	"clauselens/internal/validation"
)

// unavailableText is shown in the popover when no definition is found.
const unavailableText = "Definition unavailable."

// DefineHandler implements the jargon buster: keyword table definitions
// first, the external dictionary second.
type DefineHandler struct {
	cfg      *config.Config
	defaults *models.KeywordTable
	dict     *dictionary.Client
}

// NewDefineHandler creates a new define handler.
func NewDefineHandler(cfg *config.Config, defaults *models.KeywordTable, dict *dictionary.Client) *DefineHandler {
	return &DefineHandler{cfg: cfg, defaults: defaults, dict: dict}
}

// Define renders the definition popover for a term.
func (h *DefineHandler) Define(c fiber.Ctx) error {
	resp := h.resolve(c)
	return c.Render("partials/definition", fiber.Map{
		"Term":       resp.Term,
		"Definition": resp.Definition,
		"Source":     resp.Source,
	}, "")
}

// resolve runs the lookup chain and records the outcome. Shared with the
// JSON API.
func (h *DefineHandler) resolve(c fiber.Ctx) models.DefineResponse {
	term := strings.TrimSpace(c.Query("term", ""))
	resp := models.DefineResponse{Term: term, Definition: unavailableText, Source: models.OutcomeUnavailable}

	if term == "" {
		return resp
	}

	// Session keyword table first: user-supplied definitions win.
	table := sessionKeywordTable(c, h.defaults)
	if def := glossaryDefinition(table, term); def != "" {
		resp.Definition = def
		resp.Source = models.OutcomeGlossary
		metrics.RecordTermLookup(strings.ToLower(term), models.OutcomeGlossary)
		return resp
	}

	if !validation.ValidateTerm(term) {
		metrics.RecordTermLookup("invalid", models.OutcomeUnavailable)
		return resp
	}

	def, err := h.dict.Lookup(c.Context(), term)
	if err != nil {
		if !errors.Is(err, dictionary.ErrNotFound) {
			slog.Warn("dictionary lookup failed", "term", term, "error", err)
		}
		metrics.RecordTermLookup(strings.ToLower(term), models.OutcomeUnavailable)
		return resp
	}

	resp.Definition = def
	resp.Source = models.OutcomeDictionary
	metrics.RecordTermLookup(strings.ToLower(term), models.OutcomeDictionary)
	return resp
}

// glossaryDefinition finds a keyword entry whose phrase is contained in
// the term (stems like "arbitrat" match "arbitration") and has a
// definition.
func glossaryDefinition(table *models.KeywordTable, term string) string {
	lower := strings.ToLower(strings.TrimSpace(term))

	if e, ok := table.Get(lower); ok && e.Definition != "" {
		return e.Definition
	}
	for key, e := range table.Entries {
		if e.Definition != "" && strings.Contains(lower, key) {
			return e.Definition
		}
	}
	return ""
}
