package api

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

// DefineHandler exposes the jargon buster as a JSON API.
type DefineHandler struct {
	cfg      *config.Config
	defaults *models.KeywordTable
	dict     *dictionary.Client
}

// NewDefineHandler creates a new API define handler.
func NewDefineHandler(cfg *config.Config, defaults *models.KeywordTable, dict *dictionary.Client) *DefineHandler {
	return &DefineHandler{cfg: cfg, defaults: defaults, dict: dict}
}

// Define looks up a term: the caller's keyword table definitions first,
// the external dictionary second. Lookup failures are reported as an
// unavailable definition, never as an error status.
func (h *DefineHandler) Define(c fiber.Ctx) error {
	term := strings.TrimSpace(c.Query("term", ""))
	if term == "" {
		return jsonError(c, fiber.StatusBadRequest, "term is required")
	}

	resp := models.DefineResponse{
		Term:       term,
		Definition: "Definition unavailable.",
		Source:     models.OutcomeUnavailable,
	}

	table := sessionTable(c, h.defaults)
	lower := strings.ToLower(term)
	if e, ok := table.Get(lower); ok && e.Definition != "" {
		resp.Definition = e.Definition
		resp.Source = models.OutcomeGlossary
		metrics.RecordTermLookup(lower, models.OutcomeGlossary)
		return jsonSuccess(c, resp)
	}
	for key, e := range table.Entries {
		if e.Definition != "" && strings.Contains(lower, key) {
			resp.Definition = e.Definition
			resp.Source = models.OutcomeGlossary
			metrics.RecordTermLookup(lower, models.OutcomeGlossary)
			return jsonSuccess(c, resp)
		}
	}

	if !validation.ValidateTerm(term) {
		metrics.RecordTermLookup("invalid", models.OutcomeUnavailable)
		return jsonSuccess(c, resp)
	}

	def, err := h.dict.Lookup(c.Context(), term)
	if err != nil {
		if !errors.Is(err, dictionary.ErrNotFound) {
			slog.Warn("dictionary lookup failed", "term", term, "error", err)
		}
		metrics.RecordTermLookup(lower, models.OutcomeUnavailable)
		return jsonSuccess(c, resp)
	}

	resp.Definition = def
	resp.Source = models.OutcomeDictionary
	metrics.RecordTermLookup(lower, models.OutcomeDictionary)
	return jsonSuccess(c, resp)
}
