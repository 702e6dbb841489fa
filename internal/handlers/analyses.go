package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"clauselens/internal/analyzer"
	"clauselens/internal/config"
	"clauselens/internal/db"
	"clauselens/internal/models"
)

// AnalysisHandler serves stored analyses: view, list, search, delete.
type AnalysisHandler struct {
	db       *db.DB
	cfg      *config.Config
	defaults *models.KeywordTable
}

// NewAnalysisHandler creates a new analysis handler.
func NewAnalysisHandler(database *db.DB, cfg *config.Config, defaults *models.KeywordTable) *AnalysisHandler {
	return &AnalysisHandler{db: database, cfg: cfg, defaults: defaults}
}

// Show renders one analysis: gauge, summary, per-category findings.
func (h *AnalysisHandler) Show(c fiber.Ctx) error {
	analysis, err := h.lookup(c)
	if err != nil {
		return err
	}

	user, _ := c.Locals("user").(*models.User)
	return c.Render("analysis", MergeBranding(fiber.Map{
		"User":         user,
		"Analysis":     analysis,
		"EmailEnabled": h.cfg.IsEmailEnabled(),
	}, h.cfg))
}

// List renders all stored analyses.
func (h *AnalysisHandler) List(c fiber.Ctx) error {
	listings, err := h.db.ListAnalyses(c.Context(), 100)
	if err != nil {
		return err
	}

	user, _ := c.Locals("user").(*models.User)
	return c.Render("analyses", MergeBranding(fiber.Map{
		"User":     user,
		"Analyses": listings,
	}, h.cfg))
}

// Search finds and highlights clauses in a stored document matching a
// query, re-scored against the caller's current keyword table.
func (h *AnalysisHandler) Search(c fiber.Ctx) error {
	analysis, err := h.lookup(c)
	if err != nil {
		return err
	}

	query := c.Query("q", "")
	table := sessionKeywordTable(c, h.defaults)
	matches := analyzer.SearchClauses(analysis.RawText, query, table)

	// HTMX search-as-you-type returns just the result list.
	if c.Get("HX-Request") == "true" {
		return c.Render("partials/search_results", fiber.Map{
			"Matches": matches,
			"Query":   query,
		}, "")
	}

	user, _ := c.Locals("user").(*models.User)
	return c.Render("search", MergeBranding(fiber.Map{
		"User":     user,
		"Analysis": analysis,
		"Matches":  matches,
		"Query":    query,
	}, h.cfg))
}

// Delete removes a stored analysis via HTMX.
func (h *AnalysisHandler) Delete(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	if err := h.db.DeleteAnalysis(c.Context(), id); err != nil {
		if errors.Is(err, db.ErrAnalysisNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "analysis not found")
		}
		return err
	}

	// Empty response so HTMX removes the element.
	return c.SendString("")
}

// lookup parses the :id param and fetches the analysis.
func (h *AnalysisHandler) lookup(c fiber.Ctx) (*models.DocumentAnalysis, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	analysis, err := h.db.GetAnalysisByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, db.ErrAnalysisNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "analysis not found")
		}
		return nil, err
	}
	return analysis, nil
}
