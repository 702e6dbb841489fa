package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"clauselens/internal/analyzer"
	"clauselens/internal/config"
	"clauselens/internal/db"
	"clauselens/internal/extract"
	"clauselens/internal/models"
)

// AnalysisHandler exposes the analysis pipeline as a JSON API.
type AnalysisHandler struct {
	db       *db.DB
	cfg      *config.Config
	pipeline *analyzer.Pipeline
	defaults *models.KeywordTable
}

// NewAnalysisHandler creates a new API analysis handler.
func NewAnalysisHandler(database *db.DB, cfg *config.Config, pipeline *analyzer.Pipeline, defaults *models.KeywordTable) *AnalysisHandler {
	return &AnalysisHandler{db: database, cfg: cfg, pipeline: pipeline, defaults: defaults}
}

// Create analyzes text supplied in a JSON body and stores the result.
// Session keyword edits apply when the caller carries session cookies;
// cookie-less callers analyze against the defaults.
func (h *AnalysisHandler) Create(c fiber.Ctx) error {
	var req models.AnalyzeAPIRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid JSON body")
	}
	if strings.TrimSpace(req.Text) == "" {
		return jsonError(c, fiber.StatusBadRequest, "text is required")
	}
	if int64(len(req.Text)) > h.cfg.MaxUploadBytes {
		return jsonError(c, fiber.StatusRequestEntityTooLarge, "text is too large")
	}

	doc, err := extract.FromText(req.Text)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "text contains nothing to analyze")
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = "API submission"
	}

	analysis := h.pipeline.Process(c.Context(), doc, sessionTable(c, h.defaults), title, req.DocType)
	if err := h.db.SaveAnalysis(c.Context(), analysis); err != nil {
		slog.Error("failed to save analysis", "error", err)
		return jsonError(c, fiber.StatusInternalServerError, "failed to save analysis")
	}

	return jsonSuccess(c, analysis)
}

// List returns recent analyses without raw text.
func (h *AnalysisHandler) List(c fiber.Ctx) error {
	listings, err := h.db.ListAnalyses(c.Context(), 100)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to list analyses")
	}
	return jsonSuccess(c, listings)
}

// Get returns one stored analysis.
func (h *AnalysisHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	analysis, err := h.db.GetAnalysisByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, db.ErrAnalysisNotFound) {
			return jsonError(c, fiber.StatusNotFound, "analysis not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch analysis")
	}
	return jsonSuccess(c, analysis)
}

// Delete removes one stored analysis.
func (h *AnalysisHandler) Delete(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	if err := h.db.DeleteAnalysis(c.Context(), id); err != nil {
		if errors.Is(err, db.ErrAnalysisNotFound) {
			return jsonError(c, fiber.StatusNotFound, "analysis not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to delete analysis")
	}
	return jsonSuccess(c, fiber.Map{"deleted": id})
}
