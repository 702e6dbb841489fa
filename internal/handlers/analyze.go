package handlers

import (
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v3"

	"clauselens/internal/analyzer"
	"clauselens/internal/config"
	"clauselens/internal/db"
	"clauselens/internal/extract"
	"clauselens/internal/models"
	"clauselens/internal/validation"
)

// recentLimit is how many past analyses the home page lists.
const recentLimit = 10

// AnalyzeHandler handles the upload form and the analysis pipeline run.
type AnalyzeHandler struct {
	db       *db.DB
	cfg      *config.Config
	pipeline *analyzer.Pipeline
	defaults *models.KeywordTable
}

// NewAnalyzeHandler creates a new analyze handler.
func NewAnalyzeHandler(database *db.DB, cfg *config.Config, pipeline *analyzer.Pipeline, defaults *models.KeywordTable) *AnalyzeHandler {
	return &AnalyzeHandler{db: database, cfg: cfg, pipeline: pipeline, defaults: defaults}
}

// Index renders the home page: upload form, paste box, recent analyses.
func (h *AnalyzeHandler) Index(c fiber.Ctx) error {
	user, _ := c.Locals("user").(*models.User)

	data := MergeBranding(fiber.Map{
		"User":         user,
		"EmailEnabled": h.cfg.IsEmailEnabled(),
	}, h.cfg)

	recent, err := h.db.ListAnalyses(c.Context(), recentLimit)
	if err == nil {
		data["RecentAnalyses"] = recent
	}

	return c.Render("index", data)
}

// Analyze runs the full pipeline for one uploaded or pasted document and
// redirects to the stored analysis. One synchronous step; no background
// work.
func (h *AnalyzeHandler) Analyze(c fiber.Ctx) error {
	docType := c.FormValue("doc_type")
	title := strings.TrimSpace(c.FormValue("title"))

	doc, uploadTitle, errMsg := h.extractInput(c)
	if errMsg != "" {
		return htmxError(c, errMsg)
	}
	if title == "" {
		title = uploadTitle
	}

	table := sessionKeywordTable(c, h.defaults)
	analysis := h.pipeline.Process(c.Context(), doc, table, title, docType)

	if err := h.db.SaveAnalysis(c.Context(), analysis); err != nil {
		slog.Error("failed to save analysis", "error", err)
		return htmxError(c, "Analysis completed but could not be saved")
	}

	slog.Info("document analyzed",
		"analysis_id", analysis.ID,
		"gauge", analysis.Gauge,
		"clauses", analysis.ClauseCount,
	)

	// HTMX picks up the redirect header; plain form posts get a 303.
	c.Set("HX-Redirect", "/analyses/"+analysis.ID.String())
	return c.Redirect().Status(fiber.StatusSeeOther).To("/analyses/" + analysis.ID.String())
}

// extractInput reads the uploaded file or pasted text. The file wins when
// both are present, matching the upload form's precedence.
func (h *AnalyzeHandler) extractInput(c fiber.Ctx) (*extract.Document, string, string) {
	header, err := c.FormFile("document")
	if err == nil && header != nil {
		if ok, msg := validation.ValidateUpload(header, h.cfg.MaxUploadBytes); !ok {
			return nil, "", msg
		}

		file, err := header.Open()
		if err != nil {
			return nil, "", "Could not read the uploaded file"
		}
		defer file.Close()

		data, err := io.ReadAll(io.LimitReader(file, h.cfg.MaxUploadBytes+1))
		if err != nil || int64(len(data)) > h.cfg.MaxUploadBytes {
			return nil, "", "Could not read the uploaded file"
		}

		var doc *extract.Document
		if validation.IsPDFFilename(header.Filename) {
			doc, err = extract.FromPDF(data)
		} else {
			doc, err = extract.FromText(string(data))
		}
		if err != nil {
			if errors.Is(err, extract.ErrEmptyDocument) {
				return nil, "", "The document contains no extractable text"
			}
			slog.Warn("document extraction failed", "filename", header.Filename, "error", err)
			return nil, "", "The document could not be parsed"
		}
		return doc, header.Filename, ""
	}

	pasted := strings.TrimSpace(c.FormValue("text"))
	if pasted == "" {
		return nil, "", "Upload a PDF or paste text first"
	}

	doc, err := extract.FromText(pasted)
	if err != nil {
		return nil, "", "The pasted text contains nothing to analyze"
	}
	return doc, "Pasted text", ""
}
