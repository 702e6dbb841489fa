package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"clauselens/internal/config"
	"clauselens/internal/db"
	"clauselens/internal/email"
	"clauselens/internal/models"
	"clauselens/internal/report"
	"clauselens/internal/validation"
)

// ExportHandler serves report downloads and optional email delivery.
type ExportHandler struct {
	db    *db.DB
	cfg   *config.Config
	email *email.Service
}

// NewExportHandler creates a new export handler.
func NewExportHandler(database *db.DB, cfg *config.Config, emailSvc *email.Service) *ExportHandler {
	return &ExportHandler{db: database, cfg: cfg, email: emailSvc}
}

// PDF renders the analysis as a downloadable PDF report.
func (h *ExportHandler) PDF(c fiber.Ctx) error {
	analysis, err := h.lookup(c)
	if err != nil {
		return err
	}

	data, err := report.BuildPDF(analysis, h.cfg.SiteTitle)
	if err != nil {
		slog.Error("PDF export failed", "analysis_id", analysis.ID, "error", err)
		return fiber.NewError(fiber.StatusInternalServerError, "failed to generate PDF")
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="analysis-`+analysis.ID.String()+`.pdf"`)
	return c.Send(data)
}

// JSON serves the raw analysis as a downloadable JSON document.
func (h *ExportHandler) JSON(c fiber.Ctx) error {
	analysis, err := h.lookup(c)
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentDisposition, `attachment; filename="analysis-`+analysis.ID.String()+`.json"`)
	return c.JSON(analysis)
}

// Email sends the PDF report to the given address. Only routed when SMTP
// is configured.
func (h *ExportHandler) Email(c fiber.Ctx) error {
	if !h.email.IsEnabled() {
		return fiber.NewError(fiber.StatusNotFound, "email delivery is not configured")
	}

	to := c.FormValue("to")
	if !validation.ValidateEmail(to) {
		return htmxError(c, "Enter a valid email address")
	}

	analysis, err := h.lookup(c)
	if err != nil {
		return err
	}

	data, err := report.BuildPDF(analysis, h.cfg.SiteTitle)
	if err != nil {
		slog.Error("PDF export failed", "analysis_id", analysis.ID, "error", err)
		return htmxError(c, "Failed to generate the PDF report")
	}

	subject := h.cfg.SiteTitle + " report: " + analysis.Title
	filename := "analysis-" + analysis.ID.String() + ".pdf"
	if err := h.email.SendReport(to, subject, data, filename); err != nil {
		slog.Error("report email failed", "analysis_id", analysis.ID, "error", err)
		return htmxError(c, "Could not send the report email")
	}

	return c.SendString(`<div class="alert alert-success">Report sent.</div>`)
}

func (h *ExportHandler) lookup(c fiber.Ctx) (*models.DocumentAnalysis, error) {
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
