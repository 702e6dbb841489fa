package handlers

import (
	"github.com/gofiber/fiber/v3"

	"clauselens/internal/config"
	"clauselens/internal/models"
	"clauselens/internal/validation"
)

// KeywordHandler manages the session-scoped keyword table. Edits live in
// the caller's session only and never touch the configured defaults or
// the database.
type KeywordHandler struct {
	cfg      *config.Config
	defaults *models.KeywordTable
}

// NewKeywordHandler creates a new keyword handler.
func NewKeywordHandler(cfg *config.Config, defaults *models.KeywordTable) *KeywordHandler {
	return &KeywordHandler{cfg: cfg, defaults: defaults}
}

// Show renders the keyword table editor.
func (h *KeywordHandler) Show(c fiber.Ctx) error {
	table := sessionKeywordTable(c, h.defaults)
	user, _ := c.Locals("user").(*models.User)

	return c.Render("keywords", MergeBranding(fiber.Map{
		"User":     user,
		"Entries":  table.Sorted(),
		"MaxLevel": table.MaxLevel(),
	}, h.cfg))
}

// Upsert adds or replaces one keyword entry in the session table.
func (h *KeywordHandler) Upsert(c fiber.Ctx) error {
	phrase := c.FormValue("phrase")
	category := c.FormValue("category")
	level := c.FormValue("risk_level")
	definition := c.FormValue("definition")

	if ok, msg := validation.ValidatePhrase(phrase); !ok {
		return htmxError(c, msg)
	}
	if ok, msg := validation.ValidateRiskLevel(level); !ok {
		return htmxError(c, msg)
	}

	table := sessionKeywordTable(c, h.defaults)
	table.Set(models.KeywordEntry{
		Phrase:     phrase,
		Category:   category,
		RiskLevel:  level,
		Definition: definition,
	})
	if err := saveSessionKeywordTable(c, table); err != nil {
		return err
	}

	return c.Render("partials/keyword_rows", fiber.Map{
		"Entries": table.Sorted(),
	}, "")
}

// Delete removes one keyword entry from the session table.
func (h *KeywordHandler) Delete(c fiber.Ctx) error {
	phrase := c.Params("phrase")

	table := sessionKeywordTable(c, h.defaults)
	if !table.Delete(phrase) {
		return fiber.NewError(fiber.StatusNotFound, "keyword not found")
	}
	if err := saveSessionKeywordTable(c, table); err != nil {
		return err
	}

	return c.Render("partials/keyword_rows", fiber.Map{
		"Entries": table.Sorted(),
	}, "")
}

// Reset drops all session edits, reverting to the configured defaults.
func (h *KeywordHandler) Reset(c fiber.Ctx) error {
	resetSessionKeywordTable(c)
	table := sessionKeywordTable(c, h.defaults)

	return c.Render("partials/keyword_rows", fiber.Map{
		"Entries": table.Sorted(),
	}, "")
}
