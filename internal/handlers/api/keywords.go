package api

import (
	"encoding/json"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"

	"clauselens/internal/config"
	"clauselens/internal/models"
	"clauselens/internal/validation"
)

// sessionKeywordKey matches the HTML handlers' session field so UI and
// API edits see the same table.
const sessionKeywordKey = "keyword_table"

// KeywordHandler manages the session keyword table via JSON.
type KeywordHandler struct {
	cfg      *config.Config
	defaults *models.KeywordTable
}

// NewKeywordHandler creates a new API keyword handler.
func NewKeywordHandler(cfg *config.Config, defaults *models.KeywordTable) *KeywordHandler {
	return &KeywordHandler{cfg: cfg, defaults: defaults}
}

// List returns the caller's effective keyword table.
func (h *KeywordHandler) List(c fiber.Ctx) error {
	table := sessionTable(c, h.defaults)
	return jsonSuccess(c, table.Sorted())
}

// Upsert adds or replaces one entry in the session table.
func (h *KeywordHandler) Upsert(c fiber.Ctx) error {
	var entry models.KeywordEntry
	if err := json.Unmarshal(c.Body(), &entry); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid JSON body")
	}

	if ok, msg := validation.ValidatePhrase(entry.Phrase); !ok {
		return jsonError(c, fiber.StatusBadRequest, msg)
	}
	if ok, msg := validation.ValidateRiskLevel(entry.RiskLevel); !ok {
		return jsonError(c, fiber.StatusBadRequest, msg)
	}

	table := sessionTable(c, h.defaults)
	table.Set(entry)
	if err := saveSessionTable(c, table); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to save keyword table")
	}
	return jsonSuccess(c, entry)
}

// Delete removes one entry from the session table.
func (h *KeywordHandler) Delete(c fiber.Ctx) error {
	phrase := c.Params("phrase")

	table := sessionTable(c, h.defaults)
	if !table.Delete(phrase) {
		return jsonError(c, fiber.StatusNotFound, "keyword not found")
	}
	if err := saveSessionTable(c, table); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to save keyword table")
	}
	return jsonSuccess(c, fiber.Map{"deleted": phrase})
}

// Reset drops the session edits, reverting to the configured defaults.
func (h *KeywordHandler) Reset(c fiber.Ctx) error {
	if sess := session.FromContext(c); sess != nil {
		sess.Delete(sessionKeywordKey)
	}
	return jsonSuccess(c, h.defaults.Sorted())
}

func sessionTable(c fiber.Ctx, defaults *models.KeywordTable) *models.KeywordTable {
	sess := session.FromContext(c)
	if sess == nil {
		return defaults.Clone()
	}
	raw, _ := sess.Get(sessionKeywordKey).(string)
	if raw == "" {
		return defaults.Clone()
	}
	var table models.KeywordTable
	if err := json.Unmarshal([]byte(raw), &table); err != nil {
		sess.Delete(sessionKeywordKey)
		return defaults.Clone()
	}
	return &table
}

func saveSessionTable(c fiber.Ctx, table *models.KeywordTable) error {
	sess := session.FromContext(c)
	if sess == nil {
		return fiber.NewError(fiber.StatusInternalServerError, "session not available")
	}
	raw, err := json.Marshal(table)
	if err != nil {
		return err
	}
	sess.Set(sessionKeywordKey, string(raw))
	return nil
}
