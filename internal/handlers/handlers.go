package handlers

import (
	"encoding/json"
	"html"
	"log/slog"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"

	"clauselens/internal/config"
	"clauselens/internal/models"
)

// sessionKeywordKey is the session field holding the user's edited
// keyword table, serialized as JSON. Absent until the first edit.
const sessionKeywordKey = "keyword_table"

// MergeBranding adds site branding fields to template data.
func MergeBranding(data fiber.Map, cfg *config.Config) fiber.Map {
	data["SiteTitle"] = cfg.SiteTitle
	data["SiteTagline"] = cfg.SiteTagline
	data["SiteFooter"] = cfg.SiteFooter
	return data
}

// htmxError returns an error message as HTML that HTMX will display.
// Uses 200 status so HTMX processes the swap (HTMX ignores non-2xx by default).
func htmxError(c fiber.Ctx, message string) error {
	return c.SendString(
		`<div class="alert alert-error">` + html.EscapeString(message) + `</div>`,
	)
}

// sessionKeywordTable returns the caller's effective keyword table: the
// session-edited copy when present, otherwise a clone of the configured
// defaults. The defaults themselves are never handed out mutable.
func sessionKeywordTable(c fiber.Ctx, defaults *models.KeywordTable) *models.KeywordTable {
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
		slog.Warn("discarding corrupt session keyword table", "error", err)
		sess.Delete(sessionKeywordKey)
		return defaults.Clone()
	}
	return &table
}

// saveSessionKeywordTable persists the edited table back into the session.
func saveSessionKeywordTable(c fiber.Ctx, table *models.KeywordTable) error {
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

// resetSessionKeywordTable drops the session edits, reverting to defaults.
func resetSessionKeywordTable(c fiber.Ctx) {
	if sess := session.FromContext(c); sess != nil {
		sess.Delete(sessionKeywordKey)
	}
}
