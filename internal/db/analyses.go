package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"clauselens/internal/models"
)

// SaveAnalysis stores a completed document analysis. The structured result
// is serialized as JSONB; raw text is kept alongside for clause search.
func (d *DB) SaveAnalysis(ctx context.Context, analysis *models.DocumentAnalysis) error {
	// Raw text lives in its own column; strip it from the JSON payload.
	stripped := *analysis
	stripped.RawText = ""
	payload, err := json.Marshal(&stripped)
	if err != nil {
		return fmt.Errorf("failed to marshal analysis: %w", err)
	}

	query := `
		INSERT INTO analyses (title, doc_type, gauge, clause_count, analysis, raw_text)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	err = d.Pool.QueryRow(ctx, query,
		analysis.Title,
		analysis.DocType,
		analysis.Gauge,
		analysis.ClauseCount,
		payload,
		analysis.RawText,
	).Scan(&analysis.ID, &analysis.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save analysis: %w", err)
	}
	return nil
}

// GetAnalysisByID retrieves a stored analysis, including its raw text.
func (d *DB) GetAnalysisByID(ctx context.Context, id uuid.UUID) (*models.DocumentAnalysis, error) {
	query := `SELECT id, analysis, raw_text, created_at FROM analyses WHERE id = $1`

	var (
		rowID    uuid.UUID
		payload  []byte
		rawText  string
		analysis models.DocumentAnalysis
	)
	row := d.Pool.QueryRow(ctx, query, id)
	if err := row.Scan(&rowID, &payload, &rawText, &analysis.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAnalysisNotFound
		}
		return nil, err
	}

	// The stored JSON omits id/raw_text/created_at; the columns are
	// authoritative for those.
	createdAt := analysis.CreatedAt
	if err := json.Unmarshal(payload, &analysis); err != nil {
		return nil, fmt.Errorf("failed to unmarshal analysis %s: %w", id, err)
	}
	analysis.ID = rowID
	analysis.RawText = rawText
	analysis.CreatedAt = createdAt
	return &analysis, nil
}

// ListAnalyses returns recent analyses, newest first, without raw text.
func (d *DB) ListAnalyses(ctx context.Context, limit int) ([]models.AnalysisListing, error) {
	query := `
		SELECT id, title, doc_type, gauge, clause_count, created_at
		FROM analyses
		ORDER BY created_at DESC
		LIMIT $1
	`
	rows, err := d.Pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var listings []models.AnalysisListing
	for rows.Next() {
		var l models.AnalysisListing
		if err := rows.Scan(&l.ID, &l.Title, &l.DocType, &l.Gauge, &l.ClauseCount, &l.CreatedAt); err != nil {
			return nil, err
		}
		listings = append(listings, l)
	}
	return listings, rows.Err()
}

// DeleteAnalysis deletes a stored analysis by ID.
func (d *DB) DeleteAnalysis(ctx context.Context, id uuid.UUID) error {
	result, err := d.Pool.Exec(ctx, `DELETE FROM analyses WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrAnalysisNotFound
	}
	return nil
}
