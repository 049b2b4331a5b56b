package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"atsmatch/internal/models"
)

// RecordAnalysis stores a content-free analysis record, assigning ID and
// CreatedAt when unset.
func (d *DB) RecordAnalysis(ctx context.Context, a *models.Analysis) error {
	if a.Score < 0 || a.Score > 100 || a.Label == "" || a.Source == "" {
		return ErrInvalidAnalysis
	}
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}

	_, err := d.Pool.Exec(ctx, `
		INSERT INTO analyses (id, source, score, label, total_jd_keywords, total_matched, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, a.ID, a.Source, a.Score, a.Label, a.TotalJDKeywords, a.TotalMatched, a.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to record analysis: %w", err)
	}
	return nil
}

// GetAnalysis returns a stored analysis by ID.
func (d *DB) GetAnalysis(ctx context.Context, id uuid.UUID) (*models.Analysis, error) {
	var a models.Analysis
	err := d.Pool.QueryRow(ctx, `
		SELECT id, source, score::float8, label, total_jd_keywords, total_matched, created_at
		FROM analyses WHERE id = $1
	`, id).Scan(&a.ID, &a.Source, &a.Score, &a.Label, &a.TotalJDKeywords, &a.TotalMatched, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAnalysisNotFound
		}
		return nil, err
	}
	return &a, nil
}

// CountByLabel returns the number of stored analyses per score label.
func (d *DB) CountByLabel(ctx context.Context) ([]models.LabelCount, error) {
	rows, err := d.Pool.Query(ctx, `SELECT label, COUNT(*) FROM analyses GROUP BY label ORDER BY label`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []models.LabelCount
	for rows.Next() {
		var c models.LabelCount
		if err := rows.Scan(&c.Label, &c.Count); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

// DeleteAnalysesBefore removes records created before cutoff and returns how
// many were deleted.
func (d *DB) DeleteAnalysesBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := d.Pool.Exec(ctx, `DELETE FROM analyses WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
