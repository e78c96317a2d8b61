package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/zenithwellness/zenith/internal/domain"
)

// SpiritualRepository implements domain.SpiritualRepository
type SpiritualRepository struct {
	pool *pgxpool.Pool
}

// NewSpiritualRepository creates a new spiritual repository
func NewSpiritualRepository(pool *pgxpool.Pool) *SpiritualRepository {
	return &SpiritualRepository{pool: pool}
}

func (r *SpiritualRepository) RecordGuidance(ctx context.Context, entry *domain.GuidanceLog) error {
	query := `
		INSERT INTO spiritual_history (id, user_id, concern, tradition, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.pool.Exec(ctx, query,
		entry.ID,
		entry.UserID,
		entry.Concern,
		entry.Tradition,
		entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to record guidance: %w", err)
	}
	return nil
}

func (r *SpiritualRepository) ListGuidance(ctx context.Context, userID uuid.UUID, limit int) ([]domain.GuidanceLog, error) {
	query := `
		SELECT id, user_id, concern, tradition, created_at
		FROM spiritual_history
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	rows, err := r.pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list guidance history: %w", err)
	}
	defer rows.Close()

	var entries []domain.GuidanceLog
	for rows.Next() {
		var e domain.GuidanceLog
		if err := rows.Scan(&e.ID, &e.UserID, &e.Concern, &e.Tradition, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan guidance entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
