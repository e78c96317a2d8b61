package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/zenithwellness/zenith/internal/domain"
)

// CrisisRepository implements domain.CrisisRepository. Callers are expected
// to pass already-encrypted message text.
type CrisisRepository struct {
	pool *pgxpool.Pool
}

// NewCrisisRepository creates a new crisis repository
func NewCrisisRepository(pool *pgxpool.Pool) *CrisisRepository {
	return &CrisisRepository{pool: pool}
}

func (r *CrisisRepository) CreateAlert(ctx context.Context, alert *domain.CrisisAlert) error {
	query := `
		INSERT INTO crisis_alerts (id, user_id, message, confidence, type, handled, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.pool.Exec(ctx, query,
		alert.ID,
		alert.UserID,
		alert.Message,
		alert.Confidence,
		alert.Type,
		alert.Handled,
		alert.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create crisis alert: %w", err)
	}
	return nil
}

func (r *CrisisRepository) CreateReport(ctx context.Context, report *domain.CrisisReport) error {
	query := `
		INSERT INTO crisis_reports (id, user_id, message, status, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.pool.Exec(ctx, query,
		report.ID,
		report.UserID,
		report.Message,
		report.Status,
		report.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create crisis report: %w", err)
	}
	return nil
}
