package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/zenithwellness/zenith/internal/domain"
)

// MeditationRepository implements domain.MeditationRepository
type MeditationRepository struct {
	pool *pgxpool.Pool
}

// NewMeditationRepository creates a new meditation repository
func NewMeditationRepository(pool *pgxpool.Pool) *MeditationRepository {
	return &MeditationRepository{pool: pool}
}

func (r *MeditationRepository) CreateSession(ctx context.Context, session *domain.MeditationSession) error {
	query := `
		INSERT INTO meditation_sessions (id, user_id, duration_minutes, type, mood_before, mood_after, mood_delta, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.pool.Exec(ctx, query,
		session.ID,
		session.UserID,
		session.Duration,
		session.Type,
		session.MoodBefore,
		session.MoodAfter,
		session.MoodDelta,
		session.Notes,
		session.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create meditation session: %w", err)
	}
	return nil
}

func (r *MeditationRepository) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]domain.MeditationSession, error) {
	query := `
		SELECT id, user_id, duration_minutes, type, mood_before, mood_after, mood_delta, notes, created_at
		FROM meditation_sessions
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	rows, err := r.pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list meditation sessions: %w", err)
	}
	defer rows.Close()

	var sessions []domain.MeditationSession
	for rows.Next() {
		var s domain.MeditationSession
		if err := rows.Scan(
			&s.ID,
			&s.UserID,
			&s.Duration,
			&s.Type,
			&s.MoodBefore,
			&s.MoodAfter,
			&s.MoodDelta,
			&s.Notes,
			&s.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan meditation session: %w", err)
		}
		sessions = append(sessions, s)
	}
	return sessions, nil
}

func (r *MeditationRepository) GetStats(ctx context.Context, userID uuid.UUID) (*domain.UserStats, error) {
	query := `
		SELECT user_id, total_sessions, total_minutes, streak_days, last_session
		FROM user_stats
		WHERE user_id = $1
	`
	var s domain.UserStats
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&s.UserID,
		&s.TotalSessions,
		&s.TotalMinutes,
		&s.StreakDays,
		&s.LastSession,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user stats: %w", err)
	}
	return &s, nil
}

func (r *MeditationRepository) SaveStats(ctx context.Context, stats *domain.UserStats) error {
	query := `
		INSERT INTO user_stats (user_id, total_sessions, total_minutes, streak_days, last_session)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id) DO UPDATE
		SET total_sessions = $2, total_minutes = $3, streak_days = $4, last_session = $5
	`
	_, err := r.pool.Exec(ctx, query,
		stats.UserID,
		stats.TotalSessions,
		stats.TotalMinutes,
		stats.StreakDays,
		stats.LastSession,
	)
	if err != nil {
		return fmt.Errorf("failed to save user stats: %w", err)
	}
	return nil
}
