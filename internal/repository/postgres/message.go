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

// MessageRepository implements domain.MessageRepository
type MessageRepository struct {
	pool *pgxpool.Pool
}

// NewMessageRepository creates a new message repository
func NewMessageRepository(pool *pgxpool.Pool) *MessageRepository {
	return &MessageRepository{pool: pool}
}

func (r *MessageRepository) Create(ctx context.Context, message *domain.ChatMessage) error {
	query := `
		INSERT INTO chat_messages (id, user_id, role, content, language, sentiment_label, sentiment_score, sentiment_magnitude, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	var label *string
	var score, magnitude *float64
	if s := message.Sentiment; s != nil {
		label = &s.Label
		score = &s.Score
		magnitude = &s.Magnitude
	}

	_, err := r.pool.Exec(ctx, query,
		message.ID,
		message.UserID,
		message.Role,
		message.Content,
		message.Language,
		label,
		score,
		magnitude,
		message.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}
	return nil
}

func (r *MessageRepository) Get(ctx context.Context, id uuid.UUID) (*domain.ChatMessage, error) {
	query := `
		SELECT id, user_id, role, content, language, sentiment_label, sentiment_score, sentiment_magnitude, created_at
		FROM chat_messages
		WHERE id = $1
	`
	m, err := scanMessage(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get message: %w", err)
	}
	return m, nil
}

func (r *MessageRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.ChatMessage, error) {
	query := `
		SELECT id, user_id, role, content, language, sentiment_label, sentiment_score, sentiment_magnitude, created_at
		FROM chat_messages
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	rows, err := r.pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	defer rows.Close()

	var messages []domain.ChatMessage
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		messages = append(messages, *m)
	}
	return messages, nil
}

func (r *MessageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM chat_messages WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete message: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *MessageRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `DELETE FROM chat_messages WHERE user_id = $1`
	tag, err := r.pool.Exec(ctx, query, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete messages: %w", err)
	}
	return tag.RowsAffected(), nil
}

func scanMessage(row pgx.Row) (*domain.ChatMessage, error) {
	var m domain.ChatMessage
	var label *string
	var score, magnitude *float64

	err := row.Scan(
		&m.ID,
		&m.UserID,
		&m.Role,
		&m.Content,
		&m.Language,
		&label,
		&score,
		&magnitude,
		&m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if label != nil {
		m.Sentiment = &domain.Sentiment{Label: *label}
		if score != nil {
			m.Sentiment.Score = *score
		}
		if magnitude != nil {
			m.Sentiment.Magnitude = *magnitude
		}
	}
	return &m, nil
}
