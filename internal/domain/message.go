package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// MessageRole represents the sender of a message
type MessageRole string

const (
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
)

// ChatMessage represents one side of a chat exchange
type ChatMessage struct {
	ID        uuid.UUID   `json:"id"`
	UserID    uuid.UUID   `json:"user_id"`
	Role      MessageRole `json:"role"`
	Content   string      `json:"content"`
	Language  string      `json:"language,omitempty"`
	Sentiment *Sentiment  `json:"sentiment,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}

// Sentiment is a coarse emotional read of a message
type Sentiment struct {
	Label     string  `json:"label"` // positive, negative, neutral
	Score     float64 `json:"score"`
	Magnitude float64 `json:"magnitude"`
}

// ChatRequest is an incoming chat turn
type ChatRequest struct {
	Message  string `json:"message" validate:"required,max=4000"`
	Language string `json:"language" validate:"omitempty,len=2"`
}

// ChatResponse is the assistant's side of a turn
type ChatResponse struct {
	Response  string           `json:"response"`
	MessageID uuid.UUID        `json:"message_id"`
	Language  string           `json:"language"`
	Sentiment *Sentiment       `json:"sentiment,omitempty"`
	Crisis    *CrisisDetection `json:"crisis,omitempty"`
}

// ChatHistory wraps a page of stored messages
type ChatHistory struct {
	Messages   []ChatMessage `json:"messages"`
	TotalCount int           `json:"total_count"`
}

// MessageRepository defines the interface for chat message storage
type MessageRepository interface {
	Create(ctx context.Context, message *ChatMessage) error
	Get(ctx context.Context, id uuid.UUID) (*ChatMessage, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]ChatMessage, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}
