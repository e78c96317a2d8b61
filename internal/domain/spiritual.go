package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// SpiritualQuote is a piece of wisdom with optional attribution
type SpiritualQuote struct {
	Quote      string `json:"quote"`
	Source     string `json:"source,omitempty"`
	Tradition  string `json:"tradition"`
	Reflection string `json:"reflection,omitempty"`
}

// GuidanceRequest asks for guidance on a personal concern
type GuidanceRequest struct {
	Concern   string `json:"concern" validate:"required,max=2000"`
	Tradition string `json:"tradition" validate:"omitempty,max=50"`
}

// GuidanceResponse carries the generated guidance
type GuidanceResponse struct {
	Guidance  string   `json:"guidance"`
	Tradition string   `json:"tradition"`
	Practices []string `json:"practices"`
}

// Practice is a suggested spiritual exercise
type Practice struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Duration    string `json:"duration,omitempty"`
}

// GuidanceLog records one guidance request by a user
type GuidanceLog struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Concern   string    `json:"concern"`
	Tradition string    `json:"tradition"`
	CreatedAt time.Time `json:"created_at"`
}

// SpiritualRepository persists guidance history
type SpiritualRepository interface {
	RecordGuidance(ctx context.Context, entry *GuidanceLog) error
	ListGuidance(ctx context.Context, userID uuid.UUID, limit int) ([]GuidanceLog, error)
}
