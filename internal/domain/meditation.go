package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// MeditationType distinguishes how a session ended
type MeditationType string

const (
	MeditationCompleted   MeditationType = "completed"
	MeditationInterrupted MeditationType = "interrupted"
)

// MeditationSession is one logged sitting
type MeditationSession struct {
	ID         uuid.UUID      `json:"id"`
	UserID     uuid.UUID      `json:"user_id"`
	Duration   int            `json:"duration_minutes"`
	Type       MeditationType `json:"type"`
	MoodBefore *int           `json:"mood_before,omitempty"` // 1-10
	MoodAfter  *int           `json:"mood_after,omitempty"`  // 1-10
	MoodDelta  *int           `json:"mood_delta,omitempty"`
	Notes      string         `json:"notes,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
}

// MeditationLogRequest logs a finished or stopped session
type MeditationLogRequest struct {
	Duration   int    `json:"duration_minutes" validate:"required,min=1,max=480"`
	Type       string `json:"type" validate:"required,oneof=completed interrupted"`
	MoodBefore *int   `json:"mood_before" validate:"omitempty,min=1,max=10"`
	MoodAfter  *int   `json:"mood_after" validate:"omitempty,min=1,max=10"`
	Notes      string `json:"notes" validate:"max=2000"`
}

// UserStats is the cumulative meditation record for a user
type UserStats struct {
	UserID        uuid.UUID  `json:"user_id"`
	TotalSessions int        `json:"total_sessions"`
	TotalMinutes  int        `json:"total_minutes"`
	StreakDays    int        `json:"streak_days"`
	LastSession   *time.Time `json:"last_session,omitempty"`
}

// MeditationStats is the derived view returned by the stats endpoint
type MeditationStats struct {
	TotalSessions        int        `json:"total_sessions"`
	TotalMinutes         int        `json:"total_minutes"`
	StreakDays           int        `json:"streak_days"`
	AverageSessionLength float64    `json:"average_session_length"`
	FavoriteType         string     `json:"favorite_type,omitempty"`
	MoodImprovementAvg   float64    `json:"mood_improvement_average"`
	LastSession          *time.Time `json:"last_session,omitempty"`
}

// ScriptRequest asks for a generated meditation script
type ScriptRequest struct {
	Duration int    `json:"duration" validate:"omitempty,min=1,max=60"`
	Focus    string `json:"focus" validate:"omitempty,max=100"`
	Language string `json:"language" validate:"omitempty,len=2"`
}

// ScriptResponse carries the generated script
type ScriptResponse struct {
	Script   string `json:"script"`
	Duration int    `json:"duration"`
	Focus    string `json:"focus"`
}

// BreathingExercise is a guided breathing technique
type BreathingExercise struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Instructions []string `json:"instructions"`
	Benefits     []string `json:"benefits"`
	Duration     string   `json:"duration"`
}

// GuidedMeditation is a catalog entry for a guided practice
type GuidedMeditation struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Duration    int      `json:"duration"`
	Difficulty  string   `json:"difficulty"`
	Benefits    []string `json:"benefits"`
}

// MeditationRepository defines the interface for session and stats storage
type MeditationRepository interface {
	CreateSession(ctx context.Context, session *MeditationSession) error
	ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]MeditationSession, error)
	GetStats(ctx context.Context, userID uuid.UUID) (*UserStats, error)
	SaveStats(ctx context.Context, stats *UserStats) error
}
