package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/zenithwellness/zenith/internal/ai"
	"github.com/zenithwellness/zenith/internal/domain"
)

// MeditationService handles scripts, exercises, and practice tracking
type MeditationService struct {
	meditationRepo domain.MeditationRepository
	aiRouter       *ai.Router
}

// NewMeditationService creates a new meditation service
func NewMeditationService(meditationRepo domain.MeditationRepository, aiRouter *ai.Router) *MeditationService {
	return &MeditationService{
		meditationRepo: meditationRepo,
		aiRouter:       aiRouter,
	}
}

// GenerateScript produces a guided meditation script, falling back to the
// canned script when no provider can generate one.
func (s *MeditationService) GenerateScript(ctx context.Context, req domain.ScriptRequest) *domain.ScriptResponse {
	duration := req.Duration
	if duration <= 0 {
		duration = 5
	}
	focus := req.Focus
	if focus == "" {
		focus = "general"
	}

	script := s.generateWithAI(ctx, duration, focus)
	if script == "" {
		script = ai.DefaultMeditationScript(duration)
	}

	return &domain.ScriptResponse{
		Script:   script,
		Duration: duration,
		Focus:    focus,
	}
}

// LogSession records a finished or interrupted sitting and rolls the user's
// cumulative stats forward.
func (s *MeditationService) LogSession(ctx context.Context, userID uuid.UUID, req domain.MeditationLogRequest) (*domain.MeditationSession, error) {
	now := time.Now()

	session := &domain.MeditationSession{
		ID:         uuid.New(),
		UserID:     userID,
		Duration:   req.Duration,
		Type:       domain.MeditationType(req.Type),
		MoodBefore: req.MoodBefore,
		MoodAfter:  req.MoodAfter,
		Notes:      req.Notes,
		CreatedAt:  now,
	}
	if req.MoodBefore != nil && req.MoodAfter != nil {
		delta := *req.MoodAfter - *req.MoodBefore
		session.MoodDelta = &delta
	}

	if err := s.meditationRepo.CreateSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to log session: %w", err)
	}

	if err := s.rollStats(ctx, userID, req.Duration, now); err != nil {
		// Stats are derived data; the logged session is the source of truth.
		log.Error().Err(err).Msg("failed to update meditation stats")
	}

	return session, nil
}

// GetStats returns the derived stats view for a user
func (s *MeditationService) GetStats(ctx context.Context, userID uuid.UUID) (*domain.MeditationStats, error) {
	stats, err := s.meditationRepo.GetStats(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return &domain.MeditationStats{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}

	result := &domain.MeditationStats{
		TotalSessions: stats.TotalSessions,
		TotalMinutes:  stats.TotalMinutes,
		StreakDays:    stats.StreakDays,
		LastSession:   stats.LastSession,
	}
	if stats.TotalSessions > 0 {
		result.AverageSessionLength = float64(stats.TotalMinutes) / float64(stats.TotalSessions)
	}

	recent, err := s.meditationRepo.ListRecent(ctx, userID, 50)
	if err != nil {
		log.Warn().Err(err).Msg("failed to list recent sessions for stats")
		return result, nil
	}

	counts := make(map[domain.MeditationType]int)
	var moodSum, moodCount int
	for _, session := range recent {
		counts[session.Type]++
		if session.MoodDelta != nil {
			moodSum += *session.MoodDelta
			moodCount++
		}
	}

	best := 0
	for typ, count := range counts {
		if count > best {
			best = count
			result.FavoriteType = string(typ)
		}
	}
	if moodCount > 0 {
		result.MoodImprovementAvg = float64(moodSum) / float64(moodCount)
	}

	return result, nil
}

// ListRecent returns the user's latest sessions
func (s *MeditationService) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]domain.MeditationSession, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.meditationRepo.ListRecent(ctx, userID, limit)
}

// Breathing returns the requested breathing exercise, defaulting to 4-7-8
func (s *MeditationService) Breathing(exerciseType string) domain.BreathingExercise {
	if exercise, ok := breathingExercises[exerciseType]; ok {
		return exercise
	}
	return breathingExercises["4-7-8"]
}

// Guided returns the guided meditation catalog
func (s *MeditationService) Guided() []domain.GuidedMeditation {
	return guidedMeditations
}

func (s *MeditationService) generateWithAI(ctx context.Context, duration int, focus string) string {
	provider, err := s.aiRouter.GetProvider("")
	if err != nil {
		return ""
	}

	resp, err := provider.Generate(ctx, ai.Request{
		Prompt:      ai.BuildMeditationPrompt(duration, focus),
		Temperature: 0.7,
	}, "")
	if err != nil {
		log.Error().Err(err).Msg("meditation script generation failed")
		return ""
	}
	return resp.Text
}

// rollStats applies one session to the cumulative record. The streak counts
// consecutive UTC days with at least one session.
func (s *MeditationService) rollStats(ctx context.Context, userID uuid.UUID, duration int, now time.Time) error {
	stats, err := s.meditationRepo.GetStats(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		stats = &domain.UserStats{UserID: userID}
	} else if err != nil {
		return err
	}

	stats.TotalSessions++
	stats.TotalMinutes += duration
	stats.StreakDays = nextStreak(stats.StreakDays, stats.LastSession, now)
	stats.LastSession = &now

	return s.meditationRepo.SaveStats(ctx, stats)
}

func nextStreak(current int, last *time.Time, now time.Time) int {
	if last == nil {
		return 1
	}

	today := now.UTC().Truncate(24 * time.Hour)
	lastDay := last.UTC().Truncate(24 * time.Hour)

	switch today.Sub(lastDay) {
	case 0:
		if current < 1 {
			return 1
		}
		return current
	case 24 * time.Hour:
		return current + 1
	default:
		return 1
	}
}
