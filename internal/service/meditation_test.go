package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/zenithwellness/zenith/internal/ai"
	"github.com/zenithwellness/zenith/internal/domain"
)

func intPtr(v int) *int { return &v }

func TestMeditationService_GenerateScript(t *testing.T) {
	ctx := context.Background()

	t.Run("uses provider", func(t *testing.T) {
		mockProvider := new(MockAIProvider)
		svc := NewMeditationService(new(MockMeditationRepository), newTestAIRouter(mockProvider))

		mockProvider.On("Generate", ctx, mock.AnythingOfType("ai.Request"), "").
			Return(&ai.Response{Text: "Close your eyes and breathe."}, nil)

		resp := svc.GenerateScript(ctx, domain.ScriptRequest{Duration: 10, Focus: "sleep"})
		assert.Equal(t, "Close your eyes and breathe.", resp.Script)
		assert.Equal(t, 10, resp.Duration)
		assert.Equal(t, "sleep", resp.Focus)
	})

	t.Run("falls back without provider", func(t *testing.T) {
		svc := NewMeditationService(new(MockMeditationRepository), ai.NewRouter("none"))

		resp := svc.GenerateScript(ctx, domain.ScriptRequest{})
		assert.Equal(t, 5, resp.Duration)
		assert.Equal(t, "general", resp.Focus)
		assert.True(t, strings.Contains(resp.Script, "5-minute meditation session"))
	})
}

func TestMeditationService_LogSession(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("first session starts a streak", func(t *testing.T) {
		mockRepo := new(MockMeditationRepository)
		svc := NewMeditationService(mockRepo, ai.NewRouter("none"))

		mockRepo.On("CreateSession", ctx, mock.MatchedBy(func(s *domain.MeditationSession) bool {
			return s.UserID == userID && s.Duration == 15 && s.MoodDelta != nil && *s.MoodDelta == 3
		})).Return(nil)
		mockRepo.On("GetStats", ctx, userID).Return(nil, domain.ErrNotFound)
		mockRepo.On("SaveStats", ctx, mock.MatchedBy(func(stats *domain.UserStats) bool {
			return stats.TotalSessions == 1 && stats.TotalMinutes == 15 && stats.StreakDays == 1
		})).Return(nil)

		session, err := svc.LogSession(ctx, userID, domain.MeditationLogRequest{
			Duration:   15,
			Type:       "completed",
			MoodBefore: intPtr(4),
			MoodAfter:  intPtr(7),
		})
		assert.NoError(t, err)
		assert.Equal(t, domain.MeditationCompleted, session.Type)

		mockRepo.AssertExpectations(t)
	})

	t.Run("consecutive day extends streak", func(t *testing.T) {
		mockRepo := new(MockMeditationRepository)
		svc := NewMeditationService(mockRepo, ai.NewRouter("none"))

		yesterday := time.Now().UTC().Truncate(24 * time.Hour).Add(-2 * time.Hour)
		mockRepo.On("CreateSession", ctx, mock.AnythingOfType("*domain.MeditationSession")).Return(nil)
		mockRepo.On("GetStats", ctx, userID).Return(&domain.UserStats{
			UserID:        userID,
			TotalSessions: 4,
			TotalMinutes:  60,
			StreakDays:    3,
			LastSession:   &yesterday,
		}, nil)
		mockRepo.On("SaveStats", ctx, mock.MatchedBy(func(stats *domain.UserStats) bool {
			return stats.TotalSessions == 5 && stats.TotalMinutes == 70 && stats.StreakDays == 4
		})).Return(nil)

		_, err := svc.LogSession(ctx, userID, domain.MeditationLogRequest{Duration: 10, Type: "interrupted"})
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})
}

func TestNextStreak(t *testing.T) {
	now := time.Date(2026, 8, 30, 14, 0, 0, 0, time.UTC)

	t.Run("no previous session", func(t *testing.T) {
		assert.Equal(t, 1, nextStreak(0, nil, now))
	})

	t.Run("same day keeps streak", func(t *testing.T) {
		earlier := now.Add(-3 * time.Hour)
		assert.Equal(t, 5, nextStreak(5, &earlier, now))
	})

	t.Run("yesterday extends streak", func(t *testing.T) {
		yesterday := now.Add(-24 * time.Hour)
		assert.Equal(t, 6, nextStreak(5, &yesterday, now))
	})

	t.Run("gap resets streak", func(t *testing.T) {
		lastWeek := now.Add(-7 * 24 * time.Hour)
		assert.Equal(t, 1, nextStreak(5, &lastWeek, now))
	})
}

func TestMeditationService_GetStats(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("no sessions yet", func(t *testing.T) {
		mockRepo := new(MockMeditationRepository)
		svc := NewMeditationService(mockRepo, ai.NewRouter("none"))

		mockRepo.On("GetStats", ctx, userID).Return(nil, domain.ErrNotFound)

		stats, err := svc.GetStats(ctx, userID)
		assert.NoError(t, err)
		assert.Equal(t, 0, stats.TotalSessions)
	})

	t.Run("derived fields", func(t *testing.T) {
		mockRepo := new(MockMeditationRepository)
		svc := NewMeditationService(mockRepo, ai.NewRouter("none"))

		last := time.Now()
		mockRepo.On("GetStats", ctx, userID).Return(&domain.UserStats{
			UserID:        userID,
			TotalSessions: 4,
			TotalMinutes:  60,
			StreakDays:    2,
			LastSession:   &last,
		}, nil)
		mockRepo.On("ListRecent", ctx, userID, 50).Return([]domain.MeditationSession{
			{Type: domain.MeditationCompleted, MoodDelta: intPtr(2)},
			{Type: domain.MeditationCompleted, MoodDelta: intPtr(4)},
			{Type: domain.MeditationInterrupted},
		}, nil)

		stats, err := svc.GetStats(ctx, userID)
		assert.NoError(t, err)
		assert.Equal(t, 15.0, stats.AverageSessionLength)
		assert.Equal(t, "completed", stats.FavoriteType)
		assert.Equal(t, 3.0, stats.MoodImprovementAvg)
	})
}

func TestMeditationService_Breathing(t *testing.T) {
	svc := NewMeditationService(new(MockMeditationRepository), ai.NewRouter("none"))

	assert.Equal(t, "Box Breathing", svc.Breathing("box").Name)
	// Unknown types fall back to 4-7-8.
	assert.Equal(t, "4-7-8 Breathing", svc.Breathing("nope").Name)
}

func TestMeditationService_Guided(t *testing.T) {
	svc := NewMeditationService(new(MockMeditationRepository), ai.NewRouter("none"))

	guided := svc.Guided()
	assert.Len(t, guided, 6)
	assert.Equal(t, "body-scan", guided[0].ID)
}
