package service

import (
	"context"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/zenithwellness/zenith/internal/ai"
	"github.com/zenithwellness/zenith/internal/domain"
	"github.com/zenithwellness/zenith/internal/repository/redis"
)

// SpiritualService serves quotes, guidance, affirmations and practices
type SpiritualService struct {
	aiRouter   *ai.Router
	quoteCache *redis.QuoteCache
	history    domain.SpiritualRepository
}

// NewSpiritualService creates a new spiritual service. history may be nil,
// in which case guidance requests are not recorded.
func NewSpiritualService(aiRouter *ai.Router, quoteCache *redis.QuoteCache, history domain.SpiritualRepository) *SpiritualService {
	return &SpiritualService{
		aiRouter:   aiRouter,
		quoteCache: quoteCache,
		history:    history,
	}
}

// DailyQuote returns the quote of the day for a tradition. The cache keeps
// the quote stable until midnight UTC so all users see the same one.
func (s *SpiritualService) DailyQuote(ctx context.Context, tradition string) *domain.SpiritualQuote {
	if tradition == "" {
		tradition = "universal"
	}

	if s.quoteCache != nil {
		if cached, err := s.quoteCache.Get(ctx, tradition); err == nil && cached != nil {
			return cached
		}
	}

	quote := s.generateQuote(ctx, tradition)

	if s.quoteCache != nil {
		if err := s.quoteCache.Set(ctx, tradition, quote); err != nil {
			log.Warn().Err(err).Msg("failed to cache daily quote")
		}
	}

	return quote
}

// Guidance generates personalized guidance for a concern
func (s *SpiritualService) Guidance(ctx context.Context, userID uuid.UUID, req domain.GuidanceRequest) *domain.GuidanceResponse {
	tradition := req.Tradition
	if tradition == "" {
		tradition = "universal"
	}

	if s.history != nil && userID != uuid.Nil {
		entry := &domain.GuidanceLog{
			ID:        uuid.New(),
			UserID:    userID,
			Concern:   req.Concern,
			Tradition: tradition,
			CreatedAt: time.Now().UTC(),
		}
		if err := s.history.RecordGuidance(ctx, entry); err != nil {
			log.Warn().Err(err).Msg("failed to record guidance request")
		}
	}

	guidance := "Take time for quiet reflection and meditation on your concern."
	if provider, err := s.aiRouter.GetProvider(""); err == nil {
		resp, err := provider.Generate(ctx, ai.Request{
			Prompt:      ai.BuildGuidancePrompt(req.Concern, tradition),
			Temperature: 0.7,
		}, "")
		if err != nil {
			log.Error().Err(err).Msg("guidance generation failed")
		} else if resp.Text != "" {
			guidance = resp.Text
		}
	}

	return &domain.GuidanceResponse{
		Guidance:  guidance,
		Tradition: tradition,
		Practices: []string{"Daily meditation", "Gratitude journaling", "Mindful breathing"},
	}
}

// History returns the user's recent guidance requests, newest first
func (s *SpiritualService) History(ctx context.Context, userID uuid.UUID, limit int) ([]domain.GuidanceLog, error) {
	if s.history == nil {
		return nil, nil
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.history.ListGuidance(ctx, userID, limit)
}

// Affirmations returns up to count affirmations for a focus area
func (s *SpiritualService) Affirmations(focus string, count int) []string {
	if count <= 0 || count > 10 {
		count = 5
	}

	pool, ok := affirmations[strings.ToLower(focus)]
	if !ok {
		pool = affirmations["general"]
	}
	if count > len(pool) {
		count = len(pool)
	}

	selected := make([]string, len(pool))
	copy(selected, pool)
	rand.Shuffle(len(selected), func(i, j int) {
		selected[i], selected[j] = selected[j], selected[i]
	})
	return selected[:count]
}

// Practices returns spiritual practices for a goal
func (s *SpiritualService) Practices(goal string) []domain.Practice {
	practices, ok := practicesByGoal[strings.ToLower(goal)]
	if !ok {
		practices = practicesByGoal["peace"]
	}
	return practices
}

func (s *SpiritualService) generateQuote(ctx context.Context, tradition string) *domain.SpiritualQuote {
	provider, err := s.aiRouter.GetProvider("")
	if err != nil {
		return fallbackQuote(tradition)
	}

	resp, err := provider.Generate(ctx, ai.Request{
		Prompt:      ai.BuildWisdomPrompt(tradition),
		Temperature: 0.8,
	}, "")
	if err != nil || resp.Text == "" {
		log.Error().Err(err).Msg("wisdom generation failed")
		return fallbackQuote(tradition)
	}

	return parseWisdom(resp.Text, tradition)
}

// parseWisdom splits a free-text wisdom response into quote, attribution and
// reflection: first line is the quote, a line starting with a dash is the
// source, the first remaining non-empty line is the reflection.
func parseWisdom(wisdom, tradition string) *domain.SpiritualQuote {
	quote := &domain.SpiritualQuote{Tradition: tradition}

	for _, line := range strings.Split(wisdom, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		switch {
		case quote.Quote == "":
			quote.Quote = strings.Trim(line, `"`)
		case quote.Source == "" && strings.HasPrefix(line, "-"):
			quote.Source = strings.TrimSpace(strings.TrimLeft(line, "- "))
		case quote.Reflection == "":
			quote.Reflection = line
		}
	}

	if quote.Quote == "" {
		return fallbackQuote(tradition)
	}
	return quote
}

func fallbackQuote(tradition string) *domain.SpiritualQuote {
	return &domain.SpiritualQuote{
		Quote:      "In the midst of movement and chaos, keep stillness inside of you.",
		Source:     "Deepak Chopra",
		Tradition:  tradition,
		Reflection: "Find your inner peace amidst life's challenges.",
	}
}
