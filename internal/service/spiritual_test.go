package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/zenithwellness/zenith/internal/ai"
	"github.com/zenithwellness/zenith/internal/domain"
)

func TestSpiritualService_DailyQuote(t *testing.T) {
	ctx := context.Background()

	t.Run("parses provider wisdom", func(t *testing.T) {
		mockProvider := new(MockAIProvider)
		mockProvider.On("Name").Return("gemini")
		mockProvider.On("IsConfigured").Return(true)
		mockProvider.On("Generate", ctx, mock.AnythingOfType("ai.Request"), "").Return(&ai.Response{
			Text: "\"The wound is the place where the Light enters you.\"\n- Rumi\nEven pain can open us to something larger.",
		}, nil)

		router := ai.NewRouter("gemini")
		router.RegisterProvider(mockProvider)
		svc := NewSpiritualService(router, nil, nil)

		quote := svc.DailyQuote(ctx, "sufi")
		assert.Equal(t, "The wound is the place where the Light enters you.", quote.Quote)
		assert.Equal(t, "Rumi", quote.Source)
		assert.Equal(t, "sufi", quote.Tradition)
		assert.NotEmpty(t, quote.Reflection)
	})

	t.Run("no provider falls back", func(t *testing.T) {
		svc := NewSpiritualService(ai.NewRouter("gemini"), nil, nil)

		quote := svc.DailyQuote(ctx, "")
		assert.Equal(t, "universal", quote.Tradition)
		assert.Equal(t, "Deepak Chopra", quote.Source)
	})
}

func TestParseWisdom(t *testing.T) {
	t.Run("full response", func(t *testing.T) {
		quote := parseWisdom("\"Be still.\"\n- Lao Tzu\nStillness reveals what noise hides.", "taoist")
		assert.Equal(t, "Be still.", quote.Quote)
		assert.Equal(t, "Lao Tzu", quote.Source)
		assert.Equal(t, "Stillness reveals what noise hides.", quote.Reflection)
	})

	t.Run("quote only", func(t *testing.T) {
		quote := parseWisdom("This too shall pass.", "universal")
		assert.Equal(t, "This too shall pass.", quote.Quote)
		assert.Empty(t, quote.Source)
		assert.Empty(t, quote.Reflection)
	})

	t.Run("blank text falls back", func(t *testing.T) {
		quote := parseWisdom("\n  \n", "universal")
		assert.Equal(t, "Deepak Chopra", quote.Source)
	})
}

func TestSpiritualService_Affirmations(t *testing.T) {
	svc := NewSpiritualService(ai.NewRouter("gemini"), nil, nil)

	t.Run("default count", func(t *testing.T) {
		got := svc.Affirmations("general", 0)
		assert.Len(t, got, 5)
	})

	t.Run("unknown focus uses general pool", func(t *testing.T) {
		got := svc.Affirmations("quantum", 3)
		assert.Len(t, got, 3)
		for _, a := range got {
			assert.Contains(t, affirmations["general"], a)
		}
	})

	t.Run("count capped by pool size", func(t *testing.T) {
		got := svc.Affirmations("anxiety", 10)
		assert.Len(t, got, len(affirmations["anxiety"]))
	})
}

func TestSpiritualService_Practices(t *testing.T) {
	svc := NewSpiritualService(ai.NewRouter("gemini"), nil, nil)

	peace := svc.Practices("peace")
	assert.NotEmpty(t, peace)

	unknown := svc.Practices("time-travel")
	assert.Equal(t, peace, unknown)
}

func TestSpiritualService_Guidance(t *testing.T) {
	ctx := context.Background()

	t.Run("provider text used", func(t *testing.T) {
		mockProvider := new(MockAIProvider)
		mockProvider.On("Name").Return("gemini")
		mockProvider.On("IsConfigured").Return(true)
		mockProvider.On("Generate", ctx, mock.AnythingOfType("ai.Request"), "").Return(&ai.Response{
			Text: "Begin each morning with three slow breaths before reaching for anything else.",
		}, nil)

		router := ai.NewRouter("gemini")
		router.RegisterProvider(mockProvider)
		svc := NewSpiritualService(router, nil, nil)

		resp := svc.Guidance(ctx, uuid.New(), domain.GuidanceRequest{Concern: "restlessness"})
		assert.Contains(t, resp.Guidance, "three slow breaths")
		assert.Equal(t, "universal", resp.Tradition)
		assert.NotEmpty(t, resp.Practices)
	})

	t.Run("no provider keeps default guidance", func(t *testing.T) {
		svc := NewSpiritualService(ai.NewRouter("gemini"), nil, nil)

		resp := svc.Guidance(ctx, uuid.New(), domain.GuidanceRequest{Concern: "worry", Tradition: "buddhist"})
		assert.Contains(t, resp.Guidance, "quiet reflection")
		assert.Equal(t, "buddhist", resp.Tradition)
	})

	t.Run("request recorded in history", func(t *testing.T) {
		mockRepo := new(MockSpiritualRepository)
		mockRepo.On("RecordGuidance", ctx, mock.MatchedBy(func(e *domain.GuidanceLog) bool {
			return e.Concern == "grief" && e.Tradition == "universal"
		})).Return(nil)

		svc := NewSpiritualService(ai.NewRouter("gemini"), nil, mockRepo)
		svc.Guidance(ctx, uuid.New(), domain.GuidanceRequest{Concern: "grief"})

		mockRepo.AssertExpectations(t)
	})
}

func TestSpiritualService_History(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("lists recent entries", func(t *testing.T) {
		mockRepo := new(MockSpiritualRepository)
		mockRepo.On("ListGuidance", ctx, userID, 20).Return([]domain.GuidanceLog{
			{UserID: userID, Concern: "sleep", Tradition: "universal"},
		}, nil)

		svc := NewSpiritualService(ai.NewRouter("gemini"), nil, mockRepo)
		entries, err := svc.History(ctx, userID, 0)
		assert.NoError(t, err)
		assert.Len(t, entries, 1)
		assert.Equal(t, "sleep", entries[0].Concern)
	})

	t.Run("no repository returns empty", func(t *testing.T) {
		svc := NewSpiritualService(ai.NewRouter("gemini"), nil, nil)
		entries, err := svc.History(ctx, userID, 10)
		assert.NoError(t, err)
		assert.Empty(t, entries)
	})
}
