package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/zenithwellness/zenith/internal/ai"
	"github.com/zenithwellness/zenith/internal/domain"
	"github.com/zenithwellness/zenith/internal/sentiment"
)

// ChatService handles wellness chat operations
type ChatService struct {
	messageRepo        domain.MessageRepository
	aiRouter           *ai.Router
	crisisService      *CrisisService
	historyContext     int
	supportedLanguages []string
}

// NewChatService creates a new chat service
func NewChatService(
	messageRepo domain.MessageRepository,
	aiRouter *ai.Router,
	crisisService *CrisisService,
	historyContext int,
	supportedLanguages []string,
) *ChatService {
	return &ChatService{
		messageRepo:        messageRepo,
		aiRouter:           aiRouter,
		crisisService:      crisisService,
		historyContext:     historyContext,
		supportedLanguages: supportedLanguages,
	}
}

// SendMessage processes one chat turn: analyze, screen for crisis, generate
// a reply, and persist both sides of the exchange.
func (s *ChatService) SendMessage(ctx context.Context, userID uuid.UUID, req domain.ChatRequest) (*domain.ChatResponse, error) {
	startTime := time.Now()
	language := s.resolveLanguage(req.Language)

	msgSentiment := sentiment.Analyze(req.Message)

	detection := s.crisisService.Detect(ctx, req.Message)
	if detection.IsCrisis && detection.Confidence > s.crisisService.threshold {
		s.crisisService.RecordAlert(ctx, &userID, req.Message, detection)
	}

	userMsg := &domain.ChatMessage{
		ID:        uuid.New(),
		UserID:    userID,
		Role:      domain.RoleUser,
		Content:   req.Message,
		Language:  language,
		Sentiment: &msgSentiment,
		CreatedAt: startTime,
	}
	if err := s.messageRepo.Create(ctx, userMsg); err != nil {
		// Log error but continue execution
		log.Error().Err(err).Msg("failed to save user message")
	}

	history, err := s.messageRepo.ListByUser(ctx, userID, s.historyContext*2)
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch chat history")
		history = nil
	}
	chronological(history)

	reply := s.generateReply(ctx, req.Message, language, history, detection)

	aiMsg := &domain.ChatMessage{
		ID:        uuid.New(),
		UserID:    userID,
		Role:      domain.RoleAssistant,
		Content:   reply,
		Language:  language,
		CreatedAt: time.Now(),
	}
	if err := s.messageRepo.Create(ctx, aiMsg); err != nil {
		log.Error().Err(err).Msg("failed to save assistant message")
	}

	response := &domain.ChatResponse{
		Response:  reply,
		MessageID: aiMsg.ID,
		Language:  language,
		Sentiment: &msgSentiment,
	}
	if detection.IsCrisis {
		response.Crisis = &detection
	}

	log.Debug().
		Dur("elapsed", time.Since(startTime)).
		Str("language", language).
		Bool("crisis", detection.IsCrisis).
		Msg("chat turn completed")

	return response, nil
}

// GetHistory returns the user's recent messages in chronological order
func (s *ChatService) GetHistory(ctx context.Context, userID uuid.UUID, limit int) (*domain.ChatHistory, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	messages, err := s.messageRepo.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch history: %w", err)
	}
	chronological(messages)

	return &domain.ChatHistory{
		Messages:   messages,
		TotalCount: len(messages),
	}, nil
}

// DeleteMessage removes one message after verifying ownership
func (s *ChatService) DeleteMessage(ctx context.Context, userID, messageID uuid.UUID) error {
	msg, err := s.messageRepo.Get(ctx, messageID)
	if err != nil {
		return err
	}
	if msg.UserID != userID {
		return domain.ErrNotFound
	}
	return s.messageRepo.Delete(ctx, messageID)
}

// ClearHistory removes all of the user's messages and returns the count
func (s *ChatService) ClearHistory(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.messageRepo.DeleteByUser(ctx, userID)
}

// GetSuggestions returns conversation starters for an empty chat
func (s *ChatService) GetSuggestions() []string {
	return []string{
		"I've been feeling stressed lately",
		"Help me calm down before an exam",
		"I can't sleep at night",
		"I want to build a meditation habit",
		"Share something uplifting with me",
	}
}

func (s *ChatService) generateReply(ctx context.Context, message, language string, history []domain.ChatMessage, detection domain.CrisisDetection) string {
	provider, err := s.aiRouter.GetProvider("")
	if err != nil {
		log.Warn().Err(err).Msg("no chat provider available")
		return fallbackReply(detection)
	}

	resp, err := provider.Generate(ctx, ai.Request{
		Prompt:      ai.BuildChatPrompt(message, language, history),
		Temperature: 0.7,
	}, "")
	if err != nil {
		log.Error().Err(err).Msg("chat generation failed")
		return fallbackReply(detection)
	}

	return resp.Text
}

func (s *ChatService) resolveLanguage(language string) string {
	for _, supported := range s.supportedLanguages {
		if language == supported {
			return language
		}
	}
	return "en"
}

// fallbackReply keeps the companion responsive when generation fails. A
// detected crisis still gets pointed at real help.
func fallbackReply(detection domain.CrisisDetection) string {
	if detection.IsCrisis {
		return "I hear you, and I'm really glad you told me. I'm having trouble " +
			"responding right now, but please reach out to someone who can help: " +
			"call 112 for emergencies, or the NIMHANS helpline at 080-46110007 (24/7). " +
			"You don't have to face this alone."
	}
	return "I'm here with you. I'm having a little trouble finding my words right now, " +
		"but take a slow breath with me. Remember: \"" + ai.UpliftQuotes[0] + "\" " +
		"Could you tell me a bit more about how you're feeling?"
}

// chronological reverses a newest-first page in place.
func chronological(messages []domain.ChatMessage) {
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
}
