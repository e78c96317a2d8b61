package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/zenithwellness/zenith/internal/ai"
	"github.com/zenithwellness/zenith/internal/crisis"
	"github.com/zenithwellness/zenith/internal/domain"
	"github.com/zenithwellness/zenith/internal/security"
)

var chatTestLanguages = []string{"en", "hi", "ta"}

func newTestCrisisService(crisisRepo domain.CrisisRepository) *CrisisService {
	detector := crisis.NewDetector([]string{"end it all", "kill myself"}, nil)
	encryptor, _ := security.NewEncryptor([]byte("12345678901234567890123456789012"))
	return NewCrisisService(detector, crisisRepo, encryptor, 0.7)
}

func newTestAIRouter(provider *MockAIProvider) *ai.Router {
	router := ai.NewRouter("mock")
	provider.On("Name").Return("mock")
	provider.On("IsConfigured").Return(true)
	router.RegisterProvider(provider)
	return router
}

func TestChatService_SendMessage(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("success", func(t *testing.T) {
		mockMessageRepo := new(MockMessageRepository)
		mockProvider := new(MockAIProvider)
		svc := NewChatService(mockMessageRepo, newTestAIRouter(mockProvider), newTestCrisisService(new(MockCrisisRepository)), 5, chatTestLanguages)

		mockMessageRepo.On("Create", ctx, mock.AnythingOfType("*domain.ChatMessage")).Return(nil).Twice()
		mockMessageRepo.On("ListByUser", ctx, userID, 10).Return([]domain.ChatMessage{}, nil)
		mockProvider.On("Generate", ctx, mock.AnythingOfType("ai.Request"), "").
			Return(&ai.Response{Text: "I hear you. Tell me more."}, nil)

		resp, err := svc.SendMessage(ctx, userID, domain.ChatRequest{
			Message:  "I feel anxious about tomorrow",
			Language: "en",
		})
		assert.NoError(t, err)
		assert.Equal(t, "I hear you. Tell me more.", resp.Response)
		assert.Equal(t, "en", resp.Language)
		assert.NotNil(t, resp.Sentiment)
		assert.Equal(t, "negative", resp.Sentiment.Label)
		assert.Nil(t, resp.Crisis)

		mockMessageRepo.AssertExpectations(t)
	})

	t.Run("crisis keyword stores encrypted alert", func(t *testing.T) {
		mockMessageRepo := new(MockMessageRepository)
		mockCrisisRepo := new(MockCrisisRepository)
		mockProvider := new(MockAIProvider)
		svc := NewChatService(mockMessageRepo, newTestAIRouter(mockProvider), newTestCrisisService(mockCrisisRepo), 5, chatTestLanguages)

		message := "I just want to end it all"

		mockMessageRepo.On("Create", ctx, mock.AnythingOfType("*domain.ChatMessage")).Return(nil).Twice()
		mockMessageRepo.On("ListByUser", ctx, userID, 10).Return([]domain.ChatMessage{}, nil)
		mockCrisisRepo.On("CreateAlert", ctx, mock.MatchedBy(func(alert *domain.CrisisAlert) bool {
			return alert.Type == domain.CrisisExplicitKeyword &&
				alert.Confidence == 0.95 &&
				alert.UserID != nil && *alert.UserID == userID &&
				alert.Message != message // never stored as plaintext
		})).Return(nil)
		mockProvider.On("Generate", ctx, mock.AnythingOfType("ai.Request"), "").
			Return(&ai.Response{Text: "Please stay with me. Help is available."}, nil)

		resp, err := svc.SendMessage(ctx, userID, domain.ChatRequest{Message: message, Language: "en"})
		assert.NoError(t, err)
		assert.NotNil(t, resp.Crisis)
		assert.True(t, resp.Crisis.IsCrisis)

		mockCrisisRepo.AssertExpectations(t)
	})

	t.Run("generation failure still answers", func(t *testing.T) {
		mockMessageRepo := new(MockMessageRepository)
		mockProvider := new(MockAIProvider)
		svc := NewChatService(mockMessageRepo, newTestAIRouter(mockProvider), newTestCrisisService(new(MockCrisisRepository)), 5, chatTestLanguages)

		mockMessageRepo.On("Create", ctx, mock.AnythingOfType("*domain.ChatMessage")).Return(nil).Twice()
		mockMessageRepo.On("ListByUser", ctx, userID, 10).Return([]domain.ChatMessage{}, nil)
		mockProvider.On("Generate", ctx, mock.AnythingOfType("ai.Request"), "").
			Return(nil, assert.AnError)

		resp, err := svc.SendMessage(ctx, userID, domain.ChatRequest{Message: "hello", Language: "en"})
		assert.NoError(t, err)
		assert.NotEmpty(t, resp.Response)
	})

	t.Run("unsupported language falls back to english", func(t *testing.T) {
		mockMessageRepo := new(MockMessageRepository)
		mockProvider := new(MockAIProvider)
		svc := NewChatService(mockMessageRepo, newTestAIRouter(mockProvider), newTestCrisisService(new(MockCrisisRepository)), 5, chatTestLanguages)

		mockMessageRepo.On("Create", ctx, mock.AnythingOfType("*domain.ChatMessage")).Return(nil).Twice()
		mockMessageRepo.On("ListByUser", ctx, userID, 10).Return([]domain.ChatMessage{}, nil)
		mockProvider.On("Generate", ctx, mock.AnythingOfType("ai.Request"), "").
			Return(&ai.Response{Text: "hello"}, nil)

		resp, err := svc.SendMessage(ctx, userID, domain.ChatRequest{Message: "hola", Language: "xx"})
		assert.NoError(t, err)
		assert.Equal(t, "en", resp.Language)
	})
}

func TestChatService_GetHistory(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	mockMessageRepo := new(MockMessageRepository)
	svc := NewChatService(mockMessageRepo, ai.NewRouter("mock"), newTestCrisisService(new(MockCrisisRepository)), 5, chatTestLanguages)

	// Repository returns newest first; history must come back chronological.
	newest := domain.ChatMessage{ID: uuid.New(), Content: "second"}
	oldest := domain.ChatMessage{ID: uuid.New(), Content: "first"}
	mockMessageRepo.On("ListByUser", ctx, userID, 50).Return([]domain.ChatMessage{newest, oldest}, nil)

	history, err := svc.GetHistory(ctx, userID, 0)
	assert.NoError(t, err)
	assert.Equal(t, 2, history.TotalCount)
	assert.Equal(t, "first", history.Messages[0].Content)
	assert.Equal(t, "second", history.Messages[1].Content)
}

func TestChatService_DeleteMessage(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	messageID := uuid.New()

	t.Run("owner can delete", func(t *testing.T) {
		mockMessageRepo := new(MockMessageRepository)
		svc := NewChatService(mockMessageRepo, ai.NewRouter("mock"), newTestCrisisService(new(MockCrisisRepository)), 5, chatTestLanguages)

		mockMessageRepo.On("Get", ctx, messageID).Return(&domain.ChatMessage{ID: messageID, UserID: userID}, nil)
		mockMessageRepo.On("Delete", ctx, messageID).Return(nil)

		assert.NoError(t, svc.DeleteMessage(ctx, userID, messageID))
		mockMessageRepo.AssertExpectations(t)
	})

	t.Run("other user's message looks absent", func(t *testing.T) {
		mockMessageRepo := new(MockMessageRepository)
		svc := NewChatService(mockMessageRepo, ai.NewRouter("mock"), newTestCrisisService(new(MockCrisisRepository)), 5, chatTestLanguages)

		mockMessageRepo.On("Get", ctx, messageID).Return(&domain.ChatMessage{ID: messageID, UserID: uuid.New()}, nil)

		err := svc.DeleteMessage(ctx, userID, messageID)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestChatService_ClearHistory(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	mockMessageRepo := new(MockMessageRepository)
	svc := NewChatService(mockMessageRepo, ai.NewRouter("mock"), newTestCrisisService(new(MockCrisisRepository)), 5, chatTestLanguages)

	mockMessageRepo.On("DeleteByUser", ctx, userID).Return(int64(12), nil)

	count, err := svc.ClearHistory(ctx, userID)
	assert.NoError(t, err)
	assert.Equal(t, int64(12), count)
}
