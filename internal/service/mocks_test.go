package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/zenithwellness/zenith/internal/ai"
	"github.com/zenithwellness/zenith/internal/domain"
)

// MockUserRepository mocks the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockMessageRepository mocks the MessageRepository interface
type MockMessageRepository struct {
	mock.Mock
}

func (m *MockMessageRepository) Create(ctx context.Context, message *domain.ChatMessage) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

func (m *MockMessageRepository) Get(ctx context.Context, id uuid.UUID) (*domain.ChatMessage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChatMessage), args.Error(1)
}

func (m *MockMessageRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.ChatMessage, error) {
	args := m.Called(ctx, userID, limit)
	return args.Get(0).([]domain.ChatMessage), args.Error(1)
}

func (m *MockMessageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMessageRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

// MockMeditationRepository mocks the MeditationRepository interface
type MockMeditationRepository struct {
	mock.Mock
}

func (m *MockMeditationRepository) CreateSession(ctx context.Context, session *domain.MeditationSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockMeditationRepository) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]domain.MeditationSession, error) {
	args := m.Called(ctx, userID, limit)
	return args.Get(0).([]domain.MeditationSession), args.Error(1)
}

func (m *MockMeditationRepository) GetStats(ctx context.Context, userID uuid.UUID) (*domain.UserStats, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserStats), args.Error(1)
}

func (m *MockMeditationRepository) SaveStats(ctx context.Context, stats *domain.UserStats) error {
	args := m.Called(ctx, stats)
	return args.Error(0)
}

// MockCommunityRepository mocks the CommunityRepository interface
type MockCommunityRepository struct {
	mock.Mock
}

func (m *MockCommunityRepository) CreatePost(ctx context.Context, post *domain.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockCommunityRepository) GetPost(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Post), args.Error(1)
}

func (m *MockCommunityRepository) ListPosts(ctx context.Context, category string, limit, offset int) ([]domain.Post, error) {
	args := m.Called(ctx, category, limit, offset)
	return args.Get(0).([]domain.Post), args.Error(1)
}

func (m *MockCommunityRepository) UpdatePostStatus(ctx context.Context, id uuid.UUID, status domain.PostStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockCommunityRepository) CreateComment(ctx context.Context, comment *domain.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommunityRepository) ListComments(ctx context.Context, postID uuid.UUID, limit, offset int) ([]domain.Comment, error) {
	args := m.Called(ctx, postID, limit, offset)
	return args.Get(0).([]domain.Comment), args.Error(1)
}

func (m *MockCommunityRepository) AddLike(ctx context.Context, postID, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, postID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCommunityRepository) RemoveLike(ctx context.Context, postID, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, postID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCommunityRepository) CountLikes(ctx context.Context, postID uuid.UUID) (int, error) {
	args := m.Called(ctx, postID)
	return args.Int(0), args.Error(1)
}

// MockCrisisRepository mocks the CrisisRepository interface
type MockCrisisRepository struct {
	mock.Mock
}

func (m *MockCrisisRepository) CreateAlert(ctx context.Context, alert *domain.CrisisAlert) error {
	args := m.Called(ctx, alert)
	return args.Error(0)
}

func (m *MockCrisisRepository) CreateReport(ctx context.Context, report *domain.CrisisReport) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

// MockSpiritualRepository mocks the SpiritualRepository interface
type MockSpiritualRepository struct {
	mock.Mock
}

func (m *MockSpiritualRepository) RecordGuidance(ctx context.Context, entry *domain.GuidanceLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockSpiritualRepository) ListGuidance(ctx context.Context, userID uuid.UUID, limit int) ([]domain.GuidanceLog, error) {
	args := m.Called(ctx, userID, limit)
	return args.Get(0).([]domain.GuidanceLog), args.Error(1)
}

// MockAIProvider mocks ai.Provider
type MockAIProvider struct {
	mock.Mock
}

func (m *MockAIProvider) Name() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockAIProvider) AvailableModels() []string {
	args := m.Called()
	return args.Get(0).([]string)
}

func (m *MockAIProvider) DefaultModel() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockAIProvider) IsConfigured() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockAIProvider) Generate(ctx context.Context, req ai.Request, model string) (*ai.Response, error) {
	args := m.Called(ctx, req, model)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ai.Response), args.Error(1)
}
