package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/zenithwellness/zenith/internal/domain"
	"github.com/zenithwellness/zenith/internal/sentiment"
)

// ErrInappropriateContent is returned when moderation rejects a submission.
var ErrInappropriateContent = errors.New("content flagged by moderation")

// ErrNotAuthor is returned when a user tries to delete someone else's post.
var ErrNotAuthor = errors.New("not the post author")

var moderationKeywords = []string{
	"hate", "violence", "abuse", "harassment",
}

// CommunityService handles peer support posts, comments and likes
type CommunityService struct {
	communityRepo domain.CommunityRepository
}

// NewCommunityService creates a new community service
func NewCommunityService(communityRepo domain.CommunityRepository) *CommunityService {
	return &CommunityService{communityRepo: communityRepo}
}

// CreatePost publishes a post after moderation. Anonymous posts drop the
// author reference entirely.
func (s *CommunityService) CreatePost(ctx context.Context, author *domain.User, input domain.PostCreate) (*domain.Post, error) {
	if isInappropriate(input.Title) || isInappropriate(input.Content) {
		return nil, ErrInappropriateContent
	}

	post := &domain.Post{
		ID:        uuid.New(),
		Title:     input.Title,
		Content:   input.Content,
		Category:  input.Category,
		Status:    domain.PostActive,
		CreatedAt: time.Now(),
	}

	if input.Anonymous {
		post.AuthorName = "Anonymous"
	} else {
		post.AuthorID = &author.ID
		post.AuthorName = author.DisplayName
		if post.AuthorName == "" {
			post.AuthorName = "Member"
		}
	}

	if err := s.communityRepo.CreatePost(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return post, nil
}

// GetPost returns one active post
func (s *CommunityService) GetPost(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	return s.communityRepo.GetPost(ctx, id)
}

// ListPosts returns a page of active posts, optionally filtered by category
func (s *CommunityService) ListPosts(ctx context.Context, category string, limit, offset int) ([]domain.Post, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.communityRepo.ListPosts(ctx, category, limit, offset)
}

// DeletePost soft-deletes a post. Only the author may delete; anonymous
// posts have no author and cannot be deleted through the API.
func (s *CommunityService) DeletePost(ctx context.Context, userID, postID uuid.UUID) error {
	post, err := s.communityRepo.GetPost(ctx, postID)
	if err != nil {
		return err
	}
	if post.AuthorID == nil || *post.AuthorID != userID {
		return ErrNotAuthor
	}
	return s.communityRepo.UpdatePostStatus(ctx, postID, domain.PostDeleted)
}

// CreateComment adds a reply to a post after moderation
func (s *CommunityService) CreateComment(ctx context.Context, author *domain.User, postID uuid.UUID, input domain.CommentCreate) (*domain.Comment, error) {
	if isInappropriate(input.Content) {
		return nil, ErrInappropriateContent
	}

	// Verify the post exists and is visible.
	if _, err := s.communityRepo.GetPost(ctx, postID); err != nil {
		return nil, err
	}

	comment := &domain.Comment{
		ID:        uuid.New(),
		PostID:    postID,
		Content:   input.Content,
		CreatedAt: time.Now(),
	}

	if input.Anonymous {
		comment.AuthorName = "Anonymous"
	} else {
		comment.AuthorID = &author.ID
		comment.AuthorName = author.DisplayName
		if comment.AuthorName == "" {
			comment.AuthorName = "Member"
		}
	}

	if err := s.communityRepo.CreateComment(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	return comment, nil
}

// ListComments returns a post's comments oldest first
func (s *CommunityService) ListComments(ctx context.Context, postID uuid.UUID, limit, offset int) ([]domain.Comment, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.communityRepo.ListComments(ctx, postID, limit, offset)
}

// Like records a like and returns the new count. Liking twice is a no-op.
func (s *CommunityService) Like(ctx context.Context, postID, userID uuid.UUID) (int, error) {
	if _, err := s.communityRepo.GetPost(ctx, postID); err != nil {
		return 0, err
	}
	if _, err := s.communityRepo.AddLike(ctx, postID, userID); err != nil {
		return 0, err
	}
	return s.communityRepo.CountLikes(ctx, postID)
}

// Unlike removes a like and returns the new count
func (s *CommunityService) Unlike(ctx context.Context, postID, userID uuid.UUID) (int, error) {
	if _, err := s.communityRepo.RemoveLike(ctx, postID, userID); err != nil {
		return 0, err
	}
	return s.communityRepo.CountLikes(ctx, postID)
}

// isInappropriate flags text that hits a moderation keyword AND reads as
// strongly negative. The sentiment check keeps ordinary venting ("I hate
// exams") from being blocked.
func isInappropriate(content string) bool {
	lower := strings.ToLower(content)
	for _, keyword := range moderationKeywords {
		if strings.Contains(lower, keyword) {
			s := sentiment.Analyze(content)
			return s.Label == sentiment.LabelNegative && s.Magnitude > 0.8
		}
	}
	return false
}
