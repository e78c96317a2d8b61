package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// PostStatus marks soft deletion
type PostStatus string

const (
	PostActive  PostStatus = "active"
	PostDeleted PostStatus = "deleted"
)

// Post is a community post
type Post struct {
	ID            uuid.UUID  `json:"id"`
	AuthorID      *uuid.UUID `json:"author_id,omitempty"` // nil when posted anonymously
	AuthorName    string     `json:"author_name"`
	Title         string     `json:"title"`
	Content       string     `json:"content"`
	Category      string     `json:"category"`
	Likes         int        `json:"likes"`
	CommentsCount int        `json:"comments_count"`
	Status        PostStatus `json:"-"`
	CreatedAt     time.Time  `json:"created_at"`
}

// PostCreate is the post creation payload
type PostCreate struct {
	Title     string `json:"title" validate:"required,min=1,max=200"`
	Content   string `json:"content" validate:"required,min=1,max=5000"`
	Category  string `json:"category" validate:"omitempty,max=50"`
	Anonymous bool   `json:"anonymous"`
}

// Comment is a reply on a post
type Comment struct {
	ID         uuid.UUID  `json:"id"`
	PostID     uuid.UUID  `json:"post_id"`
	AuthorID   *uuid.UUID `json:"author_id,omitempty"`
	AuthorName string     `json:"author_name"`
	Content    string     `json:"content"`
	Likes      int        `json:"likes"`
	CreatedAt  time.Time  `json:"created_at"`
}

// CommentCreate is the comment creation payload
type CommentCreate struct {
	Content   string `json:"content" validate:"required,min=1,max=1000"`
	Anonymous bool   `json:"anonymous"`
}

// CommunityRepository defines the interface for posts, comments and likes
type CommunityRepository interface {
	CreatePost(ctx context.Context, post *Post) error
	GetPost(ctx context.Context, id uuid.UUID) (*Post, error)
	ListPosts(ctx context.Context, category string, limit, offset int) ([]Post, error)
	UpdatePostStatus(ctx context.Context, id uuid.UUID, status PostStatus) error

	CreateComment(ctx context.Context, comment *Comment) error
	ListComments(ctx context.Context, postID uuid.UUID, limit, offset int) ([]Comment, error)

	// AddLike reports false when the user already liked the post.
	AddLike(ctx context.Context, postID, userID uuid.UUID) (bool, error)
	// RemoveLike reports false when no like existed.
	RemoveLike(ctx context.Context, postID, userID uuid.UUID) (bool, error)
	CountLikes(ctx context.Context, postID uuid.UUID) (int, error)
}
