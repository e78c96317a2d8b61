package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/zenithwellness/zenith/internal/domain"
)

// CommunityRepository implements domain.CommunityRepository
type CommunityRepository struct {
	pool *pgxpool.Pool
}

// NewCommunityRepository creates a new community repository
func NewCommunityRepository(pool *pgxpool.Pool) *CommunityRepository {
	return &CommunityRepository{pool: pool}
}

func (r *CommunityRepository) CreatePost(ctx context.Context, post *domain.Post) error {
	query := `
		INSERT INTO community_posts (id, author_id, author_name, title, content, category, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.pool.Exec(ctx, query,
		post.ID,
		post.AuthorID,
		post.AuthorName,
		post.Title,
		post.Content,
		post.Category,
		post.Status,
		post.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}
	return nil
}

func (r *CommunityRepository) GetPost(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	query := `
		SELECT p.id, p.author_id, p.author_name, p.title, p.content, p.category, p.status, p.created_at,
		       (SELECT COUNT(*) FROM post_likes l WHERE l.post_id = p.id),
		       (SELECT COUNT(*) FROM post_comments c WHERE c.post_id = p.id)
		FROM community_posts p
		WHERE p.id = $1 AND p.status = 'active'
	`
	var p domain.Post
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&p.ID,
		&p.AuthorID,
		&p.AuthorName,
		&p.Title,
		&p.Content,
		&p.Category,
		&p.Status,
		&p.CreatedAt,
		&p.Likes,
		&p.CommentsCount,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	return &p, nil
}

func (r *CommunityRepository) ListPosts(ctx context.Context, category string, limit, offset int) ([]domain.Post, error) {
	query := `
		SELECT p.id, p.author_id, p.author_name, p.title, p.content, p.category, p.status, p.created_at,
		       (SELECT COUNT(*) FROM post_likes l WHERE l.post_id = p.id),
		       (SELECT COUNT(*) FROM post_comments c WHERE c.post_id = p.id)
		FROM community_posts p
		WHERE p.status = 'active' AND ($1 = '' OR p.category = $1)
		ORDER BY p.created_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.pool.Query(ctx, query, category, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	var posts []domain.Post
	for rows.Next() {
		var p domain.Post
		if err := rows.Scan(
			&p.ID,
			&p.AuthorID,
			&p.AuthorName,
			&p.Title,
			&p.Content,
			&p.Category,
			&p.Status,
			&p.CreatedAt,
			&p.Likes,
			&p.CommentsCount,
		); err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, p)
	}
	return posts, nil
}

func (r *CommunityRepository) UpdatePostStatus(ctx context.Context, id uuid.UUID, status domain.PostStatus) error {
	query := `UPDATE community_posts SET status = $1 WHERE id = $2`
	tag, err := r.pool.Exec(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("failed to update post status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *CommunityRepository) CreateComment(ctx context.Context, comment *domain.Comment) error {
	query := `
		INSERT INTO post_comments (id, post_id, author_id, author_name, content, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.pool.Exec(ctx, query,
		comment.ID,
		comment.PostID,
		comment.AuthorID,
		comment.AuthorName,
		comment.Content,
		comment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	return nil
}

func (r *CommunityRepository) ListComments(ctx context.Context, postID uuid.UUID, limit, offset int) ([]domain.Comment, error) {
	query := `
		SELECT id, post_id, author_id, author_name, content, created_at
		FROM post_comments
		WHERE post_id = $1
		ORDER BY created_at ASC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.pool.Query(ctx, query, postID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	var comments []domain.Comment
	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(
			&c.ID,
			&c.PostID,
			&c.AuthorID,
			&c.AuthorName,
			&c.Content,
			&c.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	return comments, nil
}

func (r *CommunityRepository) AddLike(ctx context.Context, postID, userID uuid.UUID) (bool, error) {
	query := `
		INSERT INTO post_likes (post_id, user_id, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (post_id, user_id) DO NOTHING
	`
	tag, err := r.pool.Exec(ctx, query, postID, userID)
	if err != nil {
		return false, fmt.Errorf("failed to add like: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *CommunityRepository) RemoveLike(ctx context.Context, postID, userID uuid.UUID) (bool, error) {
	query := `DELETE FROM post_likes WHERE post_id = $1 AND user_id = $2`
	tag, err := r.pool.Exec(ctx, query, postID, userID)
	if err != nil {
		return false, fmt.Errorf("failed to remove like: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *CommunityRepository) CountLikes(ctx context.Context, postID uuid.UUID) (int, error) {
	query := `SELECT COUNT(*) FROM post_likes WHERE post_id = $1`
	var count int
	if err := r.pool.QueryRow(ctx, query, postID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count likes: %w", err)
	}
	return count, nil
}
