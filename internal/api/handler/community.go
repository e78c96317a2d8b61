package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/zenithwellness/zenith/internal/api/middleware"
	"github.com/zenithwellness/zenith/internal/api/response"
	"github.com/zenithwellness/zenith/internal/domain"
	"github.com/zenithwellness/zenith/internal/service"
)

// CommunityHandler handles community endpoints
type CommunityHandler struct {
	communityService *service.CommunityService
	authService      *service.AuthService
}

// NewCommunityHandler creates a new community handler
func NewCommunityHandler(communityService *service.CommunityService, authService *service.AuthService) *CommunityHandler {
	return &CommunityHandler{
		communityService: communityService,
		authService:      authService,
	}
}

func (h *CommunityHandler) currentUser(r *http.Request) (*domain.User, error) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		return nil, domain.ErrNotFound
	}
	return h.authService.GetUserByID(r.Context(), userID)
}

func parsePagination(r *http.Request) (limit, offset int) {
	limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ = strconv.Atoi(r.URL.Query().Get("offset"))
	return limit, offset
}

// ListPosts returns a page of active posts
func (h *CommunityHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	limit, offset := parsePagination(r)
	category := r.URL.Query().Get("category")

	posts, err := h.communityService.ListPosts(r.Context(), category, limit, offset)
	if err != nil {
		response.InternalError(w, "failed to load posts")
		return
	}

	response.OK(w, map[string]any{
		"posts": posts,
	})
}

// CreatePost publishes a new post
func (h *CommunityHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	user, err := h.currentUser(r)
	if err != nil {
		response.Unauthorized(w, "unauthorized")
		return
	}

	var input domain.PostCreate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := validate.Struct(input); err != nil {
		response.BadRequest(w, validationErrors(err))
		return
	}

	post, err := h.communityService.CreatePost(r.Context(), user, input)
	if err != nil {
		if errors.Is(err, service.ErrInappropriateContent) {
			response.UnprocessableEntity(w, "content does not meet community guidelines")
			return
		}
		response.InternalError(w, "failed to create post")
		return
	}

	response.Created(w, post)
}

// GetPost returns one post
func (h *CommunityHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	postID, err := uuid.Parse(chi.URLParam(r, "postID"))
	if err != nil {
		response.BadRequest(w, "invalid post ID")
		return
	}

	post, err := h.communityService.GetPost(r.Context(), postID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			response.NotFound(w, "post not found")
			return
		}
		response.InternalError(w, "failed to load post")
		return
	}

	response.OK(w, post)
}

// DeletePost soft-deletes the caller's own post
func (h *CommunityHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	postID, err := uuid.Parse(chi.URLParam(r, "postID"))
	if err != nil {
		response.BadRequest(w, "invalid post ID")
		return
	}

	if err := h.communityService.DeletePost(r.Context(), userID, postID); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			response.NotFound(w, "post not found")
		case errors.Is(err, service.ErrNotAuthor):
			response.Forbidden(w, "only the author can delete a post")
		default:
			response.InternalError(w, "failed to delete post")
		}
		return
	}

	response.NoContent(w)
}

// ListComments returns a post's comments oldest first
func (h *CommunityHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	postID, err := uuid.Parse(chi.URLParam(r, "postID"))
	if err != nil {
		response.BadRequest(w, "invalid post ID")
		return
	}

	limit, offset := parsePagination(r)

	comments, err := h.communityService.ListComments(r.Context(), postID, limit, offset)
	if err != nil {
		response.InternalError(w, "failed to load comments")
		return
	}

	response.OK(w, map[string]any{
		"comments": comments,
	})
}

// CreateComment adds a reply to a post
func (h *CommunityHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	user, err := h.currentUser(r)
	if err != nil {
		response.Unauthorized(w, "unauthorized")
		return
	}

	postID, err := uuid.Parse(chi.URLParam(r, "postID"))
	if err != nil {
		response.BadRequest(w, "invalid post ID")
		return
	}

	var input domain.CommentCreate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := validate.Struct(input); err != nil {
		response.BadRequest(w, validationErrors(err))
		return
	}

	comment, err := h.communityService.CreateComment(r.Context(), user, postID, input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			response.NotFound(w, "post not found")
		case errors.Is(err, service.ErrInappropriateContent):
			response.UnprocessableEntity(w, "content does not meet community guidelines")
		default:
			response.InternalError(w, "failed to create comment")
		}
		return
	}

	response.Created(w, comment)
}

// Like records a like on a post
func (h *CommunityHandler) Like(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	postID, err := uuid.Parse(chi.URLParam(r, "postID"))
	if err != nil {
		response.BadRequest(w, "invalid post ID")
		return
	}

	count, err := h.communityService.Like(r.Context(), postID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			response.NotFound(w, "post not found")
			return
		}
		response.InternalError(w, "failed to like post")
		return
	}

	response.OK(w, map[string]any{
		"like_count": count,
	})
}

// Unlike removes the caller's like from a post
func (h *CommunityHandler) Unlike(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	postID, err := uuid.Parse(chi.URLParam(r, "postID"))
	if err != nil {
		response.BadRequest(w, "invalid post ID")
		return
	}

	count, err := h.communityService.Unlike(r.Context(), postID, userID)
	if err != nil {
		response.InternalError(w, "failed to unlike post")
		return
	}

	response.OK(w, map[string]any{
		"like_count": count,
	})
}
