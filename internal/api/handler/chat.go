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

// ChatHandler handles chat endpoints
type ChatHandler struct {
	chatService *service.ChatService
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatService *service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// Send handles one chat turn
func (h *ChatHandler) Send(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	var req domain.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := validate.Struct(req); err != nil {
		response.BadRequest(w, validationErrors(err))
		return
	}

	// Fall back to the token's preferred language when none was sent.
	if req.Language == "" {
		if language, ok := middleware.GetLanguage(r.Context()); ok {
			req.Language = language
		}
	}

	resp, err := h.chatService.SendMessage(r.Context(), userID, req)
	if err != nil {
		response.InternalError(w, "failed to process message")
		return
	}

	response.OK(w, resp)
}

// History returns recent messages oldest first
func (h *ChatHandler) History(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	history, err := h.chatService.GetHistory(r.Context(), userID, limit)
	if err != nil {
		response.InternalError(w, "failed to load history")
		return
	}

	response.OK(w, history)
}

// DeleteMessage removes a single message owned by the caller
func (h *ChatHandler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	messageID, err := uuid.Parse(chi.URLParam(r, "messageID"))
	if err != nil {
		response.BadRequest(w, "invalid message ID")
		return
	}

	if err := h.chatService.DeleteMessage(r.Context(), userID, messageID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			response.NotFound(w, "message not found")
			return
		}
		response.InternalError(w, "failed to delete message")
		return
	}

	response.NoContent(w)
}

// ClearHistory deletes all of the caller's messages
func (h *ChatHandler) ClearHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	deleted, err := h.chatService.ClearHistory(r.Context(), userID)
	if err != nil {
		response.InternalError(w, "failed to clear history")
		return
	}

	response.OK(w, map[string]any{
		"deleted": deleted,
	})
}

// Suggestions returns conversation starters
func (h *ChatHandler) Suggestions(w http.ResponseWriter, r *http.Request) {
	response.OK(w, map[string]any{
		"suggestions": h.chatService.GetSuggestions(),
	})
}
