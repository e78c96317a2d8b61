package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/zenithwellness/zenith/internal/api/middleware"
	"github.com/zenithwellness/zenith/internal/api/response"
	"github.com/zenithwellness/zenith/internal/domain"
	"github.com/zenithwellness/zenith/internal/service"
)

// MeditationHandler handles meditation endpoints
type MeditationHandler struct {
	meditationService *service.MeditationService
}

// NewMeditationHandler creates a new meditation handler
func NewMeditationHandler(meditationService *service.MeditationService) *MeditationHandler {
	return &MeditationHandler{meditationService: meditationService}
}

// Script generates a guided meditation script
func (h *MeditationHandler) Script(w http.ResponseWriter, r *http.Request) {
	var req domain.ScriptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := validate.Struct(req); err != nil {
		response.BadRequest(w, validationErrors(err))
		return
	}

	response.OK(w, h.meditationService.GenerateScript(r.Context(), req))
}

// LogSession records a completed or interrupted session
func (h *MeditationHandler) LogSession(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	var req domain.MeditationLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := validate.Struct(req); err != nil {
		response.BadRequest(w, validationErrors(err))
		return
	}

	session, err := h.meditationService.LogSession(r.Context(), userID, req)
	if err != nil {
		response.InternalError(w, "failed to log session")
		return
	}

	response.Created(w, session)
}

// Stats returns aggregate meditation statistics
func (h *MeditationHandler) Stats(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	stats, err := h.meditationService.GetStats(r.Context(), userID)
	if err != nil {
		response.InternalError(w, "failed to load stats")
		return
	}

	response.OK(w, stats)
}

// Sessions returns recent sessions newest first
func (h *MeditationHandler) Sessions(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	sessions, err := h.meditationService.ListRecent(r.Context(), userID, limit)
	if err != nil {
		response.InternalError(w, "failed to load sessions")
		return
	}

	response.OK(w, map[string]any{
		"sessions": sessions,
	})
}

// Breathing returns a breathing exercise by type
func (h *MeditationHandler) Breathing(w http.ResponseWriter, r *http.Request) {
	exerciseType := r.URL.Query().Get("type")
	response.OK(w, h.meditationService.Breathing(exerciseType))
}

// Guided returns the guided meditation catalog
func (h *MeditationHandler) Guided(w http.ResponseWriter, r *http.Request) {
	response.OK(w, map[string]any{
		"meditations": h.meditationService.Guided(),
	})
}
