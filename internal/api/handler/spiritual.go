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

// SpiritualHandler handles spiritual content endpoints
type SpiritualHandler struct {
	spiritualService *service.SpiritualService
}

// NewSpiritualHandler creates a new spiritual handler
func NewSpiritualHandler(spiritualService *service.SpiritualService) *SpiritualHandler {
	return &SpiritualHandler{spiritualService: spiritualService}
}

// DailyQuote returns the quote of the day
func (h *SpiritualHandler) DailyQuote(w http.ResponseWriter, r *http.Request) {
	tradition := r.URL.Query().Get("tradition")
	response.OK(w, h.spiritualService.DailyQuote(r.Context(), tradition))
}

// Guidance generates guidance for a concern
func (h *SpiritualHandler) Guidance(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "authentication required")
		return
	}

	var req domain.GuidanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := validate.Struct(req); err != nil {
		response.BadRequest(w, validationErrors(err))
		return
	}

	response.OK(w, h.spiritualService.Guidance(r.Context(), userID, req))
}

// History returns the user's recent guidance requests
func (h *SpiritualHandler) History(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "authentication required")
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	entries, err := h.spiritualService.History(r.Context(), userID, limit)
	if err != nil {
		response.InternalError(w, "failed to load guidance history")
		return
	}

	response.OK(w, map[string]any{"history": entries})
}

// Affirmations returns affirmations for a focus area
func (h *SpiritualHandler) Affirmations(w http.ResponseWriter, r *http.Request) {
	focus := r.URL.Query().Get("focus")
	count, _ := strconv.Atoi(r.URL.Query().Get("count"))

	response.OK(w, map[string]any{
		"affirmations": h.spiritualService.Affirmations(focus, count),
	})
}

// Practices returns spiritual practices for a goal
func (h *SpiritualHandler) Practices(w http.ResponseWriter, r *http.Request) {
	goal := r.URL.Query().Get("goal")

	response.OK(w, map[string]any{
		"practices": h.spiritualService.Practices(goal),
	})
}
