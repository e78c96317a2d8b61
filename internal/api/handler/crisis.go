package handler

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/zenithwellness/zenith/internal/api/middleware"
	"github.com/zenithwellness/zenith/internal/api/response"
	"github.com/zenithwellness/zenith/internal/domain"
	"github.com/zenithwellness/zenith/internal/service"
)

// CrisisHandler handles crisis detection and support endpoints
type CrisisHandler struct {
	crisisService *service.CrisisService
}

// NewCrisisHandler creates a new crisis handler
func NewCrisisHandler(crisisService *service.CrisisService) *CrisisHandler {
	return &CrisisHandler{crisisService: crisisService}
}

// callerID returns the authenticated user's ID when present. Crisis
// endpoints accept anonymous callers.
func callerID(r *http.Request) *uuid.UUID {
	if userID, ok := middleware.GetUserID(r.Context()); ok {
		return &userID
	}
	return nil
}

// Check analyzes a message for crisis indicators
func (h *CrisisHandler) Check(w http.ResponseWriter, r *http.Request) {
	var req domain.CrisisCheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := validate.Struct(req); err != nil {
		response.BadRequest(w, validationErrors(err))
		return
	}

	response.OK(w, h.crisisService.Check(r.Context(), callerID(r), req.Message))
}

// Report stores a self-reported crisis
func (h *CrisisHandler) Report(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Message string `json:"message" validate:"required,max=4000"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := validate.Struct(req); err != nil {
		response.BadRequest(w, validationErrors(err))
		return
	}

	report, resources, err := h.crisisService.Report(r.Context(), callerID(r), req.Message)
	if err != nil {
		response.InternalError(w, "failed to submit report")
		return
	}

	response.Created(w, map[string]any{
		"report_id":         report.ID,
		"status":            report.Status,
		"support_resources": resources,
	})
}

// Resources serves the static support catalog
func (h *CrisisHandler) Resources(w http.ResponseWriter, r *http.Request) {
	response.OK(w, h.crisisService.Resources())
}
