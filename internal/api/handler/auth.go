package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/zenithwellness/zenith/internal/api/middleware"
	"github.com/zenithwellness/zenith/internal/api/response"
	"github.com/zenithwellness/zenith/internal/domain"
	"github.com/zenithwellness/zenith/internal/service"
)

var validate = validator.New()

// validationErrors converts validator output to a field -> message map
func validationErrors(err error) any {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	out := make(map[string]string)
	for _, e := range verrs {
		field := e.Field()
		switch e.Tag() {
		case "required":
			out[field] = "field is required"
		case "email":
			out[field] = "invalid email format"
		case "min":
			out[field] = "must be at least " + e.Param() + " characters"
		case "max":
			out[field] = "must be at most " + e.Param() + " characters"
		case "len":
			out[field] = "must be exactly " + e.Param() + " characters"
		case "oneof":
			out[field] = "must be one of: " + e.Param()
		default:
			out[field] = "validation failed on " + e.Tag()
		}
	}
	return out
}

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register handles user registration
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input domain.UserCreate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := validate.Struct(input); err != nil {
		response.BadRequest(w, validationErrors(err))
		return
	}

	user, err := h.authService.Register(r.Context(), input)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			response.Conflict(w, "email already registered")
			return
		}
		response.InternalError(w, "registration failed")
		return
	}

	response.Created(w, map[string]any{
		"id":                 user.ID,
		"email":              user.Email,
		"display_name":       user.DisplayName,
		"preferred_language": user.PreferredLanguage,
	})
}

// Login handles user login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input domain.UserLogin
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := validate.Struct(input); err != nil {
		response.BadRequest(w, validationErrors(err))
		return
	}

	tokens, err := h.authService.Login(r.Context(), input)
	if err != nil {
		response.Unauthorized(w, "invalid email or password")
		return
	}

	response.OK(w, tokens)
}

// Refresh handles token refresh
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var input struct {
		RefreshToken string `json:"refresh_token" validate:"required"`
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := validate.Struct(input); err != nil {
		response.BadRequest(w, validationErrors(err))
		return
	}

	tokens, err := h.authService.Refresh(r.Context(), input.RefreshToken)
	if err != nil {
		response.Unauthorized(w, "invalid refresh token")
		return
	}

	response.OK(w, tokens)
}

// Logout acknowledges a logout. Tokens are stateless so there is nothing to
// revoke server-side; the client drops its copy.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	response.OK(w, map[string]string{"message": "logged out"})
}

// Me returns the current authenticated user
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	user, err := h.authService.GetUserByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			response.Unauthorized(w, "user not found")
			return
		}
		response.InternalError(w, "failed to load profile")
		return
	}

	response.OK(w, user)
}

// UpdateProfile updates mutable profile fields
func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	var input domain.UserUpdate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := validate.Struct(input); err != nil {
		response.BadRequest(w, validationErrors(err))
		return
	}

	user, err := h.authService.UpdateProfile(r.Context(), userID, input)
	if err != nil {
		response.InternalError(w, "failed to update profile")
		return
	}

	response.OK(w, user)
}

// DeleteAccount removes the user and all owned data
func (h *AuthHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	if err := h.authService.DeleteAccount(r.Context(), userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			response.NotFound(w, "user not found")
			return
		}
		response.InternalError(w, "failed to delete account")
		return
	}

	response.NoContent(w)
}
