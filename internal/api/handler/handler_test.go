package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/zenithwellness/zenith/internal/ai"
	"github.com/zenithwellness/zenith/internal/api/handler"
	"github.com/zenithwellness/zenith/internal/api/middleware"
	"github.com/zenithwellness/zenith/internal/crisis"
	"github.com/zenithwellness/zenith/internal/domain"
	"github.com/zenithwellness/zenith/internal/security"
	"github.com/zenithwellness/zenith/internal/service"
)

// Helper to make JSON request
func makeJSONRequest(method, path string, body any) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

// Helper to decode the response envelope
func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var response map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return response
}

func TestHealthCheck(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	rec := httptest.NewRecorder()

	handler.HealthCheck(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	response := decodeEnvelope(t, rec)
	if response["success"] != true {
		t.Error("expected success to be true")
	}

	data, ok := response["data"].(map[string]any)
	if !ok {
		t.Fatal("expected data to be a map")
	}
	if data["status"] != "ok" {
		t.Errorf("expected status 'ok', got %v", data["status"])
	}
}

func TestChatHandler_Send_Unauthorized(t *testing.T) {
	h := handler.NewChatHandler(service.NewChatService(nil, ai.NewRouter("gemini"), nil, 5, nil))

	req := makeJSONRequest(http.MethodPost, "/api/v1/chat/message", map[string]string{"message": "hello"})
	rec := httptest.NewRecorder()

	h.Send(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rec.Code)
	}
}

func TestChatHandler_Suggestions(t *testing.T) {
	h := handler.NewChatHandler(service.NewChatService(nil, ai.NewRouter("gemini"), nil, 5, nil))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/chat/suggestions", nil)
	rec := httptest.NewRecorder()

	h.Suggestions(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	data := decodeEnvelope(t, rec)["data"].(map[string]any)
	suggestions, ok := data["suggestions"].([]any)
	if !ok || len(suggestions) == 0 {
		t.Error("expected non-empty suggestions")
	}
}

func TestCrisisHandler_Check(t *testing.T) {
	encryptor, _ := security.NewEncryptor([]byte("0123456789abcdef0123456789abcdef"))
	detector := crisis.NewDetector([]string{"end it all"}, nil)
	h := handler.NewCrisisHandler(service.NewCrisisService(detector, &noopCrisisRepo{}, encryptor, 0.7))

	t.Run("crisis message", func(t *testing.T) {
		req := makeJSONRequest(http.MethodPost, "/api/v1/crisis/check", map[string]string{
			"message": "I want to end it all",
		})
		rec := httptest.NewRecorder()

		h.Check(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
		}

		data := decodeEnvelope(t, rec)["data"].(map[string]any)
		if data["is_crisis"] != true {
			t.Error("expected is_crisis to be true")
		}
		if _, ok := data["emergency_contacts"].([]any); !ok {
			t.Error("expected emergency_contacts in response")
		}
	})

	t.Run("empty message rejected", func(t *testing.T) {
		req := makeJSONRequest(http.MethodPost, "/api/v1/crisis/check", map[string]string{})
		rec := httptest.NewRecorder()

		h.Check(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
		}
	})
}

func TestCrisisHandler_Resources(t *testing.T) {
	encryptor, _ := security.NewEncryptor([]byte("0123456789abcdef0123456789abcdef"))
	detector := crisis.NewDetector(nil, nil)
	h := handler.NewCrisisHandler(service.NewCrisisService(detector, &noopCrisisRepo{}, encryptor, 0.7))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/crisis/resources", nil)
	rec := httptest.NewRecorder()

	h.Resources(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	data := decodeEnvelope(t, rec)["data"].(map[string]any)
	if _, ok := data["helplines"].([]any); !ok {
		t.Error("expected helplines in response")
	}
}

func TestMeditationHandler_Catalogs(t *testing.T) {
	h := handler.NewMeditationHandler(service.NewMeditationService(nil, ai.NewRouter("gemini")))

	t.Run("breathing", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/meditation/breathing?type=box", nil)
		rec := httptest.NewRecorder()

		h.Breathing(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
		}

		data := decodeEnvelope(t, rec)["data"].(map[string]any)
		if data["name"] == "" {
			t.Error("expected a named exercise")
		}
	})

	t.Run("guided", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/meditation/guided", nil)
		rec := httptest.NewRecorder()

		h.Guided(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
		}

		data := decodeEnvelope(t, rec)["data"].(map[string]any)
		meditations, ok := data["meditations"].([]any)
		if !ok || len(meditations) == 0 {
			t.Error("expected non-empty meditation catalog")
		}
	})

	t.Run("script falls back without provider", func(t *testing.T) {
		req := makeJSONRequest(http.MethodPost, "/api/v1/meditation/script", map[string]any{
			"duration": 5,
			"focus":    "sleep",
		})
		rec := httptest.NewRecorder()

		h.Script(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
		}

		data := decodeEnvelope(t, rec)["data"].(map[string]any)
		if data["script"] == "" {
			t.Error("expected a non-empty script")
		}
	})
}

func TestSpiritualHandler_Affirmations(t *testing.T) {
	h := handler.NewSpiritualHandler(service.NewSpiritualService(ai.NewRouter("gemini"), nil, nil))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/spiritual/affirmations?focus=anxiety&count=3", nil)
	rec := httptest.NewRecorder()

	h.Affirmations(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	data := decodeEnvelope(t, rec)["data"].(map[string]any)
	affirmations, ok := data["affirmations"].([]any)
	if !ok || len(affirmations) != 3 {
		t.Errorf("expected 3 affirmations, got %v", data["affirmations"])
	}
}

func TestAuthMiddleware(t *testing.T) {
	manager := security.NewJWTManager("test-secret-key-32-chars-long!!!", 15*time.Minute, 7*24*time.Hour)
	authMiddleware := middleware.NewAuthMiddleware(manager)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.GetUserID(r.Context()); !ok {
			t.Error("expected user ID in context")
		}
		w.WriteHeader(http.StatusOK)
	})

	t.Run("valid token", func(t *testing.T) {
		token, err := manager.GenerateAccessToken(uuid.New(), "test@example.com", "Test", "en")
		if err != nil {
			t.Fatalf("GenerateAccessToken: %v", err)
		}

		req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		authMiddleware.Authenticate(next).ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
		}
	})

	t.Run("missing header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
		rec := httptest.NewRecorder()

		authMiddleware.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("handler should not be called")
		})).ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rec.Code)
		}
	})

	t.Run("garbage token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		rec := httptest.NewRecorder()

		authMiddleware.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("handler should not be called")
		})).ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rec.Code)
		}
	})
}

// noopCrisisRepo discards alerts and reports. Handler tests only exercise
// the HTTP surface.
type noopCrisisRepo struct{}

func (r *noopCrisisRepo) CreateAlert(ctx context.Context, alert *domain.CrisisAlert) error {
	return nil
}

func (r *noopCrisisRepo) CreateReport(ctx context.Context, report *domain.CrisisReport) error {
	return nil
}
