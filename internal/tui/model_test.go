package tui

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/zenithwellness/zenith/internal/domain"
	"github.com/zenithwellness/zenith/pkg/client"
	"github.com/zenithwellness/zenith/pkg/client/chat"
	"github.com/zenithwellness/zenith/pkg/client/meditation"
	"github.com/zenithwellness/zenith/pkg/client/session"
)

func newTestModel(t *testing.T, serverURL string, loggedIn bool) Model {
	t.Helper()
	store := session.NewStore(filepath.Join(t.TempDir(), "session.json"))
	if loggedIn {
		if err := store.Set(session.Session{
			Token: "tok",
			User:  &domain.User{ID: uuid.New(), Email: "asha@example.com"},
		}); err != nil {
			t.Fatal(err)
		}
	}

	api := client.New(serverURL, func() string { return store.Session().Token })
	m := New(api, store, []string{"end it all"})
	m.ready = true
	m.Viewport = viewport.New(80, 20)
	return m
}

func pressEnter(m Model) (Model, tea.Cmd) {
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return updated.(Model), cmd
}

func TestModel_GuestCannotSend(t *testing.T) {
	m := newTestModel(t, "http://localhost:0", false)
	m.Input.SetValue("hello")

	m, cmd := pressEnter(m)
	if cmd != nil {
		t.Error("expected no command for guest send")
	}
	if len(m.loop.Messages()) != 0 {
		t.Error("expected no message appended")
	}
	if m.status == "" {
		t.Error("expected a warning status")
	}
}

func TestModel_ChatRoundTrip(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"data":{"response":"I hear you.","language":"en"}}`))
	}))
	defer server.Close()

	m := newTestModel(t, server.URL, true)
	m.Input.SetValue("rough day")

	m, cmd := pressEnter(m)
	if cmd == nil {
		t.Fatal("expected a send command")
	}
	if m.loop.State() != chat.AwaitingResponse {
		t.Error("expected awaiting state")
	}
	if m.Input.Value() != "" {
		t.Error("expected input cleared")
	}

	updated, _ := m.Update(cmd())
	m = updated.(Model)

	messages := m.loop.Messages()
	if len(messages) != 2 {
		t.Fatalf("expected user + assistant messages, got %d", len(messages))
	}
	if messages[1].Content != "I hear you." {
		t.Errorf("unexpected reply %q", messages[1].Content)
	}
	if m.loop.State() != chat.Idle {
		t.Error("expected Idle after reply")
	}
}

func TestModel_UnauthorizedForcesLogout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"success":false,"error":"invalid or expired token"}`))
	}))
	defer server.Close()

	m := newTestModel(t, server.URL, true)
	m.Input.SetValue("hello")

	m, cmd := pressEnter(m)
	if cmd == nil {
		t.Fatal("expected a send command")
	}

	updated, _ := m.Update(cmd())
	m = updated.(Model)

	if !m.store.Session().Guest() {
		t.Error("expected session cleared on 401")
	}
	if m.loop.State() != chat.Idle {
		t.Error("expected Idle after failed send")
	}
	if len(m.loop.Messages()) != 1 {
		t.Error("expected optimistic message kept")
	}
}

func TestModel_MeditationCompletionFlow(t *testing.T) {
	var logged domain.MeditationLogRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/meditation/log":
			if err := json.NewDecoder(r.Body).Decode(&logged); err != nil {
				t.Errorf("decode log body: %v", err)
			}
			w.Write([]byte(`{"success":true,"data":{}}`))
		case "/api/v1/meditation/stats":
			w.Write([]byte(`{"success":true,"data":{"total_sessions":3,"total_minutes":30,"streak_days":2,"average_session_length":10}}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	m := newTestModel(t, server.URL, true)
	m.section = sectionMeditation

	// Starting prompts for the pre-session mood; 0 stands for 10.
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
	m = updated.(Model)
	if !m.moodBeforePrompt {
		t.Fatal("expected mood-before prompt on start")
	}
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'0'}})
	m = updated.(Model)
	if m.timer.Phase() != meditation.Running {
		t.Fatal("expected timer running after mood-before answer")
	}
	if m.moodBefore == nil || *m.moodBefore != 10 {
		t.Fatalf("expected mood-before 10, got %v", m.moodBefore)
	}

	start := time.Now()
	m.timer = meditation.NewTimer()
	if err := m.timer.Start(time.Minute, start); err != nil {
		t.Fatal(err)
	}

	updated2, _ := m.handleTick(start.Add(time.Minute))
	m = updated2.(Model)

	if m.moodPending == nil {
		t.Fatal("expected mood prompt after completion")
	}
	if m.timer.Phase() != meditation.Completed {
		t.Error("expected Completed phase")
	}

	// Rating moves on to the optional notes prompt.
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'8'}})
	m = updated.(Model)
	if !m.notesPrompt {
		t.Fatal("expected notes prompt after rating")
	}
	m.notesInput.SetValue("calm evening")

	updated, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)
	if m.moodPending != nil || m.notesPrompt {
		t.Error("expected prompts dismissed after submission")
	}
	if cmd == nil {
		t.Fatal("expected a log command")
	}

	msg, ok := cmd().(sessionLoggedMsg)
	if !ok || msg.err != nil {
		t.Fatalf("expected successful submission, got %+v", msg)
	}
	if logged.MoodBefore == nil || *logged.MoodBefore != 10 {
		t.Errorf("expected mood_before 10 sent, got %v", logged.MoodBefore)
	}
	if logged.MoodAfter == nil || *logged.MoodAfter != 8 {
		t.Errorf("expected mood_after 8 sent, got %v", logged.MoodAfter)
	}
	if logged.Notes != "calm evening" {
		t.Errorf("expected notes sent, got %q", logged.Notes)
	}

	// A saved session pulls fresh cumulative stats.
	updated, cmd = m.Update(msg)
	m = updated.(Model)
	if cmd == nil {
		t.Fatal("expected a stats fetch after a saved session")
	}
	statsResult, ok := cmd().(statsMsg)
	if !ok {
		t.Fatal("expected stats message")
	}
	updated, _ = m.Update(statsResult)
	m = updated.(Model)
	if m.stats == nil || m.stats.TotalSessions != 3 || m.stats.StreakDays != 2 {
		t.Errorf("expected fresh stats rendered, got %+v", m.stats)
	}
}

func TestModel_MeditationSkipMoodStillLogs(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"data":{}}`))
	}))
	defer server.Close()

	m := newTestModel(t, server.URL, true)
	m.section = sectionMeditation

	start := time.Now()
	if err := m.timer.Start(time.Minute, start); err != nil {
		t.Fatal(err)
	}
	updated, _ := m.handleTick(start.Add(time.Minute))
	m = updated.(Model)
	if m.moodPending == nil {
		t.Fatal("expected mood prompt after completion")
	}

	// Enter skips mood and notes but the session is still submitted.
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)
	if m.moodPending != nil {
		t.Error("expected mood prompt dismissed")
	}
	if cmd == nil {
		t.Fatal("expected a log command")
	}
	if msg, ok := cmd().(sessionLoggedMsg); !ok || msg.err != nil {
		t.Errorf("expected successful submission, got %+v", msg)
	}
}
