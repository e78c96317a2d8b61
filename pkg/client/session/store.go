// Package session persists the client's login state and input drafts to a
// JSON file. A file that cannot be read or parsed is treated as an empty
// session.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/zenithwellness/zenith/internal/domain"
)

// DraftTTL is how long an unsent draft survives.
const DraftTTL = 24 * time.Hour

// Session is the client's durable state.
type Session struct {
	Token    string       `json:"token,omitempty"`
	User     *domain.User `json:"user,omitempty"`
	Language string       `json:"language,omitempty"`
	Section  string       `json:"section,omitempty"`
}

// Guest reports whether there is no logged-in user.
func (s Session) Guest() bool {
	return s.Token == "" || s.User == nil
}

type draft struct {
	Value     string    `json:"value"`
	Timestamp time.Time `json:"timestamp"`
}

type fileState struct {
	Session Session          `json:"session"`
	Drafts  map[string]draft `json:"drafts,omitempty"`
}

// Store reads and writes the session file.
type Store struct {
	path  string
	state fileState
}

// NewStore creates a store backed by the given file path.
func NewStore(path string) *Store {
	return &Store{
		path:  path,
		state: fileState{Drafts: make(map[string]draft)},
	}
}

// DefaultPath returns the session file location under the user config dir.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".zenith-session.json"
	}
	return filepath.Join(dir, "zenith", "session.json")
}

// Restore loads state from disk. Missing or corrupt files yield an empty
// session, never an error.
func (s *Store) Restore() Session {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return s.state.Session
	}

	var state fileState
	if err := json.Unmarshal(data, &state); err != nil {
		return s.state.Session
	}

	// Token and user travel together; half a login is no login.
	if (state.Session.Token == "") != (state.Session.User == nil) {
		state.Session.Token = ""
		state.Session.User = nil
	}

	if state.Drafts == nil {
		state.Drafts = make(map[string]draft)
	}
	s.state = state
	return s.state.Session
}

// Set updates the session and persists immediately.
func (s *Store) Set(session Session) error {
	s.state.Session = session
	return s.flush()
}

// Session returns the in-memory session.
func (s *Store) Session() Session {
	return s.state.Session
}

// Clear wipes the session, token, user and language alike, but keeps drafts.
func (s *Store) Clear() error {
	s.state.Session = Session{}
	return s.flush()
}

// SaveDraft stores unsent input under an id.
func (s *Store) SaveDraft(id, value string) error {
	if value == "" {
		delete(s.state.Drafts, id)
	} else {
		s.state.Drafts[id] = draft{Value: value, Timestamp: time.Now()}
	}
	return s.flush()
}

// LoadDraft returns a stored draft. Entries older than DraftTTL are purged
// and reported as absent.
func (s *Store) LoadDraft(id string) (string, bool) {
	d, ok := s.state.Drafts[id]
	if !ok {
		return "", false
	}
	if time.Since(d.Timestamp) > DraftTTL {
		delete(s.state.Drafts, id)
		s.flush()
		return "", false
	}
	return d.Value, true
}

func (s *Store) flush() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create session dir: %w", err)
	}

	data, err := json.MarshalIndent(s.state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}
	return nil
}
