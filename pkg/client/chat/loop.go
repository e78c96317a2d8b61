// Package chat holds the client-side conversation state machine. It does no
// I/O: BeginSend yields an intent the caller turns into an API call, and
// CompleteSend/FailSend feed the outcome back in.
package chat

import (
	"errors"
	"strings"
	"time"

	"github.com/zenithwellness/zenith/internal/crisis"
	"github.com/zenithwellness/zenith/internal/domain"
)

// ErrGuest is returned when a guest tries to send a message.
var ErrGuest = errors.New("sign in to start chatting")

// ErrBusy is returned while a previous send is still in flight.
var ErrBusy = errors.New("still waiting for a reply")

// State is the loop's send state.
type State int

const (
	Idle State = iota
	AwaitingResponse
)

// Message is one entry in the conversation view.
type Message struct {
	Role      domain.MessageRole
	Content   string
	Sentiment *domain.Sentiment
	SentAt    time.Time
}

// Intent is what BeginSend hands the caller: the text to submit and the
// local crisis pre-read that decides whether /crisis/check runs first.
type Intent struct {
	Text            string
	CrisisSuspected bool
	MatchedPhrase   string
}

// Loop serializes sends and keeps the ordered, append-only message list.
type Loop struct {
	state          State
	messages       []Message
	crisisKeywords []string
	lastErr        error
}

// NewLoop creates a chat loop with the local crisis phrase list.
func NewLoop(crisisKeywords []string) *Loop {
	return &Loop{crisisKeywords: crisisKeywords}
}

// State returns the current send state.
func (l *Loop) State() State {
	return l.state
}

// Messages returns the conversation so far, oldest first.
func (l *Loop) Messages() []Message {
	return l.messages
}

// Err returns the last transient send failure, cleared on the next send.
func (l *Loop) Err() error {
	return l.lastErr
}

// Seed loads previously fetched history into the view. Only valid before
// the first send of a session.
func (l *Loop) Seed(history []domain.ChatMessage) {
	for _, m := range history {
		l.messages = append(l.messages, Message{
			Role:      m.Role,
			Content:   m.Content,
			Sentiment: m.Sentiment,
			SentAt:    m.CreatedAt,
		})
	}
}

// BeginSend starts one send. Whitespace-only input is a silent no-op and
// returns (nil, nil). Guests and overlapping sends are rejected with
// sentinel errors. On success the user message is already appended.
func (l *Loop) BeginSend(text string, guest bool, now time.Time) (*Intent, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, nil
	}
	if guest {
		return nil, ErrGuest
	}
	if l.state == AwaitingResponse {
		return nil, ErrBusy
	}

	l.lastErr = nil
	l.state = AwaitingResponse
	l.messages = append(l.messages, Message{
		Role:    domain.RoleUser,
		Content: trimmed,
		SentAt:  now,
	})

	phrase, hit := crisis.MatchKeyword(trimmed, l.crisisKeywords)
	return &Intent{
		Text:            trimmed,
		CrisisSuspected: hit,
		MatchedPhrase:   phrase,
	}, nil
}

// CompleteSend records the assistant's reply and returns to Idle.
func (l *Loop) CompleteSend(reply string, sentiment *domain.Sentiment, now time.Time) {
	if l.state != AwaitingResponse {
		return
	}
	l.messages = append(l.messages, Message{
		Role:      domain.RoleAssistant,
		Content:   reply,
		Sentiment: sentiment,
		SentAt:    now,
	})
	l.state = Idle
}

// FailSend records a transient failure and returns to Idle. The optimistic
// user message stays in the list.
func (l *Loop) FailSend(err error) {
	if l.state != AwaitingResponse {
		return
	}
	l.lastErr = err
	l.state = Idle
}
