// Package tui is the terminal client. All conversation, alert and timer
// state lives in the pure pkg/client packages; this model only translates
// Bubble Tea messages into their transitions and renders the result.
package tui

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zenithwellness/zenith/internal/domain"
	"github.com/zenithwellness/zenith/pkg/client"
	"github.com/zenithwellness/zenith/pkg/client/chat"
	"github.com/zenithwellness/zenith/pkg/client/meditation"
	"github.com/zenithwellness/zenith/pkg/client/session"
)

type section int

const (
	sectionChat section = iota
	sectionMeditation
)

const (
	chatDraftID     = "chat"
	defaultSit      = 10 * time.Minute
	tickEvery       = time.Second
	crisisThreshold = 0.7
	alertWindow     = 30 * time.Second
)

type chatReplyMsg struct {
	resp *domain.ChatResponse
}

type chatErrMsg struct {
	err error
}

type crisisCheckMsg struct {
	resp *domain.CrisisCheckResponse
}

type sessionLoggedMsg struct {
	err error
}

type statsMsg struct {
	stats *domain.MeditationStats
}

type tickMsg time.Time

// Model is the Bubble Tea model for the Zenith terminal client.
type Model struct {
	// Input is the chat text input. Exported for test access.
	Input textinput.Model
	// Viewport is the scrollable chat area. Exported for test access.
	Viewport viewport.Model

	api   *client.Client
	store *session.Store
	loop  *chat.Loop
	timer *meditation.Timer
	alert *client.Alert

	progress progress.Model
	section  section
	ready    bool
	width    int

	// moodPending holds a finished run's submission while the mood and
	// notes prompts are up.
	moodPending *meditation.Outcome

	notesInput       textinput.Model
	moodBeforePrompt bool
	notesPrompt      bool
	moodBefore       *int
	moodAfter        *int
	stats            *domain.MeditationStats

	status string
}

// New creates the TUI model. crisisKeywords feeds the local pre-filter.
func New(api *client.Client, store *session.Store, crisisKeywords []string) Model {
	ti := textinput.New()
	ti.Placeholder = "Share what's on your mind..."
	ti.Prompt = "> "
	ti.CharLimit = 4000
	ti.Focus()

	if draft, ok := store.LoadDraft(chatDraftID); ok {
		ti.SetValue(draft)
	}

	notes := textinput.New()
	notes.Placeholder = "Anything you want to remember about this sit?"
	notes.Prompt = "> "
	notes.CharLimit = 2000

	return Model{
		Input:      ti,
		notesInput: notes,
		api:        api,
		store:      store,
		loop:       chat.NewLoop(crisisKeywords),
		timer:      meditation.NewTimer(),
		alert:      client.NewAlert(crisisThreshold, alertWindow),
		progress:   progress.New(progress.WithDefaultGradient()),
	}
}

// Loop exposes the chat state for tests.
func (m Model) Loop() *chat.Loop { return m.loop }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tick())
}

func tick() tea.Cmd {
	return tea.Tick(tickEvery, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg), nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tickMsg:
		return m.handleTick(time.Time(msg))

	case chatReplyMsg:
		m.loop.CompleteSend(msg.resp.Response, msg.resp.Sentiment, time.Now())
		if msg.resp.Crisis != nil {
			m.alert.Observe(*msg.resp.Crisis, time.Now())
		}
		m.refreshChat()
		return m, nil

	case chatErrMsg:
		m.loop.FailSend(msg.err)
		var apiErr *client.APIError
		if errors.As(msg.err, &apiErr) && apiErr.Status == http.StatusUnauthorized {
			// Session expired: forced logout.
			m.store.Clear()
			m.status = "Session expired, please log in again"
		}
		m.refreshChat()
		return m, nil

	case crisisCheckMsg:
		m.alert.Observe(msg.resp.CrisisDetection, time.Now())
		return m, nil

	case sessionLoggedMsg:
		if msg.err != nil {
			m.status = "Could not save your session, it still counts to you"
			return m, nil
		}
		m.status = "Session saved"
		return m, m.fetchStats()

	case statsMsg:
		m.stats = msg.stats
		return m, nil
	}

	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	return m, cmd
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) Model {
	m.width = msg.Width
	vpHeight := msg.Height - 6
	if vpHeight < 1 {
		vpHeight = 1
	}

	if !m.ready {
		m.Viewport = viewport.New(msg.Width, vpHeight)
		m.ready = true
	} else {
		m.Viewport.Width = msg.Width
		m.Viewport.Height = vpHeight
	}
	m.Input.Width = msg.Width - 4
	m.notesInput.Width = msg.Width - 4
	m.progress.Width = msg.Width - 10
	m.refreshChat()
	return m
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.store.SaveDraft(chatDraftID, m.Input.Value())
		return m, tea.Quit

	case tea.KeyEsc:
		if m.alert.Visible(time.Now()) {
			m.alert.Close()
			return m, nil
		}
		return m, nil

	case tea.KeyTab:
		if m.section == sectionChat {
			m.section = sectionMeditation
		} else {
			m.section = sectionChat
		}
		return m, nil
	}

	switch m.section {
	case sectionChat:
		return m.handleChatKey(msg)
	case sectionMeditation:
		return m.handleMeditationKey(msg)
	}
	return m, nil
}

func (m Model) handleChatKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEnter {
		intent, err := m.loop.BeginSend(m.Input.Value(), m.store.Session().Guest(), time.Now())
		if err != nil {
			m.status = err.Error()
			return m, nil
		}
		if intent == nil {
			return m, nil
		}

		m.status = ""
		m.Input.SetValue("")
		m.store.SaveDraft(chatDraftID, "")
		m.refreshChat()

		cmds := []tea.Cmd{m.sendMessage(intent.Text)}
		if intent.CrisisSuspected {
			cmds = append(cmds, m.checkCrisis(intent.Text))
		}
		return m, tea.Batch(cmds...)
	}

	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)
	return m, cmd
}

func (m Model) handleMeditationKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.notesPrompt {
		return m.handleNotesKey(msg)
	}
	if m.moodPending != nil {
		return m.handleMoodKey(msg)
	}
	if m.moodBeforePrompt {
		return m.handleMoodBeforeKey(msg)
	}

	switch msg.String() {
	case "s":
		if m.timer.Phase() != meditation.Running {
			m.moodBeforePrompt = true
			m.status = ""
		}
		return m, nil
	case "x":
		outcome := m.timer.Stop(time.Now())
		moodBefore := m.moodBefore
		m.moodBefore = nil
		if outcome.Submit {
			return m, m.logSession(outcome, moodBefore, nil, "")
		}
		return m, nil
	}
	return m, nil
}

// parseMoodKey maps a keypress onto the 1-10 mood scale: digits 1-9 are
// taken literally, 0 stands in for 10.
func parseMoodKey(msg tea.KeyMsg) (int, bool) {
	s := msg.String()
	if len(s) != 1 || s[0] < '0' || s[0] > '9' {
		return 0, false
	}
	if s[0] == '0' {
		return 10, true
	}
	return int(s[0] - '0'), true
}

// handleMoodBeforeKey reads the pre-session mood and starts the countdown.
func (m Model) handleMoodBeforeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if mood, ok := parseMoodKey(msg); ok {
		m.moodBefore = &mood
	} else if msg.Type != tea.KeyEnter {
		return m, nil
	}
	m.moodBeforePrompt = false
	m.timer.Start(defaultSit, time.Now())
	return m, nil
}

// handleMoodKey reads the post-session mood (enter skips straight to the
// submission) and moves on to the optional notes prompt.
func (m Model) handleMoodKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if mood, ok := parseMoodKey(msg); ok {
		m.moodAfter = &mood
		m.notesPrompt = true
		m.notesInput.Focus()
		return m, textinput.Blink
	}
	if msg.Type == tea.KeyEnter {
		cmd := m.submitSession()
		return m, cmd
	}
	return m, nil
}

// handleNotesKey collects optional notes; enter fires the submission.
func (m Model) handleNotesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEnter {
		cmd := m.submitSession()
		return m, cmd
	}
	var cmd tea.Cmd
	m.notesInput, cmd = m.notesInput.Update(msg)
	return m, cmd
}

// submitSession fires the pending log exactly once and resets the prompts.
func (m *Model) submitSession() tea.Cmd {
	if m.moodPending == nil {
		return nil
	}
	outcome := *m.moodPending
	moodBefore, moodAfter := m.moodBefore, m.moodAfter
	notes := strings.TrimSpace(m.notesInput.Value())

	m.moodPending = nil
	m.moodBefore = nil
	m.moodAfter = nil
	m.notesPrompt = false
	m.notesInput.SetValue("")
	m.notesInput.Blur()

	return m.logSession(outcome, moodBefore, moodAfter, notes)
}

func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	outcome := m.timer.Tick(now)
	if outcome.Submit && outcome.PromptMood {
		m.moodPending = &outcome
	}
	// Ticking also ages out the crisis banner via Visible() in the view.
	return m, tick()
}

func (m *Model) refreshChat() {
	if !m.ready {
		return
	}
	m.Viewport.SetContent(m.renderMessages())
	m.Viewport.GotoBottom()
}

func (m Model) sendMessage(text string) tea.Cmd {
	return func() tea.Msg {
		var resp domain.ChatResponse
		err := m.api.Call(context.Background(), http.MethodPost, "/api/v1/chat/message",
			domain.ChatRequest{Message: text, Language: m.store.Session().Language}, &resp)
		if err != nil {
			return chatErrMsg{err: err}
		}
		return chatReplyMsg{resp: &resp}
	}
}

func (m Model) checkCrisis(text string) tea.Cmd {
	return func() tea.Msg {
		var resp domain.CrisisCheckResponse
		err := m.api.Call(context.Background(), http.MethodPost, "/api/v1/crisis/check",
			domain.CrisisCheckRequest{Message: text}, &resp)
		if err != nil {
			// The chat path surfaces its own errors; the check is best effort.
			return nil
		}
		return crisisCheckMsg{resp: &resp}
	}
}

func (m Model) logSession(outcome meditation.Outcome, moodBefore, moodAfter *int, notes string) tea.Cmd {
	return func() tea.Msg {
		body := domain.MeditationLogRequest{
			Duration:   outcome.Minutes,
			Type:       outcome.Type,
			MoodBefore: moodBefore,
			MoodAfter:  moodAfter,
			Notes:      notes,
		}
		err := m.api.Call(context.Background(), http.MethodPost, "/api/v1/meditation/log", body, nil)
		return sessionLoggedMsg{err: err}
	}
}

func (m Model) fetchStats() tea.Cmd {
	return func() tea.Msg {
		var stats domain.MeditationStats
		err := m.api.Call(context.Background(), http.MethodGet, "/api/v1/meditation/stats", nil, &stats)
		if err != nil {
			// The log already succeeded; stale stats are fine.
			return nil
		}
		return statsMsg{stats: &stats}
	}
}

// SeedHistory loads fetched chat history into the conversation view.
func (m *Model) SeedHistory(history []domain.ChatMessage) {
	m.loop.Seed(history)
	m.refreshChat()
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
