// Package meditation holds the client-side countdown lifecycle. The timer
// is pure state: callers feed it the current time and act on the returned
// outcome. Each run submits at most one session.
package meditation

import (
	"errors"
	"time"
)

// ErrAlreadyRunning is returned when Start is called mid-run.
var ErrAlreadyRunning = errors.New("timer already running")

// Phase is the timer lifecycle state.
type Phase int

const (
	Idle Phase = iota
	Running
	Completed
	Stopped
)

// Outcome tells the caller what to do after a transition. A zero Outcome
// means nothing to submit.
type Outcome struct {
	Submit     bool
	Type       string // "completed" or "interrupted"
	Minutes    int
	PromptMood bool
}

// Timer counts down one meditation session.
type Timer struct {
	phase    Phase
	start    time.Time
	duration time.Duration
}

// NewTimer creates an idle timer.
func NewTimer() *Timer {
	return &Timer{}
}

// Phase returns the current lifecycle phase.
func (t *Timer) Phase() Phase {
	return t.phase
}

// Duration returns the configured session length.
func (t *Timer) Duration() time.Duration {
	return t.duration
}

// Start begins a run. Starting over a finished run resets; starting over a
// live run is an error.
func (t *Timer) Start(duration time.Duration, now time.Time) error {
	if t.phase == Running {
		return ErrAlreadyRunning
	}
	t.phase = Running
	t.start = now
	t.duration = duration
	return nil
}

// Remaining returns the time left, clamped at zero.
func (t *Timer) Remaining(now time.Time) time.Duration {
	if t.phase != Running {
		return 0
	}
	remaining := t.duration - now.Sub(t.start)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Tick advances the countdown. When it reaches zero the run completes,
// exactly once, yielding the full-length submission and a mood prompt.
func (t *Timer) Tick(now time.Time) Outcome {
	if t.phase != Running || t.Remaining(now) > 0 {
		return Outcome{}
	}
	t.phase = Completed
	return Outcome{
		Submit:     true,
		Type:       "completed",
		Minutes:    int(t.duration / time.Minute),
		PromptMood: true,
	}
}

// Stop ends the run early. Runs shorter than a minute submit nothing;
// longer ones submit an interrupted session with floored minutes.
func (t *Timer) Stop(now time.Time) Outcome {
	if t.phase != Running {
		return Outcome{}
	}
	t.phase = Stopped

	elapsed := now.Sub(t.start)
	minutes := int(elapsed / time.Minute)
	if minutes < 1 {
		return Outcome{}
	}
	return Outcome{
		Submit:  true,
		Type:    "interrupted",
		Minutes: minutes,
	}
}
