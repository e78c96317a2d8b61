package meditation_test

import (
	"errors"
	"testing"
	"time"

	"github.com/zenithwellness/zenith/pkg/client/meditation"
)

var start = time.Date(2026, 8, 30, 7, 0, 0, 0, time.UTC)

func TestTimer_Completion(t *testing.T) {
	timer := meditation.NewTimer()
	if err := timer.Start(10*time.Minute, start); err != nil {
		t.Fatalf("Start: %v", err)
	}

	if out := timer.Tick(start.Add(5 * time.Minute)); out.Submit {
		t.Error("expected no submission mid-run")
	}
	if remaining := timer.Remaining(start.Add(5 * time.Minute)); remaining != 5*time.Minute {
		t.Errorf("expected 5m remaining, got %v", remaining)
	}

	out := timer.Tick(start.Add(10 * time.Minute))
	if !out.Submit || out.Type != "completed" || out.Minutes != 10 {
		t.Fatalf("expected completed submission, got %+v", out)
	}
	if !out.PromptMood {
		t.Error("expected mood prompt on completion")
	}
	if timer.Phase() != meditation.Completed {
		t.Error("expected Completed phase")
	}

	// Completion fires once.
	if out := timer.Tick(start.Add(11 * time.Minute)); out.Submit {
		t.Error("expected no second submission")
	}
}

func TestTimer_StopFloorsMinutes(t *testing.T) {
	t.Run("90 seconds submits one interrupted minute", func(t *testing.T) {
		timer := meditation.NewTimer()
		if err := timer.Start(10*time.Minute, start); err != nil {
			t.Fatal(err)
		}

		out := timer.Stop(start.Add(90 * time.Second))
		if !out.Submit || out.Type != "interrupted" || out.Minutes != 1 {
			t.Errorf("expected one interrupted minute, got %+v", out)
		}
		if out.PromptMood {
			t.Error("expected no mood prompt on early stop")
		}
		if timer.Phase() != meditation.Stopped {
			t.Error("expected Stopped phase")
		}
	})

	t.Run("30 seconds submits nothing", func(t *testing.T) {
		timer := meditation.NewTimer()
		if err := timer.Start(10*time.Minute, start); err != nil {
			t.Fatal(err)
		}

		if out := timer.Stop(start.Add(30 * time.Second)); out.Submit {
			t.Errorf("expected no submission under a minute, got %+v", out)
		}
	})

	t.Run("stop after stop is a no-op", func(t *testing.T) {
		timer := meditation.NewTimer()
		if err := timer.Start(10*time.Minute, start); err != nil {
			t.Fatal(err)
		}

		timer.Stop(start.Add(2 * time.Minute))
		if out := timer.Stop(start.Add(3 * time.Minute)); out.Submit {
			t.Error("expected second stop to submit nothing")
		}
	})
}

func TestTimer_TerminalStatesExclusive(t *testing.T) {
	timer := meditation.NewTimer()
	if err := timer.Start(time.Minute, start); err != nil {
		t.Fatal(err)
	}

	timer.Tick(start.Add(time.Minute))
	if out := timer.Stop(start.Add(2 * time.Minute)); out.Submit {
		t.Error("expected stop after completion to submit nothing")
	}
	if timer.Phase() != meditation.Completed {
		t.Error("expected phase to stay Completed")
	}
}

func TestTimer_Restart(t *testing.T) {
	timer := meditation.NewTimer()
	if err := timer.Start(time.Minute, start); err != nil {
		t.Fatal(err)
	}

	if err := timer.Start(time.Minute, start.Add(10*time.Second)); !errors.Is(err, meditation.ErrAlreadyRunning) {
		t.Errorf("expected ErrAlreadyRunning, got %v", err)
	}

	timer.Tick(start.Add(time.Minute))

	// A finished timer can be started fresh.
	if err := timer.Start(5*time.Minute, start.Add(2*time.Minute)); err != nil {
		t.Fatalf("restart: %v", err)
	}
	if timer.Phase() != meditation.Running {
		t.Error("expected Running after restart")
	}
	if remaining := timer.Remaining(start.Add(2 * time.Minute)); remaining != 5*time.Minute {
		t.Errorf("expected full duration remaining, got %v", remaining)
	}
}
