package client

import (
	"time"

	"github.com/zenithwellness/zenith/internal/domain"
)

// Alert tracks whether the crisis banner is on screen. The banner appears
// for high-confidence detections and goes away on its own after a while, or
// sooner when the user closes it. Time is passed in so the TUI tick drives
// expiry.
type Alert struct {
	threshold    float64
	dismissAfter time.Duration

	visible   bool
	shownAt   time.Time
	detection domain.CrisisDetection
}

// NewAlert creates an alert surface. threshold gates which detections show
// the banner; dismissAfter is how long it stays up.
func NewAlert(threshold float64, dismissAfter time.Duration) *Alert {
	return &Alert{
		threshold:    threshold,
		dismissAfter: dismissAfter,
	}
}

// Observe feeds a detection into the alert. Detections at or below the
// threshold leave the current state untouched.
func (a *Alert) Observe(detection domain.CrisisDetection, now time.Time) {
	if !detection.IsCrisis || detection.Confidence <= a.threshold {
		return
	}
	a.visible = true
	a.shownAt = now
	a.detection = detection
}

// Visible reports whether the banner should be drawn, auto-dismissing once
// the display window has passed.
func (a *Alert) Visible(now time.Time) bool {
	if !a.visible {
		return false
	}
	if now.Sub(a.shownAt) >= a.dismissAfter {
		a.visible = false
	}
	return a.visible
}

// Detection returns the detection behind the current banner.
func (a *Alert) Detection() domain.CrisisDetection {
	return a.detection
}

// Close hides the banner immediately. Closing an already-hidden banner is a
// no-op.
func (a *Alert) Close() {
	a.visible = false
}
