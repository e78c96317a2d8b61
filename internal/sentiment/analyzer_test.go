package sentiment

import "testing"

func TestAnalyzeNegative(t *testing.T) {
	s := Analyze("I feel so anxious and alone, everything is overwhelming")
	if s.Label != LabelNegative {
		t.Fatalf("expected negative label, got %s", s.Label)
	}
	if s.Score >= 0 {
		t.Fatalf("expected negative score, got %f", s.Score)
	}
	if s.Magnitude <= 0 {
		t.Fatalf("expected non-zero magnitude, got %f", s.Magnitude)
	}
}

func TestAnalyzePositive(t *testing.T) {
	s := Analyze("Feeling grateful and peaceful after today's meditation!")
	if s.Label != LabelPositive {
		t.Fatalf("expected positive label, got %s", s.Label)
	}
	if s.Score <= 0 {
		t.Fatalf("expected positive score, got %f", s.Score)
	}
}

func TestAnalyzeNeutral(t *testing.T) {
	s := Analyze("The session starts at nine tomorrow")
	if s.Label != LabelNeutral {
		t.Fatalf("expected neutral label, got %s", s.Label)
	}
	if s.Score != 0 || s.Magnitude != 0 {
		t.Fatalf("expected zero score and magnitude, got %f %f", s.Score, s.Magnitude)
	}
}

func TestAnalyzeEmpty(t *testing.T) {
	s := Analyze("   ")
	if s.Label != LabelNeutral {
		t.Fatalf("expected neutral label for blank text, got %s", s.Label)
	}
}

func TestAnalyzeMagnitudeCapped(t *testing.T) {
	s := Analyze("sad sad sad anxious anxious lonely hopeless exhausted hurt pain")
	if s.Magnitude > 1 {
		t.Fatalf("magnitude above cap: %f", s.Magnitude)
	}
}
