package crisis

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/zenithwellness/zenith/internal/ai"
	"github.com/zenithwellness/zenith/internal/domain"
)

// Classifier is the slice of ai.Provider the detector needs.
type Classifier interface {
	Generate(ctx context.Context, req ai.Request, model string) (*ai.Response, error)
}

// Detector screens messages for crisis signals. A keyword pre-filter runs
// first so that explicit phrases never wait on a model round trip; the model
// only sees messages the filter passed.
type Detector struct {
	keywords   []string
	classifier Classifier
}

// NewDetector creates a detector. classifier may be nil, in which case only
// the keyword filter runs.
func NewDetector(keywords []string, classifier Classifier) *Detector {
	return &Detector{
		keywords:   keywords,
		classifier: classifier,
	}
}

type classification struct {
	IsCrisis   bool     `json:"is_crisis"`
	Confidence float64  `json:"confidence"`
	Indicators []string `json:"indicators"`
}

// Detect analyzes one message. It never returns an error: when classification
// fails the result degrades to a low-confidence non-crisis so the caller's
// flow is not interrupted.
func (d *Detector) Detect(ctx context.Context, message string) domain.CrisisDetection {
	if _, ok := MatchKeyword(message, d.keywords); ok {
		return domain.CrisisDetection{
			IsCrisis:          true,
			Confidence:        0.95,
			Type:              domain.CrisisExplicitKeyword,
			RecommendedAction: "immediate_support",
		}
	}

	if d.classifier != nil {
		if result, ok := d.classify(ctx, message); ok {
			return result
		}
	}

	return domain.CrisisDetection{
		IsCrisis:          false,
		Confidence:        0.1,
		Type:              domain.CrisisNoIndicators,
		RecommendedAction: "continue_conversation",
	}
}

func (d *Detector) classify(ctx context.Context, message string) (domain.CrisisDetection, bool) {
	resp, err := d.classifier.Generate(ctx, ai.Request{
		Prompt:    ai.BuildCrisisPrompt(message),
		MaxTokens: 256,
	}, "")
	if err != nil {
		log.Error().Err(err).Msg("crisis classification failed")
		return domain.CrisisDetection{
			IsCrisis:          false,
			Confidence:        0,
			Type:              domain.CrisisDetectionError,
			RecommendedAction: "monitor",
		}, true
	}

	var parsed classification
	if err := json.Unmarshal([]byte(ai.ExtractJSON(resp.Text)), &parsed); err != nil {
		log.Warn().Err(err).Msg("unparseable crisis classification")
		return domain.CrisisDetection{}, false
	}

	confidence := 0.2
	action := "monitor"
	if parsed.IsCrisis {
		confidence = 0.8
		action = "immediate_support"
	}

	return domain.CrisisDetection{
		IsCrisis:          parsed.IsCrisis,
		Confidence:        confidence,
		Type:              domain.CrisisAIDetection,
		RecommendedAction: action,
	}, true
}
