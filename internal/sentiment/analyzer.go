package sentiment

import (
	"math"
	"strings"

	"github.com/zenithwellness/zenith/internal/domain"
)

const (
	LabelPositive = "positive"
	LabelNegative = "negative"
	LabelNeutral  = "neutral"
)

var keywordBuckets = map[string][]string{
	LabelPositive: {
		"happy", "joy", "grateful", "thankful", "peaceful", "calm", "relaxed",
		"hopeful", "excited", "love", "wonderful", "amazing", "great", "better",
		"blessed", "content", "proud", "optimistic", "energized", "refreshed",
	},
	LabelNegative: {
		"sad", "depressed", "anxious", "anxiety", "worried", "stress", "stressed",
		"angry", "frustrated", "lonely", "alone", "hopeless", "worthless", "tired",
		"exhausted", "afraid", "scared", "hurt", "pain", "cry", "overwhelmed",
		"empty", "numb", "guilty", "ashamed",
	},
}

// Analyze scores free text into a coarse sentiment. Score runs from -1 to 1
// and magnitude grows with the number of emotional cues, capped at 1.
func Analyze(text string) domain.Sentiment {
	normalized := strings.ToLower(strings.TrimSpace(text))
	if normalized == "" {
		return domain.Sentiment{Label: LabelNeutral}
	}

	hits := make(map[string]int)
	for label, keywords := range keywordBuckets {
		for _, word := range keywords {
			hits[label] += strings.Count(normalized, word)
		}
	}

	exclamations := strings.Count(text, "!")
	if exclamations > 0 && hits[LabelPositive] > hits[LabelNegative] {
		hits[LabelPositive] += exclamations
	}

	positive := hits[LabelPositive]
	negative := hits[LabelNegative]
	total := positive + negative
	if total == 0 {
		return domain.Sentiment{Label: LabelNeutral}
	}

	score := float64(positive-negative) / float64(total)
	magnitude := math.Min(1, float64(total)/5)

	label := LabelNeutral
	switch {
	case score > 0.2:
		label = LabelPositive
	case score < -0.2:
		label = LabelNegative
	}

	return domain.Sentiment{Label: label, Score: score, Magnitude: magnitude}
}
