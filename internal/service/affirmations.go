package service

import "github.com/zenithwellness/zenith/internal/domain"

var affirmations = map[string][]string{
	"general": {
		"I am worthy of love and respect",
		"I choose peace over worry",
		"I am growing stronger every day",
		"I trust the journey of my life",
		"I am exactly where I need to be",
		"I release what no longer serves me",
		"I am grateful for this moment",
		"I have the power to create change",
	},
	"anxiety": {
		"I am safe in this moment",
		"I release the need to control everything",
		"My breath anchors me to the present",
		"This too shall pass",
		"I choose calm over chaos",
		"I am stronger than my anxious thoughts",
	},
	"self-love": {
		"I am enough just as I am",
		"I deserve kindness and compassion",
		"I honor my journey and growth",
		"I am learning to love myself more each day",
		"My imperfections make me unique",
		"I am worthy of my own love",
	},
	"strength": {
		"I have overcome challenges before and I will again",
		"I am resilient and can handle life's challenges",
		"My strength comes from within",
		"I choose courage over comfort",
		"I am capable of amazing things",
		"Every challenge is an opportunity to grow",
	},
}

var practicesByGoal = map[string][]domain.Practice{
	"peace": {
		{
			Name:        "Centering Prayer",
			Duration:    "20 minutes",
			Description: "Sit quietly and let go of thoughts, returning to a sacred word",
		},
		{
			Name:        "Vipassana Meditation",
			Duration:    "10-60 minutes",
			Description: "Observe sensations and thoughts without attachment",
		},
		{
			Name:        "Pranayama",
			Duration:    "15 minutes",
			Description: "Controlled breathing exercises to calm the mind",
		},
	},
	"gratitude": {
		{
			Name:        "Gratitude Journal",
			Duration:    "10 minutes",
			Description: "Write three things you're grateful for each day",
		},
		{
			Name:        "Shukr Practice",
			Duration:    "Throughout the day",
			Description: "Express thankfulness for daily blessings",
		},
	},
	"compassion": {
		{
			Name:        "Metta Meditation",
			Duration:    "20 minutes",
			Description: "Send loving-kindness to yourself and others",
		},
		{
			Name:        "Seva",
			Duration:    "Varies",
			Description: "Selfless service to others",
		},
	},
	"focus": {
		{
			Name:        "Trataka",
			Duration:    "10-15 minutes",
			Description: "Candle gazing meditation for concentration",
		},
		{
			Name:        "Dhikr",
			Duration:    "15-30 minutes",
			Description: "Meditative repetition to steady the mind",
		},
	},
}
