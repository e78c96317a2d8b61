package service

import "github.com/zenithwellness/zenith/internal/domain"

var breathingExercises = map[string]domain.BreathingExercise{
	"4-7-8": {
		Name:        "4-7-8 Breathing",
		Description: "Calming breath technique for anxiety and sleep",
		Instructions: []string{
			"Exhale completely through your mouth",
			"Close your mouth and inhale through your nose for 4 counts",
			"Hold your breath for 7 counts",
			"Exhale completely through your mouth for 8 counts",
			"Repeat 3-4 times",
		},
		Benefits: []string{"Reduces anxiety", "Improves sleep", "Manages cravings"},
		Duration: "2-3 minutes",
	},
	"box": {
		Name:        "Box Breathing",
		Description: "Square breathing technique used by Navy SEALs",
		Instructions: []string{
			"Inhale for 4 counts",
			"Hold for 4 counts",
			"Exhale for 4 counts",
			"Hold empty for 4 counts",
			"Repeat 4-5 times",
		},
		Benefits: []string{"Reduces stress", "Improves focus", "Regulates emotions"},
		Duration: "3-5 minutes",
	},
	"belly": {
		Name:        "Diaphragmatic Breathing",
		Description: "Deep belly breathing for relaxation",
		Instructions: []string{
			"Place one hand on chest, one on belly",
			"Inhale slowly through nose, expanding belly",
			"Exhale slowly through mouth, contracting belly",
			"Chest should remain relatively still",
			"Continue for 5-10 breaths",
		},
		Benefits: []string{"Activates relaxation response", "Lowers blood pressure", "Improves core stability"},
		Duration: "5-10 minutes",
	},
	"alternate": {
		Name:        "Alternate Nostril Breathing",
		Description: "Yogic breathing technique (Nadi Shodhana)",
		Instructions: []string{
			"Use right thumb to close right nostril",
			"Inhale through left nostril",
			"Close left nostril with ring finger",
			"Open right nostril and exhale",
			"Inhale through right, switch, exhale through left",
			"Continue alternating for 5-10 rounds",
		},
		Benefits: []string{"Balances nervous system", "Improves focus", "Reduces anxiety"},
		Duration: "5-10 minutes",
	},
}

var guidedMeditations = []domain.GuidedMeditation{
	{
		ID:          "body-scan",
		Name:        "Body Scan Meditation",
		Description: "Progressive relaxation through body awareness",
		Duration:    15,
		Difficulty:  "beginner",
		Benefits:    []string{"Reduces tension", "Improves body awareness", "Promotes relaxation"},
	},
	{
		ID:          "loving-kindness",
		Name:        "Loving-Kindness Meditation",
		Description: "Cultivate compassion for self and others",
		Duration:    20,
		Difficulty:  "intermediate",
		Benefits:    []string{"Increases empathy", "Reduces negative emotions", "Improves relationships"},
	},
	{
		ID:          "mindfulness",
		Name:        "Mindfulness of Breath",
		Description: "Focus on the breath to anchor in the present",
		Duration:    10,
		Difficulty:  "beginner",
		Benefits:    []string{"Improves focus", "Reduces anxiety", "Increases awareness"},
	},
	{
		ID:          "sleep",
		Name:        "Sleep Meditation",
		Description: "Gentle meditation to prepare for restful sleep",
		Duration:    25,
		Difficulty:  "beginner",
		Benefits:    []string{"Improves sleep quality", "Reduces insomnia", "Calms racing thoughts"},
	},
	{
		ID:          "anxiety-relief",
		Name:        "Anxiety Relief Meditation",
		Description: "Specific techniques to manage anxiety",
		Duration:    12,
		Difficulty:  "beginner",
		Benefits:    []string{"Reduces anxiety", "Calms nervous system", "Improves emotional regulation"},
	},
	{
		ID:          "focus",
		Name:        "Concentration Meditation",
		Description: "Train the mind to maintain focus",
		Duration:    15,
		Difficulty:  "intermediate",
		Benefits:    []string{"Improves concentration", "Enhances productivity", "Strengthens mental discipline"},
	},
}
