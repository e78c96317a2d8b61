package service

import "github.com/zenithwellness/zenith/internal/domain"

// Support content served by the crisis endpoints. Numbers are India-focused
// with the US lifelines kept for international users.

func immediateSupportResources() []domain.SupportResource {
	return []domain.SupportResource{
		{
			Type:        "immediate",
			Name:        "National Suicide Prevention Lifeline",
			Contact:     "988",
			Available:   "24/7",
			Description: "Free, confidential crisis support",
		},
		{
			Type:        "immediate",
			Name:        "Crisis Text Line",
			Contact:     "Text HOME to 741741",
			Available:   "24/7",
			Description: "Text-based crisis support",
		},
		{
			Type:        "immediate",
			Name:        "NIMHANS 24x7 Helpline",
			Contact:     "080-46110007",
			Available:   "24/7",
			Description: "Mental health support in India",
		},
	}
}

func preventiveSupportResources() []domain.SupportResource {
	return []domain.SupportResource{
		{
			Type:        "preventive",
			Name:        "Mental Health Resources",
			URL:         "https://www.nimh.nih.gov/health/find-help",
			Description: "Find mental health resources and information",
		},
		{
			Type:        "preventive",
			Name:        "Mindfulness Exercises",
			URL:         "/api/meditation",
			Description: "Practice mindfulness and meditation",
		},
	}
}

func emergencyContacts() []domain.EmergencyContact {
	return []domain.EmergencyContact{
		{Name: "Emergency Services", Number: "112", Type: "emergency"},
		{Name: "NIMHANS Helpline", Number: "080-46110007", Type: "mental_health"},
		{Name: "Vandrevala Foundation", Number: "9999666555", Type: "mental_health"},
		{Name: "AASRA", Number: "91-9820466726", Type: "suicide_prevention"},
	}
}

func helplines() []domain.Helpline {
	return []domain.Helpline{
		{
			Name:      "NIMHANS",
			Number:    "080-46110007",
			Hours:     "24/7",
			Languages: []string{"English", "Hindi", "Kannada"},
		},
		{
			Name:      "Vandrevala Foundation",
			Number:    "9999666555",
			Hours:     "24/7",
			Languages: []string{"English", "Hindi", "Multiple Regional Languages"},
		},
		{
			Name:      "iCALL",
			Number:    "9152987821",
			Hours:     "Mon-Sat: 10 AM - 8 PM",
			Languages: []string{"English", "Hindi", "Marathi", "Tamil", "Telugu", "Gujarati"},
		},
	}
}

func selfHelpResources() []domain.SupportResource {
	return []domain.SupportResource{
		{
			Type:        "technique",
			Name:        "Breathing Exercises",
			URL:         "/api/meditation/breathing",
			Description: "Five-minute guided breathing",
		},
		{
			Type:        "technique",
			Name:        "Grounding Techniques",
			Description: "5-4-3-2-1 sensory grounding",
		},
		{
			Type:        "activity",
			Name:        "Journaling Prompts",
			Description: "Express your feelings through writing",
		},
	}
}
