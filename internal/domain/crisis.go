package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Crisis detection types, in decreasing order of certainty.
const (
	CrisisExplicitKeyword = "explicit_keyword"
	CrisisAIDetection     = "ai_detection"
	CrisisNoIndicators    = "no_indicators"
	CrisisDetectionError  = "error"
)

// CrisisDetection is the result of analyzing one message
type CrisisDetection struct {
	IsCrisis          bool    `json:"is_crisis"`
	Confidence        float64 `json:"confidence"`
	Type              string  `json:"type"`
	RecommendedAction string  `json:"recommended_action"`
}

// CrisisCheckRequest asks for crisis analysis of a message
type CrisisCheckRequest struct {
	Message string `json:"message" validate:"required,max=4000"`
}

// CrisisCheckResponse bundles the detection with support information
type CrisisCheckResponse struct {
	CrisisDetection
	SupportResources  []SupportResource  `json:"support_resources"`
	EmergencyContacts []EmergencyContact `json:"emergency_contacts"`
}

// CrisisAlert is a stored escalation record. Message holds ciphertext; the
// plaintext never reaches the database.
type CrisisAlert struct {
	ID         uuid.UUID  `json:"id"`
	UserID     *uuid.UUID `json:"user_id,omitempty"`
	Message    string     `json:"-"`
	Confidence float64    `json:"confidence"`
	Type       string     `json:"type"`
	Handled    bool       `json:"handled"`
	CreatedAt  time.Time  `json:"created_at"`
}

// CrisisReport is a user's self-reported crisis
type CrisisReport struct {
	ID        uuid.UUID  `json:"id"`
	UserID    *uuid.UUID `json:"user_id,omitempty"`
	Message   string     `json:"-"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
}

// SupportResource is a recommended avenue of help
type SupportResource struct {
	Type        string `json:"type"` // immediate, preventive, general
	Name        string `json:"name"`
	Contact     string `json:"contact,omitempty"`
	URL         string `json:"url,omitempty"`
	Available   string `json:"available,omitempty"`
	Description string `json:"description,omitempty"`
}

// EmergencyContact is a phone line for urgent help
type EmergencyContact struct {
	Name   string `json:"name"`
	Number string `json:"number"`
	Type   string `json:"type"`
}

// Helpline describes a staffed support line
type Helpline struct {
	Name      string   `json:"name"`
	Number    string   `json:"number"`
	Hours     string   `json:"hours"`
	Languages []string `json:"languages,omitempty"`
}

// CrisisRepository defines the interface for alert and report storage
type CrisisRepository interface {
	CreateAlert(ctx context.Context, alert *CrisisAlert) error
	CreateReport(ctx context.Context, report *CrisisReport) error
}
