package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/zenithwellness/zenith/internal/crisis"
	"github.com/zenithwellness/zenith/internal/domain"
	"github.com/zenithwellness/zenith/internal/security"
)

// alertMessageLimit bounds how much of the triggering message is retained.
const alertMessageLimit = 500

// CrisisService runs detection and records escalations. Stored message text
// is always encrypted first.
type CrisisService struct {
	detector   *crisis.Detector
	crisisRepo domain.CrisisRepository
	encryptor  *security.Encryptor
	threshold  float64
}

// NewCrisisService creates a new crisis service
func NewCrisisService(
	detector *crisis.Detector,
	crisisRepo domain.CrisisRepository,
	encryptor *security.Encryptor,
	threshold float64,
) *CrisisService {
	return &CrisisService{
		detector:   detector,
		crisisRepo: crisisRepo,
		encryptor:  encryptor,
		threshold:  threshold,
	}
}

// Detect analyzes a message without recording anything.
func (s *CrisisService) Detect(ctx context.Context, message string) domain.CrisisDetection {
	return s.detector.Detect(ctx, message)
}

// Check analyzes a message, records an alert above the escalation threshold,
// and bundles support resources matched to the outcome.
func (s *CrisisService) Check(ctx context.Context, userID *uuid.UUID, message string) *domain.CrisisCheckResponse {
	detection := s.detector.Detect(ctx, message)

	if detection.IsCrisis && detection.Confidence > s.threshold {
		s.RecordAlert(ctx, userID, message, detection)
	}

	resources := preventiveSupportResources()
	if detection.IsCrisis {
		resources = immediateSupportResources()
	}

	return &domain.CrisisCheckResponse{
		CrisisDetection:   detection,
		SupportResources:  resources,
		EmergencyContacts: emergencyContacts(),
	}
}

// RecordAlert stores an escalation. Failures are logged, never surfaced: an
// alert write must not break the user-facing flow.
func (s *CrisisService) RecordAlert(ctx context.Context, userID *uuid.UUID, message string, detection domain.CrisisDetection) {
	// Truncate on rune boundaries so multi-byte text survives intact.
	if runes := []rune(message); len(runes) > alertMessageLimit {
		message = string(runes[:alertMessageLimit])
	}

	encrypted, err := s.encryptor.EncryptString(message)
	if err != nil {
		log.Error().Err(err).Msg("failed to encrypt crisis alert message")
		return
	}

	alert := &domain.CrisisAlert{
		ID:         uuid.New(),
		UserID:     userID,
		Message:    encrypted,
		Confidence: detection.Confidence,
		Type:       detection.Type,
		Handled:    false,
		CreatedAt:  time.Now(),
	}

	if err := s.crisisRepo.CreateAlert(ctx, alert); err != nil {
		log.Error().Err(err).Msg("failed to store crisis alert")
	}
}

// Report stores a self-reported crisis and returns immediate support.
func (s *CrisisService) Report(ctx context.Context, userID *uuid.UUID, message string) (*domain.CrisisReport, []domain.SupportResource, error) {
	encrypted, err := s.encryptor.EncryptString(message)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encrypt report: %w", err)
	}

	report := &domain.CrisisReport{
		ID:        uuid.New(),
		UserID:    userID,
		Message:   encrypted,
		Status:    "pending",
		CreatedAt: time.Now(),
	}

	if err := s.crisisRepo.CreateReport(ctx, report); err != nil {
		return nil, nil, fmt.Errorf("failed to store report: %w", err)
	}

	return report, immediateSupportResources(), nil
}

// CrisisResources bundles everything the resources endpoint serves.
type CrisisResources struct {
	Helplines        []domain.Helpline        `json:"helplines"`
	SelfHelp         []domain.SupportResource `json:"self_help"`
	ProfessionalHelp []domain.SupportResource `json:"professional_help"`
}

// Resources returns the static support catalog.
func (s *CrisisService) Resources() CrisisResources {
	return CrisisResources{
		Helplines:        helplines(),
		SelfHelp:         selfHelpResources(),
		ProfessionalHelp: preventiveSupportResources(),
	}
}
