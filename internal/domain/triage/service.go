package triage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type Service struct {
	assessments AssessmentRepository
	classifier  Classifier
	log         zerolog.Logger
}

func NewService(assessments AssessmentRepository, classifier Classifier, log zerolog.Logger) *Service {
	return &Service{assessments: assessments, classifier: classifier, log: log}
}

func validateAssessment(a *Assessment) error {
	if a.PatientID == uuid.Nil {
		return fmt.Errorf("patient_id is required")
	}
	if a.PainLevel < 0 || a.PainLevel > 10 {
		return fmt.Errorf("pain_level must be between 0 and 10")
	}
	for name, s := range map[string]Severity{
		"chest_pain":            a.ChestPain,
		"shortness_of_breath":   a.ShortnessOfBreath,
		"altered_consciousness": a.AlteredConsciousness,
		"bleeding":              a.Bleeding,
		"fever":                 a.Fever,
	} {
		if !s.Valid() {
			return fmt.Errorf("invalid severity for %s", name)
		}
	}
	return nil
}

// Assess runs the external risk classifier over the assessment's vitals,
// stamps the assigned triage level and risk score onto the record and
// persists it.
func (s *Service) Assess(ctx context.Context, patient *Patient, a *Assessment) (*RiskPrediction, error) {
	if err := validateAssessment(a); err != nil {
		return nil, err
	}
	if s.classifier == nil {
		return nil, fmt.Errorf("risk classifier is not configured")
	}

	pred, err := s.classifier.Predict(ctx, a.Vitals, patient.Age(time.Now()))
	if err != nil {
		return nil, fmt.Errorf("classifier predict: %w", err)
	}

	a.AssignedLevel = pred.Level
	a.RiskScore = &pred.RiskScore
	a.ModelConfidence = &pred.Confidence
	if a.AssessedAt.IsZero() {
		a.AssessedAt = time.Now()
	}

	if err := s.assessments.Create(ctx, a); err != nil {
		return nil, fmt.Errorf("save assessment: %w", err)
	}

	s.log.Info().
		Str("patient_id", patient.ID.String()).
		Str("assessment_id", a.ID.String()).
		Str("level", pred.Level.String()).
		Float64("risk_score", pred.RiskScore).
		Msg("assessment triaged")

	return &pred, nil
}

func (s *Service) GetAssessment(ctx context.Context, id uuid.UUID) (*Assessment, error) {
	return s.assessments.GetByID(ctx, id)
}

func (s *Service) PatientAssessments(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Assessment, int, error) {
	return s.assessments.ListByPatient(ctx, patientID, limit, offset)
}
