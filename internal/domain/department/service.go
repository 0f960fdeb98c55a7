package department

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/triagecore/triage/internal/domain/triage"
)

type Service struct {
	predictions PredictionRepository
	log         zerolog.Logger
}

func NewService(predictions PredictionRepository, log zerolog.Logger) *Service {
	return &Service{predictions: predictions, log: log}
}

// Analyze runs the full recommendation pipeline over one assessment:
// scoring, emergency override, tie-break resolution, confidence and
// explanation. The resulting prediction is persisted before the result is
// returned; a storage failure propagates to the caller.
func (s *Service) Analyze(ctx context.Context, a *triage.Assessment, patient *triage.Patient) (*AnalysisResult, error) {
	if patient == nil || patient.ID == uuid.Nil {
		return nil, fmt.Errorf("patient is required")
	}

	scores, keyFindings := ScoreAll(a)
	SortScores(scores)

	emergencyPriority := EmergencyPriority(a)
	recommended := Recommend(scores, emergencyPriority)
	confidence := Confidence(scores, recommended)
	explanation := Explain(a, patient, recommended, scores)

	result := &AnalysisResult{
		RecommendedDepartment: recommended,
		ConfidenceScore:       confidence,
		ClinicalExplanation:   explanation,
		AllScores:             scores,
		IsEmergencyPriority:   emergencyPriority,
		KeyFindings:           keyFindings,
	}

	prediction := &Prediction{
		PatientID:             patient.ID,
		RecommendedDepartment: recommended,
		ConfidenceScore:       confidence,
		ClinicalExplanation:   explanation,
		DepartmentScores:      scores,
		IsEmergencyPriority:   emergencyPriority,
		KeyFindings:           strings.Join(keyFindings, "; "),
		PredictedAt:           time.Now(),
	}
	if a.ID != uuid.Nil {
		id := a.ID
		prediction.AssessmentID = &id
	}
	if err := s.predictions.Create(ctx, prediction); err != nil {
		return nil, fmt.Errorf("save prediction: %w", err)
	}

	s.log.Info().
		Str("patient_id", patient.ID.String()).
		Str("department", string(recommended)).
		Int("confidence", confidence).
		Bool("emergency_priority", emergencyPriority).
		Msg("department analysis complete")

	return result, nil
}

func (s *Service) PatientPredictions(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Prediction, int, error) {
	return s.predictions.ListByPatient(ctx, patientID, limit, offset)
}

func (s *Service) LatestPrediction(ctx context.Context, patientID uuid.UUID) (*Prediction, error) {
	return s.predictions.LatestByPatient(ctx, patientID)
}

func (s *Service) ListPredictions(ctx context.Context, dept *Department, limit int) ([]*Prediction, error) {
	if dept != nil && !dept.Valid() {
		return nil, fmt.Errorf("invalid department: %s", *dept)
	}
	if limit <= 0 {
		limit = 50
	}
	return s.predictions.List(ctx, dept, limit)
}

func (s *Service) DepartmentDistribution(ctx context.Context) (map[Department]int, error) {
	return s.predictions.CountByDepartment(ctx)
}
