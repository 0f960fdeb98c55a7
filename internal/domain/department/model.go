package department

import (
	"time"

	"github.com/google/uuid"

	"github.com/triagecore/triage/internal/domain/triage"
)

// Department identifies one of the six candidate hospital departments.
type Department string

const (
	Emergency       Department = "Emergency"
	Cardiology      Department = "Cardiology"
	Pulmonology     Department = "Pulmonology"
	Neurology       Department = "Neurology"
	Orthopedics     Department = "Orthopedics"
	GeneralMedicine Department = "GeneralMedicine"
)

// evalOrder is both the fixed evaluation order of the scorer and the
// near-tie priority order of the resolver.
var evalOrder = []Department{
	Emergency, Cardiology, Pulmonology, Neurology, Orthopedics, GeneralMedicine,
}

// Valid reports whether d names one of the six departments.
func (d Department) Valid() bool {
	for _, dept := range evalOrder {
		if d == dept {
			return true
		}
	}
	return false
}

// Display returns the department name as used in generated prose.
func (d Department) Display() string {
	if d == GeneralMedicine {
		return "General Medicine"
	}
	return string(d)
}

// Score is the additive point total one department accumulated for one
// assessment, with the factor text of every rule that fired, in rule
// evaluation order.
type Score struct {
	Department          Department `json:"department"`
	Score               int        `json:"score"`
	ContributingFactors []string   `json:"contributing_factors"`
}

// AnalysisResult is the outcome of one department analysis. It is built
// once per assessment and never mutated afterward.
type AnalysisResult struct {
	RecommendedDepartment Department `json:"recommended_department"`
	ConfidenceScore       int        `json:"confidence_score"`
	ClinicalExplanation   string     `json:"clinical_explanation"`
	AllScores             []Score    `json:"all_scores"`
	IsEmergencyPriority   bool       `json:"is_emergency_priority"`
	KeyFindings           []string   `json:"key_findings"`
}

// Prediction maps to the department_prediction table.
type Prediction struct {
	ID                    uuid.UUID  `db:"id" json:"id"`
	PatientID             uuid.UUID  `db:"patient_id" json:"patient_id"`
	AssessmentID          *uuid.UUID `db:"assessment_id" json:"assessment_id,omitempty"`
	RecommendedDepartment Department `db:"recommended_department" json:"recommended_department"`
	ConfidenceScore       int        `db:"confidence_score" json:"confidence_score"`
	ClinicalExplanation   string     `db:"clinical_explanation" json:"clinical_explanation"`
	DepartmentScores      []Score    `db:"department_scores" json:"department_scores"`
	IsEmergencyPriority   bool       `db:"is_emergency_priority" json:"is_emergency_priority"`
	KeyFindings           string     `db:"key_findings" json:"key_findings"`
	PredictedAt           time.Time  `db:"predicted_at" json:"predicted_at"`
}

// Assessment is the scoring input; an alias keeps rule predicates short.
type Assessment = triage.Assessment
