package triage

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Severity is the ordinal scale used for symptom intensity. Comparisons
// between severities are always numeric, never by name.
type Severity int

const (
	SeverityNone Severity = iota
	SeverityMild
	SeverityModerate
	SeveritySevere
	SeverityCritical
)

func (s Severity) String() string {
	switch s {
	case SeverityNone:
		return "None"
	case SeverityMild:
		return "Mild"
	case SeverityModerate:
		return "Moderate"
	case SeveritySevere:
		return "Severe"
	case SeverityCritical:
		return "Critical"
	}
	return "Unknown"
}

// Lower returns the severity name in lower case, as used in generated prose.
func (s Severity) Lower() string {
	return strings.ToLower(s.String())
}

// Valid reports whether s is within the five-level scale.
func (s Severity) Valid() bool {
	return s >= SeverityNone && s <= SeverityCritical
}

// Level is the standard emergency department triage level assigned by the
// risk classifier.
type Level int

const (
	LevelUnassessed Level = 0
	LevelEmergency  Level = 1
	LevelUrgent     Level = 2
	LevelStandard   Level = 3
	LevelNonUrgent  Level = 4
)

func (l Level) String() string {
	switch l {
	case LevelEmergency:
		return "Emergency"
	case LevelUrgent:
		return "Urgent"
	case LevelStandard:
		return "Standard"
	case LevelNonUrgent:
		return "NonUrgent"
	}
	return "Unassessed"
}

// RiskLevel is the four-way risk label vocabulary shared by the triage and
// audit pipelines.
type RiskLevel int

const (
	RiskLow RiskLevel = iota
	RiskMedium
	RiskHigh
	RiskCritical
)

func (r RiskLevel) String() string {
	switch r {
	case RiskLow:
		return "Low"
	case RiskMedium:
		return "Medium"
	case RiskHigh:
		return "High"
	case RiskCritical:
		return "Critical"
	}
	return "Unknown"
}

// ParseRiskLevel normalizes a free-text risk label. The second return value
// is false when the text matches none of the four labels.
func ParseRiskLevel(s string) (RiskLevel, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return RiskLow, true
	case "medium":
		return RiskMedium, true
	case "high":
		return RiskHigh, true
	case "critical":
		return RiskCritical, true
	}
	return RiskLow, false
}

// Vitals holds the vital-sign measurements taken during an assessment.
type Vitals struct {
	HeartRate        float64 `db:"heart_rate" json:"heart_rate"`
	SystolicBP       float64 `db:"systolic_bp" json:"systolic_bp"`
	DiastolicBP      float64 `db:"diastolic_bp" json:"diastolic_bp"`
	Temperature      float64 `db:"temperature" json:"temperature"`
	RespiratoryRate  float64 `db:"respiratory_rate" json:"respiratory_rate"`
	OxygenSaturation float64 `db:"oxygen_saturation" json:"oxygen_saturation"`
}

// Assessment maps to the triage_assessment table.
type Assessment struct {
	ID        uuid.UUID `db:"id" json:"id"`
	PatientID uuid.UUID `db:"patient_id" json:"patient_id"`

	Vitals

	PainLevel int `db:"pain_level" json:"pain_level"`

	ChestPain            Severity `db:"chest_pain" json:"chest_pain"`
	ShortnessOfBreath    Severity `db:"shortness_of_breath" json:"shortness_of_breath"`
	AlteredConsciousness Severity `db:"altered_consciousness" json:"altered_consciousness"`
	Bleeding             Severity `db:"bleeding" json:"bleeding"`
	Fever                Severity `db:"fever" json:"fever"`

	AdditionalSymptoms *string `db:"additional_symptoms" json:"additional_symptoms,omitempty"`
	Notes              *string `db:"notes" json:"notes,omitempty"`

	AssignedLevel   Level    `db:"assigned_level" json:"assigned_level"`
	RiskScore       *float64 `db:"risk_score" json:"risk_score,omitempty"`
	ModelConfidence *float64 `db:"model_confidence" json:"model_confidence,omitempty"`

	AssessedAt time.Time `db:"assessed_at" json:"assessed_at"`
	AssessedBy *string   `db:"assessed_by" json:"assessed_by,omitempty"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

// Patient carries the patient context an analysis call needs. Patient
// record keeping lives outside this service; callers pass a validated
// snapshot with each request.
type Patient struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Gender    string    `json:"gender"`
	BirthDate time.Time `json:"birth_date"`
}

func (p *Patient) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// Age returns the patient's age in whole years at time now.
func (p *Patient) Age(now time.Time) int {
	return int(now.Sub(p.BirthDate).Hours() / 24 / 365.25)
}
