package audit

import (
	"math"
	"time"

	"github.com/triagecore/triage/internal/domain/triage"
)

// TrainingRecord is one parsed row of an uploaded training dataset.
type TrainingRecord struct {
	PatientID     string           `json:"patient_id"`
	Age           int              `json:"age"`
	Gender        string           `json:"gender"`
	Symptoms      string           `json:"symptoms"`
	BloodPressure string           `json:"blood_pressure"`
	HeartRate     int              `json:"heart_rate"`
	Temperature   float64          `json:"temperature"`
	Conditions    string           `json:"conditions"`
	ActualRisk    triage.RiskLevel `json:"actual_risk"`
	PredictedRisk triage.RiskLevel `json:"predicted_risk"`
}

// DemographicAccuracy holds the classifier performance metrics for one
// demographic group. Rates are percentages.
type DemographicAccuracy struct {
	Group             string  `json:"group"`
	SampleCount       int     `json:"sample_count"`
	Accuracy          float64 `json:"accuracy"`
	FalsePositiveRate float64 `json:"false_positive_rate"`
	FalseNegativeRate float64 `json:"false_negative_rate"`

	LowRiskCount      int `json:"low_risk_count"`
	MediumRiskCount   int `json:"medium_risk_count"`
	HighRiskCount     int `json:"high_risk_count"`
	CriticalRiskCount int `json:"critical_risk_count"`
}

// GenderMetrics pairs the two gender groups and derives their disparities.
type GenderMetrics struct {
	Male   DemographicAccuracy `json:"male"`
	Female DemographicAccuracy `json:"female"`
}

func (g *GenderMetrics) AccuracyDisparity() float64 {
	return math.Abs(g.Male.Accuracy - g.Female.Accuracy)
}

func (g *GenderMetrics) FalsePositiveDisparity() float64 {
	return math.Abs(g.Male.FalsePositiveRate - g.Female.FalsePositiveRate)
}

func (g *GenderMetrics) FalseNegativeDisparity() float64 {
	return math.Abs(g.Male.FalseNegativeRate - g.Female.FalseNegativeRate)
}

// AgeGroupMetrics is the per-age-band accuracy record; only non-empty
// bands appear in a result.
type AgeGroupMetrics struct {
	DemographicAccuracy

	MinAge int `json:"min_age"`
	MaxAge int `json:"max_age"`
}

func (a *AgeGroupMetrics) LowRiskPercent() float64      { return a.riskPercent(a.LowRiskCount) }
func (a *AgeGroupMetrics) MediumRiskPercent() float64   { return a.riskPercent(a.MediumRiskCount) }
func (a *AgeGroupMetrics) HighRiskPercent() float64     { return a.riskPercent(a.HighRiskCount) }
func (a *AgeGroupMetrics) CriticalRiskPercent() float64 { return a.riskPercent(a.CriticalRiskCount) }

func (a *AgeGroupMetrics) riskPercent(count int) float64 {
	if a.SampleCount == 0 {
		return 0
	}
	return float64(count) / float64(a.SampleCount) * 100
}

// BiasAnalysisResult is the outcome of one fairness audit. Computed once
// per uploaded dataset and never incrementally updated.
type BiasAnalysisResult struct {
	IsAvailable  bool       `json:"is_available"`
	TotalRecords int        `json:"total_records"`
	AnalysisDate *time.Time `json:"analysis_date,omitempty"`

	GenderAnalysis   *GenderMetrics    `json:"gender_analysis,omitempty"`
	AgeGroupAnalysis []AgeGroupMetrics `json:"age_group_analysis,omitempty"`

	FairnessScore  float64 `json:"fairness_score"`
	FairnessRating string  `json:"fairness_rating"`
}
