package triage

import "context"

// RiskPrediction is the output of the external risk classifier.
type RiskPrediction struct {
	Level      Level   `json:"level"`
	RiskScore  float64 `json:"risk_score"`
	Confidence float64 `json:"confidence"`
}

// Classifier is the external risk-classifier collaborator. This service
// consumes its predictions; it never trains or implements the model.
type Classifier interface {
	Predict(ctx context.Context, vitals Vitals, age int) (RiskPrediction, error)
}
