package audit

import (
	"hash/fnv"
	"math/rand"

	"github.com/triagecore/triage/internal/domain/triage"
)

// Predictor supplies the predicted risk label for a training record. The
// disparity math only sees this interface, so the simulator below can be
// swapped for held-out predictions from the real classifier.
type Predictor interface {
	Predict(patientID string, actual triage.RiskLevel) triage.RiskLevel
}

// Simulator synthesizes prediction outcomes when no real classifier
// output is available. It is deterministic per record: the identifier
// string alone seeds the draw, so the same identifier and actual label
// always produce the same predicted label.
type Simulator struct{}

func NewSimulator() *Simulator { return &Simulator{} }

func (Simulator) Predict(patientID string, actual triage.RiskLevel) triage.RiskLevel {
	h := fnv.New64a()
	h.Write([]byte(patientID))
	rng := rand.New(rand.NewSource(int64(h.Sum64())))

	// Per-record accuracy between 82% and 88%.
	successRate := 0.82 + rng.Float64()*0.06
	if rng.Float64() < successRate {
		return actual
	}

	// Misprediction lands one ordinal step away, weighted toward the
	// adjacent level.
	r := rng.Float64()
	switch actual {
	case triage.RiskLow:
		if r < 0.7 {
			return triage.RiskMedium
		}
		return triage.RiskHigh
	case triage.RiskMedium:
		if r < 0.5 {
			return triage.RiskLow
		}
		return triage.RiskHigh
	case triage.RiskHigh:
		if r < 0.6 {
			return triage.RiskMedium
		}
		return triage.RiskCritical
	default: // Critical
		if r < 0.8 {
			return triage.RiskHigh
		}
		return triage.RiskMedium
	}
}
