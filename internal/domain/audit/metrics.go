package audit

import "github.com/triagecore/triage/internal/domain/triage"

// highRisk reports whether a label counts as high for false-positive /
// false-negative purposes (High or Critical vs Low or Medium).
func highRisk(r triage.RiskLevel) bool {
	return r == triage.RiskHigh || r == triage.RiskCritical
}

// GroupAccuracy computes accuracy, false-positive rate, false-negative
// rate and the actual-label distribution for one demographic group. Rates
// are percentages and 0 when their denominator is empty.
func GroupAccuracy(group string, records []TrainingRecord) DemographicAccuracy {
	acc := DemographicAccuracy{Group: group, SampleCount: len(records)}
	if len(records) == 0 {
		return acc
	}

	var correct, falsePos, falseNeg, actualLow, actualHigh int
	for _, rec := range records {
		if rec.PredictedRisk == rec.ActualRisk {
			correct++
		}
		if highRisk(rec.ActualRisk) {
			actualHigh++
			if !highRisk(rec.PredictedRisk) {
				falseNeg++
			}
		} else {
			actualLow++
			if highRisk(rec.PredictedRisk) {
				falsePos++
			}
		}

		switch rec.ActualRisk {
		case triage.RiskLow:
			acc.LowRiskCount++
		case triage.RiskMedium:
			acc.MediumRiskCount++
		case triage.RiskHigh:
			acc.HighRiskCount++
		case triage.RiskCritical:
			acc.CriticalRiskCount++
		}
	}

	acc.Accuracy = float64(correct) / float64(len(records)) * 100
	if actualLow > 0 {
		acc.FalsePositiveRate = float64(falsePos) / float64(actualLow) * 100
	}
	if actualHigh > 0 {
		acc.FalseNegativeRate = float64(falseNeg) / float64(actualHigh) * 100
	}
	return acc
}
