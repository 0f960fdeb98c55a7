package audit

// FairnessScore aggregates gender and age-band disparities into a single
// 0-100 score. 100 means no measured disparity. The gender term weighs
// accuracy disparity double; the age term is half the accuracy spread
// across bands.
func FairnessScore(gender *GenderMetrics, ageGroups []AgeGroupMetrics) float64 {
	score := 100.0

	if gender != nil {
		score -= 2 * gender.AccuracyDisparity()
		score -= gender.FalsePositiveDisparity()
		score -= gender.FalseNegativeDisparity()
	}

	if len(ageGroups) > 1 {
		minAcc, maxAcc := ageGroups[0].Accuracy, ageGroups[0].Accuracy
		for _, g := range ageGroups[1:] {
			if g.Accuracy < minAcc {
				minAcc = g.Accuracy
			}
			if g.Accuracy > maxAcc {
				maxAcc = g.Accuracy
			}
		}
		score -= 0.5 * (maxAcc - minAcc)
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}

// FairnessRating maps a fairness score to its categorical rating.
func FairnessRating(score float64) string {
	switch {
	case score >= 90:
		return "Excellent"
	case score >= 80:
		return "Good"
	case score >= 70:
		return "Fair"
	case score >= 60:
		return "Needs Improvement"
	default:
		return "Poor"
	}
}
