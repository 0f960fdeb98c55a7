package department

// Confidence bounds.
const (
	baselineConfidence = 50
	minConfidence      = 40
	maxConfidence      = 99
)

// Confidence maps the margin between the recommended department's score
// and the best competing score to a 0-100 confidence value. Adjustments
// are applied in a fixed order: margin lookup, then the high-score boost,
// then the close-competitor penalty.
func Confidence(scores []Score, recommended Department) int {
	var top Score
	var competitors []Score
	for _, s := range scores {
		if s.Department == recommended {
			top = s
		} else {
			competitors = append(competitors, s)
		}
	}

	if len(competitors) == 0 || top.Score == 0 {
		return baselineConfidence
	}

	secondHighest := competitors[0].Score
	for _, s := range competitors[1:] {
		if s.Score > secondHighest {
			secondHighest = s.Score
		}
	}
	margin := top.Score - secondHighest

	var confidence int
	switch {
	case margin >= 40:
		confidence = 95
	case margin >= 30:
		confidence = 85
	case margin >= 20:
		confidence = 75
	case margin >= 10:
		confidence = 65
	default:
		confidence = 55
	}

	if top.Score >= 80 {
		confidence = min(confidence+5, maxConfidence)
	}

	closeCompetitors := 0
	for _, s := range competitors {
		if s.Score >= top.Score-15 {
			closeCompetitors++
		}
	}
	if closeCompetitors >= 2 {
		confidence = max(confidence-10, minConfidence)
	}

	return confidence
}
