package department

// tieBreakMargin is the score gap within which departments are considered
// tied and resolved by priority order instead of raw score.
const tieBreakMargin = 10

// EmergencyPriority reports whether the assessment meets any of the
// override conditions that force an Emergency recommendation regardless
// of scores.
func EmergencyPriority(a *Assessment) bool {
	return a.OxygenSaturation < 90 ||
		a.Bleeding == severe ||
		a.AlteredConsciousness == severe ||
		(a.ChestPain == severe && a.ShortnessOfBreath >= moderate) ||
		a.HeartRate > 150 || a.HeartRate < 40 ||
		a.SystolicBP > 200 || a.SystolicBP < 70
}

// Recommend picks the single recommended department from scores sorted
// descending. When the runner-up is within tieBreakMargin of the top
// score, every department inside that margin competes and the fixed
// priority order decides.
func Recommend(sorted []Score, emergencyPriority bool) Department {
	if emergencyPriority {
		return Emergency
	}

	top := sorted[0]
	if len(sorted) > 1 && top.Score-sorted[1].Score <= tieBreakMargin {
		contenders := make(map[Department]bool)
		for _, s := range sorted {
			if s.Score >= top.Score-tieBreakMargin {
				contenders[s.Department] = true
			}
		}
		for _, dept := range evalOrder {
			if contenders[dept] {
				return dept
			}
		}
	}

	return top.Department
}
