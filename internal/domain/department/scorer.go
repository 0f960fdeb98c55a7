package department

import "sort"

// findingSet accumulates key findings across departments, de-duplicated
// while preserving first-occurrence order.
type findingSet struct {
	seen  map[string]bool
	items []string
}

func newFindingSet() *findingSet {
	return &findingSet{seen: make(map[string]bool)}
}

func (f *findingSet) add(s string) {
	if f.seen[s] {
		return
	}
	f.seen[s] = true
	f.items = append(f.items, s)
}

func scoreDepartment(dept Department, a *Assessment, findings *findingSet) Score {
	s := Score{Department: dept}
	for _, r := range scoringRules[dept] {
		if !r.when(a) {
			continue
		}
		s.Score += r.points
		s.ContributingFactors = append(s.ContributingFactors, r.factor(a))
		if r.finding != nil {
			findings.add(r.finding(a))
		}
	}
	// GeneralMedicine is the fallback department: an assessment that
	// matched nothing still warrants a general evaluation.
	if dept == GeneralMedicine && s.Score == 0 {
		s.Score = 10
		s.ContributingFactors = append(s.ContributingFactors, "General evaluation recommended")
	}
	return s
}

// ScoreAll evaluates every department's rule table against the assessment,
// in the fixed evaluation order. It returns the six scores (unsorted) and
// the de-duplicated key findings in encounter order.
func ScoreAll(a *Assessment) ([]Score, []string) {
	findings := newFindingSet()
	scores := make([]Score, 0, len(evalOrder))
	for _, dept := range evalOrder {
		scores = append(scores, scoreDepartment(dept, a, findings))
	}
	return scores, findings.items
}

// SortScores orders scores descending. The sort is stable so that equal
// scores keep the evaluation order.
func SortScores(scores []Score) {
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Score > scores[j].Score
	})
}
