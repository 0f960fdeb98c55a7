package department

import (
	"testing"

	"github.com/triagecore/triage/internal/domain/triage"
)

// nominalAssessment returns an assessment with unremarkable vitals and no
// symptoms.
func nominalAssessment() *Assessment {
	return &Assessment{
		Vitals: triage.Vitals{
			HeartRate:        75,
			SystolicBP:       120,
			DiastolicBP:      80,
			Temperature:      37,
			RespiratoryRate:  16,
			OxygenSaturation: 98,
		},
	}
}

func scoreFor(t *testing.T, scores []Score, dept Department) Score {
	t.Helper()
	for _, s := range scores {
		if s.Department == dept {
			return s
		}
	}
	t.Fatalf("no score for %s", dept)
	return Score{}
}

func TestScoreAll_ReturnsSixDepartmentsInOrder(t *testing.T) {
	scores, _ := ScoreAll(nominalAssessment())
	if len(scores) != 6 {
		t.Fatalf("expected 6 scores, got %d", len(scores))
	}
	for i, dept := range evalOrder {
		if scores[i].Department != dept {
			t.Errorf("position %d: expected %s, got %s", i, dept, scores[i].Department)
		}
	}
}

func TestScoreAll_ModerateChestPainTachycardia(t *testing.T) {
	a := nominalAssessment()
	a.ChestPain = triage.SeverityModerate
	a.HeartRate = 120

	scores, _ := ScoreAll(a)

	if got := scoreFor(t, scores, Cardiology).Score; got != 60 {
		t.Errorf("Cardiology score = %d, want 60", got)
	}
	for _, dept := range []Department{Emergency, Pulmonology, Neurology, Orthopedics} {
		if got := scoreFor(t, scores, dept).Score; got != 0 {
			t.Errorf("%s score = %d, want 0", dept, got)
		}
	}
	if got := scoreFor(t, scores, GeneralMedicine).Score; got != 10 {
		t.Errorf("GeneralMedicine score = %d, want baseline 10", got)
	}
}

func TestScoreAll_EmergencyRules(t *testing.T) {
	a := nominalAssessment()
	a.OxygenSaturation = 85
	a.Bleeding = triage.SeveritySevere

	scores, findings := ScoreAll(a)
	em := scoreFor(t, scores, Emergency)
	if em.Score != 100 {
		t.Errorf("Emergency score = %d, want 100", em.Score)
	}
	if len(em.ContributingFactors) != 2 {
		t.Errorf("expected 2 contributing factors, got %v", em.ContributingFactors)
	}
	if em.ContributingFactors[0] != "Critical O2 saturation (85%)" {
		t.Errorf("unexpected factor text: %q", em.ContributingFactors[0])
	}

	want := map[string]bool{
		"Critically low oxygen saturation: 85%":         true,
		"Severe bleeding requiring immediate attention": true,
	}
	for _, f := range findings {
		delete(want, f)
	}
	if len(want) != 0 {
		t.Errorf("missing key findings: %v (got %v)", want, findings)
	}
}

func TestScoreAll_RulesFireIndependently(t *testing.T) {
	a := nominalAssessment()
	a.ChestPain = triage.SeveritySevere
	a.HeartRate = 145
	a.SystolicBP = 170

	// Cardiology: chest pain (40) + HR>110 (20) + SBP>160 (20) +
	// multi-indicator (15) = 95.
	scores, _ := ScoreAll(a)
	if got := scoreFor(t, scores, Cardiology).Score; got != 95 {
		t.Errorf("Cardiology score = %d, want 95", got)
	}
}

func TestScoreAll_GeneralMedicineFeverBranchesExclusive(t *testing.T) {
	a := nominalAssessment()
	a.Temperature = 39.5
	a.Fever = triage.SeverityModerate

	// High fever wins; the moderate branch must not also fire.
	scores, _ := ScoreAll(a)
	gm := scoreFor(t, scores, GeneralMedicine)
	if gm.Score != 30 {
		t.Errorf("GeneralMedicine score = %d, want 30", gm.Score)
	}
	if gm.ContributingFactors[0] != "High fever (39.5°C)" {
		t.Errorf("unexpected factor: %q", gm.ContributingFactors[0])
	}
}

func TestScoreAll_KeyFindingsDeduplicated(t *testing.T) {
	a := nominalAssessment()
	a.AlteredConsciousness = triage.SeverityMild
	a.SystolicBP = 170
	a.HeartRate = 115

	_, findings := ScoreAll(a)
	seen := make(map[string]int)
	for _, f := range findings {
		seen[f]++
		if seen[f] > 1 {
			t.Errorf("duplicated finding: %q", f)
		}
	}
}

func TestSortScores_StableOnTies(t *testing.T) {
	scores, _ := ScoreAll(nominalAssessment())
	SortScores(scores)

	// GeneralMedicine baseline should lead; the five zero scores keep
	// evaluation order.
	if scores[0].Department != GeneralMedicine {
		t.Fatalf("top = %s, want GeneralMedicine", scores[0].Department)
	}
	rest := []Department{Emergency, Cardiology, Pulmonology, Neurology, Orthopedics}
	for i, dept := range rest {
		if scores[i+1].Department != dept {
			t.Errorf("position %d: got %s, want %s", i+1, scores[i+1].Department, dept)
		}
	}
}
