package department

import (
	"testing"

	"github.com/triagecore/triage/internal/domain/triage"
)

func TestEmergencyPriority(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(a *Assessment)
		want   bool
	}{
		{"nominal", func(a *Assessment) {}, false},
		{"low oxygen", func(a *Assessment) { a.OxygenSaturation = 89 }, true},
		{"oxygen at threshold", func(a *Assessment) { a.OxygenSaturation = 90 }, false},
		{"severe bleeding", func(a *Assessment) { a.Bleeding = triage.SeveritySevere }, true},
		{"moderate bleeding", func(a *Assessment) { a.Bleeding = triage.SeverityModerate }, false},
		{"severe altered consciousness", func(a *Assessment) { a.AlteredConsciousness = triage.SeveritySevere }, true},
		{
			"severe chest pain with breathing difficulty",
			func(a *Assessment) {
				a.ChestPain = triage.SeveritySevere
				a.ShortnessOfBreath = triage.SeverityModerate
			},
			true,
		},
		{
			"severe chest pain alone",
			func(a *Assessment) { a.ChestPain = triage.SeveritySevere },
			false,
		},
		{"extreme tachycardia", func(a *Assessment) { a.HeartRate = 151 }, true},
		{"extreme bradycardia", func(a *Assessment) { a.HeartRate = 39 }, true},
		{"hypertensive crisis", func(a *Assessment) { a.SystolicBP = 201 }, true},
		{"profound hypotension", func(a *Assessment) { a.SystolicBP = 69 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := nominalAssessment()
			tt.mutate(a)
			if got := EmergencyPriority(a); got != tt.want {
				t.Errorf("EmergencyPriority() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRecommend_EmergencyOverrideBeatsScores(t *testing.T) {
	sorted := []Score{
		{Department: Cardiology, Score: 95},
		{Department: Emergency, Score: 30},
	}
	if got := Recommend(sorted, true); got != Emergency {
		t.Errorf("Recommend() = %s, want Emergency", got)
	}
}

func TestRecommend_ClearWinner(t *testing.T) {
	sorted := []Score{
		{Department: Pulmonology, Score: 70},
		{Department: Cardiology, Score: 40},
		{Department: GeneralMedicine, Score: 10},
	}
	if got := Recommend(sorted, false); got != Pulmonology {
		t.Errorf("Recommend() = %s, want Pulmonology", got)
	}
}

func TestRecommend_TieBreakUsesPriorityOrder(t *testing.T) {
	// Pulmonology leads on raw score but Cardiology sits within the
	// tie-break margin and outranks it.
	sorted := []Score{
		{Department: Pulmonology, Score: 60},
		{Department: Cardiology, Score: 55},
		{Department: GeneralMedicine, Score: 10},
	}
	if got := Recommend(sorted, false); got != Cardiology {
		t.Errorf("Recommend() = %s, want Cardiology", got)
	}
}

func TestRecommend_TieBreakIncludesAllContenders(t *testing.T) {
	sorted := []Score{
		{Department: Orthopedics, Score: 50},
		{Department: Neurology, Score: 45},
		{Department: Pulmonology, Score: 41},
		{Department: GeneralMedicine, Score: 10},
	}
	// Pulmonology is inside the margin of the top score and has the
	// highest priority among the contenders.
	if got := Recommend(sorted, false); got != Pulmonology {
		t.Errorf("Recommend() = %s, want Pulmonology", got)
	}
}

func TestRecommend_MarginBoundary(t *testing.T) {
	// A gap of exactly the margin still triggers the tie-break.
	sorted := []Score{
		{Department: Orthopedics, Score: 50},
		{Department: Emergency, Score: 40},
	}
	if got := Recommend(sorted, false); got != Emergency {
		t.Errorf("gap of 10: Recommend() = %s, want Emergency", got)
	}

	sorted[1].Score = 39
	if got := Recommend(sorted, false); got != Orthopedics {
		t.Errorf("gap of 11: Recommend() = %s, want Orthopedics", got)
	}
}
