package department

import (
	"strings"
	"testing"

	"github.com/triagecore/triage/internal/domain/triage"
)

func testPatient() *triage.Patient {
	return &triage.Patient{FirstName: "Jane", LastName: "Doe"}
}

func TestExplain_Deterministic(t *testing.T) {
	a := nominalAssessment()
	a.ChestPain = triage.SeverityModerate
	a.HeartRate = 120
	scores, _ := ScoreAll(a)
	SortScores(scores)

	first := Explain(a, testPatient(), Cardiology, scores)
	second := Explain(a, testPatient(), Cardiology, scores)
	if first != second {
		t.Fatalf("explanation not deterministic:\n%s\n%s", first, second)
	}
}

func TestExplain_CardiologyScenario(t *testing.T) {
	a := nominalAssessment()
	a.ChestPain = triage.SeverityModerate
	a.HeartRate = 120
	scores, _ := ScoreAll(a)
	SortScores(scores)

	got := Explain(a, testPatient(), Cardiology, scores)
	want := "Patient Jane Doe presents with moderate chest pain. " +
		"Vital signs show elevated heart rate (120 bpm). " +
		"These findings suggest possible cardiovascular involvement and cardiac stress that warrants cardiological assessment." +
		" Therefore, Cardiology is recommended for further evaluation with priority attention."
	if got != want {
		t.Errorf("explanation mismatch:\ngot:  %s\nwant: %s", got, want)
	}
}

func TestExplain_NonSpecificSymptoms(t *testing.T) {
	a := nominalAssessment()
	scores, _ := ScoreAll(a)
	SortScores(scores)

	got := Explain(a, testPatient(), GeneralMedicine, scores)
	if !strings.HasPrefix(got, "Patient Jane Doe presents with non-specific symptoms. ") {
		t.Errorf("missing non-specific symptom sentence: %s", got)
	}
	if strings.Contains(got, "Vital signs show") {
		t.Errorf("nominal vitals must not produce a vitals sentence: %s", got)
	}
	if strings.Contains(got, "priority attention") {
		t.Errorf("baseline score must not ask for priority attention: %s", got)
	}
	if !strings.Contains(got, "Therefore, General Medicine is recommended for further evaluation.") {
		t.Errorf("missing closing sentence: %s", got)
	}
}

func TestExplain_MultipleSymptomsAndVitals(t *testing.T) {
	a := nominalAssessment()
	a.ShortnessOfBreath = triage.SeveritySevere
	a.Fever = triage.SeverityMild
	a.Temperature = 38.2
	a.PainLevel = 6
	a.OxygenSaturation = 92
	a.RespiratoryRate = 24

	scores, _ := ScoreAll(a)
	SortScores(scores)

	got := Explain(a, testPatient(), Pulmonology, scores)
	if !strings.Contains(got, "severe shortness of breath, fever (38.2°C), pain level 6/10. ") {
		t.Errorf("symptoms not joined in order: %s", got)
	}
	if !strings.Contains(got, "Vital signs show reduced oxygen saturation (92%) and elevated respiratory rate (24/min). ") {
		t.Errorf("vitals not joined with \" and \": %s", got)
	}
	if !strings.Contains(got, "These findings indicate respiratory compromise requiring pulmonary evaluation and management.") {
		t.Errorf("missing interpretation: %s", got)
	}
}

func TestExplain_LowVitalsBranches(t *testing.T) {
	a := nominalAssessment()
	a.HeartRate = 48
	a.SystolicBP = 85

	scores, _ := ScoreAll(a)
	got := Explain(a, testPatient(), GeneralMedicine, scores)
	if !strings.Contains(got, "low heart rate (48 bpm) and low blood pressure (85/80 mmHg)") {
		t.Errorf("low-vitals branches missing: %s", got)
	}
}
