package department

import (
	"fmt"
	"strings"

	"github.com/triagecore/triage/internal/domain/triage"
)

// priorityAttentionScore is the recommended-department score at or above
// which the closing sentence asks for priority attention.
const priorityAttentionScore = 60

var interpretations = map[Department]string{
	Emergency:       "These findings indicate a potentially life-threatening condition requiring immediate emergency intervention.",
	Cardiology:      "These findings suggest possible cardiovascular involvement and cardiac stress that warrants cardiological assessment.",
	Pulmonology:     "These findings indicate respiratory compromise requiring pulmonary evaluation and management.",
	Neurology:       "These findings suggest neurological involvement that requires specialized neurological assessment.",
	Orthopedics:     "The pain pattern and presentation suggest musculoskeletal involvement requiring orthopedic evaluation.",
	GeneralMedicine: "These findings warrant general medical evaluation to determine the underlying cause.",
}

func interpretation(dept Department) string {
	if s, ok := interpretations[dept]; ok {
		return s
	}
	return "Clinical evaluation is recommended."
}

// Explain renders the deterministic clinical explanation paragraph for a
// recommendation. Identical inputs always produce identical text; the
// output is a presentation contract, not free prose.
func Explain(a *Assessment, patient *triage.Patient, recommended Department, scores []Score) string {
	var sb strings.Builder

	var deptScore Score
	for _, s := range scores {
		if s.Department == recommended {
			deptScore = s
			break
		}
	}

	sb.WriteString(fmt.Sprintf("Patient %s presents with ", patient.FullName()))

	var symptoms []string
	if a.ChestPain >= mild {
		symptoms = append(symptoms, fmt.Sprintf("%s chest pain", a.ChestPain.Lower()))
	}
	if a.ShortnessOfBreath >= mild {
		symptoms = append(symptoms, fmt.Sprintf("%s shortness of breath", a.ShortnessOfBreath.Lower()))
	}
	if a.AlteredConsciousness >= mild {
		symptoms = append(symptoms, fmt.Sprintf("%s altered consciousness", a.AlteredConsciousness.Lower()))
	}
	if a.Bleeding >= mild {
		symptoms = append(symptoms, fmt.Sprintf("%s bleeding", a.Bleeding.Lower()))
	}
	if a.Fever >= mild {
		symptoms = append(symptoms, fmt.Sprintf("fever (%.1f°C)", a.Temperature))
	}
	if a.PainLevel > 3 {
		symptoms = append(symptoms, fmt.Sprintf("pain level %d/10", a.PainLevel))
	}

	if len(symptoms) > 0 {
		sb.WriteString(strings.Join(symptoms, ", "))
	} else {
		sb.WriteString("non-specific symptoms")
	}
	sb.WriteString(". ")

	var vitals []string
	if a.HeartRate > 100 {
		vitals = append(vitals, fmt.Sprintf("elevated heart rate (%.0f bpm)", a.HeartRate))
	} else if a.HeartRate < 60 {
		vitals = append(vitals, fmt.Sprintf("low heart rate (%.0f bpm)", a.HeartRate))
	}
	if a.SystolicBP > 140 || a.DiastolicBP > 90 {
		vitals = append(vitals, fmt.Sprintf("elevated blood pressure (%.0f/%.0f mmHg)", a.SystolicBP, a.DiastolicBP))
	} else if a.SystolicBP < 90 {
		vitals = append(vitals, fmt.Sprintf("low blood pressure (%.0f/%.0f mmHg)", a.SystolicBP, a.DiastolicBP))
	}
	if a.OxygenSaturation < 95 {
		vitals = append(vitals, fmt.Sprintf("reduced oxygen saturation (%.0f%%)", a.OxygenSaturation))
	}
	if a.RespiratoryRate > 20 {
		vitals = append(vitals, fmt.Sprintf("elevated respiratory rate (%.0f/min)", a.RespiratoryRate))
	}

	if len(vitals) > 0 {
		sb.WriteString(fmt.Sprintf("Vital signs show %s. ", strings.Join(vitals, " and ")))
	}

	sb.WriteString(interpretation(recommended))

	sb.WriteString(fmt.Sprintf(" Therefore, %s is recommended for further evaluation", recommended.Display()))
	if deptScore.Score >= priorityAttentionScore {
		sb.WriteString(" with priority attention")
	}
	sb.WriteString(".")

	return sb.String()
}
