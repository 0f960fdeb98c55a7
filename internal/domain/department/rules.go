package department

import (
	"fmt"

	"github.com/triagecore/triage/internal/domain/triage"
)

const (
	none     = triage.SeverityNone
	mild     = triage.SeverityMild
	moderate = triage.SeverityModerate
	severe   = triage.SeveritySevere
)

// rule is one additive scoring criterion. Rules fire independently; a
// single assessment may trigger any number of rules per department.
type rule struct {
	when   func(a *Assessment) bool
	points int
	factor func(a *Assessment) string
	// finding, when non-nil, contributes to the de-duplicated key
	// findings of the final result.
	finding func(a *Assessment) string
}

func text(s string) func(*Assessment) string {
	return func(*Assessment) string { return s }
}

// scoringRules holds the per-department rule tables, keyed in the fixed
// evaluation order of evalOrder.
var scoringRules = map[Department][]rule{
	Emergency:       emergencyRules,
	Cardiology:      cardiologyRules,
	Pulmonology:     pulmonologyRules,
	Neurology:       neurologyRules,
	Orthopedics:     orthopedicsRules,
	GeneralMedicine: generalMedicineRules,
}

var emergencyRules = []rule{
	{
		when:   func(a *Assessment) bool { return a.OxygenSaturation < 90 },
		points: 50,
		factor: func(a *Assessment) string {
			return fmt.Sprintf("Critical O2 saturation (%.0f%%)", a.OxygenSaturation)
		},
		finding: func(a *Assessment) string {
			return fmt.Sprintf("Critically low oxygen saturation: %.0f%%", a.OxygenSaturation)
		},
	},
	{
		when:    func(a *Assessment) bool { return a.Bleeding == severe },
		points:  50,
		factor:  text("Severe bleeding present"),
		finding: text("Severe bleeding requiring immediate attention"),
	},
	{
		when:    func(a *Assessment) bool { return a.AlteredConsciousness == severe },
		points:  50,
		factor:  text("Severe altered consciousness"),
		finding: text("Severely altered level of consciousness"),
	},
	{
		when:   func(a *Assessment) bool { return a.HeartRate > 130 || a.HeartRate < 50 },
		points: 30,
		factor: func(a *Assessment) string {
			return fmt.Sprintf("Critical heart rate (%.0f bpm)", a.HeartRate)
		},
	},
	{
		when:   func(a *Assessment) bool { return a.SystolicBP > 180 || a.SystolicBP < 80 },
		points: 30,
		factor: func(a *Assessment) string {
			return fmt.Sprintf("Critical blood pressure (%.0f/%.0f mmHg)", a.SystolicBP, a.DiastolicBP)
		},
	},
	{
		when: func(a *Assessment) bool {
			return a.ChestPain == severe && a.ShortnessOfBreath >= moderate
		},
		points:  40,
		factor:  text("Severe chest pain with respiratory distress"),
		finding: text("Severe chest pain combined with breathing difficulty"),
	},
}

var cardiologyRules = []rule{
	{
		when:   func(a *Assessment) bool { return a.ChestPain >= moderate },
		points: 40,
		factor: func(a *Assessment) string {
			return fmt.Sprintf("%s chest pain", a.ChestPain)
		},
		finding: func(a *Assessment) string {
			return fmt.Sprintf("%s chest pain present", a.ChestPain)
		},
	},
	{
		when:   func(a *Assessment) bool { return a.HeartRate > 110 },
		points: 20,
		factor: func(a *Assessment) string {
			return fmt.Sprintf("Elevated heart rate (%.0f bpm)", a.HeartRate)
		},
		finding: func(a *Assessment) string {
			return fmt.Sprintf("Tachycardia: %.0f bpm", a.HeartRate)
		},
	},
	{
		when:   func(a *Assessment) bool { return a.HeartRate < 55 },
		points: 25,
		factor: func(a *Assessment) string {
			return fmt.Sprintf("Low heart rate (%.0f bpm)", a.HeartRate)
		},
		finding: func(a *Assessment) string {
			return fmt.Sprintf("Bradycardia: %.0f bpm", a.HeartRate)
		},
	},
	{
		when:   func(a *Assessment) bool { return a.SystolicBP > 160 },
		points: 20,
		factor: func(a *Assessment) string {
			return fmt.Sprintf("Elevated systolic BP (%.0f mmHg)", a.SystolicBP)
		},
		finding: func(a *Assessment) string {
			return fmt.Sprintf("Hypertension: %.0f/%.0f mmHg", a.SystolicBP, a.DiastolicBP)
		},
	},
	{
		when: func(a *Assessment) bool {
			return a.ShortnessOfBreath >= moderate && a.ChestPain >= mild
		},
		points: 20,
		factor: text("Shortness of breath with chest discomfort"),
	},
	{
		when: func(a *Assessment) bool {
			return a.ChestPain >= mild && a.HeartRate > 100 && a.SystolicBP > 140
		},
		points: 15,
		factor: text("Multiple cardiovascular indicators"),
	},
}

var pulmonologyRules = []rule{
	{
		when:   func(a *Assessment) bool { return a.ShortnessOfBreath >= moderate },
		points: 40,
		factor: func(a *Assessment) string {
			return fmt.Sprintf("%s shortness of breath", a.ShortnessOfBreath)
		},
		finding: func(a *Assessment) string {
			return fmt.Sprintf("%s respiratory distress", a.ShortnessOfBreath)
		},
	},
	{
		when: func(a *Assessment) bool {
			return a.OxygenSaturation < 94 && a.OxygenSaturation >= 90
		},
		points: 30,
		factor: func(a *Assessment) string {
			return fmt.Sprintf("Low O2 saturation (%.0f%%)", a.OxygenSaturation)
		},
		finding: func(a *Assessment) string {
			return fmt.Sprintf("Hypoxemia: SpO2 %.0f%%", a.OxygenSaturation)
		},
	},
	{
		when:   func(a *Assessment) bool { return a.RespiratoryRate > 22 },
		points: 20,
		factor: func(a *Assessment) string {
			return fmt.Sprintf("Elevated respiratory rate (%.0f/min)", a.RespiratoryRate)
		},
		finding: func(a *Assessment) string {
			return fmt.Sprintf("Tachypnea: %.0f breaths/min", a.RespiratoryRate)
		},
	},
	{
		when: func(a *Assessment) bool {
			return a.Fever >= moderate && a.ShortnessOfBreath >= mild
		},
		points: 15,
		factor: text("Fever with respiratory symptoms"),
	},
	{
		when: func(a *Assessment) bool {
			return a.Temperature > 38.5 && a.ShortnessOfBreath >= mild
		},
		points: 10,
		factor: func(a *Assessment) string {
			return fmt.Sprintf("Elevated temperature (%.1f°C) with respiratory involvement", a.Temperature)
		},
	},
}

var neurologyRules = []rule{
	{
		when:   func(a *Assessment) bool { return a.AlteredConsciousness >= mild },
		points: 50,
		factor: func(a *Assessment) string {
			return fmt.Sprintf("%s altered consciousness", a.AlteredConsciousness)
		},
		finding: func(a *Assessment) string {
			return fmt.Sprintf("%s altered level of consciousness", a.AlteredConsciousness)
		},
	},
	{
		when: func(a *Assessment) bool {
			return a.PainLevel > 7 && a.ChestPain <= mild
		},
		points: 20,
		factor: func(a *Assessment) string {
			return fmt.Sprintf("Severe pain level (%d/10) - possible headache", a.PainLevel)
		},
		finding: func(a *Assessment) string {
			return fmt.Sprintf("Severe pain: %d/10", a.PainLevel)
		},
	},
	{
		when: func(a *Assessment) bool {
			return a.AlteredConsciousness >= mild && a.SystolicBP > 160
		},
		points:  20,
		factor:  text("Altered consciousness with hypertension - stroke risk"),
		finding: text("Elevated stroke risk factors"),
	},
}

func noCardiacSymptoms(a *Assessment) bool {
	return a.ChestPain <= mild && a.ShortnessOfBreath <= mild
}

var orthopedicsRules = []rule{
	{
		when: func(a *Assessment) bool {
			return a.PainLevel > 7 && noCardiacSymptoms(a) && a.AlteredConsciousness == none
		},
		points: 40,
		factor: func(a *Assessment) string {
			return fmt.Sprintf("Severe localized pain (%d/10)", a.PainLevel)
		},
		finding: func(a *Assessment) string {
			return fmt.Sprintf("Severe isolated pain: %d/10 - possible musculoskeletal", a.PainLevel)
		},
	},
	{
		when: func(a *Assessment) bool {
			normalVitals := a.HeartRate >= 60 && a.HeartRate <= 100 &&
				a.SystolicBP >= 90 && a.SystolicBP <= 140
			return a.PainLevel >= 5 && a.PainLevel <= 7 && noCardiacSymptoms(a) && normalVitals
		},
		points: 25,
		factor: text("Moderate pain with stable vitals"),
	},
	{
		when: func(a *Assessment) bool {
			return a.Bleeding == mild && a.PainLevel >= 4
		},
		points: 15,
		factor: text("Minor bleeding with pain - possible trauma"),
	},
}

func highFever(a *Assessment) bool {
	return a.Fever >= severe || a.Temperature > 39
}

func noSpecificSymptoms(a *Assessment) bool {
	return a.ChestPain <= mild && a.ShortnessOfBreath <= mild && a.AlteredConsciousness == none
}

var generalMedicineRules = []rule{
	{
		when:   highFever,
		points: 30,
		factor: func(a *Assessment) string {
			return fmt.Sprintf("High fever (%.1f°C)", a.Temperature)
		},
		finding: func(a *Assessment) string {
			return fmt.Sprintf("High fever: %.1f°C", a.Temperature)
		},
	},
	{
		// Fires only when the high-fever rule did not.
		when: func(a *Assessment) bool {
			return !highFever(a) &&
				(a.Fever == moderate || (a.Temperature > 38 && a.Temperature <= 39))
		},
		points: 20,
		factor: func(a *Assessment) string {
			return fmt.Sprintf("Moderate fever (%.1f°C)", a.Temperature)
		},
	},
	{
		when: func(a *Assessment) bool {
			mildlyAbnormal := (a.HeartRate > 100 && a.HeartRate <= 110) ||
				(a.SystolicBP > 140 && a.SystolicBP <= 160)
			return mildlyAbnormal && noSpecificSymptoms(a)
		},
		points: 20,
		factor: text("Mildly abnormal vitals requiring general evaluation"),
	},
	{
		when: func(a *Assessment) bool {
			return a.PainLevel >= 1 && a.PainLevel <= 4 && noSpecificSymptoms(a)
		},
		points: 15,
		factor: func(a *Assessment) string {
			return fmt.Sprintf("Mild pain (%d/10) for general assessment", a.PainLevel)
		},
	},
	{
		when: func(a *Assessment) bool {
			return a.Bleeding == mild && a.PainLevel < 4
		},
		points: 10,
		factor: text("Minor bleeding for evaluation"),
	},
}
