package triage

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type assessmentRepoPG struct{ pool *pgxpool.Pool }

func NewAssessmentRepoPG(pool *pgxpool.Pool) AssessmentRepository {
	return &assessmentRepoPG{pool: pool}
}

const assessmentCols = `id, patient_id, heart_rate, systolic_bp, diastolic_bp, temperature,
	respiratory_rate, oxygen_saturation, pain_level, chest_pain, shortness_of_breath,
	altered_consciousness, bleeding, fever, additional_symptoms, notes,
	assigned_level, risk_score, model_confidence, assessed_at, assessed_by, created_at`

func scanAssessment(row pgx.Row) (*Assessment, error) {
	var a Assessment
	err := row.Scan(&a.ID, &a.PatientID, &a.HeartRate, &a.SystolicBP, &a.DiastolicBP, &a.Temperature,
		&a.RespiratoryRate, &a.OxygenSaturation, &a.PainLevel, &a.ChestPain, &a.ShortnessOfBreath,
		&a.AlteredConsciousness, &a.Bleeding, &a.Fever, &a.AdditionalSymptoms, &a.Notes,
		&a.AssignedLevel, &a.RiskScore, &a.ModelConfidence, &a.AssessedAt, &a.AssessedBy, &a.CreatedAt)
	return &a, err
}

func (r *assessmentRepoPG) Create(ctx context.Context, a *Assessment) error {
	a.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO triage_assessment (id, patient_id, heart_rate, systolic_bp, diastolic_bp,
			temperature, respiratory_rate, oxygen_saturation, pain_level, chest_pain,
			shortness_of_breath, altered_consciousness, bleeding, fever, additional_symptoms,
			notes, assigned_level, risk_score, model_confidence, assessed_at, assessed_by)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21)`,
		a.ID, a.PatientID, a.HeartRate, a.SystolicBP, a.DiastolicBP,
		a.Temperature, a.RespiratoryRate, a.OxygenSaturation, a.PainLevel, a.ChestPain,
		a.ShortnessOfBreath, a.AlteredConsciousness, a.Bleeding, a.Fever, a.AdditionalSymptoms,
		a.Notes, a.AssignedLevel, a.RiskScore, a.ModelConfidence, a.AssessedAt, a.AssessedBy)
	return err
}

func (r *assessmentRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Assessment, error) {
	return scanAssessment(r.pool.QueryRow(ctx, `SELECT `+assessmentCols+` FROM triage_assessment WHERE id = $1`, id))
}

func (r *assessmentRepoPG) ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Assessment, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM triage_assessment WHERE patient_id = $1`, patientID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `SELECT `+assessmentCols+` FROM triage_assessment
		WHERE patient_id = $1 ORDER BY assessed_at DESC LIMIT $2 OFFSET $3`, patientID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Assessment
	for rows.Next() {
		a, err := scanAssessment(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, a)
	}
	return items, total, nil
}
