package department

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type predictionRepoPG struct{ pool *pgxpool.Pool }

func NewPredictionRepoPG(pool *pgxpool.Pool) PredictionRepository {
	return &predictionRepoPG{pool: pool}
}

const predictionCols = `id, patient_id, assessment_id, recommended_department, confidence_score,
	clinical_explanation, department_scores, is_emergency_priority, key_findings, predicted_at`

func scanPrediction(row pgx.Row) (*Prediction, error) {
	var p Prediction
	var scoresJSON []byte
	err := row.Scan(&p.ID, &p.PatientID, &p.AssessmentID, &p.RecommendedDepartment, &p.ConfidenceScore,
		&p.ClinicalExplanation, &scoresJSON, &p.IsEmergencyPriority, &p.KeyFindings, &p.PredictedAt)
	if err != nil {
		return nil, err
	}
	if len(scoresJSON) > 0 {
		if err := json.Unmarshal(scoresJSON, &p.DepartmentScores); err != nil {
			return nil, fmt.Errorf("decode department scores: %w", err)
		}
	}
	return &p, nil
}

func (r *predictionRepoPG) Create(ctx context.Context, p *Prediction) error {
	p.ID = uuid.New()
	scoresJSON, err := json.Marshal(p.DepartmentScores)
	if err != nil {
		return fmt.Errorf("encode department scores: %w", err)
	}
	_, err = r.pool.Exec(ctx, `
		INSERT INTO department_prediction (id, patient_id, assessment_id, recommended_department,
			confidence_score, clinical_explanation, department_scores, is_emergency_priority,
			key_findings, predicted_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
		p.ID, p.PatientID, p.AssessmentID, p.RecommendedDepartment,
		p.ConfidenceScore, p.ClinicalExplanation, scoresJSON, p.IsEmergencyPriority,
		p.KeyFindings, p.PredictedAt)
	return err
}

func (r *predictionRepoPG) ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Prediction, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM department_prediction WHERE patient_id = $1`, patientID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `SELECT `+predictionCols+` FROM department_prediction
		WHERE patient_id = $1 ORDER BY predicted_at DESC LIMIT $2 OFFSET $3`, patientID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	items, err := collectPredictions(rows)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *predictionRepoPG) LatestByPatient(ctx context.Context, patientID uuid.UUID) (*Prediction, error) {
	return scanPrediction(r.pool.QueryRow(ctx, `SELECT `+predictionCols+` FROM department_prediction
		WHERE patient_id = $1 ORDER BY predicted_at DESC LIMIT 1`, patientID))
}

func (r *predictionRepoPG) List(ctx context.Context, dept *Department, limit int) ([]*Prediction, error) {
	var rows pgx.Rows
	var err error
	if dept != nil {
		rows, err = r.pool.Query(ctx, `SELECT `+predictionCols+` FROM department_prediction
			WHERE recommended_department = $1 ORDER BY predicted_at DESC LIMIT $2`, *dept, limit)
	} else {
		rows, err = r.pool.Query(ctx, `SELECT `+predictionCols+` FROM department_prediction
			ORDER BY predicted_at DESC LIMIT $1`, limit)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPredictions(rows)
}

func (r *predictionRepoPG) CountByDepartment(ctx context.Context) (map[Department]int, error) {
	rows, err := r.pool.Query(ctx, `SELECT recommended_department, COUNT(*)
		FROM department_prediction GROUP BY recommended_department`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	counts := make(map[Department]int)
	for rows.Next() {
		var dept Department
		var n int
		if err := rows.Scan(&dept, &n); err != nil {
			return nil, err
		}
		counts[dept] = n
	}
	return counts, rows.Err()
}

func collectPredictions(rows pgx.Rows) ([]*Prediction, error) {
	var items []*Prediction
	for rows.Next() {
		p, err := scanPrediction(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}
