package department

import (
	"context"

	"github.com/google/uuid"
)

// PredictionRepository is the narrow storage contract the pipeline
// depends on; any engine implementing it can hold predictions.
type PredictionRepository interface {
	Create(ctx context.Context, p *Prediction) error
	ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Prediction, int, error)
	LatestByPatient(ctx context.Context, patientID uuid.UUID) (*Prediction, error)
	List(ctx context.Context, dept *Department, limit int) ([]*Prediction, error)
	CountByDepartment(ctx context.Context) (map[Department]int, error)
}
