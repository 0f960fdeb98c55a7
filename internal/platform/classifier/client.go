package classifier

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/triagecore/triage/internal/domain/triage"
)

// Client calls the external risk-classifier service over HTTP. It
// implements triage.Classifier.
type Client struct {
	http *resty.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	c := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(2).
		SetRetryWaitTime(200 * time.Millisecond).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil || r.StatusCode() >= 500
		})
	return &Client{http: c}
}

type predictRequest struct {
	Age              int     `json:"age"`
	HeartRate        float64 `json:"heart_rate"`
	SystolicBP       float64 `json:"systolic_bp"`
	DiastolicBP      float64 `json:"diastolic_bp"`
	Temperature      float64 `json:"temperature"`
	RespiratoryRate  float64 `json:"respiratory_rate"`
	OxygenSaturation float64 `json:"oxygen_saturation"`
}

type predictResponse struct {
	Level      int     `json:"level"`
	RiskScore  float64 `json:"risk_score"`
	Confidence float64 `json:"confidence"`
}

func (c *Client) Predict(ctx context.Context, vitals triage.Vitals, age int) (triage.RiskPrediction, error) {
	var out predictResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(predictRequest{
			Age:              age,
			HeartRate:        vitals.HeartRate,
			SystolicBP:       vitals.SystolicBP,
			DiastolicBP:      vitals.DiastolicBP,
			Temperature:      vitals.Temperature,
			RespiratoryRate:  vitals.RespiratoryRate,
			OxygenSaturation: vitals.OxygenSaturation,
		}).
		SetResult(&out).
		Post("/predict")
	if err != nil {
		return triage.RiskPrediction{}, fmt.Errorf("classifier request: %w", err)
	}
	if resp.IsError() {
		return triage.RiskPrediction{}, fmt.Errorf("classifier returned %s", resp.Status())
	}
	if out.Level < int(triage.LevelEmergency) || out.Level > int(triage.LevelNonUrgent) {
		return triage.RiskPrediction{}, fmt.Errorf("classifier returned invalid level %d", out.Level)
	}
	return triage.RiskPrediction{
		Level:      triage.Level(out.Level),
		RiskScore:  out.RiskScore,
		Confidence: out.Confidence,
	}, nil
}
