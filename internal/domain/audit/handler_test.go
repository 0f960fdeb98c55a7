package audit

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/triagecore/triage/internal/platform/auth"
)

func newTestRouter(predictor Predictor) (*echo.Echo, *Service) {
	e := echo.New()
	e.Use(auth.DevAuthMiddleware())
	svc := NewService(predictor, zerolog.Nop())
	NewHandler(svc).RegisterRoutes(e.Group("/api/v1"))
	return e, svc
}

func TestHandler_RunAnalysis(t *testing.T) {
	e, _ := newTestRouter(echoPredictor{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bias-analysis", strings.NewReader(datasetOf(30)))
	req.Header.Set(echo.HeaderContentType, "text/csv")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var result BiasAnalysisResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if !result.IsAvailable {
		t.Error("expected available result")
	}
	if result.TotalRecords != 30 {
		t.Errorf("TotalRecords = %d, want 30", result.TotalRecords)
	}
	if result.FairnessRating != "Excellent" {
		t.Errorf("rating = %q, want Excellent", result.FairnessRating)
	}
}

func TestHandler_RunAnalysis_UndersizedDatasetStillOK(t *testing.T) {
	e, _ := newTestRouter(echoPredictor{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bias-analysis", strings.NewReader(datasetOf(3)))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	// A bad dataset is a domain outcome, not a transport error.
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var result BiasAnalysisResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if result.IsAvailable {
		t.Error("undersized dataset must be unavailable")
	}
}

func TestHandler_GetCachedAnalysis(t *testing.T) {
	e, _ := newTestRouter(echoPredictor{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bias-analysis", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("before any run: status = %d, want 404", rec.Code)
	}

	post := httptest.NewRequest(http.MethodPost, "/api/v1/bias-analysis", strings.NewReader(datasetOf(20)))
	e.ServeHTTP(httptest.NewRecorder(), post)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/bias-analysis", nil)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("after run: status = %d, want 200", rec.Code)
	}
}
