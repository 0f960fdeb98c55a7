package department

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/triagecore/triage/internal/domain/triage"
	"github.com/triagecore/triage/internal/platform/auth"
	"github.com/triagecore/triage/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	readGroup := api.Group("", auth.RequireRole("admin", "physician", "nurse"))
	readGroup.GET("/patients/:id/predictions", h.ListPatientPredictions)
	readGroup.GET("/patients/:id/predictions/latest", h.GetLatestPrediction)
	readGroup.GET("/predictions", h.ListPredictions)
	readGroup.GET("/predictions/distribution", h.GetDistribution)

	writeGroup := api.Group("", auth.RequireRole("admin", "physician"))
	writeGroup.POST("/patients/:id/department-analysis", h.Analyze)
}

type analyzeRequest struct {
	Patient    triage.Patient    `json:"patient"`
	Assessment triage.Assessment `json:"assessment"`
}

func (h *Handler) Analyze(c echo.Context) error {
	patientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid patient id")
	}
	var req analyzeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	req.Patient.ID = patientID
	req.Assessment.PatientID = patientID

	result, err := h.svc.Analyze(c.Request().Context(), &req.Assessment, &req.Patient)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, result)
}

func (h *Handler) ListPatientPredictions(c echo.Context) error {
	patientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid patient id")
	}
	p := pagination.FromContext(c)
	items, total, err := h.svc.PatientPredictions(c.Request().Context(), patientID, p.Limit, p.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, p.Limit, p.Offset))
}

func (h *Handler) GetLatestPrediction(c echo.Context) error {
	patientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid patient id")
	}
	prediction, err := h.svc.LatestPrediction(c.Request().Context(), patientID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "no prediction for patient")
	}
	return c.JSON(http.StatusOK, prediction)
}

func (h *Handler) ListPredictions(c echo.Context) error {
	var dept *Department
	if d := c.QueryParam("department"); d != "" {
		v := Department(d)
		if !v.Valid() {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid department")
		}
		dept = &v
	}
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	items, err := h.svc.ListPredictions(c.Request().Context(), dept, limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) GetDistribution(c echo.Context) error {
	counts, err := h.svc.DepartmentDistribution(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, counts)
}
