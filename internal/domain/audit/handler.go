package audit

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/triagecore/triage/internal/platform/auth"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	group := api.Group("", auth.RequireRole("admin", "physician"))
	group.POST("/bias-analysis", h.RunAnalysis)
	group.GET("/bias-analysis", h.GetCachedAnalysis)
}

// RunAnalysis accepts the raw dataset as the request body (text/csv or
// tab-separated) and runs the audit. The audit itself never fails; an
// undersized or unreadable dataset comes back as an unavailable result.
func (h *Handler) RunAnalysis(c echo.Context) error {
	result := h.svc.Analyze(c.Request().Body)
	return c.JSON(http.StatusOK, result)
}

func (h *Handler) GetCachedAnalysis(c echo.Context) error {
	result := h.svc.Cached()
	if result == nil {
		return echo.NewHTTPError(http.StatusNotFound, "no bias analysis has been run")
	}
	return c.JSON(http.StatusOK, result)
}
