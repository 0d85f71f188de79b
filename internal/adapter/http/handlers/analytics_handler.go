package handlers

import (
	"net/http"
	"time"

	"recibozap/internal/usecase"
	"recibozap/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidDateRange = pkg.NewDomainErrorSimple("INVALID_DATE_RANGE", "start/end must be YYYY-MM-DD", http.StatusBadRequest)

// AnalyticsHandler serves the dashboard and financial report reads.

type AnalyticsHandler struct {
	analytics usecase.IAnalyticsUseCase
}

func NewAnalyticsHandler(analytics usecase.IAnalyticsUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics}
}

func (h *AnalyticsHandler) Dashboard(c *gin.Context) {
	dashboard, err := h.analytics.GetUserDashboard(c.Request.Context(), c.Param("phone"))
	if err != nil {
		appErr := mapUserError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, dashboard)
}

// Report accepts optional start/end query params (YYYY-MM-DD); absent bounds
// mean an open-ended range.
func (h *AnalyticsHandler) Report(c *gin.Context) {
	start, ok := parseDateParam(c.Query("start"))
	if !ok {
		c.JSON(errInvalidDateRange.HTTPStatus, errInvalidDateRange.ToHTTPError())
		return
	}
	end, ok := parseDateParam(c.Query("end"))
	if !ok {
		c.JSON(errInvalidDateRange.HTTPStatus, errInvalidDateRange.ToHTTPError())
		return
	}

	report, err := h.analytics.GetFinancialReport(c.Request.Context(), c.Param("phone"), start, end)
	if err != nil {
		appErr := mapUserError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, report)
}

func parseDateParam(v string) (time.Time, bool) {
	if v == "" {
		return time.Time{}, true
	}
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
