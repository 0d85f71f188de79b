package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"recibozap/internal/adapter/http/handlers/mocks"
	"recibozap/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newAnalyticsRouter(h *AnalyticsHandler) *gin.Engine {
	r := gin.New()
	r.GET("/api/analytics/:phone/dashboard", h.Dashboard)
	r.GET("/api/analytics/:phone/report", h.Report)
	return r
}

func TestAnalyticsHandler_Dashboard(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		analytics := mocks.NewMockIAnalyticsUseCase(ctrl)
		h := NewAnalyticsHandler(analytics)
		r := newAnalyticsRouter(h)

		analytics.EXPECT().GetUserDashboard(gomock.Any(), "+5511999999999").Return(usecase.Dashboard{
			Summary: usecase.DashboardSummary{TotalReceipts: 3, TotalAmount: 600},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/analytics/%2B5511999999999/dashboard", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		summary, _ := body["summary"].(map[string]any)
		if summary["total_receipts"] != float64(3) {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("unknown user answers 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		analytics := mocks.NewMockIAnalyticsUseCase(ctrl)
		h := NewAnalyticsHandler(analytics)
		r := newAnalyticsRouter(h)

		analytics.EXPECT().GetUserDashboard(gomock.Any(), gomock.Any()).Return(usecase.Dashboard{}, usecase.ErrUserNotFound)

		req := httptest.NewRequest(http.MethodGet, "/api/analytics/%2B5511999999999/dashboard", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestAnalyticsHandler_Report(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("passes the parsed period", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		analytics := mocks.NewMockIAnalyticsUseCase(ctrl)
		h := NewAnalyticsHandler(analytics)
		r := newAnalyticsRouter(h)

		start := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2025, time.July, 31, 0, 0, 0, 0, time.UTC)
		analytics.EXPECT().GetFinancialReport(gomock.Any(), "+5511999999999", start, end).
			Return(usecase.FinancialReport{Start: start, End: end}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/analytics/%2B5511999999999/report?start=2025-07-01&end=2025-07-31", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("absent bounds mean open range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		analytics := mocks.NewMockIAnalyticsUseCase(ctrl)
		h := NewAnalyticsHandler(analytics)
		r := newAnalyticsRouter(h)

		analytics.EXPECT().GetFinancialReport(gomock.Any(), "+5511999999999", time.Time{}, time.Time{}).
			Return(usecase.FinancialReport{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/analytics/%2B5511999999999/report", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("malformed date answers 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewAnalyticsHandler(mocks.NewMockIAnalyticsUseCase(ctrl))
		r := newAnalyticsRouter(h)

		req := httptest.NewRequest(http.MethodGet, "/api/analytics/%2B5511999999999/report?start=23%2F07%2F2025", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
