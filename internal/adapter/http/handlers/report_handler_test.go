package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"pintura_pro/internal/adapter/http/handlers/mocks"
	"pintura_pro/internal/domain/entities"
	"pintura_pro/internal/domain/period"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestReportHandler_GetSummary(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("defaults to current month", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceUseCase(ctrl)
		h := NewReportHandler(uc)

		r := gin.New()
		r.GET("/v1/relatorios/resumo", h.GetSummary)

		uc.EXPECT().Summary(gomock.Any(), period.Filter{Type: period.CurrentMonth}).Return(entities.Summary{
			Revenue:       1500,
			Expenses:      300,
			NetProfit:     1200,
			ServiceCount:  2,
			AverageTicket: 750,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/relatorios/resumo", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["faturamento"] != 1500.0 {
			t.Fatalf("unexpected revenue: %v", body["faturamento"])
		}
		if body["lucro_liquido_formatado"] != "R$ 1.200,00" {
			t.Fatalf("unexpected formatted profit: %v", body["lucro_liquido_formatado"])
		}
	})

	t.Run("named period is forwarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceUseCase(ctrl)
		h := NewReportHandler(uc)

		r := gin.New()
		r.GET("/v1/relatorios/resumo", h.GetSummary)

		uc.EXPECT().Summary(gomock.Any(), period.Filter{Type: period.Last3Months}).Return(entities.Summary{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/relatorios/resumo?periodo=ultimos_3_meses", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("invalid custom date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceUseCase(ctrl)
		h := NewReportHandler(uc)

		r := gin.New()
		r.GET("/v1/relatorios/resumo", h.GetSummary)

		req := httptest.NewRequest(http.MethodGet, "/v1/relatorios/resumo?periodo=personalizado&data_inicio=bogus", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
