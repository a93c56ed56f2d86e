package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"pintura_pro/internal/adapter/http/handlers/mocks"
	"pintura_pro/internal/domain/entities"
	"pintura_pro/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestExpenseHandler_CreateExpense(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIExpenseUseCase(ctrl)
		h := NewExpenseHandler(uc)

		r := gin.New()
		r.POST("/v1/despesas", h.CreateExpense)

		req := httptest.NewRequest(http.MethodPost, "/v1/despesas", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIExpenseUseCase(ctrl)
		h := NewExpenseHandler(uc)

		r := gin.New()
		r.POST("/v1/despesas", h.CreateExpense)

		uc.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Expense{})).DoAndReturn(
			func(_ any, e entities.Expense) (entities.Expense, error) {
				if e.Type != entities.ExpenseTypeTinta || e.Amount != 150 {
					t.Fatalf("unexpected expense: %+v", e)
				}
				e.ID = "dsp-1"
				e.Origin = entities.ExpenseOriginManual
				return e, nil
			},
		)

		body := `{"data_despesa":"2024-03-10","tipo_despesa":"Tinta","descricao":"Tinta PU branca","valor":150}`
		req := httptest.NewRequest(http.MethodPost, "/v1/despesas", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d (%s)", w.Code, w.Body.String())
		}
	})
}

func TestExpenseHandler_UpdateExpense(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("derived expense maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIExpenseUseCase(ctrl)
		h := NewExpenseHandler(uc)

		r := gin.New()
		r.PATCH("/v1/despesas/:id", h.UpdateExpense)

		uc.EXPECT().Update(gomock.Any(), "dsp-mat-srv-1", gomock.Any()).Return(entities.Expense{}, usecase.ErrExpenseOwnedByService)

		req := httptest.NewRequest(http.MethodPatch, "/v1/despesas/dsp-mat-srv-1", bytes.NewBufferString(`{"valor":10}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIExpenseUseCase(ctrl)
		h := NewExpenseHandler(uc)

		r := gin.New()
		r.PATCH("/v1/despesas/:id", h.UpdateExpense)

		uc.EXPECT().Update(gomock.Any(), "dsp-1", gomock.AssignableToTypeOf(usecase.ExpenseUpdate{})).DoAndReturn(
			func(_ any, _ string, patch usecase.ExpenseUpdate) (entities.Expense, error) {
				if patch.Amount == nil || *patch.Amount != 200 {
					t.Fatalf("unexpected patch: %+v", patch)
				}
				return entities.Expense{ID: "dsp-1", Amount: 200}, nil
			},
		)

		req := httptest.NewRequest(http.MethodPatch, "/v1/despesas/dsp-1", bytes.NewBufferString(`{"valor":200}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestExpenseHandler_DeleteExpense(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("derived expense maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIExpenseUseCase(ctrl)
		h := NewExpenseHandler(uc)

		r := gin.New()
		r.DELETE("/v1/despesas/:id", h.DeleteExpense)

		uc.EXPECT().Delete(gomock.Any(), "dsp-ter-srv-1").Return(usecase.ErrExpenseOwnedByService)

		req := httptest.NewRequest(http.MethodDelete, "/v1/despesas/dsp-ter-srv-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIExpenseUseCase(ctrl)
		h := NewExpenseHandler(uc)

		r := gin.New()
		r.DELETE("/v1/despesas/:id", h.DeleteExpense)

		uc.EXPECT().Delete(gomock.Any(), "dsp-1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/despesas/dsp-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

func TestExpenseHandler_ListExpenses(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("amount range filters", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIExpenseUseCase(ctrl)
		h := NewExpenseHandler(uc)

		r := gin.New()
		r.GET("/v1/despesas", h.ListExpenses)

		uc.EXPECT().Filter(gomock.Any(), gomock.AssignableToTypeOf(usecase.ExpenseFilters{})).DoAndReturn(
			func(_ any, f usecase.ExpenseFilters) ([]entities.Expense, error) {
				if f.MinAmount == nil || *f.MinAmount != 50 || f.MaxAmount == nil || *f.MaxAmount != 150 {
					t.Fatalf("unexpected amount range: %+v", f)
				}
				if f.Type != entities.ExpenseTypeTinta {
					t.Fatalf("unexpected type: %s", f.Type)
				}
				return nil, nil
			},
		)

		req := httptest.NewRequest(http.MethodGet, "/v1/despesas?tipo_despesa=Tinta&valor_min=50&valor_max=150", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("garbage amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIExpenseUseCase(ctrl)
		h := NewExpenseHandler(uc)

		r := gin.New()
		r.GET("/v1/despesas", h.ListExpenses)

		req := httptest.NewRequest(http.MethodGet, "/v1/despesas?valor_min=abc", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
