package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"madeireira_api/internal/adapter/http/handlers/mocks"
	"madeireira_api/internal/domain/entities"
	"madeireira_api/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestOrcamentoHandler_CreateOrcamento(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing client", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrcamentoUseCase(ctrl)
		h := NewOrcamentoHandler(uc)

		r := gin.New()
		r.POST("/api/orcamentos", h.CreateOrcamento)

		req := httptest.NewRequest(http.MethodPost, "/api/orcamentos", bytes.NewBufferString(`{"data":"2026-09-01","itens":[{"qtd":1,"precoUnitario":10}]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("empty items maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrcamentoUseCase(ctrl)
		h := NewOrcamentoHandler(uc)

		r := gin.New()
		r.POST("/api/orcamentos", h.CreateOrcamento)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Orcamento{}, usecase.ErrEmptyItems)

		req := httptest.NewRequest(http.MethodPost, "/api/orcamentos", bytes.NewBufferString(`{"data":"2026-09-01","cliente":"Fazenda","itens":[]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success forwards items and returns 201", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrcamentoUseCase(ctrl)
		h := NewOrcamentoHandler(uc)

		r := gin.New()
		r.POST("/api/orcamentos", h.CreateOrcamento)

		now := time.Now().UTC()
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, novo usecase.NovoOrcamento) (entities.Orcamento, error) {
				if len(novo.Itens) != 2 || novo.Itens[0].Qtd != 50 || novo.Itens[1].PrecoUnitario != 12.5 {
					t.Fatalf("unexpected items: %+v", novo.Itens)
				}
				return entities.Orcamento{
					ID: entities.NewOrcamentoID(now), Data: novo.Data, Cliente: novo.Cliente,
					Itens: novo.Itens, Total: entities.TotalItens(novo.Itens), CriadoEm: now,
				}, nil
			},
		)

		body := `{"data":"2026-09-01","cliente":"Fazenda Boa Vista","itens":[{"descricao":"Mourão 20cm","qtd":50,"precoUnitario":25},{"produtoId":2,"qtd":10,"precoUnitario":12.5}]}`
		req := httptest.NewRequest(http.MethodPost, "/api/orcamentos", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}

		var res map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if res["total"].(float64) != 50*25+10*12.5 {
			t.Fatalf("unexpected total: %v", res["total"])
		}
	})
}

func TestOrcamentoHandler_DeleteOrcamento(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown id maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrcamentoUseCase(ctrl)
		h := NewOrcamentoHandler(uc)

		r := gin.New()
		r.DELETE("/api/orcamentos/:id", h.DeleteOrcamento)

		uc.EXPECT().Delete(gomock.Any(), "ORC-404").Return(usecase.ErrBudgetNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/api/orcamentos/ORC-404", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrcamentoUseCase(ctrl)
		h := NewOrcamentoHandler(uc)

		r := gin.New()
		r.DELETE("/api/orcamentos/:id", h.DeleteOrcamento)

		uc.EXPECT().Delete(gomock.Any(), "ORC-123").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/api/orcamentos/ORC-123", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestOrcamentoHandler_ListOrcamentos(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIOrcamentoUseCase(ctrl)
	h := NewOrcamentoHandler(uc)

	r := gin.New()
	r.GET("/api/orcamentos", h.ListOrcamentos)

	uc.EXPECT().List(gomock.Any()).Return([]entities.Orcamento{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/orcamentos", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Body.String() != "[]" {
		t.Fatalf("empty list should serialize as [], got %q", w.Body.String())
	}
}
