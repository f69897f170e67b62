package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"madeireira_api/internal/adapter/http/handlers/mocks"
	"madeireira_api/internal/domain/entities"
	"madeireira_api/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestConfigHandler_GetConfig(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIConfigUseCase(ctrl)
		h := NewConfigHandler(uc)

		r := gin.New()
		r.GET("/api/config", h.GetConfig)

		uc.EXPECT().Get(gomock.Any()).Return(entities.DefaultConfig(), nil)

		req := httptest.NewRequest(http.MethodGet, "/api/config", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var cfg entities.Config
		if err := json.Unmarshal(w.Body.Bytes(), &cfg); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if cfg != entities.DefaultConfig() {
			t.Fatalf("unexpected config: %+v", cfg)
		}
	})

	t.Run("store failure maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIConfigUseCase(ctrl)
		h := NewConfigHandler(uc)

		r := gin.New()
		r.GET("/api/config", h.GetConfig)

		uc.EXPECT().Get(gomock.Any()).Return(entities.Config{}, errors.New("disk"))

		req := httptest.NewRequest(http.MethodGet, "/api/config", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestConfigHandler_UpdateConfig(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("partial payload forwards only supplied fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIConfigUseCase(ctrl)
		h := NewConfigHandler(uc)

		r := gin.New()
		r.PUT("/api/config", h.UpdateConfig)

		uc.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, patch usecase.ConfigPatch) (entities.Config, error) {
				if patch.MargemDesejada == nil || *patch.MargemDesejada != 25 {
					t.Fatalf("expected margemDesejada 25, got %+v", patch)
				}
				if patch.Madeira != nil || patch.Tratamento != nil || patch.Coef != nil || patch.Comp != nil {
					t.Fatalf("absent fields should be nil: %+v", patch)
				}
				cfg := entities.DefaultConfig()
				cfg.MargemDesejada = 25
				return cfg, nil
			},
		)

		req := httptest.NewRequest(http.MethodPut, "/api/config", bytes.NewBufferString(`{"margemDesejada":25}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("invalid value maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIConfigUseCase(ctrl)
		h := NewConfigHandler(uc)

		r := gin.New()
		r.PUT("/api/config", h.UpdateConfig)

		uc.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.Config{}, usecase.ErrInvalidConfigValue)

		req := httptest.NewRequest(http.MethodPut, "/api/config", bytes.NewBufferString(`{"coef":0}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestAnaliseHandler_GetAnalise(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIAnaliseUseCase(ctrl)
	h := NewAnaliseHandler(uc)

	r := gin.New()
	r.GET("/api/analise", h.GetAnalise)

	uc.EXPECT().Analisar(gomock.Any()).Return(usecase.Analise{
		MargemMediaMax:     42.5,
		LucroMedioPorSt:    120.0,
		AlertasMargemBaixa: 1,
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/analise", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if body["margemMediaMax"].(float64) != 42.5 || body["alertasMargemBaixa"].(float64) != 1 {
		t.Fatalf("unexpected report: %+v", body)
	}
}
