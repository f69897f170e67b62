package handlers

import (
	"errors"
	"net/http"

	request "madeireira_api/internal/adapter/http/dto/request"
	response "madeireira_api/internal/adapter/http/dto/response"
	"madeireira_api/internal/domain/entities"
	"madeireira_api/internal/usecase"
	"madeireira_api/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidOrcamentoPayload = pkg.NewDomainErrorSimple("INVALID_BUDGET_INPUT", "Invalid budget payload", http.StatusBadRequest)

// OrcamentoHandler handles HTTP requests for budgets (quotes).
type OrcamentoHandler struct {
	usecase usecase.IOrcamentoUseCase
}

func NewOrcamentoHandler(uc usecase.IOrcamentoUseCase) *OrcamentoHandler {
	return &OrcamentoHandler{usecase: uc}
}

func (h *OrcamentoHandler) ListOrcamentos(c *gin.Context) {
	list, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapOrcamentoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrcamentos(list))
}

// CreateOrcamento creates a budget from a non-empty item list. The
// total is computed here once and stored; it is never recomputed or
// edited afterwards.
func (h *OrcamentoHandler) CreateOrcamento(c *gin.Context) {
	var payload request.OrcamentoCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrcamentoPayload.HTTPStatus, errInvalidOrcamentoPayload.ToHTTPError())
		return
	}

	itens := make([]entities.ItemOrcamento, 0, len(payload.Itens))
	for _, it := range payload.Itens {
		itens = append(itens, entities.ItemOrcamento{
			ProdutoID:     it.ProdutoID,
			Descricao:     it.Descricao,
			Qtd:           it.Qtd,
			PrecoUnitario: it.PrecoUnitario,
		})
	}

	created, err := h.usecase.Create(c.Request.Context(), usecase.NovoOrcamento{
		Data:    payload.Data,
		Cliente: payload.Cliente,
		Itens:   itens,
	})
	if err != nil {
		appErr := mapOrcamentoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromOrcamento(created))
}

func (h *OrcamentoHandler) DeleteOrcamento(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapOrcamentoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Budget removed"})
}

func mapOrcamentoError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBudgetDate),
		errors.Is(err, usecase.ErrInvalidClient),
		errors.Is(err, usecase.ErrEmptyItems),
		errors.Is(err, usecase.ErrInvalidItem):
		return pkg.NewDomainError("INVALID_BUDGET_INPUT", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBudgetNotFound):
		return pkg.NewDomainErrorSimple("BUDGET_NOT_FOUND", "Budget not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
