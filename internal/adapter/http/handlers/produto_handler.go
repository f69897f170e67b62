package handlers

import (
	"errors"
	"net/http"
	"strconv"

	request "madeireira_api/internal/adapter/http/dto/request"
	response "madeireira_api/internal/adapter/http/dto/response"
	"madeireira_api/internal/usecase"
	"madeireira_api/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidProdutoPayload = pkg.NewDomainErrorSimple("INVALID_PRODUCT_INPUT", "Invalid product payload", http.StatusBadRequest)
	errInvalidProdutoID      = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid product id", http.StatusBadRequest)
)

// ProdutoHandler handles HTTP requests for wood products.
type ProdutoHandler struct {
	usecase usecase.IProdutoUseCase
}

func NewProdutoHandler(uc usecase.IProdutoUseCase) *ProdutoHandler {
	return &ProdutoHandler{usecase: uc}
}

// ListProdutos returns every product enriched with its calculation
// block, recomputed against the configuration in effect right now.
func (h *ProdutoHandler) ListProdutos(c *gin.Context) {
	list, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapProdutoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProdutosComCalculo(list))
}

// CreateProduto creates a product. Every field must be present and the
// store is left untouched when validation fails.
func (h *ProdutoHandler) CreateProduto(c *gin.Context) {
	var payload request.ProdutoCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProdutoPayload.HTTPStatus, errInvalidProdutoPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), usecase.NovoProduto{
		Nome:        *payload.Nome,
		Diametro:    *payload.Diametro,
		Comprimento: *payload.Comprimento,
		PrecoMin:    *payload.PrecoMin,
		PrecoMax:    *payload.PrecoMax,
	})
	if err != nil {
		appErr := mapProdutoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromProduto(created))
}

// UpdateProduto applies a partial update: only fields present in the
// payload change, and a supplied zero counts as present.
func (h *ProdutoHandler) UpdateProduto(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(errInvalidProdutoID.HTTPStatus, errInvalidProdutoID.ToHTTPError())
		return
	}

	var payload request.ProdutoUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProdutoPayload.HTTPStatus, errInvalidProdutoPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), id, usecase.ProdutoPatch{
		Nome:        payload.Nome,
		Diametro:    payload.Diametro,
		Comprimento: payload.Comprimento,
		PrecoMin:    payload.PrecoMin,
		PrecoMax:    payload.PrecoMax,
	})
	if err != nil {
		appErr := mapProdutoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProduto(updated))
}

// DeleteProduto removes a product; deleting an unknown id is always a
// 404, however many times it is retried.
func (h *ProdutoHandler) DeleteProduto(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(errInvalidProdutoID.HTTPStatus, errInvalidProdutoID.ToHTTPError())
		return
	}

	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		appErr := mapProdutoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: "Product removed"})
}

func mapProdutoError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProductName),
		errors.Is(err, usecase.ErrInvalidDiameter),
		errors.Is(err, usecase.ErrInvalidLength),
		errors.Is(err, usecase.ErrInvalidPriceRange),
		errors.Is(err, usecase.ErrDimensionsOutOfRange):
		return pkg.NewDomainError("INVALID_PRODUCT_INPUT", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
