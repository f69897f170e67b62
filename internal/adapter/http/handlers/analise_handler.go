package handlers

import (
	"net/http"

	response "madeireira_api/internal/adapter/http/dto/response"
	"madeireira_api/internal/usecase"
	"madeireira_api/pkg"

	"github.com/gin-gonic/gin"
)

// AnaliseHandler serves the read-only portfolio report.
type AnaliseHandler struct {
	usecase usecase.IAnaliseUseCase
}

func NewAnaliseHandler(uc usecase.IAnaliseUseCase) *AnaliseHandler {
	return &AnaliseHandler{usecase: uc}
}

func (h *AnaliseHandler) GetAnalise(c *gin.Context) {
	a, err := h.usecase.Analisar(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromAnalise(a))
}
