package handlers

import (
	"errors"
	"net/http"

	request "madeireira_api/internal/adapter/http/dto/request"
	"madeireira_api/internal/usecase"
	"madeireira_api/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidConfigPayload = pkg.NewDomainErrorSimple("INVALID_CONFIG_INPUT", "Invalid configuration payload", http.StatusBadRequest)

// ConfigHandler handles the singleton cost configuration. The entity
// already serializes to the wire shape, so no response DTO is needed.
type ConfigHandler struct {
	usecase usecase.IConfigUseCase
}

func NewConfigHandler(uc usecase.IConfigUseCase) *ConfigHandler {
	return &ConfigHandler{usecase: uc}
}

func (h *ConfigHandler) GetConfig(c *gin.Context) {
	cfg, err := h.usecase.Get(c.Request.Context())
	if err != nil {
		appErr := mapConfigError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// UpdateConfig applies a partial update. Absent fields stay untouched;
// a supplied zero is applied where the field's invariant allows it.
func (h *ConfigHandler) UpdateConfig(c *gin.Context) {
	var payload request.ConfigUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidConfigPayload.HTTPStatus, errInvalidConfigPayload.ToHTTPError())
		return
	}

	cfg, err := h.usecase.Update(c.Request.Context(), usecase.ConfigPatch{
		Madeira:        payload.Madeira,
		Tratamento:     payload.Tratamento,
		Coef:           payload.Coef,
		Comp:           payload.Comp,
		MargemDesejada: payload.MargemDesejada,
	})
	if err != nil {
		appErr := mapConfigError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, cfg)
}

func mapConfigError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidConfigValue):
		return pkg.NewDomainError("INVALID_CONFIG_INPUT", err.Error(), err, http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
