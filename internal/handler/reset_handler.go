package handler

import (
	"net/http"

	"pokebase/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /api/reset のHTTP
type ResetHandler struct {
	uc *usecase.ResetUsecase
}

func NewResetHandler(uc *usecase.ResetUsecase) *ResetHandler {
	return &ResetHandler{uc: uc}
}

func (h *ResetHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/reset", h.reset)
}

func (h *ResetHandler) reset(c echo.Context) error {
	if err := h.uc.Reset(c.Request().Context()); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, OKResponse{OK: true})
}
