package handler

import (
	"net/http"

	"pokebase/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /api/grade-slabs のHTTP（一覧のみ。個別操作は/api/listings/:id/slab側）
type GradeSlabHandler struct {
	uc *usecase.GradeSlabUsecase
}

func NewGradeSlabHandler(uc *usecase.GradeSlabUsecase) *GradeSlabHandler {
	return &GradeSlabHandler{uc: uc}
}

func (h *GradeSlabHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/grade-slabs", h.list)
}

func (h *GradeSlabHandler) list(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
