package handler

import (
	"net/http"

	"pokebase/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /api/grading-companies のHTTP
type GradingCompanyHandler struct {
	uc *usecase.GradingCompanyUsecase
}

func NewGradingCompanyHandler(uc *usecase.GradingCompanyUsecase) *GradingCompanyHandler {
	return &GradingCompanyHandler{uc: uc}
}

type GradingCompanyRequest struct {
	Name       string `json:"name"`
	GradeScale string `json:"grade_scale"`
	URL        string `json:"url"`
}

func (h *GradingCompanyHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/grading-companies")

	g.GET("", h.list)
	g.POST("", h.create)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.remove)
}

func (h *GradingCompanyHandler) list(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *GradingCompanyHandler) create(c echo.Context) error {
	var req GradingCompanyRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	id, err := h.uc.Create(c.Request().Context(), usecase.GradingCompanyInput{
		Name:       req.Name,
		GradeScale: req.GradeScale,
		URL:        req.URL,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]int64{"company_id": id})
}

func (h *GradingCompanyHandler) update(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req GradingCompanyRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	err := h.uc.Update(c.Request().Context(), id, usecase.GradingCompanyInput{
		Name:       req.Name,
		GradeScale: req.GradeScale,
		URL:        req.URL,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, OKResponse{OK: true})
}

func (h *GradingCompanyHandler) remove(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
