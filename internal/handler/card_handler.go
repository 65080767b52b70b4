package handler

import (
	"net/http"

	"pokebase/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /api/cards のHTTP
type CardHandler struct {
	uc *usecase.CardUsecase
}

func NewCardHandler(uc *usecase.CardUsecase) *CardHandler {
	return &CardHandler{uc: uc}
}

type CardRequest struct {
	SetName    string `json:"set_name"`
	CardNumber string `json:"card_number"`
	Name       string `json:"name"`
	Variant    string `json:"variant"`
	Year       *int   `json:"year"`
}

func (h *CardHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/cards")

	g.GET("", h.list)
	g.POST("", h.create)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.remove)
}

func (h *CardHandler) list(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CardHandler) create(c echo.Context) error {
	var req CardRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	id, err := h.uc.Create(c.Request().Context(), usecase.CardInput{
		SetName:    req.SetName,
		CardNumber: req.CardNumber,
		Name:       req.Name,
		Variant:    req.Variant,
		Year:       req.Year,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]int64{"card_id": id})
}

func (h *CardHandler) update(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req CardRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	err := h.uc.Update(c.Request().Context(), id, usecase.CardInput{
		SetName:    req.SetName,
		CardNumber: req.CardNumber,
		Name:       req.Name,
		Variant:    req.Variant,
		Year:       req.Year,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, OKResponse{OK: true})
}

func (h *CardHandler) remove(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
