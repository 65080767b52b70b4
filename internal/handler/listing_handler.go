package handler

import (
	"net/http"

	"pokebase/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// /api/listings（と配下の/slab）のHTTP
type ListingHandler struct {
	uc     *usecase.ListingUsecase
	slabUC *usecase.GradeSlabUsecase
}

func NewListingHandler(uc *usecase.ListingUsecase, slabUC *usecase.GradeSlabUsecase) *ListingHandler {
	return &ListingHandler{uc: uc, slabUC: slabUC}
}

type ListingRequest struct {
	CardID            int64           `json:"card_id"`
	Price             decimal.Decimal `json:"price"`
	Type              string          `json:"type"`
	CardCondition     string          `json:"card_condition"`
	QuantityAvailable int64           `json:"quantity_available"`
	Status            string          `json:"status"`
}

type GradeSlabRequest struct {
	CompanyID int64           `json:"company_id"`
	Grade     decimal.Decimal `json:"grade"`
}

func (h *ListingHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/listings")

	g.GET("", h.list)
	g.POST("", h.create)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.remove)

	//graded出品の1:1スラブ
	g.GET("/:id/slab", h.getSlab)
	g.PUT("/:id/slab", h.upsertSlab)
	g.DELETE("/:id/slab", h.removeSlab)
}

func (h *ListingHandler) list(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ListingHandler) create(c echo.Context) error {
	var req ListingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	id, err := h.uc.Create(c.Request().Context(), usecase.ListingInput{
		CardID:            req.CardID,
		Price:             req.Price,
		Type:              req.Type,
		CardCondition:     req.CardCondition,
		QuantityAvailable: req.QuantityAvailable,
		Status:            req.Status,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]int64{"listing_id": id})
}

func (h *ListingHandler) update(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req ListingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	err := h.uc.Update(c.Request().Context(), id, usecase.ListingInput{
		CardID:            req.CardID,
		Price:             req.Price,
		Type:              req.Type,
		CardCondition:     req.CardCondition,
		QuantityAvailable: req.QuantityAvailable,
		Status:            req.Status,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, OKResponse{OK: true})
}

func (h *ListingHandler) remove(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *ListingHandler) getSlab(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	out, err := h.slabUC.GetForListing(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ListingHandler) upsertSlab(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req GradeSlabRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	err := h.slabUC.UpsertForListing(c.Request().Context(), id, usecase.GradeSlabInput{
		CompanyID: req.CompanyID,
		Grade:     req.Grade,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, OKResponse{OK: true})
}

func (h *ListingHandler) removeSlab(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if err := h.slabUC.DeleteForListing(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
