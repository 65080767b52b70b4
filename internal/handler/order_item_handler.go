package handler

import (
	"net/http"

	"pokebase/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// /api/orders/:id/items のHTTP。
// 明細の変更が成功したら親注文の合計はusecase側で再計算済み。
type OrderItemHandler struct {
	uc *usecase.OrderItemUsecase
}

func NewOrderItemHandler(uc *usecase.OrderItemUsecase) *OrderItemHandler {
	return &OrderItemHandler{uc: uc}
}

type OrderItemRequest struct {
	ListingID int64           `json:"listing_id"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

func (h *OrderItemHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/orders/:id/items")

	g.GET("", h.list)
	g.POST("", h.create)
	g.GET("/:listingID", h.detail)
	g.PUT("/:listingID", h.update)
	g.DELETE("/:listingID", h.remove)
}

func (h *OrderItemHandler) list(c echo.Context) error {
	orderID, ok := paramID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	out, err := h.uc.List(c.Request().Context(), orderID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *OrderItemHandler) detail(c echo.Context) error {
	orderID, ok := paramID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}
	listingID, ok := paramID(c, "listingID")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid listing id"})
	}

	out, err := h.uc.Get(c.Request().Context(), orderID, listingID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *OrderItemHandler) create(c echo.Context) error {
	orderID, ok := paramID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req OrderItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	err := h.uc.Create(c.Request().Context(), orderID, usecase.OrderItemInput{
		ListingID: req.ListingID,
		Quantity:  req.Quantity,
		UnitPrice: req.UnitPrice,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, OKResponse{OK: true})
}

func (h *OrderItemHandler) update(c echo.Context) error {
	orderID, ok := paramID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}
	listingID, ok := paramID(c, "listingID")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid listing id"})
	}

	var req OrderItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	err := h.uc.Update(c.Request().Context(), orderID, listingID, usecase.OrderItemInput{
		ListingID: listingID,
		Quantity:  req.Quantity,
		UnitPrice: req.UnitPrice,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, OKResponse{OK: true})
}

func (h *OrderItemHandler) remove(c echo.Context) error {
	orderID, ok := paramID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}
	listingID, ok := paramID(c, "listingID")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid listing id"})
	}

	if err := h.uc.Delete(c.Request().Context(), orderID, listingID); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
