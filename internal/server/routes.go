package server

import (
	"pokebase/internal/handler"

	"github.com/labstack/echo/v4"
)

// 全エンティティのルートをまとめて登録
type Handlers struct {
	Reset            *handler.ResetHandler
	Customers        *handler.CustomerHandler
	Cards            *handler.CardHandler
	Listings         *handler.ListingHandler
	GradingCompanies *handler.GradingCompanyHandler
	GradeSlabs       *handler.GradeSlabHandler
	Orders           *handler.OrderHandler
	OrderItems       *handler.OrderItemHandler
}

func RegisterRoutes(e *echo.Echo, h Handlers) {
	h.Reset.RegisterRoutes(e)
	h.Customers.RegisterRoutes(e)
	h.Cards.RegisterRoutes(e)
	h.Listings.RegisterRoutes(e)
	h.GradingCompanies.RegisterRoutes(e)
	h.GradeSlabs.RegisterRoutes(e)
	h.Orders.RegisterRoutes(e)
	h.OrderItems.RegisterRoutes(e)
}
