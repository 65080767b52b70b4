package server

import (
	"pokebase/internal/middleware"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

func New(logger zerolog.Logger, h Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLog(logger))

	RegisterRoutes(e, h)
	return e
}

func Start(e *echo.Echo, addr string) error {
	return e.Start(addr)
}
