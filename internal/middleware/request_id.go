package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	HeaderXRequestID = "X-Request-Id"

	CtxRequestIDKey = "request_id" // string
)

// リクエストIDを採番してレスポンスヘッダとcontextに載せる。
// 呼び出し元が付けてきたIDはそのまま使う。
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get(HeaderXRequestID)
			if id == "" {
				id = uuid.NewString()
			}

			c.Set(CtxRequestIDKey, id)
			c.Response().Header().Set(HeaderXRequestID, id)

			return next(c)
		}
	}
}
