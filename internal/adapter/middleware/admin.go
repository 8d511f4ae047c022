package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// ContextAdmin is the echo context key holding the authenticated admin name.
const ContextAdmin = "admin"

type AdminVerifier interface {
	VerifyAdmin(raw string) (string, error)
}

// AdminAuth requires "Authorization: Bearer <admin token>".
func AdminAuth(v AdminVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := c.Request().Header.Get(echo.HeaderAuthorization)
			scheme, token, ok := strings.Cut(raw, " ")
			if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
				return fail(c, http.StatusUnauthorized, "Vui lòng đăng nhập quản trị")
			}
			sub, err := v.VerifyAdmin(strings.TrimSpace(token))
			if err != nil {
				return fail(c, http.StatusUnauthorized, "Phiên đăng nhập quản trị không hợp lệ hoặc đã hết hạn")
			}
			c.Set(ContextAdmin, sub)
			return next(c)
		}
	}
}
