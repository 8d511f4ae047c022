package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (h *Handler) GetWallet(c echo.Context) error {
	w, err := h.uc.Wallet.Wallet(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return h.fail(c, err)
	}
	return ok(c, http.StatusOK, "", payload{"wallet": w})
}

func (h *Handler) ListNotifications(c echo.Context) error {
	list, err := h.uc.Wallet.Notifications(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return h.fail(c, err)
	}
	return ok(c, http.StatusOK, "", payload{"notifications": list})
}

func (h *Handler) MarkNotificationRead(c echo.Context) error {
	if err := h.uc.Wallet.MarkRead(c.Request().Context(), c.Param("notificationId")); err != nil {
		return h.fail(c, err)
	}
	return ok(c, http.StatusOK, "Đã đánh dấu đã đọc", nil)
}
