package http

import (
	"errors"
	"net/http"

	"bankloan-backend/internal/domain/errs"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const msgServerError = "Lỗi server"

// payload is merged into the top level of the envelope next to "success".
type payload map[string]any

func ok(c echo.Context, code int, msg string, p payload) error {
	body := map[string]any{"success": true}
	if msg != "" {
		body["message"] = msg
	}
	for k, v := range p {
		body[k] = v
	}
	return c.JSON(code, body)
}

func failMsg(c echo.Context, code int, msg string) error {
	return c.JSON(code, map[string]any{"success": false, "message": msg})
}

func badRequest(c echo.Context, details []FieldError) error {
	msg := "Dữ liệu không hợp lệ"
	if len(details) > 0 {
		msg = details[0].Message
	}
	return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "message": msg, "details": details})
}

func statusOf(k errs.Kind) int {
	switch k {
	case errs.KindInvalidInput:
		return http.StatusBadRequest
	case errs.KindUnauthorized:
		return http.StatusUnauthorized
	case errs.KindNotFound:
		return http.StatusNotFound
	case errs.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// fail maps a usecase error onto the envelope. 500s are logged and answered
// with a generic message.
func (h *Handler) fail(c echo.Context, err error) error {
	code := statusOf(errs.KindOf(err))
	if code >= http.StatusInternalServerError {
		h.log.Error("request failed",
			zap.String("method", c.Request().Method),
			zap.String("route", c.Path()),
			zap.Error(err))
		var e *errs.Error
		if errors.As(err, &e) && e.Kind == errs.KindStorage {
			return failMsg(c, code, e.Msg)
		}
		return failMsg(c, code, msgServerError)
	}
	return failMsg(c, code, errs.Message(err, msgServerError))
}

// bindAndValidate binds the request into dst and runs the validator.
// On failure it has already written the 400 and returns handled=true.
func (h *Handler) bindAndValidate(c echo.Context, dst any) (handled bool, err error) {
	if err := c.Bind(dst); err != nil {
		return true, failMsg(c, http.StatusBadRequest, "Dữ liệu gửi lên không hợp lệ")
	}
	if err := c.Validate(dst); err != nil {
		return true, badRequest(c, ToFieldErrors(err))
	}
	return false, nil
}
