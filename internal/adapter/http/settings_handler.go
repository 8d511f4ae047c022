package http

import (
	"net/http"

	"bankloan-backend/internal/usecase/settings"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// decimal.Decimal already accepts quoted and bare numbers; terms go through flexNumber.
type settingsReq struct {
	InterestRate  *decimal.Decimal `json:"interestRate"`
	MinLoanAmount *decimal.Decimal `json:"minLoanAmount"`
	MaxLoanAmount *decimal.Decimal `json:"maxLoanAmount"`
	MinLoanTerm   *flexNumber      `json:"minLoanTerm"`
	MaxLoanTerm   *flexNumber      `json:"maxLoanTerm"`
}

func optInt(n *flexNumber) (*int, error) {
	if n == nil || !n.Set() {
		return nil, nil
	}
	v, err := n.Int()
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (h *Handler) GetSettings(c echo.Context) error {
	s, err := h.uc.Settings.Get(c.Request().Context())
	if err != nil {
		return h.fail(c, err)
	}
	return ok(c, http.StatusOK, "", payload{"settings": s})
}

func (h *Handler) UpdateSettings(c echo.Context) error {
	var req settingsReq
	if handled, err := h.bindAndValidate(c, &req); handled {
		return err
	}
	p := settings.Patch{
		InterestRate:  req.InterestRate,
		MinLoanAmount: req.MinLoanAmount,
		MaxLoanAmount: req.MaxLoanAmount,
	}
	var err error
	if p.MinLoanTerm, err = optInt(req.MinLoanTerm); err != nil {
		return failMsg(c, http.StatusBadRequest, "minLoanTerm không hợp lệ")
	}
	if p.MaxLoanTerm, err = optInt(req.MaxLoanTerm); err != nil {
		return failMsg(c, http.StatusBadRequest, "maxLoanTerm không hợp lệ")
	}
	s, err := h.uc.Settings.Update(c.Request().Context(), p)
	if err != nil {
		return h.fail(c, err)
	}
	return ok(c, http.StatusOK, "Cập nhật cài đặt thành công", payload{"settings": s})
}
