package http

import (
	"net/http"

	"bankloan-backend/internal/domain/contract"
	"bankloan-backend/internal/domain/user"
	"bankloan-backend/internal/usecase/admin"
	"bankloan-backend/internal/usecase/loan"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type adminLoginReq struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type adminUserReq struct {
	FullName     *string            `json:"fullName" validate:"omitempty,max=100"`
	Phone        *string            `json:"phone" validate:"omitempty,phone10"`
	PersonalInfo *user.PersonalInfo `json:"personalInfo"`
	BankInfo     *user.BankInfo     `json:"bankInfo"`
	Balance      *decimal.Decimal   `json:"balance"`
}

type adminLoanReq struct {
	LoanAmount      *decimal.Decimal `json:"loanAmount"`
	LoanTerm        *flexNumber      `json:"loanTerm"`
	BankName        *string          `json:"bankName" validate:"omitempty,max=100"`
	ContractContent *string          `json:"contractContent"`
}

type loanStatusReq struct {
	Status string `json:"status" validate:"required,loanstatus"`
}

type pageQuery struct {
	page   int
	limit  int
	search string
}

// readPage accepts both limit and pageSize; the usecases clamp the values.
func readPage(c echo.Context) (pageQuery, error) {
	var q pageQuery
	err := echo.QueryParamsBinder(c).
		Int("page", &q.page).
		Int("pageSize", &q.limit).
		Int("limit", &q.limit).
		String("search", &q.search).
		BindError()
	return q, err
}

func (h *Handler) AdminLogin(c echo.Context) error {
	var req adminLoginReq
	if handled, err := h.bindAndValidate(c, &req); handled {
		return err
	}
	tok, err := h.uc.Admin.Login(c.Request().Context(), admin.LoginInput{Username: req.Username, Password: req.Password})
	if err != nil {
		return h.fail(c, err)
	}
	return ok(c, http.StatusOK, "Đăng nhập thành công", payload{"token": tok.Token, "expiresAt": tok.ExpiresAt})
}

func (h *Handler) AdminListUsers(c echo.Context) error {
	q, err := readPage(c)
	if err != nil {
		return failMsg(c, http.StatusBadRequest, "Tham số phân trang không hợp lệ")
	}
	p, err := h.uc.Admin.ListUsers(c.Request().Context(), q.page, q.limit, q.search)
	if err != nil {
		return h.fail(c, err)
	}
	return ok(c, http.StatusOK, "", payload{
		"users":      p.Users,
		"total":      p.Total,
		"page":       p.Page,
		"limit":      p.Limit,
		"totalPages": p.TotalPages,
	})
}

func (h *Handler) AdminGetUser(c echo.Context) error {
	dto, err := h.uc.Admin.GetUser(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return h.fail(c, err)
	}
	return ok(c, http.StatusOK, "", payload{"user": dto})
}

func (h *Handler) AdminUpdateUser(c echo.Context) error {
	var req adminUserReq
	if handled, err := h.bindAndValidate(c, &req); handled {
		return err
	}
	dto, err := h.uc.Admin.UpdateUser(c.Request().Context(), c.Param("userId"), admin.UserPatch(req))
	if err != nil {
		return h.fail(c, err)
	}
	return ok(c, http.StatusOK, "Cập nhật người dùng thành công", payload{"user": dto})
}

func (h *Handler) AdminDeleteUser(c echo.Context) error {
	if err := h.uc.Admin.DeleteUser(c.Request().Context(), c.Param("userId")); err != nil {
		return h.fail(c, err)
	}
	return ok(c, http.StatusOK, "Đã xóa người dùng", nil)
}

func (h *Handler) AdminListLoans(c echo.Context) error {
	q, err := readPage(c)
	if err != nil {
		return failMsg(c, http.StatusBadRequest, "Tham số phân trang không hợp lệ")
	}
	p, err := h.uc.Loans.List(c.Request().Context(), q.page, q.limit, q.search)
	if err != nil {
		return h.fail(c, err)
	}
	return ok(c, http.StatusOK, "", payload{
		"loans":      p.Items,
		"total":      p.Total,
		"page":       p.Page,
		"limit":      p.Limit,
		"totalPages": p.TotalPages,
	})
}

func (h *Handler) AdminGetLoan(c echo.Context) error {
	dto, err := h.uc.Loans.Get(c.Request().Context(), c.Param("contractId"))
	if err != nil {
		return h.fail(c, err)
	}
	return ok(c, http.StatusOK, "", payload{"loan": dto})
}

func (h *Handler) AdminUpdateLoan(c echo.Context) error {
	var req adminLoanReq
	if handled, err := h.bindAndValidate(c, &req); handled {
		return err
	}
	in := loan.UpdateInput{
		LoanAmount:      req.LoanAmount,
		BankName:        req.BankName,
		ContractContent: req.ContractContent,
	}
	term, err := optInt(req.LoanTerm)
	if err != nil {
		return failMsg(c, http.StatusBadRequest, "loanTerm không hợp lệ")
	}
	in.LoanTerm = term
	dto, err := h.uc.Loans.Update(c.Request().Context(), c.Param("contractId"), in)
	if err != nil {
		return h.fail(c, err)
	}
	return ok(c, http.StatusOK, "Cập nhật khoản vay thành công", payload{"loan": dto})
}

func (h *Handler) AdminSetLoanStatus(c echo.Context) error {
	var req loanStatusReq
	if handled, err := h.bindAndValidate(c, &req); handled {
		return err
	}
	res, err := h.uc.Loans.SetStatus(c.Request().Context(), c.Param("contractId"), contract.Status(req.Status))
	if err != nil {
		return h.fail(c, err)
	}
	msg := "Cập nhật trạng thái thành công"
	if !res.Changed {
		msg = "Trạng thái không thay đổi"
	}
	return ok(c, http.StatusOK, msg, payload{"loan": res.Contract, "changed": res.Changed})
}

func (h *Handler) AdminRelayOutbox(c echo.Context) error {
	res, err := h.uc.Relay.RelayOnce(c.Request().Context())
	if err != nil {
		return h.fail(c, err)
	}
	return ok(c, http.StatusOK, "", payload{"published": res.Published, "failed": res.Failed})
}
