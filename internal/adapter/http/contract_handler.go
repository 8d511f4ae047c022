package http

import (
	"net/http"
	"strings"

	"bankloan-backend/internal/usecase/loan"
	"bankloan-backend/pkg/rawimage"

	"github.com/labstack/echo/v4"
)

type createContractReq struct {
	UserID          string     `json:"userId" form:"userId"`
	ContractID      string     `json:"contractId" form:"contractId"`
	LoanAmount      flexNumber `json:"loanAmount" form:"loanAmount"`
	LoanTerm        flexNumber `json:"loanTerm" form:"loanTerm"`
	BankName        string     `json:"bankName" form:"bankName" validate:"max=100"`
	ContractContent string     `json:"contractContent" form:"contractContent"`
	SignatureImage  string     `json:"signatureImage" form:"signatureImage"`
}

func (h *Handler) GenerateContractID(c echo.Context) error {
	id, err := h.uc.Loans.GenerateID(c.Request().Context())
	if err != nil {
		return h.fail(c, err)
	}
	return ok(c, http.StatusOK, "", payload{"contractId": id})
}

func (h *Handler) CreateContract(c echo.Context) error {
	var req createContractReq
	if handled, err := h.bindAndValidate(c, &req); handled {
		return err
	}
	amount, err := req.LoanAmount.Decimal()
	if err != nil || amount.IsNegative() {
		return failMsg(c, http.StatusBadRequest, "loanAmount không hợp lệ")
	}
	term, err := req.LoanTerm.Int()
	if err != nil || term < 0 {
		return failMsg(c, http.StatusBadRequest, "loanTerm không hợp lệ")
	}

	in := loan.CreateInput{
		UserID:          strings.TrimSpace(req.UserID),
		ContractID:      strings.TrimSpace(req.ContractID),
		LoanAmount:      amount,
		LoanTerm:        term,
		BankName:        req.BankName,
		ContractContent: req.ContractContent,
	}
	// missing-field errors come from the usecase; decode only once the ids are present
	if strings.TrimSpace(req.SignatureImage) != "" && in.UserID != "" && in.ContractID != "" {
		img, handled, err := h.resolveImage(c, rawimage.Base64{Data: req.SignatureImage})
		if handled {
			return err
		}
		in.Signature = img
	}

	dto, err := h.uc.Loans.Create(c.Request().Context(), in)
	if err != nil {
		return h.fail(c, err)
	}
	return ok(c, http.StatusCreated, "Tạo hợp đồng thành công", payload{
		"contractId":   dto.ContractID,
		"createdTime":  dto.CreatedTime,
		"createdDate":  dto.CreatedDate,
		"signatureUrl": dto.SignatureImage,
		"contract":     dto,
	})
}

func (h *Handler) GetContract(c echo.Context) error {
	dto, err := h.uc.Loans.Get(c.Request().Context(), c.Param("contractId"))
	if err != nil {
		return h.fail(c, err)
	}
	return ok(c, http.StatusOK, "", payload{"contract": dto})
}

func (h *Handler) ListUserContracts(c echo.Context) error {
	list, err := h.uc.Loans.ListForUser(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return h.fail(c, err)
	}
	return ok(c, http.StatusOK, "", payload{"contracts": list})
}
