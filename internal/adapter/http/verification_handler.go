package http

import (
	"net/http"

	"bankloan-backend/internal/domain/document"
	"bankloan-backend/internal/usecase/verification"

	"github.com/labstack/echo/v4"
)

type documentResp struct {
	verification.DocumentDTO
	FileURL string `json:"fileUrl"`
}

func (h *Handler) UploadDocument(c echo.Context) error {
	param := documentTypeParam{Type: c.Param("type")}
	if err := c.Validate(&param); err != nil {
		return badRequest(c, ToFieldErrors(err))
	}
	req, p, err := readUpload(c)
	if err != nil {
		return failMsg(c, http.StatusBadRequest, "Dữ liệu gửi lên không hợp lệ")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, ToFieldErrors(err))
	}
	img, handled, err := h.resolveImage(c, p)
	if handled {
		return err
	}
	res, err := h.uc.Verification.Upload(c.Request().Context(), verification.UploadInput{
		UserID: req.UserID,
		Type:   document.Type(param.Type),
		Image:  img,
	})
	if err != nil {
		return h.fail(c, err)
	}
	return ok(c, http.StatusOK, "Tải giấy tờ thành công", payload{
		"filePath":             res.FilePath,
		"fileUrl":              h.absURL(c, res.FilePath),
		"documentType":         res.DocumentType,
		"hasVerifiedDocuments": res.HasVerifiedDocuments,
		"uploadedDocuments":    res.UploadedDocuments,
	})
}

func (h *Handler) VerificationStatus(c echo.Context) error {
	st, err := h.uc.Verification.Status(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return h.fail(c, err)
	}
	docs := make(map[document.Type]documentResp, len(st.Documents))
	for t, d := range st.Documents {
		docs[t] = documentResp{DocumentDTO: d, FileURL: h.absURL(c, d.FilePath)}
	}
	return ok(c, http.StatusOK, "", payload{
		"hasVerifiedDocuments": st.HasVerifiedDocuments,
		"documents":            docs,
	})
}
