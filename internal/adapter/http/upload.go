package http

import (
	"errors"
	"net/http"
	"strings"

	"bankloan-backend/pkg/rawimage"

	"github.com/labstack/echo/v4"
)

// uploadReq is the JSON shape of an upload; multipart requests carry the
// same names as form fields plus an "image" file.
type uploadReq struct {
	UserID    string `json:"userId" form:"userId" validate:"required,hex32"`
	ImageData string `json:"imageData" form:"imageData"`
}

type documentTypeParam struct {
	Type string `param:"type" validate:"doctype"`
}

// readUpload resolves either request shape into one payload.
func readUpload(c echo.Context) (uploadReq, rawimage.Payload, error) {
	var req uploadReq
	ct := c.Request().Header.Get(echo.HeaderContentType)
	if strings.HasPrefix(ct, echo.MIMEMultipartForm) {
		req.UserID = strings.TrimSpace(c.FormValue("userId"))
		req.ImageData = c.FormValue("imageData")
		if fh, err := c.FormFile("image"); err == nil {
			return req, rawimage.Multipart{File: fh}, nil
		} else if !errors.Is(err, http.ErrMissingFile) {
			return req, nil, err
		}
	} else if err := c.Bind(&req); err != nil {
		return req, nil, err
	}
	req.UserID = strings.TrimSpace(req.UserID)
	if strings.TrimSpace(req.ImageData) == "" {
		return req, nil, nil
	}
	return req, rawimage.Base64{Data: req.ImageData}, nil
}

// resolveImage writes the 400 itself; handled reports that it did.
func (h *Handler) resolveImage(c echo.Context, p rawimage.Payload) (img *rawimage.Image, handled bool, err error) {
	if p == nil {
		return nil, true, failMsg(c, http.StatusBadRequest, "Không tìm thấy ảnh tải lên")
	}
	img, rerr := rawimage.Resolve(p, h.opts.MaxUploadBytes)
	switch {
	case rerr == nil:
		return img, false, nil
	case errors.Is(rerr, rawimage.ErrEmpty):
		return nil, true, failMsg(c, http.StatusBadRequest, "Không tìm thấy ảnh tải lên")
	case errors.Is(rerr, rawimage.ErrTooLarge):
		return nil, true, failMsg(c, http.StatusRequestEntityTooLarge, "Ảnh vượt quá dung lượng cho phép")
	case errors.Is(rerr, rawimage.ErrBase64), errors.Is(rerr, rawimage.ErrNotImage):
		return nil, true, failMsg(c, http.StatusBadRequest, "Ảnh không hợp lệ")
	default:
		return nil, true, h.fail(c, rerr)
	}
}
