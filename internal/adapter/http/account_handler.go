package http

import (
	"net/http"

	"bankloan-backend/internal/domain/user"
	"bankloan-backend/internal/usecase/account"

	"github.com/labstack/echo/v4"
)

type registerReq struct {
	Phone    string `json:"phone" validate:"required,phone10"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

type loginReq struct {
	Phone    string `json:"phone" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type personalInfoReq struct {
	FullName     string            `json:"fullName" validate:"required,max=100"`
	PersonalInfo user.PersonalInfo `json:"personalInfo"`
}

type bankInfoReq struct {
	AccountNumber string `json:"accountNumber" validate:"required,max=30"`
	AccountName   string `json:"accountName" validate:"max=100"`
	BankName      string `json:"bankName" validate:"required,max=100"`
	BankID        string `json:"bankId" validate:"max=20"`
	BankLogo      string `json:"bankLogo"`
}

func (h *Handler) Register(c echo.Context) error {
	var req registerReq
	if handled, err := h.bindAndValidate(c, &req); handled {
		return err
	}
	dto, err := h.uc.Account.Register(c.Request().Context(), account.RegisterInput{Phone: req.Phone, Password: req.Password})
	if err != nil {
		return h.fail(c, err)
	}
	return ok(c, http.StatusCreated, "Đăng ký thành công", payload{"user": dto})
}

func (h *Handler) Login(c echo.Context) error {
	var req loginReq
	if handled, err := h.bindAndValidate(c, &req); handled {
		return err
	}
	dto, err := h.uc.Account.Login(c.Request().Context(), account.LoginInput{Phone: req.Phone, Password: req.Password})
	if err != nil {
		return h.fail(c, err)
	}
	return ok(c, http.StatusOK, "Đăng nhập thành công", payload{"user": h.withAvatarURL(c, dto)})
}

func (h *Handler) GetUser(c echo.Context) error {
	dto, err := h.uc.Account.Get(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return h.fail(c, err)
	}
	return ok(c, http.StatusOK, "", payload{"user": h.withAvatarURL(c, dto)})
}

func (h *Handler) UpdatePersonalInfo(c echo.Context) error {
	var req personalInfoReq
	if handled, err := h.bindAndValidate(c, &req); handled {
		return err
	}
	dto, err := h.uc.Account.UpdatePersonalInfo(c.Request().Context(), c.Param("userId"),
		account.PersonalInfoInput{FullName: req.FullName, PersonalInfo: req.PersonalInfo})
	if err != nil {
		return h.fail(c, err)
	}
	return ok(c, http.StatusOK, "Cập nhật thông tin cá nhân thành công", payload{"user": h.withAvatarURL(c, dto)})
}

func (h *Handler) UpdateBankInfo(c echo.Context) error {
	var req bankInfoReq
	if handled, err := h.bindAndValidate(c, &req); handled {
		return err
	}
	dto, err := h.uc.Account.UpdateBankInfo(c.Request().Context(), c.Param("userId"), user.BankInfo(req))
	if err != nil {
		return h.fail(c, err)
	}
	return ok(c, http.StatusOK, "Cập nhật thông tin ngân hàng thành công", payload{"user": h.withAvatarURL(c, dto)})
}

func (h *Handler) UploadAvatar(c echo.Context) error {
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
	dto, err := h.uc.Account.UploadAvatar(c.Request().Context(), req.UserID, img)
	if err != nil {
		return h.fail(c, err)
	}
	return ok(c, http.StatusOK, "Tải ảnh đại diện thành công", payload{
		"filePath":  dto.FilePath,
		"avatarUrl": h.absURL(c, dto.FilePath),
	})
}

type profileResp struct {
	*account.ProfileDTO
	AvatarFullURL string `json:"avatarFullUrl,omitempty"`
}

func (h *Handler) withAvatarURL(c echo.Context, dto *account.ProfileDTO) profileResp {
	out := profileResp{ProfileDTO: dto}
	if dto.AvatarURL != nil {
		out.AvatarFullURL = h.absURL(c, *dto.AvatarURL)
	}
	return out
}
