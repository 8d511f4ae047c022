package http

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"bankloan-backend/internal/domain/contract"
	"bankloan-backend/internal/domain/document"

	"github.com/go-playground/validator/v10"
)

// FieldError is one entry of the "details" array on a 400.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var (
	reHex32   = regexp.MustCompile(`^[a-f0-9]{32}$`)
	rePhone10 = regexp.MustCompile(`^\d{10}$`)
)

type CustomValidator struct{ v *validator.Validate }

func NewValidator() *CustomValidator {
	v := validator.New()

	// report json names, not Go field names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			name, _, _ = strings.Cut(f.Tag.Get("form"), ",")
		}
		if name == "" {
			name = f.Tag.Get("param")
		}
		if name == "" {
			return f.Name
		}
		return name
	})

	// user id = 32-char lowercase hex
	_ = v.RegisterValidation("hex32", func(fl validator.FieldLevel) bool {
		return reHex32.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("phone10", func(fl validator.FieldLevel) bool {
		return rePhone10.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("doctype", func(fl validator.FieldLevel) bool {
		return document.Type(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("loanstatus", func(fl validator.FieldLevel) bool {
		return contract.Status(fl.Field().String()).Valid()
	})

	return &CustomValidator{v: v}
}

func (cv *CustomValidator) Validate(i any) error { return cv.v.Struct(i) }

// ToFieldErrors maps validator.ValidationErrors to Vietnamese messages that
// name the field.
func ToFieldErrors(err error) []FieldError {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return []FieldError{{Field: "_", Message: "Dữ liệu không hợp lệ"}}
	}
	out := make([]FieldError, 0, len(ve))
	for _, e := range ve {
		field := e.Field()
		var msg string
		switch e.Tag() {
		case "required":
			msg = "Thiếu thông tin bắt buộc: " + field
		case "hex32":
			msg = field + " phải là chuỗi hex 32 ký tự"
		case "phone10":
			msg = field + " phải gồm đúng 10 chữ số"
		case "doctype":
			msg = field + " phải là frontId, backId hoặc portrait"
		case "loanstatus":
			msg = field + " phải là pending, approved, rejected, cancelled hoặc completed"
		case "min":
			msg = field + " phải có ít nhất " + e.Param() + " ký tự"
		case "max":
			msg = field + " không được vượt quá " + e.Param() + " ký tự"
		case "gte":
			msg = field + " phải lớn hơn hoặc bằng " + e.Param()
		case "lte":
			msg = field + " phải nhỏ hơn hoặc bằng " + e.Param()
		default:
			msg = field + " không hợp lệ"
		}
		out = append(out, FieldError{Field: field, Message: msg})
	}
	return out
}
