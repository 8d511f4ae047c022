package http

import (
	"net/http"
	"strings"
	"time"

	"bankloan-backend/internal/usecase/account"
	"bankloan-backend/internal/usecase/admin"
	"bankloan-backend/internal/usecase/loan"
	"bankloan-backend/internal/usecase/relay"
	"bankloan-backend/internal/usecase/settings"
	"bankloan-backend/internal/usecase/verification"
	"bankloan-backend/internal/usecase/wallet"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Usecases bundles everything the handlers call.
type Usecases struct {
	Account      *account.Usecase
	Verification *verification.Usecase
	Loans        *loan.Usecase
	Wallet       *wallet.Usecase
	Settings     *settings.Usecase
	Admin        *admin.Usecase
	Relay        *relay.Usecase
}

type Options struct {
	// PublicBaseURL prefixes stored paths in *Url fields; empty means the request's scheme and host.
	PublicBaseURL  string
	MaxUploadBytes int64
}

type Handler struct {
	uc   Usecases
	opts Options
	log  *zap.Logger
}

func NewHandler(uc Usecases, opts Options, log *zap.Logger) *Handler {
	opts.PublicBaseURL = strings.TrimRight(opts.PublicBaseURL, "/")
	return &Handler{uc: uc, opts: opts, log: log}
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339Nano),
	})
}

// absURL turns a stored public path into a URL the client can load.
func (h *Handler) absURL(c echo.Context, path string) string {
	if path == "" {
		return ""
	}
	if h.opts.PublicBaseURL != "" {
		return h.opts.PublicBaseURL + path
	}
	return c.Scheme() + "://" + c.Request().Host + path
}
