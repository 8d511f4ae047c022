package http

import "github.com/labstack/echo/v4"

// Register mounts every API route on e. idem wraps contract creation and
// adminAuth guards the /api/admin group except its login.
func Register(e *echo.Echo, h *Handler, idem, adminAuth echo.MiddlewareFunc) {
	e.GET("/health", h.Health)

	api := e.Group("/api")

	api.POST("/auth/register", h.Register)
	api.POST("/auth/login", h.Login)

	api.GET("/users/:userId", h.GetUser)
	api.PUT("/users/:userId/personal-info", h.UpdatePersonalInfo)
	api.PUT("/users/:userId/bank-info", h.UpdateBankInfo)
	api.GET("/users/:userId/contracts", h.ListUserContracts)
	api.GET("/users/:userId/wallet", h.GetWallet)
	api.GET("/users/:userId/notifications", h.ListNotifications)
	api.PUT("/notifications/:notificationId/read", h.MarkNotificationRead)

	api.POST("/upload/avatar", h.UploadAvatar)
	api.POST("/verification/upload/:type", h.UploadDocument)
	api.GET("/verification/status/:userId", h.VerificationStatus)

	api.GET("/contracts/generate-id", h.GenerateContractID)
	api.POST("/contracts", h.CreateContract, idem)
	api.GET("/contracts/:contractId", h.GetContract)

	api.GET("/settings", h.GetSettings)

	api.POST("/admin/login", h.AdminLogin)
	adm := api.Group("/admin", adminAuth)
	adm.GET("/users", h.AdminListUsers)
	adm.GET("/users/:userId", h.AdminGetUser)
	adm.PUT("/users/:userId", h.AdminUpdateUser)
	adm.DELETE("/users/:userId", h.AdminDeleteUser)
	adm.GET("/loans", h.AdminListLoans)
	adm.GET("/loans/:contractId", h.AdminGetLoan)
	adm.PUT("/loans/:contractId", h.AdminUpdateLoan)
	adm.PUT("/loans/:contractId/status", h.AdminSetLoanStatus)
	adm.GET("/settings", h.GetSettings)
	adm.PUT("/settings", h.UpdateSettings)
	adm.POST("/outbox/relay", h.AdminRelayOutbox)
}
