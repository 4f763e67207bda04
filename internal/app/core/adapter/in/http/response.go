package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/JoeShih716/go-mem-bank/internal/app/core/domain"
)

// 回應信封沿用來源系統：{ success, message, data }
type response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func okJSON(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func failJSON(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(response{
		Success: false,
		Message: message,
	})
}

// businessError 把 domain 的 sentinel error 對應到 HTTP 狀態碼
// 業務錯誤一律是預期內的，不會進到 500
func (s *Server) businessError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrAccountNotFound),
		errors.Is(err, domain.ErrDebtNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		return failJSON(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrAmountMustBePositive),
		errors.Is(err, domain.ErrInvalidDueDate),
		errors.Is(err, domain.ErrInsufficientBalance):
		return failJSON(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrInvalidCredentials):
		return failJSON(c, fiber.StatusUnauthorized, err.Error())
	case errors.Is(err, domain.ErrDebtNotAuthorized):
		return failJSON(c, fiber.StatusForbidden, err.Error())
	case errors.Is(err, domain.ErrDebtAlreadyPaid),
		errors.Is(err, domain.ErrUserAlreadyExists):
		return failJSON(c, fiber.StatusConflict, err.Error())
	default:
		// 非預期錯誤才走 500
		s.logger.Error("internal error", "error", err)
		return failJSON(c, fiber.StatusInternalServerError, "internal server error")
	}
}
