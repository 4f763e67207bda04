package http

import (
	"github.com/gofiber/fiber/v2"
)

// handleAddBalance POST /balance/add
func (s *Server) handleAddBalance(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return failJSON(c, fiber.StatusUnauthorized, "invalid or missing token")
	}
	input, err := bindAndValidate[balanceRequest](c)
	if input == nil {
		return err
	}

	tran, balance, err := s.bank.Deposit(c.Context(), input.AccountNumber, userID, input.Amount, input.Description)
	if err != nil {
		return s.businessError(c, err)
	}
	return okJSON(c, fiber.StatusOK, "balance added", fiber.Map{
		"transaction": toTransactionView(tran),
		"newBalance":  balance,
	})
}

// handleRemoveBalance POST /balance/remove
func (s *Server) handleRemoveBalance(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return failJSON(c, fiber.StatusUnauthorized, "invalid or missing token")
	}
	input, err := bindAndValidate[balanceRequest](c)
	if input == nil {
		return err
	}

	tran, balance, err := s.bank.Withdraw(c.Context(), input.AccountNumber, userID, input.Amount, input.Description)
	if err != nil {
		return s.businessError(c, err)
	}
	return okJSON(c, fiber.StatusOK, "balance removed", fiber.Map{
		"transaction": toTransactionView(tran),
		"newBalance":  balance,
	})
}
