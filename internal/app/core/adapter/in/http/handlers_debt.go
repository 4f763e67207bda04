package http

import (
	"github.com/gofiber/fiber/v2"
)

// handleCreateDebt POST /debts/create
func (s *Server) handleCreateDebt(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return failJSON(c, fiber.StatusUnauthorized, "invalid or missing token")
	}
	input, err := bindAndValidate[createDebtRequest](c)
	if input == nil {
		return err
	}

	debt, err := s.bank.CreateDebt(c.Context(), input.AccountNumber, userID, input.Amount, input.Description, input.DueDate)
	if err != nil {
		return s.businessError(c, err)
	}
	return okJSON(c, fiber.StatusCreated, "debt created", toDebtView(debt))
}

// handleListDebts POST /debts/get
func (s *Server) handleListDebts(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return failJSON(c, fiber.StatusUnauthorized, "invalid or missing token")
	}
	input, err := bindAndValidate[accountRequest](c)
	if input == nil {
		return err
	}

	debts, err := s.bank.ListDebts(c.Context(), input.AccountNumber, userID)
	if err != nil {
		return s.businessError(c, err)
	}
	return okJSON(c, fiber.StatusOK, "debts listed", toDebtViews(debts))
}

// handlePayDebt POST /debts/pay
func (s *Server) handlePayDebt(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return failJSON(c, fiber.StatusUnauthorized, "invalid or missing token")
	}
	input, err := bindAndValidate[payDebtRequest](c)
	if input == nil {
		return err
	}

	debt, tran, balance, err := s.bank.PayDebt(c.Context(), input.DebtID, userID)
	if err != nil {
		return s.businessError(c, err)
	}
	return okJSON(c, fiber.StatusOK, "debt paid", fiber.Map{
		"debt":        toDebtView(debt),
		"transaction": toTransactionView(tran),
		"newBalance":  balance,
	})
}
