package http

import (
	"github.com/gofiber/fiber/v2"
)

// handleCreateAccount POST /accounts/create
func (s *Server) handleCreateAccount(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return failJSON(c, fiber.StatusUnauthorized, "invalid or missing token")
	}
	input, err := bindAndValidate[createAccountRequest](c)
	if input == nil {
		return err
	}

	account, err := s.bank.CreateAccount(c.Context(), userID, input.HolderName, input.InitialBalance)
	if err != nil {
		return s.businessError(c, err)
	}
	return okJSON(c, fiber.StatusCreated, "account created", toAccountView(account))
}

// handleListAccounts GET /accounts
func (s *Server) handleListAccounts(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return failJSON(c, fiber.StatusUnauthorized, "invalid or missing token")
	}

	accounts, err := s.bank.ListAccounts(c.Context(), userID)
	if err != nil {
		return s.businessError(c, err)
	}
	return okJSON(c, fiber.StatusOK, "accounts listed", toAccountViews(accounts))
}

// handleGetAccount POST /accounts/get
func (s *Server) handleGetAccount(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return failJSON(c, fiber.StatusUnauthorized, "invalid or missing token")
	}
	input, err := bindAndValidate[accountRequest](c)
	if input == nil {
		return err
	}

	account, err := s.bank.GetAccount(c.Context(), input.AccountNumber, userID)
	if err != nil {
		return s.businessError(c, err)
	}
	return okJSON(c, fiber.StatusOK, "account found", toAccountView(account))
}

// handleListTransactions POST /accounts/transactions
func (s *Server) handleListTransactions(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return failJSON(c, fiber.StatusUnauthorized, "invalid or missing token")
	}
	input, err := bindAndValidate[accountRequest](c)
	if input == nil {
		return err
	}

	trans, err := s.bank.ListTransactions(c.Context(), input.AccountNumber, userID)
	if err != nil {
		return s.businessError(c, err)
	}
	return okJSON(c, fiber.StatusOK, "transactions listed", toTransactionViews(trans))
}
