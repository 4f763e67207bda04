package http

import (
	"github.com/gofiber/fiber/v2"
)

// handleRegister POST /users/register
func (s *Server) handleRegister(c *fiber.Ctx) error {
	input, err := bindAndValidate[registerRequest](c)
	if input == nil {
		return err
	}

	user, err := s.users.Register(c.Context(), input.Name, input.Email, input.Password)
	if err != nil {
		return s.businessError(c, err)
	}
	return okJSON(c, fiber.StatusCreated, "user created", toUserView(user))
}

// handleLogin POST /users/login
func (s *Server) handleLogin(c *fiber.Ctx) error {
	input, err := bindAndValidate[loginRequest](c)
	if input == nil {
		return err
	}

	user, token, err := s.users.Login(c.Context(), input.Email, input.Password)
	if err != nil {
		return s.businessError(c, err)
	}
	return okJSON(c, fiber.StatusOK, "login successful", fiber.Map{
		"user":  toUserView(user),
		"token": token,
	})
}

// handleMe GET /users/me
func (s *Server) handleMe(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return failJSON(c, fiber.StatusUnauthorized, "invalid or missing token")
	}

	user, err := s.users.GetByID(c.Context(), userID)
	if err != nil {
		return s.businessError(c, err)
	}
	return okJSON(c, fiber.StatusOK, "user found", toUserView(user))
}
