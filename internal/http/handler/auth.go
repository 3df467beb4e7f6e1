package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"siteapi/internal/http/middleware"
	"siteapi/internal/service"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login exchanges admin credentials for a bearer token.
func Login(svc service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req loginRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		}

		token, user, err := svc.Login(c.UserContext(), req.Username, req.Password)
		if err != nil {
			if errors.Is(err, service.ErrInvalidCredentials) {
				return writeError(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "invalid credentials")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}

		return c.JSON(fiber.Map{
			"success": true,
			"token":   token,
			"user":    user,
		})
	}
}

// VerifyToken echoes the claims of an already-verified bearer token. The auth
// middleware in front of it does the actual verification.
func VerifyToken() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims := middleware.ClaimsFromCtx(c)
		if claims == nil {
			return fiber.ErrUnauthorized
		}
		return c.JSON(fiber.Map{
			"valid": true,
			"user": fiber.Map{
				"id":       claims.UserID,
				"username": claims.Username,
				"role":     claims.Role,
			},
		})
	}
}
