package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"siteapi/internal/auth"
)

// ClaimsLocalKey is the key under which verified token claims are stored in
// Fiber's context locals.
const ClaimsLocalKey = "claims"

// RequireAuth gates admin-only routes behind a bearer token.
//
// Behavior:
// - No usable Authorization header: 401.
// - Header present but the token fails verification (tampered, expired): 403.
// - Valid token: claims stored in locals, request continues.
func RequireAuth(tokens *auth.TokenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := bearerToken(c.Get(fiber.HeaderAuthorization))
		if !ok {
			return fiber.ErrUnauthorized
		}

		claims, err := tokens.Verify(token)
		if err != nil {
			return fiber.ErrForbidden
		}

		c.Locals(ClaimsLocalKey, claims)
		return c.Next()
	}
}

// OptionalAuth stores claims for a valid bearer token but never rejects the
// request. Routes with a public and an admin view (the opportunity listing)
// use it to decide how much to reveal.
func OptionalAuth(tokens *auth.TokenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if token, ok := bearerToken(c.Get(fiber.HeaderAuthorization)); ok {
			if claims, err := tokens.Verify(token); err == nil {
				c.Locals(ClaimsLocalKey, claims)
			}
		}
		return c.Next()
	}
}

// ClaimsFromCtx returns the verified claims stored by RequireAuth or
// OptionalAuth, or nil for an unauthenticated request.
func ClaimsFromCtx(c *fiber.Ctx) *auth.Claims {
	if v := c.Locals(ClaimsLocalKey); v != nil {
		if claims, ok := v.(*auth.Claims); ok {
			return claims
		}
	}
	return nil
}

func bearerToken(header string) (string, bool) {
	header = strings.TrimSpace(header)
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}
	return token, true
}
