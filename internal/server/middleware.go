package server

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/davidmartinii-sketch/ai-business-assistant/internal/auth"
)

const claimsContextKey = "auth_claims"

// RequireAuth gates a route behind a bearer token. It extracts the
// Authorization header, verifies the token, and stores the decoded claims
// in the request locals. There is no store lookup here: verification is
// purely cryptographic.
func RequireAuth(tokens *auth.TokenService) fiber.Handler {
	const scheme = "Bearer "

	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" || !strings.HasPrefix(header, scheme) {
			return auth.ErrMissingAuth
		}

		claims, err := tokens.Validate(strings.TrimPrefix(header, scheme))
		if err != nil {
			return err
		}

		c.Locals(claimsContextKey, claims)
		return c.Next()
	}
}

// ClaimsFromCtx returns the verified claims attached by RequireAuth.
func ClaimsFromCtx(c *fiber.Ctx) (*auth.Claims, bool) {
	claims, ok := c.Locals(claimsContextKey).(*auth.Claims)
	return claims, ok
}
