package middleware

import (
	"strings"

	"salon-inventory/internal/service"
	"salon-inventory/pkg/token"

	"github.com/gofiber/fiber/v2"
)

// ResolveOwner attaches the acting identity to every request. This is a
// pass-through, not an auth gate: a valid Bearer token names the owner
// directly, anything else falls back to the resolver (which itself degrades
// to a synthetic identity when storage is down). No request is ever rejected
// here.
func ResolveOwner(resolver service.OwnerResolver, tokenSecret []byte) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if claims := bearerClaims(c, tokenSecret); claims != nil {
			c.Locals("user_id", claims.UserID)
			c.Locals("user_name", claims.Name)
			return c.Next()
		}

		owner := resolver.Resolve()
		c.Locals("user_id", owner.ID)
		c.Locals("user_name", owner.Name)
		return c.Next()
	}
}

func bearerClaims(c *fiber.Ctx, secret []byte) *token.Claims {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return nil
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return nil
	}

	claims, err := token.Validate(secret, parts[1])
	if err != nil {
		return nil
	}
	return claims
}
