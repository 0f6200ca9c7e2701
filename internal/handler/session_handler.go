package handler

import (
	"time"

	"salon-inventory/internal/service"
	"salon-inventory/pkg/token"

	"github.com/gofiber/fiber/v2"
)

// SessionHandler answers "who am I" for the single-tenant client and hands
// out a placeholder session token naming the owner. There is no credential
// check anywhere; this is the auth stub, not an auth system.
type SessionHandler struct {
	resolver  service.OwnerResolver
	secret    []byte
	expiresIn time.Duration
}

func NewSessionHandler(resolver service.OwnerResolver, secret []byte, expiresIn time.Duration) *SessionHandler {
	return &SessionHandler{
		resolver:  resolver,
		secret:    secret,
		expiresIn: expiresIn,
	}
}

func (h *SessionHandler) GetSession(c *fiber.Ctx) error {
	owner := h.resolver.Resolve()

	signed, err := token.Generate(h.secret, owner.ID, owner.Name, owner.Role, h.expiresIn)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to issue session token"})
	}

	return c.JSON(fiber.Map{
		"user":  owner.ToResponse(),
		"token": signed,
	})
}
