package handler

import (
	"salon-inventory/internal/model"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// actorFromCtx rebuilds the acting identity set by middleware.ResolveOwner.
func actorFromCtx(c *fiber.Ctx) *model.User {
	actor := &model.User{Name: model.OwnerName}
	actor.ID = model.OwnerID

	if id, ok := c.Locals("user_id").(uuid.UUID); ok {
		actor.ID = id
	}
	if name, ok := c.Locals("user_name").(string); ok && name != "" {
		actor.Name = name
	}
	return actor
}

// productFilter parses the optional ?product_id= query parameter.
func productFilter(c *fiber.Ctx) (*uuid.UUID, error) {
	raw := c.Query("product_id")
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
