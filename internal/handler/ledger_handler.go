package handler

import (
	"salon-inventory/internal/model"
	"salon-inventory/internal/service"

	"github.com/gofiber/fiber/v2"
)

type LedgerHandler struct {
	service service.LedgerService
}

func NewLedgerHandler(s service.LedgerService) *LedgerHandler {
	return &LedgerHandler{service: s}
}

// GetOrders lists restock transactions, optionally filtered with
// ?product_id=<uuid>, newest order date first.
func (h *LedgerHandler) GetOrders(c *fiber.Ctx) error {
	filter, err := productFilter(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product_id filter"})
	}

	orders := h.service.ListOrders(filter)
	responses := make([]model.OrderResponse, len(orders))
	for i := range orders {
		responses[i] = orders[i].ToResponse()
	}
	return c.JSON(responses)
}

func (h *LedgerHandler) CreateOrder(c *fiber.Ctx) error {
	var order model.OrderRecord
	if err := c.BodyParser(&order); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.RecordOrder(&order, actorFromCtx(c)); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Order recorded", "data": order.ToResponse()})
}

// GetUsage lists consumption transactions, same filter shape as GetOrders.
func (h *LedgerHandler) GetUsage(c *fiber.Ctx) error {
	filter, err := productFilter(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product_id filter"})
	}

	usages := h.service.ListUsage(filter)
	responses := make([]model.UsageResponse, len(usages))
	for i := range usages {
		responses[i] = usages[i].ToResponse()
	}
	return c.JSON(responses)
}

func (h *LedgerHandler) CreateUsage(c *fiber.Ctx) error {
	var usage model.UsageRecord
	if err := c.BodyParser(&usage); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.RecordUsage(&usage, actorFromCtx(c)); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Usage recorded", "data": usage.ToResponse()})
}
