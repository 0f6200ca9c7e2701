package handler

import (
	"strconv"

	"salon-inventory/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ReportHandler struct {
	service service.ReportService
}

func NewReportHandler(s service.ReportService) *ReportHandler {
	return &ReportHandler{service: s}
}

// GetStockMovement returns per-day inbound/outbound quantities for charts.
// Query params: days (default 7)
func (h *ReportHandler) GetStockMovement(c *fiber.Ctx) error {
	days, err := strconv.Atoi(c.Query("days", "7"))
	if err != nil || days <= 0 {
		days = 7
	}

	data, err := h.service.GetStockMovement(days)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch stock movement"})
	}

	return c.JSON(fiber.Map{
		"period": days,
		"data":   data,
	})
}

// GetOverview returns catalog-wide statistics.
func (h *ReportHandler) GetOverview(c *fiber.Ctx) error {
	stats, err := h.service.GetOverview()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch overview"})
	}

	return c.JSON(stats)
}
