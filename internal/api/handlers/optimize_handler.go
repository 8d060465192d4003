package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/publora/backend/internal/service"
	"github.com/publora/backend/internal/transfer"
)

type OptimizeHandler struct {
	s service.OptimizeService
}

func NewOptimizeHandler(service service.OptimizeService) *OptimizeHandler {
	return &OptimizeHandler{s: service}
}

func (h *OptimizeHandler) OptimizeContent(c *fiber.Ctx) error {
	var req transfer.OptimizeRequest
	if err := c.BodyParser(&req); err != nil {
		slog.Error(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request body",
		})
	}

	result, err := h.s.Optimize(c.Context(), &req)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(result)
}
