package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/publora/backend/internal/service"
)

type SettingsHandler struct {
	s service.SettingsService
}

func NewSettingsHandler(service service.SettingsService) *SettingsHandler {
	return &SettingsHandler{s: service}
}

func (h *SettingsHandler) GetSettingsInfo(c *fiber.Ctx) error {
	userID := GetUserID(c)

	settings, err := h.s.GetSettingsInfo(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(settings)
}

func (h *SettingsHandler) UpdateSettings(c *fiber.Ctx) error {
	userID := GetUserID(c)

	var body struct {
		Timezone        string   `json:"timezone"`
		DefaultHashtags []string `json:"default_hashtags"`
		AutoOptimize    bool     `json:"auto_optimize"`
	}
	if err := c.BodyParser(&body); err != nil {
		slog.Error(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request body",
		})
	}

	err := h.s.UpdateSettings(c.Context(), userID, body.Timezone, body.DefaultHashtags, body.AutoOptimize)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.SendStatus(fiber.StatusOK)
}
