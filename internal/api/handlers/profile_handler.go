package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/publora/backend/internal/service"
)

type ProfileHandler struct {
	s service.ProfileService
}

func NewProfileHandler(service service.ProfileService) *ProfileHandler {
	return &ProfileHandler{s: service}
}

func (h *ProfileHandler) GetProfileInfo(c *fiber.Ctx) error {
	userID := GetUserID(c)

	profile, err := h.s.GetProfileInfo(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(profile)
}

func (h *ProfileHandler) DeleteAccount(c *fiber.Ctx) error {
	userID := GetUserID(c)

	if err := h.s.RemoveProfile(c.Context(), userID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Unable to delete account",
		})
	}

	return c.SendStatus(fiber.StatusOK)
}
