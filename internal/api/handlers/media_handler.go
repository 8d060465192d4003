package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/publora/backend/internal/service"
)

type MediaHandler struct {
	s service.MediaService
}

func NewMediaHandler(service service.MediaService) *MediaHandler {
	return &MediaHandler{s: service}
}

func (h *MediaHandler) UploadMedia(c *fiber.Ctx) error {
	userID := GetUserID(c)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		slog.Error(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No file uploaded",
		})
	}

	asset, err := h.s.Upload(c.Context(), userID, fileHeader)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(asset)
}

func (h *MediaHandler) ListMedia(c *fiber.Ctx) error {
	userID := GetUserID(c)

	assets, err := h.s.List(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to list media",
		})
	}

	return c.Status(fiber.StatusOK).JSON(assets)
}

func (h *MediaHandler) RemoveMedia(c *fiber.Ctx) error {
	userID := GetUserID(c)
	assetID := c.QueryInt("id", 0)

	err := h.s.Remove(c.Context(), userID, int64(assetID))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Unable to remove media",
		})
	}

	return c.SendStatus(fiber.StatusOK)
}
