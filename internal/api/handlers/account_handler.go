package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/publora/backend/internal/service"
	"github.com/publora/backend/internal/transfer"
)

type AccountHandler struct {
	s service.AccountService
}

func NewAccountHandler(service service.AccountService) *AccountHandler {
	return &AccountHandler{s: service}
}

func (h *AccountHandler) AddSocialAccount(c *fiber.Ctx) error {
	platform := c.Params("platform")
	state := c.Query("state")

	authURL := h.s.GetAuthURL(c.Context(), platform, state)
	if authURL == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unsupported platform",
		})
	}

	return c.Redirect(authURL, fiber.StatusTemporaryRedirect)
}

func (h *AccountHandler) ConnectAccount(c *fiber.Ctx) error {
	userID := GetUserID(c)

	var ac transfer.AccountConnection
	if err := c.BodyParser(&ac); err != nil {
		slog.Error(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request body",
		})
	}

	accountID, err := h.s.Connect(c.Context(), userID, &ac)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":    "Account connected",
		"account_id": accountID,
	})
}

func (h *AccountHandler) ListSocialAccounts(c *fiber.Ctx) error {
	userID := GetUserID(c)

	accounts, err := h.s.List(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to list social accounts",
		})
	}

	return c.Status(fiber.StatusOK).JSON(accounts)
}

func (h *AccountHandler) SetAccountActive(c *fiber.Ctx) error {
	userID := GetUserID(c)
	accountID := c.QueryInt("id", 0)
	active := c.QueryBool("active", true)

	err := h.s.SetActive(c.Context(), userID, int64(accountID), active)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.SendStatus(fiber.StatusOK)
}

func (h *AccountHandler) DeleteSocialAccount(c *fiber.Ctx) error {
	userID := GetUserID(c)
	accountID := c.QueryInt("id", 0)

	err := h.s.Delete(c.Context(), userID, int64(accountID))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Unable to remove account",
		})
	}

	return c.SendStatus(fiber.StatusOK)
}
