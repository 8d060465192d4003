package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// GetUserID reads the user id placed in Locals by the auth middleware.
func GetUserID(c *fiber.Ctx) int64 {
	id, ok := c.Locals("user_id").(string)
	if !ok {
		return 0
	}
	userID, _ := strconv.ParseInt(id, 10, 64)
	return userID
}
