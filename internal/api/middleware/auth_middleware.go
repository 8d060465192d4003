package middleware

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	config "github.com/publora/backend/configs"
	"github.com/publora/backend/pkg/utils"
)

const sessionDuration = 7 * 24 * time.Hour

type AuthMiddleware struct {
	cfg config.Config
}

func NewAuthMiddleware(cfg config.Config) *AuthMiddleware {
	return &AuthMiddleware{cfg: cfg}
}

func (m *AuthMiddleware) AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Cookies(m.cfg.CookieName)

		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Missing session cookie",
			})
		}

		claims, err := utils.ValidateToken(m.cfg.SecretKey, tokenString)
		if err != nil {
			c.Cookie(&fiber.Cookie{
				Name:   m.cfg.CookieName,
				Value:  "",
				Path:   "/",
				MaxAge: -1, // Delete cookie
			})

			log.Printf("Token validation failed: %v", err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid or expired token",
			})
		}

		// Sliding session: reissue the cookie once less than a day
		// remains so active users are never logged out mid-session.
		if claims.ExpiresAt != nil && time.Until(claims.ExpiresAt.Time) < 24*time.Hour {
			if fresh, err := utils.GenerateToken(m.cfg.SecretKey, claims.UserID, sessionDuration); err == nil {
				c.Cookie(&fiber.Cookie{
					Name:     m.cfg.CookieName,
					Value:    fresh,
					Path:     "/",
					MaxAge:   int(sessionDuration.Seconds()),
					HTTPOnly: true,
					Secure:   true,
					SameSite: "None",
				})
			}
		}

		c.Locals("user_id", claims.UserID)
		return c.Next()
	}
}
