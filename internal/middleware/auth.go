package middleware

import (
	"github.com/coopgretz/HomeStorage/internal/config"
	"github.com/coopgretz/HomeStorage/internal/identity"
	"github.com/gofiber/fiber/v2"
	"strings"
)

const userIDKey = "userID"

type Auth struct {
	gateway identity.Gateway
	cookie  string
	admins  map[string]bool
}

func NewAuth(gateway identity.Gateway, configuration *config.Configuration) *Auth {
	admins := make(map[string]bool, len(configuration.Identity.AdminSubjects))
	for _, subject := range configuration.Identity.AdminSubjects {
		if subject = strings.TrimSpace(subject); subject != "" {
			admins[subject] = true
		}
	}
	return &Auth{gateway: gateway, cookie: configuration.Identity.Cookie, admins: admins}
}

// Handle resolves the caller from a bearer token or the session cookie and
// stores the user id in the request locals.
func (a *Auth) Handle(c *fiber.Ctx) error {
	token := strings.TrimSpace(strings.TrimPrefix(c.Get(fiber.HeaderAuthorization), "Bearer "))
	if token == "" && a.cookie != "" {
		token = c.Cookies(a.cookie)
	}
	userID, err := a.gateway.Authenticate(token)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(map[string]interface{}{
			"error": "Unauthorized",
		})
	}
	c.Locals(userIDKey, userID)
	return c.Next()
}

// RequireAdmin runs after Handle and lets only the configured admin
// subjects through. With no admins configured every caller is refused.
func (a *Auth) RequireAdmin(c *fiber.Ctx) error {
	if !a.admins[UserID(c)] {
		return c.Status(fiber.StatusForbidden).JSON(map[string]interface{}{
			"error": "Forbidden",
		})
	}
	return c.Next()
}

// UserID returns the caller set by Handle, or "" outside an authenticated route.
func UserID(c *fiber.Ctx) string {
	userID, _ := c.Locals(userIDKey).(string)
	return userID
}

// WithUserID is for handler tests that bypass the gateway.
func WithUserID(userID string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(userIDKey, userID)
		return c.Next()
	}
}
