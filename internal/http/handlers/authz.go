package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/WebFlexrr/vendorsphere-sub000/internal/domain"
	applog "github.com/WebFlexrr/vendorsphere-sub000/internal/log"
	"github.com/WebFlexrr/vendorsphere-sub000/internal/services"
)

func bearerToken(c *fiber.Ctx) string {
	h := c.Get("Authorization")
	if strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	return ""
}

// RequireRole admits authenticated users whose role is in the allowed set.
// An empty set admits any authenticated user.
func RequireRole(auth *services.AuthService, roles ...string) fiber.Handler {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *fiber.Ctx) error {
		tok := bearerToken(c)
		if tok == "" {
			return jsonError(c, fiber.StatusUnauthorized, "missing bearer token")
		}
		u, err := auth.CurrentUser(tok)
		if err != nil || u == nil {
			applog.Security(c, "access.denied.token", nil)
			return jsonError(c, fiber.StatusUnauthorized, "invalid token")
		}
		if len(allowed) > 0 && !allowed[u.Role] {
			applog.Security(c, "access.denied.role", map[string]any{"role": u.Role})
			return jsonError(c, fiber.StatusForbidden, "access denied")
		}
		c.Locals("user", u)
		c.Locals("user_id", u.ID)
		return c.Next()
	}
}

func currentUser(c *fiber.Ctx) *domain.User {
	u, _ := c.Locals("user").(*domain.User)
	return u
}
