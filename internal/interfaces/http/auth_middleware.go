package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/aplusmed/marketplace-api/internal/application/dto"
	"github.com/aplusmed/marketplace-api/internal/application/session"
	"github.com/aplusmed/marketplace-api/internal/domain/entity"
)

// Locals key for the identity resolved by RequireAuth.
const LocalUser = "current_user"

// RequireAuth is the route guard's first gate: no identity means the UI must
// redirect to login, surfaced here as 401 LOGIN_REQUIRED. The identity is
// read from the session store, not from a bearer token — the server is the
// local backend of a single storefront client.
func RequireAuth(sessions *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := sessions.Current()
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "LOGIN_REQUIRED", Message: "log in to continue"})
		}
		c.Locals(LocalUser, user)
		return c.Next()
	}
}

// RequireRole gates a group to the given roles. An identity with another
// role gets 403 FORBIDDEN (the UI redirects to its default page).
// Must run after RequireAuth.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "LOGIN_REQUIRED", Message: "log in to continue"})
		}
		for _, r := range roles {
			if user.Role == r {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "insufficient role"})
	}
}

// CurrentUser returns the identity placed by RequireAuth, or nil.
func CurrentUser(c *fiber.Ctx) *entity.User {
	v := c.Locals(LocalUser)
	if v == nil {
		return nil
	}
	u, _ := v.(*entity.User)
	return u
}
