package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"pasar/internal/authz"
	"pasar/internal/services"
)

// CapabilityGate enforces the authorization table before any handler runs.
// Requests never reach the store without the required capability.
type CapabilityGate struct {
	authService *services.AuthService
}

// NewCapabilityGate creates a new CapabilityGate backed by the given token
// validator.
func NewCapabilityGate(authService *services.AuthService) *CapabilityGate {
	return &CapabilityGate{authService: authService}
}

// Require returns a Fiber middleware enforcing the capability resolved for
// (entity, action). A missing credential on an Authenticated action is a 401;
// an anonymous or non-staff caller on an Admin action is a 403. Public routes
// still pick up claims from a valid token so handlers can read the caller.
func (g *CapabilityGate) Require(entity authz.Entity, action authz.Action) fiber.Handler {
	level := authz.Required(entity, action)
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			switch level {
			case authz.Public:
				return c.Next()
			case authz.Authenticated:
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"message": "Authorization header is required",
				})
			default:
				return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
					"message": "admin capability required",
				})
			}
		}

		// Accept both "Bearer <token>" and the legacy "JWT <token>" scheme.
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || (parts[0] != "Bearer" && parts[0] != "JWT") {
			if level == authz.Public {
				return c.Next()
			}
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authorization header format must be 'Bearer <token>'",
			})
		}

		claims, err := g.authService.ValidateToken(parts[1])
		if err != nil {
			if level == authz.Public {
				return c.Next()
			}
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid or expired token",
			})
		}

		c.Locals("user_id", claims["user_id"])
		c.Locals("username", claims["username"])
		c.Locals("is_staff", claims["is_staff"])

		if level == authz.Admin {
			if staff, _ := claims["is_staff"].(bool); !staff {
				return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
					"message": "admin capability required",
				})
			}
		}
		return c.Next()
	}
}
