package middleware

import (
	"codelearn/models"

	"github.com/gofiber/fiber/v2"
)

// Capability names a mutating operation on the catalog.
type Capability string

const (
	CapCreateContent Capability = "create-content"
	CapUpdateContent Capability = "update-content"
	CapDeleteContent Capability = "delete-content"
	CapReviewContent Capability = "review-content"
)

// roleCapabilities is the single place role grants live. Ownership
// checks for updates are layered on top via CanModify.
var roleCapabilities = map[string][]Capability{
	models.RoleStudent:    {CapReviewContent},
	models.RoleInstructor: {CapReviewContent, CapCreateContent, CapUpdateContent},
	models.RoleAdmin:      {CapReviewContent, CapCreateContent, CapUpdateContent, CapDeleteContent},
}

// Can reports whether the role is granted the capability.
func Can(role string, cap Capability) bool {
	for _, granted := range roleCapabilities[role] {
		if granted == cap {
			return true
		}
	}
	return false
}

// CanModify reports whether the actor may update a specific content
// item: admins may touch anything, instructors only their own.
func CanModify(actorID uint, role string, authorID uint) bool {
	if role == models.RoleAdmin {
		return true
	}
	return Can(role, CapUpdateContent) && actorID == authorID
}

// RequireCapability gates a route on a capability. It runs after
// JWTMiddleware, so a missing actor means the auth middleware was
// skipped and the request is treated as unauthenticated.
func RequireCapability(cap Capability) fiber.Handler {
	return func(c *fiber.Ctx) error {
		_, ok := c.Locals("userId").(uint)
		if !ok {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
		}

		role, _ := c.Locals("role").(string)
		if !Can(role, cap) {
			return JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to access this resource!", nil)
		}

		return c.Next()
	}
}
