package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/campusconnect/backend/internal/models"
	"github.com/campusconnect/backend/internal/repository"
	"github.com/campusconnect/backend/pkg/jwt"
)

const localsUserKey = "currentUser"

// RequireAuth verifies the bearer token, loads the referenced user, and
// stores it in the request locals for downstream handlers.
func RequireAuth(tokens *jwt.Manager, users repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return unauthorized(c, "Authentication required")
		}

		claims, err := tokens.Validate(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			return unauthorized(c, "Invalid token")
		}

		id, err := primitive.ObjectIDFromHex(claims.UserID)
		if err != nil {
			return unauthorized(c, "Invalid token")
		}

		user, err := users.GetByID(c.Context(), id)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Internal server error"))
		}
		if user == nil {
			return unauthorized(c, "User not found")
		}

		c.Locals(localsUserKey, user)
		return c.Next()
	}
}

// RequireOrganizer rejects callers that are neither organizer nor admin.
// Must run after RequireAuth.
func RequireOrganizer() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil || (user.Role != models.RoleOrganizer && user.Role != models.RoleAdmin) {
			return forbidden(c, "Organizer access required")
		}
		return c.Next()
	}
}

// RequireAdmin rejects callers without the admin role. Must run after
// RequireAuth.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil || user.Role != models.RoleAdmin {
			return forbidden(c, "Admin access required")
		}
		return c.Next()
	}
}

// CurrentUser returns the authenticated user resolved by RequireAuth, or nil.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(localsUserKey).(*models.User)
	return user
}

func unauthorized(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse(msg))
}

func forbidden(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusForbidden).JSON(models.ErrorResponse(msg))
}
