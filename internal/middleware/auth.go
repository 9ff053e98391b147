// Package middleware provides authentication, logging, rate limiting, and
// tracing middleware for the HTTP layer.
package middleware

import (
	"strings"

	"clubverse/internal/models"
	"clubverse/internal/service"

	"github.com/gofiber/fiber/v2"
)

// PrincipalKey is the Fiber locals key under which AuthRequired stores the
// authenticated *models.Principal.
const PrincipalKey = "principal"

var jwtSecret string

// InitMiddleware wires the token secret into the auth middleware.
func InitMiddleware(secret string) {
	jwtSecret = secret
}

// PrincipalFromCtx returns the authenticated principal set by AuthRequired.
func PrincipalFromCtx(c *fiber.Ctx) (models.Principal, bool) {
	p, ok := c.Locals(PrincipalKey).(*models.Principal)
	if !ok || p == nil {
		return models.Principal{}, false
	}
	return *p, true
}

// AuthRequired enforces a valid bearer token and stores the embedded
// principal in locals for downstream handlers.
func AuthRequired(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authorization header required",
		})
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid authorization header format",
		})
	}

	principal, err := service.ParseToken(jwtSecret, parts[1])
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid or expired token",
		})
	}

	c.Locals(PrincipalKey, principal)
	c.Locals("userID", principal.ID)

	return c.Next()
}

// RequireAdmin rejects non-admin principals. Must run after AuthRequired.
func RequireAdmin(c *fiber.Ctx) error {
	p, ok := PrincipalFromCtx(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}
	if !p.IsAdmin() {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Access denied. Admin role required.",
		})
	}
	return c.Next()
}
