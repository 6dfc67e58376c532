package middleware

import (
	"strings"

	"portfolio-api/internal/pkg/jwt"
	"portfolio-api/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

// AuthMiddleware guards the admin-only routes with a Bearer token issued
// by the login endpoint.
type AuthMiddleware struct {
	jwt jwt.Service
}

func NewAuthMiddleware(jwtSvc jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{jwt: jwtSvc}
}

func (m *AuthMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		if m == nil || m.jwt == nil {
			return response.Error(c, fiber.StatusUnauthorized, response.MessageUnauthorized, nil)
		}

		header := strings.TrimSpace(c.Get("Authorization"))
		if header == "" {
			return response.Error(c, fiber.StatusUnauthorized, response.MessageUnauthorized, nil)
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return response.Error(c, fiber.StatusUnauthorized, response.MessageUnauthorized, nil)
		}

		claims, err := m.jwt.ValidateToken(strings.TrimSpace(parts[1]))
		if err != nil {
			return response.Error(c, fiber.StatusUnauthorized, response.MessageUnauthorized, nil)
		}

		c.Locals("admin_subject", claims.Subject)
		return c.Next()
	}
}
