package middleware

import (
	"Recipe-Finder/domain"
	"Recipe-Finder/internal/api/presenters"
	"Recipe-Finder/pkg/jwt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		AuthMiddleware(jwtService jwt.JWTService) fiber.Handler
	}

	middleware struct{}
)

func NewMiddleware() Middleware {
	return &middleware{}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,OPTIONS",
	})
}

// AuthMiddleware requires "Authorization: Bearer <token>" and stores the
// token's user id and username in Locals.
func (m *middleware) AuthMiddleware(jwtService jwt.JWTService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageUnauthorized, domain.ErrTokenNotFound)
		}

		scheme, token, found := strings.Cut(header, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageUnauthorized, domain.ErrTokenInvalid)
		}

		userID, username, err := jwtService.ValidateTokenUser(strings.TrimSpace(token))
		if err != nil {
			if !jwt.IsAuthError(err) {
				err = domain.ErrTokenInvalid
			}
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedTokenInvalid, err)
		}

		c.Locals("user_id", userID)
		c.Locals("username", username)
		return c.Next()
	}
}
