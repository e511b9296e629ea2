package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/wms-api/internal/application/dto"
	pkgjwt "github.com/tu-usuario/wms-api/pkg/jwt"
)

const localsUsername = "username"

// AuthMiddleware valida el Bearer token y carga el usuario en locals.
func AuthMiddleware(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(header, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token requerido"})
		}
		tokenString := strings.TrimPrefix(header, "Bearer ")
		claims, err := pkgjwt.Parse(secret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
		}
		c.Locals(localsUsername, claims.Username)
		return c.Next()
	}
}

// GetUsername devuelve el usuario autenticado cargado por AuthMiddleware.
func GetUsername(c *fiber.Ctx) string {
	v, _ := c.Locals(localsUsername).(string)
	return v
}
