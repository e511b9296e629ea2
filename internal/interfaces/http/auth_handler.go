package http

import (
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/wms-api/internal/application/dto"
	"github.com/tu-usuario/wms-api/pkg/config"
	pkgjwt "github.com/tu-usuario/wms-api/pkg/jwt"
)

// AuthHandler login del operador único del API (credencial por config, sin
// tabla de usuarios).
type AuthHandler struct {
	auth config.AuthConfig
	jwt  config.JWTConfig
}

// NewAuthHandler construye el handler.
func NewAuthHandler(auth config.AuthConfig, jwt config.JWTConfig) *AuthHandler {
	return &AuthHandler{auth: auth, jwt: jwt}
}

// Login godoc
// @Summary      Login del operador
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credenciales"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if h.auth.PasswordHash == "" || h.jwt.Secret == "" {
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "AUTH_DISABLED", Message: "autenticación no configurada"})
	}
	if in.Username != h.auth.Username {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
	}
	if err := bcrypt.CompareHashAndPassword([]byte(h.auth.PasswordHash), []byte(in.Password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
	}
	token, err := pkgjwt.Generate(h.jwt.Secret, in.Username, h.jwt.Issuer, h.jwt.Expiration)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.LoginResponse{Token: token, ExpiresIn: h.jwt.Expiration * 60})
}
