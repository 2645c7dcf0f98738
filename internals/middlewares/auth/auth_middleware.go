package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"sigeho_backend/internals/configs"
)

// AuthMiddleware verifica el Bearer token y deja el contexto de sesión
// (id_usuario, cod_docente, rol) en Locals para los handlers.
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		if configs.JWTSecret == "" {
			return fiber.NewError(fiber.StatusInternalServerError, "JWT secret no configurado")
		}

		claims := jwt.MapClaims{}
		if _, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("método de firma inesperado")
			}
			return []byte(configs.JWTSecret), nil
		}); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Token inválido")
		}

		if err := validarExpiracion(claims); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Token expirado")
		}

		if v, ok := claims["id_usuario"].(float64); ok {
			c.Locals("id_usuario", uint(v))
		} else {
			return fiber.NewError(fiber.StatusUnauthorized, "Token sin id_usuario")
		}
		if v, ok := claims["cod_docente"].(float64); ok {
			c.Locals("cod_docente", uint(v))
		}
		if v, ok := claims["rol"].(string); ok {
			c.Locals("rol", v)
		}

		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	h := c.Get("Authorization")
	if h == "" {
		return "", errors.New("falta el encabezado Authorization")
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", errors.New("encabezado Authorization inválido")
	}
	return parts[1], nil
}

func validarExpiracion(claims jwt.MapClaims) error {
	exp, ok := claims["exp"].(float64)
	if !ok {
		return errors.New("token sin exp")
	}
	if time.Now().After(time.Unix(int64(exp), 0)) {
		return errors.New("token expirado")
	}
	return nil
}
