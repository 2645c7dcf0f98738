package auth

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// Contexto de sesión explícito: el middleware de auth deja los claims en
// Locals y los handlers los leen de aquí, nunca de estado global.

func GetUserID(c *fiber.Ctx) (uint, error) {
	return localUint(c, "id_usuario", "Sesión sin usuario")
}

// GetCodDocente devuelve el código de docente del token; sólo presente
// cuando la cuenta tiene rol docente.
func GetCodDocente(c *fiber.Ctx) (uint, error) {
	return localUint(c, "cod_docente", "La cuenta no es de un docente")
}

func GetRol(c *fiber.Ctx) string {
	if v, ok := c.Locals("rol").(string); ok {
		return v
	}
	return ""
}

func localUint(c *fiber.Ctx, key, msg string) (uint, error) {
	switch v := c.Locals(key).(type) {
	case uint:
		return v, nil
	case float64:
		return uint(v), nil
	case string:
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			return uint(n), nil
		}
	}
	return 0, fiber.NewError(fiber.StatusUnauthorized, msg)
}
