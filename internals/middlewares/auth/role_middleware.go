package auth

import (
	"github.com/gofiber/fiber/v2"

	"sigeho_backend/internals/constants"
)

// RoleMiddleware deja pasar sólo a los roles indicados.
func RoleMiddleware(permitidos ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rol, ok := c.Locals("rol").(string)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "Sesión sin rol",
			})
		}
		for _, p := range permitidos {
			if rol == p {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"success": false,
			"message": "No tiene permisos para esta operación",
		})
	}
}

func SoloAdmin() fiber.Handler   { return RoleMiddleware(constants.SoloAdmin...) }
func SoloDocente() fiber.Handler { return RoleMiddleware(constants.DocenteYSuperior...) }
