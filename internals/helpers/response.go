package helper

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Envelope uniforme {success, data, message} del API.

func Success(c *fiber.Ctx, message string, data interface{}) error {
	return SuccessWithCode(c, fiber.StatusOK, message, data)
}

func SuccessWithCode(c *fiber.Ctx, code int, message string, data interface{}) error {
	return c.Status(code).JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
	})
}

func Error(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}

func ErrorWithDetails(c *fiber.Ctx, code int, message string, detalles interface{}) error {
	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"message": message,
		"errores": detalles,
	})
}

// ValidationError mapea errores de validator.v10 a un detalle por campo.
func ValidationError(c *fiber.Ctx, err error) error {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return Error(c, fiber.StatusUnprocessableEntity, "Datos inválidos")
	}
	detalles := make(map[string]string, len(ve))
	for _, fieldErr := range ve {
		detalles[fieldErr.Field()] = fieldErr.Tag()
	}
	return ErrorWithDetails(c, fiber.StatusUnprocessableEntity, "Validación fallida", detalles)
}

// FromFiberError convierte el error de un DB.Transaction (usualmente
// *fiber.Error) en la respuesta JSON consistente; cualquier otro error
// cae a 500 con su mensaje.
func FromFiberError(c *fiber.Ctx, err error) error {
	if fe, ok := err.(*fiber.Error); ok {
		return Error(c, fe.Code, fe.Message)
	}
	return Error(c, fiber.StatusInternalServerError, err.Error())
}
