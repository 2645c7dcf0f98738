package controller

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sigeho_backend/internals/features/horarios/clases/service"
	helper "sigeho_backend/internals/helpers"
)

// Editar el horario de una gestión publicada es un error de estado (422);
// el 409 queda reservado para los conflictos de reglas.
func TestGestionPublicadaRespondeNoProcesable(t *testing.T) {
	app := fiber.New()
	app.Put("/horarios-clase/1", func(c *fiber.Ctx) error {
		return helper.FromFiberError(c, errGestionPublicada)
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodPut, "/horarios-clase/1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestConflictoDeReglasRespondeConflicto(t *testing.T) {
	app := fiber.New()
	app.Post("/horarios-clase", func(c *fiber.Ctx) error {
		return responderConflicto(c, &service.ConflictoError{
			Reglas: []service.Regla{service.ReglaChoqueAula},
		})
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/horarios-clase", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}
