package route

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// Los clientes cancelan con DELETE sobre la sesión, no con una subruta.
func TestCancelarSeMontaComoDelete(t *testing.T) {
	app := fiber.New()
	HorarioRoutes(app, nil, validator.New(), zap.NewNop())

	var metodos []string
	for _, r := range app.GetRoutes(true) {
		if r.Path == "/horarios-clase/:id" {
			metodos = append(metodos, r.Method)
		}
	}
	assert.Contains(t, metodos, fiber.MethodDelete)
	assert.Contains(t, metodos, fiber.MethodPut)
}
