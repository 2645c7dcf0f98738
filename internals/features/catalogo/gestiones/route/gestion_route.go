package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sigeho_backend/internals/features/catalogo/gestiones/controller"
)

// GestionRoutes monta /gestiones.
func GestionRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.NewGestionController(db, v)

	g := r.Group("/gestiones")
	g.Get("/", ctl.List)
	g.Post("/", ctl.Create)
	g.Put("/:id", ctl.Update)
	g.Put("/:id/activar", ctl.Activar)
	g.Delete("/:id", ctl.Delete)
}
