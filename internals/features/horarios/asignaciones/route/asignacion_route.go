package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sigeho_backend/internals/features/horarios/asignaciones/controller"
)

// AsignacionRoutes monta /asignaciones-docente.
func AsignacionRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.NewAsignacionController(db, v)

	g := r.Group("/asignaciones-docente")
	g.Get("/", ctl.List)
	g.Post("/", ctl.Create)
	g.Put("/:id", ctl.Update)
	g.Delete("/:id", ctl.Delete)
}
