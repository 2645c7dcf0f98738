package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sigeho_backend/internals/features/catalogo/aulas/controller"
)

// AulaRoutes monta /aulas y /tipos-aula.
func AulaRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.NewAulaController(db, v)

	g := r.Group("/aulas")
	g.Get("/", ctl.List)
	g.Get("/disponibilidad", ctl.Disponibilidad)
	g.Get("/:id", ctl.GetByID)
	g.Post("/", ctl.Create)
	g.Put("/:id", ctl.Update)
	g.Delete("/:id", ctl.Delete)
	g.Post("/:id/reactivar", ctl.Reactivar)

	t := r.Group("/tipos-aula")
	t.Get("/", ctl.ListTipos)
	t.Post("/", ctl.CreateTipo)
}
