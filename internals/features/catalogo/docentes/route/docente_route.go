package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sigeho_backend/internals/features/catalogo/docentes/controller"
)

func DocenteRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.NewDocenteController(db, v)

	g := r.Group("/docentes")
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
	g.Post("/", ctl.Create)
	g.Put("/:id", ctl.Update)
	g.Delete("/:id", ctl.Delete)
	g.Post("/:id/reactivar", ctl.Reactivar)

	t := r.Group("/tipos-contrato")
	t.Get("/", ctl.ListTiposContrato)
	t.Post("/", ctl.CreateTipoContrato)
}
