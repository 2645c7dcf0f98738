package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sigeho_backend/internals/features/catalogo/materias/controller"
)

func MateriaRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.NewMateriaController(db, v)

	g := r.Group("/materias")
	g.Get("/", ctl.List)
	g.Post("/", ctl.Create)
	g.Put("/:id", ctl.Update)
	g.Delete("/:id", ctl.Delete)
	g.Post("/:id/reactivar", ctl.Reactivar)

	mg := r.Group("/materias-grupo")
	mg.Get("/", ctl.ListMateriasGrupo)
	mg.Post("/", ctl.CreateMateriaGrupo)
}
