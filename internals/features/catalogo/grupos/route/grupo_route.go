package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sigeho_backend/internals/features/catalogo/grupos/controller"
)

func GrupoRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.NewGrupoController(db, v)

	g := r.Group("/grupos")
	g.Get("/", ctl.List)
	g.Post("/", ctl.Create)
	g.Put("/:id", ctl.Update)
	g.Delete("/:id", ctl.Delete)
	g.Post("/:id/reactivar", ctl.Reactivar)
}
