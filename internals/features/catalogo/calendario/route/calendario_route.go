package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sigeho_backend/internals/features/catalogo/calendario/controller"
)

// CalendarioRoutes monta /dias y /bloques-horario.
func CalendarioRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewCalendarioController(db)

	r.Get("/dias/select", ctl.ListDias)
	r.Get("/bloques-horario/select", ctl.ListBloques)
}
