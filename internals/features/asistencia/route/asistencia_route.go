package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sigeho_backend/internals/features/asistencia/controller"
	"sigeho_backend/internals/middlewares"
)

// AsistenciaRoutes monta /asistencia para el docente autenticado.
func AsistenciaRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.NewAsistenciaController(db, v)

	g := r.Group("/asistencia")
	g.Post("/registrar", middlewares.AsistenciaRateLimiter(), ctl.Registrar)
	g.Post("/registrar-qr", middlewares.AsistenciaRateLimiter(), ctl.RegistrarQR)
	g.Get("/ausencias", ctl.Ausencias)
	g.Post("/:id/justificar", ctl.Justificar)
}

// JustificacionRoutes monta /justificaciones para revisión administrativa.
func JustificacionRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.NewJustificacionController(db, v)

	g := r.Group("/justificaciones")
	g.Get("/", ctl.List)
	g.Put("/:id/revisar", ctl.Revisar)
}
