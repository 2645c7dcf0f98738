package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"sigeho_backend/internals/features/horarios/clases/controller"
)

// HorarioRoutes monta /horarios-clase y /horarios para el panel
// administrativo; DocenteHorarioRoutes lo que ve el docente autenticado.
func HorarioRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate, log *zap.Logger) {
	ctl := controller.NewHorarioClaseController(db, v)
	gen := controller.NewGeneracionController(db, v, log)
	pub := controller.NewPublicacionController(db, log)

	g := r.Group("/horarios-clase")
	g.Get("/", ctl.List)
	g.Post("/", ctl.Create)
	g.Post("/generar-automatico", gen.Generar)
	g.Put("/:id", ctl.Update)
	// Borrar una sesión la cancela, nunca se elimina la fila.
	g.Delete("/:id", ctl.Cancelar)
	g.Post("/:id/reactivar", ctl.Reactivar)

	h := r.Group("/horarios")
	h.Put("/publicar", pub.Publicar)
	h.Get("/semanal", pub.Semanal)
}

func DocenteHorarioRoutes(r fiber.Router, db *gorm.DB, log *zap.Logger) {
	pub := controller.NewPublicacionController(db, log)
	r.Get("/horarios-personales", pub.Personales)
}
