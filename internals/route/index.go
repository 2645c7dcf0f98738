package routes

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	asistenciaRoute "sigeho_backend/internals/features/asistencia/route"
	aulaRoute "sigeho_backend/internals/features/catalogo/aulas/route"
	calendarioRoute "sigeho_backend/internals/features/catalogo/calendario/route"
	carreraRoute "sigeho_backend/internals/features/catalogo/carreras/route"
	docenteRoute "sigeho_backend/internals/features/catalogo/docentes/route"
	gestionRoute "sigeho_backend/internals/features/catalogo/gestiones/route"
	grupoRoute "sigeho_backend/internals/features/catalogo/grupos/route"
	materiaRoute "sigeho_backend/internals/features/catalogo/materias/route"
	asignacionRoute "sigeho_backend/internals/features/horarios/asignaciones/route"
	horarioRoute "sigeho_backend/internals/features/horarios/clases/route"
	authMiddleware "sigeho_backend/internals/middlewares/auth"
)

// SetupRoutes monta toda la superficie del API bajo /api:
//
//	/api/admin   — catálogo, asignaciones, motor y publicación (rol ADMIN)
//	/api/docente — asistencia y horario personal (rol DOCENTE o ADMIN)
//	/api/public  — consultas de sólo lectura
func SetupRoutes(app *fiber.App, db *gorm.DB, log *zap.Logger) {
	v := validator.New()

	api := app.Group("/api")

	public := api.Group("/public")
	calendarioRoute.CalendarioRoutes(public, db)

	admin := api.Group("/admin",
		authMiddleware.AuthMiddleware(),
		authMiddleware.SoloAdmin(),
	)
	aulaRoute.AulaRoutes(admin, db, v)
	carreraRoute.CarreraRoutes(admin, db, v)
	grupoRoute.GrupoRoutes(admin, db, v)
	materiaRoute.MateriaRoutes(admin, db, v)
	docenteRoute.DocenteRoutes(admin, db, v)
	gestionRoute.GestionRoutes(admin, db, v)
	asignacionRoute.AsignacionRoutes(admin, db, v)
	horarioRoute.HorarioRoutes(admin, db, v, log)
	asistenciaRoute.JustificacionRoutes(admin, db, v)

	docente := api.Group("/docente",
		authMiddleware.AuthMiddleware(),
		authMiddleware.SoloDocente(),
	)
	asistenciaRoute.AsistenciaRoutes(docente, db, v)
	horarioRoute.DocenteHorarioRoutes(docente, db, log)
}
